package services

import (
	"errors"
	"testing"
	"time"
)

func TestListPostsNewestFirst(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	older := mustCreatePost(t, alice.ID, "older")
	newer := mustCreatePost(t, alice.ID, "newer")
	backdatePost(t, older.ID, time.Hour)

	posts, err := ListPosts()
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != newer.ID {
		t.Errorf("expected newest post first, got id %d", posts[0].ID)
	}
	if posts[0].User.Username != "alice" {
		t.Errorf("expected author preloaded, got %q", posts[0].User.Username)
	}
}

func TestUserPostsScopedToUser(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	bob := mustCreateUser(t, "bob", "b@x.com")
	mustCreatePost(t, alice.ID, "mine")
	mustCreatePost(t, bob.ID, "not mine")

	posts, err := UserPosts(alice.ID)
	if err != nil {
		t.Fatalf("UserPosts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Content != "mine" {
		t.Errorf("expected only alice's post, got %+v", posts)
	}
}

func TestPostLikeCount(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	bob := mustCreateUser(t, "bob", "b@x.com")
	post := mustCreatePost(t, alice.ID, "count me")

	if _, err := CreateLike(alice.ID, post.ID); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}
	if _, err := CreateLike(bob.ID, post.ID); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}

	count, err := PostLikeCount(post.ID)
	if err != nil {
		t.Fatalf("PostLikeCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 likes, got %d", count)
	}
}

func TestGetMissingRows(t *testing.T) {
	setupTestDB(t)

	if _, err := GetUser(42); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := GetPost(42); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}
