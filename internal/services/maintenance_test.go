package services

import (
	"testing"
	"time"

	"buzzline/internal/db"
	"buzzline/internal/models"
)

func backdatePost(t *testing.T, postID uint, age time.Duration) {
	t.Helper()

	err := db.DB.Model(&models.Post{}).
		Where("id = ?", postID).
		Update("created_at", time.Now().Add(-age)).Error
	if err != nil {
		t.Fatalf("failed to backdate post %d: %v", postID, err)
	}
}

func TestDeleteOldPosts(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	old := mustCreatePost(t, alice.ID, "ancient history")
	recent := mustCreatePost(t, alice.ID, "still fresh")

	backdatePost(t, old.ID, 31*24*time.Hour)
	backdatePost(t, recent.ID, 29*24*time.Hour)

	n, err := DeleteOldPosts()
	if err != nil {
		t.Fatalf("DeleteOldPosts failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 post removed, got %d", n)
	}

	var remaining []models.Post
	if err := db.DB.Find(&remaining).Error; err != nil {
		t.Fatalf("failed to load posts: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != recent.ID {
		t.Errorf("expected only the 29-day-old post to remain, got %+v", remaining)
	}
}

func TestDeleteInactiveUsers(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	bob := mustCreateUser(t, "bob", "b@x.com")
	post := mustCreatePost(t, alice.ID, "alice's post")

	// bob 有评论和点赞但没有帖子，依然算不活跃
	if _, err := CreateComment(bob.ID, post.ID, "busy commenter"); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if _, err := CreateLike(bob.ID, post.ID); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}

	n, err := DeleteInactiveUsers()
	if err != nil {
		t.Fatalf("DeleteInactiveUsers failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 user removed, got %d", n)
	}

	var remaining []models.User
	if err := db.DB.Find(&remaining).Error; err != nil {
		t.Fatalf("failed to load users: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != alice.ID {
		t.Errorf("expected only alice to remain, got %+v", remaining)
	}
}

func TestDeleteOrphans(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	bob := mustCreateUser(t, "bob", "b@x.com")
	post := mustCreatePost(t, alice.ID, "doomed post")

	if _, err := CreateComment(bob.ID, post.ID, "soon orphaned"); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if _, err := CreateLike(bob.ID, post.ID); err != nil {
		t.Fatalf("CreateLike failed: %v", err)
	}

	// 绕过级联删除制造孤儿行：限制为单连接后关掉外键再裸删帖子
	sqlDB, err := db.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.DB.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		t.Fatalf("failed to disable foreign keys: %v", err)
	}
	if err := db.DB.Exec("DELETE FROM posts WHERE id = ?", post.ID).Error; err != nil {
		t.Fatalf("failed to raw-delete post: %v", err)
	}

	if got := countRows(t, &models.Comment{}); got != 1 {
		t.Fatalf("expected orphan comment to exist, got %d rows", got)
	}

	n, err := DeleteOrphanComments()
	if err != nil {
		t.Fatalf("DeleteOrphanComments failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 orphan comment removed, got %d", n)
	}

	n, err = DeleteOrphanLikes()
	if err != nil {
		t.Fatalf("DeleteOrphanLikes failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 orphan like removed, got %d", n)
	}

	if got := countRows(t, &models.Comment{}); got != 0 {
		t.Errorf("expected comments table empty, got %d rows", got)
	}
	if got := countRows(t, &models.Like{}); got != 0 {
		t.Errorf("expected likes table empty, got %d rows", got)
	}
}

func TestOptimizeDatabase(t *testing.T) {
	setupTestDB(t)

	alice := mustCreateUser(t, "alice", "a@x.com")
	for i := 0; i < 10; i++ {
		mustCreatePost(t, alice.ID, "filler")
	}
	if _, err := DeleteOldPosts(); err != nil {
		t.Fatalf("DeleteOldPosts failed: %v", err)
	}

	if err := OptimizeDatabase(); err != nil {
		t.Errorf("OptimizeDatabase failed: %v", err)
	}
}
