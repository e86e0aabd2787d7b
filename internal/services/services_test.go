package services

import (
	"path/filepath"
	"testing"

	"buzzline/internal/db"
	"buzzline/internal/models"
)

// setupTestDB points the global handle at a fresh SQLite file under t.TempDir.
func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := db.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.DB = gdb
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.DB.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func mustCreateUser(t *testing.T, username, email string) *models.User {
	t.Helper()

	user, err := CreateUser(username, email)
	if err != nil {
		t.Fatalf("CreateUser(%s, %s) failed: %v", username, email, err)
	}
	return user
}

func mustCreatePost(t *testing.T, userID uint, content string) *models.Post {
	t.Helper()

	post, err := CreatePost(userID, content)
	if err != nil {
		t.Fatalf("CreatePost(%d) failed: %v", userID, err)
	}
	return post
}
