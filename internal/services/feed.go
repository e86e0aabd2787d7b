package services

import (
	"errors"

	"buzzline/internal/db"
	"buzzline/internal/models"

	"gorm.io/gorm"
)

// ListUsers returns all users in insertion order.
func ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.DB.Order("id ASC").Find(&users).Error
	return users, err
}

// ListPosts returns all posts with their authors, newest first.
func ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := db.DB.Preload("User").Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// ListComments returns all comments with author and referenced post, newest first.
func ListComments() ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").Preload("Post").Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// ListLikes returns all likes with author and referenced post, newest first.
func ListLikes() ([]models.Like, error) {
	var likes []models.Like
	err := db.DB.Preload("User").Preload("Post").Order("created_at DESC").Find(&likes).Error
	return likes, err
}

// ListLogs returns the audit trail, newest first.
func ListLogs() ([]models.LogEntry, error) {
	var entries []models.LogEntry
	err := db.DB.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// GetUser 用户详情页
func GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetPost 帖子详情页，附带点赞数
func GetPost(id uint) (*models.Post, error) {
	var post models.Post
	if err := db.DB.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	count, err := PostLikeCount(post.ID)
	if err != nil {
		return nil, err
	}
	post.LikeCount = count

	return &post, nil
}

// UserPosts returns one user's posts, newest first.
func UserPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// PostComments returns one post's comments with authors, newest first.
func PostComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// PostLikeCount counts likes for a single post.
func PostLikeCount(postID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
