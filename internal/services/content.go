package services

import (
	"errors"
	"fmt"

	"buzzline/internal/db"
	"buzzline/internal/models"

	"gorm.io/gorm"
)

// 审计日志事件标签常量
const (
	EventPostCreated    = "post created"
	EventCommentCreated = "comment created"
	EventLikeCreated    = "like created"
)

// CreateUser inserts a new user. A duplicate username or email leaves the
// table unchanged. User creation is not audit-logged.
func CreateUser(username, email string) (*models.User, error) {
	user := models.User{
		Username: username,
		Email:    email,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return &user, nil
}

// CreatePost 使用事务写入帖子并记录审计日志，作者不存在则整体回滚
func CreatePost(userID uint, content string) (*models.Post, error) {
	post := models.Post{
		UserID:  userID,
		Content: content,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(&post).Error; err != nil {
			return err
		}
		return logEvent(tx, EventPostCreated,
			fmt.Sprintf("user %d created post: '%s'", userID, content))
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// CreateComment 校验用户和帖子都存在后写入评论并记录审计日志
func CreateComment(userID, postID uint, content string) (*models.Comment, error) {
	comment := models.Comment{
		UserID:  userID,
		PostID:  postID,
		Content: content,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, userID); err != nil {
			return err
		}
		if err := postExists(tx, postID); err != nil {
			return err
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}
		return logEvent(tx, EventCommentCreated,
			fmt.Sprintf("user %d commented on post %d: '%s'", userID, postID, content))
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// CreateLike 同一用户对同一帖子的重复点赞返回 ErrDuplicateLike，不写任何行
func CreateLike(userID, postID uint) (*models.Like, error) {
	like := models.Like{
		UserID: userID,
		PostID: postID,
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := userExists(tx, userID); err != nil {
			return err
		}
		if err := postExists(tx, postID); err != nil {
			return err
		}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateLike
			}
			return err
		}
		return logEvent(tx, EventLikeCreated,
			fmt.Sprintf("user %d liked post %d", userID, postID))
	})
	if err != nil {
		return nil, err
	}

	return &like, nil
}

// logEvent appends an audit log entry inside the caller's transaction so a
// rolled back write never leaves a stray log row.
func logEvent(tx *gorm.DB, event, details string) error {
	entry := models.LogEntry{
		Event:   event,
		Details: details,
	}
	return tx.Create(&entry).Error
}

func userExists(tx *gorm.DB, id uint) error {
	var user models.User
	if err := tx.Select("id").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func postExists(tx *gorm.DB, id uint) error {
	var post models.Post
	if err := tx.Select("id").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
