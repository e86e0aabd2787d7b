package services

import (
	"buzzline/internal/db"
	"buzzline/internal/models"
)

// 聚合报表每次调用全量重算，数据量小，重算比维护缓存一致性省事。
// 并列名次保持数据库自然行序，不加次级排序。

type UserPostCount struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	PostCount int    `json:"post_count"`
}

// UserPostCounts 每个用户的发帖数，LEFT JOIN 让零帖用户也以 0 出现
func UserPostCounts() ([]UserPostCount, error) {
	var results []UserPostCount
	err := db.DB.Model(&models.User{}).
		Select("users.id AS user_id, users.username, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.user_id = users.id").
		Group("users.id").
		Order("post_count DESC").
		Scan(&results).Error
	return results, err
}

type CommentedPost struct {
	PostID       uint   `json:"post_id"`
	Content      string `json:"content"`
	Username     string `json:"username"`
	CommentCount int    `json:"comment_count"`
}

// MostCommentedPosts 至少有一条评论的帖子及其评论数，零评论帖子不出现
func MostCommentedPosts() ([]CommentedPost, error) {
	var results []CommentedPost
	err := db.DB.Model(&models.Post{}).
		Select("posts.id AS post_id, posts.content, users.username, COUNT(comments.id) AS comment_count").
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id").
		Having("comment_count > 0").
		Order("comment_count DESC").
		Scan(&results).Error
	return results, err
}

type TopLiker struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	LikeCount int    `json:"like_count"`
}

// TopLikers 点过赞的用户及其点赞数
func TopLikers() ([]TopLiker, error) {
	var results []TopLiker
	err := db.DB.Model(&models.User{}).
		Select("users.id AS user_id, users.username, COUNT(likes.id) AS like_count").
		Joins("JOIN likes ON likes.user_id = users.id").
		Group("users.id").
		Having("like_count > 0").
		Order("like_count DESC").
		Scan(&results).Error
	return results, err
}
