package services

import "errors"

// 持久层的固定错误，由调用方决定如何展示
var (
	ErrDuplicateUser = errors.New("username or email already taken")
	ErrUserNotFound  = errors.New("user does not exist")
	ErrPostNotFound  = errors.New("post does not exist")
	ErrDuplicateLike = errors.New("post already liked by this user")
)
