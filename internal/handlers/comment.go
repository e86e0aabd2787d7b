package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"buzzline/internal/services"
	"buzzline/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List 评论列表（含作者和被评论帖子），最新在前
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := services.ListComments()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load comments")
		return
	}

	posts, err := services.ListPosts()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	users, err := services.ListUsers()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load users")
		return
	}

	Render(c, http.StatusOK, "comments.html", gin.H{
		"Comments": comments,
		"Posts":    posts,
		"Users":    users,
	})
}

func (h *CommentHandler) Create(c *gin.Context) {
	userID := utils.StringToUint(c.PostForm("user_id"))
	postID := utils.StringToUint(c.PostForm("post_id"))
	content := strings.TrimSpace(c.PostForm("content"))

	if content == "" {
		Flash(c, "content is required")
		c.Redirect(http.StatusFound, "/comments")
		return
	}

	if _, err := services.CreateComment(userID, postID, content); err != nil {
		Flash(c, err.Error())
	} else {
		Flash(c, fmt.Sprintf("comment added to post %d", postID))
	}
	c.Redirect(http.StatusFound, "/comments")
}
