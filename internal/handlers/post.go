package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"buzzline/internal/services"
	"buzzline/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// List 帖子列表（含作者），最新在前
func (h *PostHandler) List(c *gin.Context) {
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

	Render(c, http.StatusOK, "posts.html", gin.H{
		"Posts": posts,
		"Users": users,
	})
}

func (h *PostHandler) Create(c *gin.Context) {
	userID := utils.StringToUint(c.PostForm("user_id"))
	content := strings.TrimSpace(c.PostForm("content"))

	if content == "" {
		Flash(c, "content is required")
		c.Redirect(http.StatusFound, "/posts")
		return
	}

	if _, err := services.CreatePost(userID, content); err != nil {
		Flash(c, err.Error())
	} else {
		Flash(c, fmt.Sprintf("post created for user %d", userID))
	}
	c.Redirect(http.StatusFound, "/posts")
}

// Detail 帖子详情：评论列表 + 点赞数
func (h *PostHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	post, err := services.GetPost(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "post not found")
		return
	}

	comments, err := services.PostComments(post.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load comments")
		return
	}

	Render(c, http.StatusOK, "post_detail.html", gin.H{
		"Post":     post,
		"Comments": comments,
	})
}
