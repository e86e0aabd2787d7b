package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"buzzline/internal/services"
	"buzzline/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// List 用户列表 + 创建表单
func (h *UserHandler) List(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load users")
		return
	}
	Render(c, http.StatusOK, "users.html", gin.H{"Users": users})
}

func (h *UserHandler) Create(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))

	if username == "" || email == "" {
		Flash(c, "username and email are required")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if _, err := services.CreateUser(username, email); err != nil {
		Flash(c, err.Error())
	} else {
		Flash(c, fmt.Sprintf("user %s created", username))
	}
	c.Redirect(http.StatusFound, "/users")
}

// Detail 用户主页：该用户的全部帖子
func (h *UserHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	user, err := services.GetUser(id)
	if err != nil {
		RenderError(c, http.StatusNotFound, "user not found")
		return
	}

	posts, err := services.UserPosts(user.ID)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load posts")
		return
	}

	Render(c, http.StatusOK, "user_detail.html", gin.H{
		"User":  user,
		"Posts": posts,
	})
}
