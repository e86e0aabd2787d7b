package handlers

import (
	"fmt"
	"net/http"

	"buzzline/internal/services"
	"buzzline/internal/utils"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct{}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// List 点赞列表（含点赞用户和被赞帖子），最新在前
func (h *LikeHandler) List(c *gin.Context) {
	likes, err := services.ListLikes()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load likes")
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

	Render(c, http.StatusOK, "likes.html", gin.H{
		"Likes": likes,
		"Posts": posts,
		"Users": users,
	})
}

func (h *LikeHandler) Create(c *gin.Context) {
	userID := utils.StringToUint(c.PostForm("user_id"))
	postID := utils.StringToUint(c.PostForm("post_id"))

	if _, err := services.CreateLike(userID, postID); err != nil {
		Flash(c, err.Error())
	} else {
		Flash(c, fmt.Sprintf("user %d liked post %d", userID, postID))
	}
	c.Redirect(http.StatusFound, "/likes")
}
