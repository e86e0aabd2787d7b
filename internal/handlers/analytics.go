package handlers

import (
	"net/http"

	"buzzline/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{}

func NewAnalyticsHandler() *AnalyticsHandler {
	return &AnalyticsHandler{}
}

// Index 分析页：三个聚合报表 + 审计日志，全部现查现算
func (h *AnalyticsHandler) Index(c *gin.Context) {
	postCounts, err := services.UserPostCounts()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load post counts")
		return
	}

	commented, err := services.MostCommentedPosts()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load commented posts")
		return
	}

	likers, err := services.TopLikers()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load top likers")
		return
	}

	logs, err := services.ListLogs()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "failed to load logs")
		return
	}

	Render(c, http.StatusOK, "analytics.html", gin.H{
		"UserPostCounts":     postCounts,
		"MostCommentedPosts": commented,
		"TopLikers":          likers,
		"Logs":               logs,
	})
}
