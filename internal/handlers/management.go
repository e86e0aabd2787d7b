package handlers

import (
	"fmt"
	"net/http"
	"os"

	"buzzline/internal/services"

	"github.com/gin-gonic/gin"
)

type ManagementHandler struct {
	exportDir string
}

func NewManagementHandler() *ManagementHandler {
	dir := os.Getenv("EXPORT_DIR")
	if dir == "" {
		dir = "."
	}
	return &ManagementHandler{exportDir: dir}
}

func (h *ManagementHandler) Show(c *gin.Context) {
	Render(c, http.StatusOK, "management.html", nil)
}

// Run 每次请求只执行一个维护或导出动作，动作之间互不组合
func (h *ManagementHandler) Run(c *gin.Context) {
	action := c.PostForm("action")

	var message string
	var err error

	switch action {
	case "delete_inactive_users":
		var n int64
		n, err = services.DeleteInactiveUsers()
		message = fmt.Sprintf("removed %d inactive users", n)
	case "delete_old_posts":
		var n int64
		n, err = services.DeleteOldPosts()
		message = fmt.Sprintf("removed %d old posts", n)
	case "delete_orphan_comments":
		var n int64
		n, err = services.DeleteOrphanComments()
		message = fmt.Sprintf("removed %d orphan comments", n)
	case "delete_orphan_likes":
		var n int64
		n, err = services.DeleteOrphanLikes()
		message = fmt.Sprintf("removed %d orphan likes", n)
	case "optimize_database":
		err = services.OptimizeDatabase()
		message = "database optimized (VACUUM)"
	case "export_users":
		err = services.ExportUsers(h.exportDir)
		message = "exported users.csv"
	case "export_posts":
		err = services.ExportPosts(h.exportDir)
		message = "exported posts.csv"
	case "export_comments":
		err = services.ExportComments(h.exportDir)
		message = "exported comments.csv"
	case "export_likes":
		err = services.ExportLikes(h.exportDir)
		message = "exported likes.csv"
	case "export_logs":
		err = services.ExportLogs(h.exportDir)
		message = "exported logs.csv"
	default:
		message = "unknown action"
	}

	if err != nil {
		Flash(c, "action failed: "+err.Error())
	} else {
		Flash(c, message)
	}
	c.Redirect(http.StatusFound, "/management")
}
