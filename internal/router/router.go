package router

import (
	"buzzline/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	homeHandler := handlers.NewHomeHandler()
	userHandler := handlers.NewUserHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	likeHandler := handlers.NewLikeHandler()
	analyticsHandler := handlers.NewAnalyticsHandler()
	managementHandler := handlers.NewManagementHandler()

	r.GET("/", homeHandler.Index) // 首页导航

	r.GET("/users", userHandler.List)        // 用户列表 + 创建表单
	r.POST("/users", userHandler.Create)     // 创建用户
	r.GET("/users/:id", userHandler.Detail)  // 用户主页（该用户的帖子）

	r.GET("/posts", postHandler.List)        // 帖子列表
	r.POST("/posts", postHandler.Create)     // 发布帖子
	r.GET("/posts/:id", postHandler.Detail)  // 帖子详情（评论 + 点赞数）

	r.GET("/comments", commentHandler.List)    // 评论列表
	r.POST("/comments", commentHandler.Create) // 发表评论

	r.GET("/likes", likeHandler.List)    // 点赞列表
	r.POST("/likes", likeHandler.Create) // 点赞

	r.GET("/analytics", analyticsHandler.Index) // 聚合报表 + 审计日志

	r.GET("/management", managementHandler.Show) // 维护面板
	r.POST("/management", managementHandler.Run) // 执行维护/导出动作
}
