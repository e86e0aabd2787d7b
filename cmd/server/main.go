package main

import (
	"html/template"
	"log"
	"os"
	"time"

	"buzzline/internal/db"
	"buzzline/internal/middleware"
	"buzzline/internal/router"
	"buzzline/internal/utils"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions (carries the flash messages)
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("buzzline_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadFlashes())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Buzzline server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// Every view shares the single base layout
	assemble := func(view string) []string {
		return []string{
			templatesDir + "/layouts/base.html",
			templatesDir + "/views/" + view,
		}
	}

	// FuncMap
	funcMap := template.FuncMap{
		"markdown": utils.RenderMarkdown,
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
	}

	views := []string{
		"index.html",
		"users.html",
		"user_detail.html",
		"posts.html",
		"post_detail.html",
		"comments.html",
		"likes.html",
		"analytics.html",
		"management.html",
		"error.html",
	}
	for _, view := range views {
		r.AddFromFilesFuncs(view, funcMap, assemble(view)...)
	}

	return r
}
