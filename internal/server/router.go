package server

import (
	"net/http"

	"securereq/internal/config"
	"securereq/internal/handlers"
	"securereq/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("securereq_session", store))
	r.Use(middleware.InjectUser())

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)
	api.POST("/auth/logout", handlers.Logout)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/auth/me", handlers.Me)

	// PROJECTS
	auth.GET("/projects", handlers.ListProjects)
	auth.POST("/projects", handlers.CreateProject)
	auth.GET("/projects/:id", handlers.GetProject)
	auth.DELETE("/projects/:id", handlers.DeleteProject)

	// STORIES
	auth.GET("/projects/:id/stories", handlers.ListStories)
	auth.POST("/projects/:id/stories", handlers.CreateStory)
	auth.GET("/stories/:id", handlers.GetStory)
	auth.DELETE("/stories/:id", handlers.DeleteStory)

	// ANALYSIS
	auth.POST("/stories/:id/analyze", handlers.RunAnalysis)
	auth.POST("/projects/:id/analyze", handlers.BulkAnalyze)
	auth.GET("/stories/:id/analyses", handlers.ListAnalyses)
	auth.GET("/analyses/:id", handlers.GetAnalysis)

	// COMPLIANCE
	auth.GET("/analyses/:id/compliance", handlers.ListMappings)
	auth.GET("/analyses/:id/compliance/summary", handlers.ComplianceSummary)
	auth.GET("/analyses/:id/export", handlers.ExportAnalysisCSV)

	// WEBHOOKS
	auth.GET("/projects/:id/webhooks", handlers.ListWebhooks)
	auth.POST("/projects/:id/webhooks", handlers.CreateWebhook)
	auth.DELETE("/webhooks/:id", handlers.DeleteWebhook)
	auth.POST("/webhooks/:id/test", handlers.TestWebhook)

	// CUSTOM STANDARDS
	auth.GET("/projects/:id/standards", handlers.ListStandards)
	auth.POST("/projects/:id/standards", handlers.UploadStandard)
	auth.DELETE("/standards/:id", handlers.DeleteStandard)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "securereq"})
	})

	return r
}
