// Package router assembles the HTTP surface.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/clariohq/clario-backend/api/handler"
	"github.com/clariohq/clario-backend/api/middleware"
	"github.com/clariohq/clario-backend/config"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Deadline  *handler.DeadlineHandler
	Document  *handler.DocumentHandler
	Glossary  *handler.GlossaryHandler
	Dashboard *handler.DashboardHandler
	AI        *handler.AIHandler
}

// New builds the gin engine with middleware and all routes mounted
// under /api. Glossary routes are public; everything else requires a
// bearer token.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Recovery(),
		middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow).Handler(),
	)

	api := engine.Group("/api")

	api.POST("/auth/login", h.Auth.Login)

	glossary := api.Group("/glossary")
	{
		glossary.GET("", h.Glossary.List)
		glossary.GET("/categories", h.Glossary.Categories)
		glossary.GET("/random", h.Glossary.Random)
		glossary.GET("/random/:count", h.Glossary.Random)
		glossary.GET("/search/:term", h.Glossary.Lookup)
		glossary.GET("/:id", h.Glossary.Get)
	}

	auth := api.Group("", middleware.Auth(cfg.JWTSecret))

	deadlines := auth.Group("/deadlines")
	{
		// Fixed paths before the :id wildcard.
		deadlines.GET("/upcoming", h.Deadline.Upcoming)
		deadlines.GET("/overdue", h.Deadline.Overdue)
		deadlines.GET("", h.Deadline.List)
		deadlines.POST("", h.Deadline.Create)
		deadlines.GET("/:id", h.Deadline.Get)
		deadlines.PUT("/:id", h.Deadline.Update)
		deadlines.DELETE("/:id", h.Deadline.Delete)
	}

	documents := auth.Group("/documents")
	{
		documents.GET("", h.Document.List)
		documents.POST("", h.Document.Create)
		documents.POST("/upload", h.Document.Upload)
		documents.GET("/:id", h.Document.Get)
		documents.PUT("/:id", h.Document.Update)
		documents.DELETE("/:id", h.Document.Delete)
		documents.POST("/:id/analyze", h.Document.Analyze)
		documents.POST("/:id/simplify", h.Document.Simplify)
		documents.POST("/:id/check-clauses", h.Document.CheckClauses)
	}

	ai := auth.Group("/ai")
	{
		ai.POST("/chat", h.AI.Chat)
		ai.POST("/analyze-clauses", h.AI.AnalyzeClauses)
		ai.POST("/simplify-document", h.AI.SimplifyDocument)
		ai.POST("/check-standard-clauses", h.AI.CheckStandardClauses)
		ai.POST("/generate-document", h.AI.GenerateDocument)
	}

	dashboard := auth.Group("/dashboard")
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
		dashboard.GET("/health-check", h.Dashboard.HealthCheck)
	}

	return engine
}
