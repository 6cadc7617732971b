// Package routes defines the HTTP routes for the customer support service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/handlers"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler    *handlers.HealthHandler
	ChatHandler      *handlers.ChatHandler
	MessagesHandler  *handlers.MessagesHandler
	AnalyticsHandler *handlers.AnalyticsHandler
	DocumentsHandler *handlers.DocumentsHandler
	SettingsHandler  *handlers.SettingsHandler
	EmailHandler     *handlers.EmailHandler
	ContactHandler   *handlers.ContactHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	v1 := r.Group("/api/v1")
	{
		// Health check routes (no auth required)
		v1.GET("/health", cfg.HealthHandler.Health)
		v1.GET("/ready", cfg.HealthHandler.Ready)
		v1.GET("/live", cfg.HealthHandler.Live)

		// Contact form is public: it is embedded on the marketing site.
		v1.POST("/contact", cfg.ContactHandler.Submit)

		// Apply auth middleware to protected API routes
		protected := v1.Group("")
		protected.Use(cfg.AuthMiddleware.Authenticate())
		{
			// Chat widget
			chat := protected.Group("/chat")
			{
				chat.POST("", cfg.ChatHandler.Send)
				chat.GET("/history", cfg.ChatHandler.History)
			}

			// Dashboard feeds
			protected.GET("/messages", cfg.MessagesHandler.List)
			protected.GET("/analytics", cfg.AnalyticsHandler.Get)

			// Knowledge base
			documents := protected.Group("/knowledge-base/documents")
			{
				documents.POST("", cfg.DocumentsHandler.Upload)
				documents.GET("", cfg.DocumentsHandler.List)
				documents.DELETE("/:id", cfg.DocumentsHandler.Delete)
			}

			// Settings
			protected.GET("/settings", cfg.SettingsHandler.Get)
			protected.POST("/settings", cfg.SettingsHandler.Update)

			// Email outreach
			email := protected.Group("/email")
			{
				email.POST("/send", cfg.EmailHandler.Send)
				email.POST("/templates", cfg.EmailHandler.CreateTemplate)
				email.GET("/templates", cfg.EmailHandler.ListTemplates)
				email.POST("/contacts", cfg.EmailHandler.ImportContacts)
				email.GET("/contacts", cfg.EmailHandler.ListContacts)
			}
		}
	}
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware) {
	// Apply global middleware
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.NoRoute(middleware.NotFound())

	// Setup routes
	Setup(r, cfg)
}
