// Package main is the entry point for the SupportGenie API.
// @title SupportGenie API
// @version 1.0
// @description AI customer support service: chat widget backend, conversation analytics, knowledge base, and email outreach
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/vishal11u/Ai-CustomerSupport-Sass
// @contact.email support@supportgenie.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vishal11u/Ai-CustomerSupport-Sass/docs"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/handlers"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/middleware"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/api/routes"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/config"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/cache"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	rediscache "github.com/vishal11u/Ai-CustomerSupport-Sass/internal/infrastructure/cache/redis"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/infrastructure/docdb/mongodb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/pkg/encryption"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/assistant"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/mailer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg.Log)

	ctx := context.Background()

	// Initialize cache client using factory pattern
	cacheClient, err := createCacheClient(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache client")
	}
	defer cacheClient.Close()

	// Initialize document db client using factory pattern
	docDBClient, err := createDocDBClient(ctx, cfg.DocDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize document db client")
	}
	defer docDBClient.Close(ctx)

	// Ensure database indexes
	if err := docDBClient.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	// Initialize encryptor for stored email credentials
	encryptor, err := createEncryptor(cfg.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryptor")
	}

	// Initialize assistant service
	assistantService, err := createAssistant(cfg.Assistant)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize assistant service")
	}

	// Initialize mailer
	emailMailer, err := createMailer(cfg.SMTP)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize mailer")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, cacheClient, docDBClient, encryptor, assistantService, emailMailer)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// setupLogging configures the global zerolog logger.
func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// createCacheClient creates a cache client based on the configuration.
func createCacheClient(cfg config.CacheConfig) (cache.Cache, error) {
	cacheType := cache.Type(cfg.Type)

	switch cacheType {
	case cache.TypeRedis:
		return rediscache.NewCache(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
	default:
		log.Fatal().Str("type", cfg.Type).Msg("unsupported cache type")
		return nil, nil
	}
}

// createDocDBClient creates a document database client based on the configuration.
func createDocDBClient(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error) {
	docDBType := docdb.Type(cfg.Type)

	switch docDBType {
	case docdb.TypeMongoDB:
		return mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:          cfg.URI,
			DatabaseName: cfg.Database,
		})
	case docdb.TypeCosmosDB:
		// CosmosDB uses MongoDB protocol, so we can use the same client
		return mongodb.NewClient(ctx, &mongodb.ClientConfig{
			URI:          cfg.URI,
			DatabaseName: cfg.Database,
		})
	default:
		log.Fatal().Str("type", cfg.Type).Msg("unsupported docdb type")
		return nil, nil
	}
}

// createEncryptor creates an encryptor for stored credentials.
func createEncryptor(key string) (encryption.Encryptor, error) {
	if key == "" {
		// Use NoOp encryptor in development
		log.Warn().Msg("SECRETS_ENCRYPTION_KEY not set, using NoOp encryptor")
		return encryption.NewNoOpEncryptor(), nil
	}
	return encryption.NewAESEncryptor(key)
}

// createAssistant creates the LLM-backed assistant service.
func createAssistant(cfg config.AssistantConfig) (assistant.Service, error) {
	return assistant.NewOpenAIService(assistant.Config{
		APIKey:       cfg.APIKey,
		Model:        cfg.Model,
		SystemPrompt: cfg.SystemPrompt,
		MaxTokens:    cfg.MaxTokens,
	}, log.Logger)
}

// createMailer creates the outbound email sender.
func createMailer(cfg config.SMTPConfig) (mailer.Mailer, error) {
	return mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
}

// setupRouter creates and configures the Gin router.
func setupRouter(
	cfg *config.Config,
	cacheClient cache.Cache,
	docDBClient docdb.Client,
	encryptor encryption.Encryptor,
	assistantService assistant.Service,
	emailMailer mailer.Mailer,
) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()
	authMw := middleware.NewAuthMiddleware()

	// Create handlers
	healthHandler := handlers.NewHealthHandler(cacheClient, docDBClient)
	chatHandler := handlers.NewChatHandler(docDBClient, assistantService, cacheClient)
	messagesHandler := handlers.NewMessagesHandler(docDBClient)
	analyticsHandler := handlers.NewAnalyticsHandler(docDBClient, cacheClient, cfg.Analytics.WindowDays)
	documentsHandler := handlers.NewDocumentsHandler(docDBClient)
	settingsHandler := handlers.NewSettingsHandler(docDBClient, encryptor)
	emailHandler := handlers.NewEmailHandler(docDBClient, emailMailer)
	contactHandler := handlers.NewContactHandler(emailMailer, cfg.SMTP.ContactRecipient)

	// Setup routes
	routesCfg := &routes.Config{
		HealthHandler:    healthHandler,
		ChatHandler:      chatHandler,
		MessagesHandler:  messagesHandler,
		AnalyticsHandler: analyticsHandler,
		DocumentsHandler: documentsHandler,
		SettingsHandler:  settingsHandler,
		EmailHandler:     emailHandler,
		ContactHandler:   contactHandler,
		AuthMiddleware:   authMw,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
