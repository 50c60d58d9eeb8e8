package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulsefeed/feedback-analytics/internal/api/handler"
	"github.com/pulsefeed/feedback-analytics/internal/api/middleware"
	"github.com/pulsefeed/feedback-analytics/internal/core/domain"
	"github.com/pulsefeed/feedback-analytics/internal/core/service"
	"github.com/pulsefeed/feedback-analytics/internal/infrastructure/config"
	mongodb "github.com/pulsefeed/feedback-analytics/internal/infrastructure/db/mongo"
	redisdb "github.com/pulsefeed/feedback-analytics/internal/infrastructure/db/redis"
	"github.com/pulsefeed/feedback-analytics/internal/infrastructure/llm"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("feedback"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	tokens, err := service.NewTokenService(cfg.SecretKey, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := service.NewPasswordHasher(0)

	authService := service.NewAuthService(userRepo, tokens, hasher, throttle, cfg.SecretKey)
	feedbackService := service.NewFeedbackService(feedbackRepo, cfg.FeedbackWindow, log)

	llmClient := llm.NewClient(llm.Config{
		APIKey:  cfg.Groq.APIKey,
		BaseURL: cfg.Groq.BaseURL,
		Model:   cfg.Groq.Model,
		Timeout: cfg.Groq.Timeout,
	}, log)
	analyticsService := service.NewAnalyticsService(feedbackRepo, llmClient, cfg.Groq.Timeout, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler()
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	authMW := middleware.Auth(authService)
	adminMW := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/token", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/users/me", userHandler.Me, authMW)
	e.GET("/admin", userHandler.Admin, authMW, adminMW)
	e.POST("/feedback", feedbackHandler.Submit, authMW)
	e.GET("/feedback", feedbackHandler.List, authMW)
	e.GET("/analytics", analyticsHandler.Get, authMW, adminMW)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
