package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nicktebbo/FinTrack/internal/config"
	"github.com/nicktebbo/FinTrack/internal/database"
	"github.com/nicktebbo/FinTrack/internal/handlers"
	"github.com/nicktebbo/FinTrack/internal/middleware"
	"github.com/nicktebbo/FinTrack/internal/providers"
	"github.com/nicktebbo/FinTrack/internal/repositories"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	e := newServer(cfg, db)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.Server.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

// newServer wires repositories, services, and handlers into a configured
// Echo instance
func newServer(cfg *config.Config, db *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
	}))

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	insightRepo := repositories.NewInsightRepository(db)
	connectionRepo := repositories.NewConnectionRepository(db)

	// Provider clients and services
	factory := providers.NewFactory(cfg.Providers)
	metrics := services.NewPrometheusMetrics()

	accountService := services.NewAccountService(accountRepo, transactionRepo)
	transactionService := services.NewTransactionService(transactionRepo, accountRepo)
	goalService := services.NewGoalService(goalRepo)
	insightService := services.NewInsightService(insightRepo)
	connectionService := services.NewConnectionService(connectionRepo, factory.Plaid(), factory.Basiq(), metrics)
	syncService := services.NewSyncService(connectionRepo, accountRepo, transactionRepo, factory, metrics, cfg.Providers.TransactionSyncWindow)
	dashboardService := services.NewDashboardService(accountRepo, transactionRepo, goalRepo, insightRepo, metrics)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	accountHandler := handlers.NewAccountHandler(accountService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	goalHandler := handlers.NewGoalHandler(goalService)
	insightHandler := handlers.NewInsightHandler(insightService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	syncHandler := handlers.NewSyncHandler(syncService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Public endpoints
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Authenticated API
	api := e.Group("/api/v1", middleware.RequireAuth(cfg.JWT.Secret, cfg.JWT.Issuer))

	api.POST("/accounts", accountHandler.CreateAccount)
	api.GET("/accounts", accountHandler.GetAccounts)
	api.GET("/accounts/:id", accountHandler.GetAccount)
	api.PUT("/accounts/:id", accountHandler.UpdateAccount)
	api.DELETE("/accounts/:id", accountHandler.DeleteAccount)
	api.GET("/accounts/:id/transactions", accountHandler.GetAccountTransactions)

	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/recent", transactionHandler.GetRecentTransactions)

	api.POST("/goals", goalHandler.CreateGoal)
	api.GET("/goals", goalHandler.GetGoals)
	api.PUT("/goals/:id", goalHandler.UpdateGoal)

	api.POST("/insights", insightHandler.CreateInsight)
	api.GET("/insights", insightHandler.GetInsights)
	api.PUT("/insights/:id/read", insightHandler.MarkInsightRead)

	api.POST("/connections/plaid/link-token", connectionHandler.CreateLinkToken)
	api.POST("/connections/plaid/exchange-token", connectionHandler.ExchangePublicToken)
	api.POST("/connections/basiq/connect", connectionHandler.ConnectBasiq)
	api.GET("/connections", connectionHandler.GetConnections)
	api.DELETE("/connections/:id", connectionHandler.DeleteConnection)

	api.POST("/sync-accounts", syncHandler.SyncAccounts)
	api.GET("/dashboard/summary", dashboardHandler.GetSummary)

	// Development-only fixtures
	if cfg.Server.Environment == "development" {
		devHandler := handlers.NewDevHandler(userRepo, accountRepo, transactionRepo, cfg.JWT.Secret, cfg.JWT.Issuer)
		e.POST("/api/v1/dev/token", devHandler.IssueDevToken)
		api.POST("/dev/accounts/:id/generate-test-data", devHandler.GenerateTestData)
	}

	return e
}
