package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/riyaaaa19/shecare/internal/config"
	"github.com/riyaaaa19/shecare/internal/database"
	"github.com/riyaaaa19/shecare/internal/handlers"
	"github.com/riyaaaa19/shecare/internal/logging"
	"github.com/riyaaaa19/shecare/internal/middleware"
	"github.com/riyaaaa19/shecare/internal/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	// Initialize logger
	logger := logging.New()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Server.Environment == "development" {
		logger.SetLevel(logging.LevelDebug)
		logging.SetDefaultLevel(logging.LevelDebug)
	}

	logger.Info("Starting SheCare server...")

	// Connect to PostgreSQL
	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	// Run migrations
	logger.Info("Running database migrations...")
	migrator, err := database.NewMigrator(cfg.Database.DSN(), "migrations")
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return fmt.Errorf("running migrations: %w", err)
	}
	_ = migrator.Close()
	logger.Info("Migrations completed")

	// Connect to Redis
	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Redis.Addr(),
	})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisDB.Close() }()
	logger.Info("Connected to Redis")

	// Initialize services
	dbAdapter := services.NewPoolAdapter(db.Pool)
	redisAdapter := services.NewRedisAdapter(redisDB.Client)

	userService := services.NewUserService(dbAdapter)
	authService := services.NewAuthService(dbAdapter, redisAdapter, userService)
	emailService := services.NewEmailService(&cfg.Email, dbAdapter)
	cycleService := services.NewCycleService(dbAdapter)
	journalService := services.NewJournalService(dbAdapter)
	riskCheckService := services.NewRiskCheckService(dbAdapter)
	recommendationService := services.NewRecommendationService(cycleService, journalService, riskCheckService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisDB)
	authHandler := handlers.NewAuthHandler(userService, authService, emailService, cfg.Server.Secure)
	profileHandler := handlers.NewProfileHandler(userService, authService)
	cycleHandler := handlers.NewCycleHandler(cycleService)
	journalHandler := handlers.NewJournalHandler(journalService)
	riskCheckHandler := handlers.NewRiskCheckHandler(riskCheckService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	dashboardHandler := handlers.NewDashboardHandler(cycleService, journalService, riskCheckService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	csrfMiddleware := middleware.NewCSRFMiddleware(cfg.Server.Secure)
	securityHeaders := middleware.NewSecurityHeaders(cfg.Server.Secure)
	cacheControl := middleware.NewCacheControl()
	compress := middleware.NewCompress()
	requestLogger := middleware.NewRequestLogger(logger)
	cors := middleware.NewCORS(resolveAllowedOrigins(logger, os.LookupEnv))

	authLimiter := middleware.NewAuthRateLimiter(redisDB.Client)
	riskCheckLimiter := middleware.NewRiskCheckRateLimiter(redisDB.Client)

	requireAuth := authMiddleware.RequireAuth

	// Set up router
	mux := http.NewServeMux()

	// Health endpoints (no auth, no rate limit)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)

	// CSRF token endpoint
	mux.Handle("GET /api/csrf", http.HandlerFunc(csrfMiddleware.GetToken))

	// Auth endpoints
	mux.Handle("POST /api/auth/register", authLimiter.Middleware(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", authLimiter.Middleware(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/auth/logout", http.HandlerFunc(authHandler.Logout))
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/auth/password", requireAuth(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/forgot-password", authLimiter.Middleware(http.HandlerFunc(authHandler.ForgotPassword)))
	mux.Handle("POST /api/auth/reset-password", authLimiter.Middleware(http.HandlerFunc(authHandler.ResetPassword)))

	// Profile endpoints
	mux.Handle("GET /api/profile", requireAuth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /api/profile", requireAuth(http.HandlerFunc(profileHandler.Update)))
	mux.Handle("DELETE /api/profile", requireAuth(http.HandlerFunc(profileHandler.Delete)))

	// Dashboard
	mux.Handle("GET /api/dashboard", requireAuth(http.HandlerFunc(dashboardHandler.Summary)))

	// Cycle tracking endpoints
	mux.Handle("POST /api/cycles", requireAuth(http.HandlerFunc(cycleHandler.Create)))
	mux.Handle("GET /api/cycles", requireAuth(http.HandlerFunc(cycleHandler.List)))
	mux.Handle("DELETE /api/cycles/{id}", requireAuth(http.HandlerFunc(cycleHandler.Delete)))

	// Mood journal endpoints
	mux.Handle("POST /api/journal", requireAuth(http.HandlerFunc(journalHandler.Create)))
	mux.Handle("GET /api/journal", requireAuth(http.HandlerFunc(journalHandler.List)))
	mux.Handle("DELETE /api/journal/{id}", requireAuth(http.HandlerFunc(journalHandler.Delete)))

	// PCOS risk check endpoints
	mux.Handle("POST /api/risk-checks", requireAuth(riskCheckLimiter.Middleware(http.HandlerFunc(riskCheckHandler.Submit))))
	mux.Handle("GET /api/risk-checks", requireAuth(http.HandlerFunc(riskCheckHandler.List)))
	mux.Handle("DELETE /api/risk-checks/{id}", requireAuth(http.HandlerFunc(riskCheckHandler.Delete)))

	// Recommendation endpoint
	mux.Handle("GET /api/recommendations", requireAuth(http.HandlerFunc(recommendationHandler.List)))

	// Build middleware chain (order matters: outermost first)
	var handler http.Handler = mux
	handler = authMiddleware.Authenticate(handler)
	handler = csrfMiddleware.Protect(handler)
	handler = cacheControl.Apply(handler)
	handler = compress.Apply(handler)
	handler = cors.Apply(handler)
	handler = securityHeaders.Apply(handler)
	handler = requestLogger.Apply(handler)

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}

func resolveAllowedOrigins(logger *logging.Logger, lookupEnv func(string) (string, bool)) []string {
	origins := []string{"http://localhost:3000"}
	if v, ok := lookupEnv("ALLOWED_ORIGINS"); ok && v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		logger.Info("Using allowed origins from env", map[string]interface{}{"origins": origins})
	}
	return origins
}
