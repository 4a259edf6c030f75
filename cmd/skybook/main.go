package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/skybook/skybook-web/config"
	"github.com/skybook/skybook-web/internal/booking"
	"github.com/skybook/skybook-web/internal/guard"
	"github.com/skybook/skybook-web/internal/handlers"
	"github.com/skybook/skybook-web/internal/middleware"
	"github.com/skybook/skybook-web/internal/navigation"
	"github.com/skybook/skybook-web/internal/services"
	"github.com/skybook/skybook-web/internal/session"
	"github.com/skybook/skybook-web/internal/toast"
	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
	"github.com/skybook/skybook-web/pkg/profiling"
	"github.com/skybook/skybook-web/pkg/skyapi"
	"github.com/skybook/skybook-web/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	displayAppname(cfg.Server.AppName)
	logger.Info("Starting SkyBook",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.String("api", cfg.API.BaseURL),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(shutdownCtx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiler, err := profiling.InitProfiler(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Error("Failed to start profiler", zap.Error(err))
	} else {
		defer stopProfiler()
	}

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics(ctx)

	tokens, err := newTokenStore(cfg.Session)
	if err != nil {
		logger.Fatal("Failed to open token store", zap.Error(err))
	}

	// One API client, one session and one notification channel per process
	client := skyapi.New(cfg.API.BaseURL, tokens)
	store := session.New(client.Auth, tokens, navigation.NavigatorFunc(func(path string) {
		logger.Debug("Navigation outside a page request", zap.String("path", path))
	}))
	store.Start(ctx)

	toasts := toast.New(toast.RealClock(), time.Duration(cfg.Toast.DefaultDurationMS)*time.Millisecond)
	drafts := booking.NewRegistry(booking.Deps{
		Flights:  client.Flights,
		Bookings: client.Bookings,
		Payments: client.Payments,
		Notifier: toasts,
	}, time.Duration(cfg.Booking.DraftTTLMinutes)*time.Minute)

	// Initialize services
	authService := services.NewAuthService(store, toasts)
	searchService := services.NewSearchService(client.Flights, toasts)
	bookingsService := services.NewBookingsService(client.Bookings, toasts)
	adminService := services.NewAdminService(client.Flights, client.Bookings, client.Payments, client.Users, toasts)
	contactService := services.NewContactService()

	// Initialize handlers
	pages := handlers.NewPages(toasts)
	h := pageHandlers{
		public:   handlers.NewPublicHandler(contactService, pages),
		auth:     handlers.NewAuthHandler(authService, pages),
		search:   handlers.NewSearchHandler(searchService, pages),
		bookings: handlers.NewBookingsHandler(bookingsService, pages),
		booking:  handlers.NewBookingHandler(drafts, client.Payments, pages),
		admin:    handlers.NewAdminHandler(adminService, pages),
		toasts:   handlers.NewToastHandler(toasts),
	}
	healthHandler := handlers.NewHealthHandler(func() bool {
		select {
		case <-store.Ready():
			return true
		default:
			return false
		}
	})

	userGuard := guard.New(store, navigation.UserOnly.AllowedRoles()...)
	defer userGuard.Close()
	adminGuard := guard.New(store, navigation.AdminOnly.AllowedRoles()...)
	defer adminGuard.Close()

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName)) // OpenTelemetry tracing
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:5173")
	}
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	pageRateLimiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	router.Use(pageRateLimiter.Middleware())
	router.Use(middleware.NavigationMiddleware())
	router.Use(session.Provide(store))

	// Operational endpoints
	api := router.Group("/api")
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	formLimit := middleware.BodySizeLimitMiddleware(middleware.DefaultMaxBodySize)
	registerPublicRoutes(router, h, formLimit)
	registerUserRoutes(router, h, userGuard, formLimit)
	registerAdminRoutes(router, h, adminGuard, formLimit)

	// The page host is single-user and binds to loopback by default
	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second, // backend calls may be slow on cold start
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	stop()

	// Let a logout that is still talking to the backend finish
	store.Wait()

	logger.Info("Server exited")
}

func newTokenStore(cfg config.SessionConfig) (session.TokenStore, error) {
	if cfg.TokenStore == "memory" {
		return session.NewMemoryTokenStore(""), nil
	}
	store, err := session.NewFileTokenStore(cfg.TokenFile)
	if err != nil {
		return nil, err
	}
	logger.Info("Persisting session token", zap.String("path", store.Path()))
	return store, nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
