package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/tawonga-banda/pharmacy-pos/docs"
	"github.com/tawonga-banda/pharmacy-pos/internal/api/handlers"
	"github.com/tawonga-banda/pharmacy-pos/internal/api/middleware"
	"github.com/tawonga-banda/pharmacy-pos/internal/config"
	"github.com/tawonga-banda/pharmacy-pos/internal/health"
	"github.com/tawonga-banda/pharmacy-pos/internal/metrics"
	"github.com/tawonga-banda/pharmacy-pos/internal/receipts"
	repository "github.com/tawonga-banda/pharmacy-pos/internal/repositories"
	service "github.com/tawonga-banda/pharmacy-pos/internal/services"
	"github.com/tawonga-banda/pharmacy-pos/internal/telemetry"
	"github.com/tawonga-banda/pharmacy-pos/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	if cfg.Tracing.Enabled {
		shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
		if err != nil {
			slog.Error("❌ Error initializing tracing", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				slog.Error("⚠️ Error shutting down tracer", slog.String("error", err.Error()))
			}
		}()
	}

	// Fixed data stores from configuration
	catalogRepo := repository.NewCatalogRepo(cfg.Catalog)
	userRepo := repository.NewUserRepo(cfg.Users)
	sessionRepo := repository.NewSessionRepo()

	// Receipt sinks
	sinks := []receipts.Sink{receipts.LogSink{}}

	if cfg.Redis.Enabled {
		redisClient, err := receipts.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		sinks = append(sinks, receipts.NewRedisSink(redisClient, cfg.Redis.ReceiptList))
	}

	if cfg.SendGrid.Enabled {
		emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		sinks = append(sinks, receipts.NewEmailSink(emailService, cfg.SendGrid.ReceiptTo))
	}

	publisher := receipts.NewFanout(sinks...)

	// Services and handlers
	jwtKey := []byte(cfg.Security.JWTKey)
	userService := service.NewUserService(userRepo, sessionRepo, jwtKey, cfg.Security.TokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	catalogService := service.NewCatalogService(catalogRepo)
	medicationHandler := handlers.NewMedicationHandler(catalogService)
	cartService := service.NewCartService(catalogRepo, sessionRepo)
	cartHandler := handlers.NewCartHandler(cartService)
	prescriptionService := service.NewPrescriptionService(sessionRepo)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	orderService := service.NewOrderService(sessionRepo, publisher, cfg.Insurance.CoveragePercent)
	orderHandler := handlers.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("stores initialized",
		slog.String("env", cfg.Env),
		slog.Int("users", len(cfg.Users)),
		slog.Int("catalog", len(cfg.Catalog)),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/auth/login", userHandler.Login())
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(userHandler.Logout()))
	routerMux.HandleFunc("GET /api/v1/medications", authMiddleware.Authenticate(medicationHandler.ListMedications()))
	routerMux.HandleFunc("GET /api/v1/medications/categories", authMiddleware.Authenticate(medicationHandler.ListCategories()))
	routerMux.HandleFunc("GET /api/v1/medications/{id}", authMiddleware.Authenticate(medicationHandler.GetMedication()))
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("POST /api/v1/cart/items/{id}/increment", authMiddleware.Authenticate(cartHandler.Increment()))
	routerMux.HandleFunc("POST /api/v1/cart/items/{id}/decrement", authMiddleware.Authenticate(cartHandler.Decrement()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", authMiddleware.Authenticate(cartHandler.Remove()))
	routerMux.HandleFunc("POST /api/v1/prescriptions", authMiddleware.Authenticate(authMiddleware.RequirePermission("prescribe", prescriptionHandler.Create())))
	routerMux.HandleFunc("GET /api/v1/prescriptions/active", authMiddleware.Authenticate(prescriptionHandler.GetActive()))
	routerMux.HandleFunc("POST /api/v1/checkout", authMiddleware.Authenticate(authMiddleware.RequirePermission("checkout", orderHandler.Checkout())))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)

	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(handler, "pharmacy-pos")
	}

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
