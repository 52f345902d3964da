package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/cosmetics-storefront/docs"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/cache"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/checkout"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/config"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/health"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/ratelimit"
	repository "github.com/aaravmahajanofficial/cosmetics-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/cosmetics-storefront/internal/services"
	"github.com/aaravmahajanofficial/cosmetics-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/cosmetics-storefront/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

// main godoc
//
//	@title						Cosmetics Storefront API
//	@version					1.0
//	@description				Catalog, cart, checkout and order tracking for a cosmetics shop.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing must be installed before the database driver is instrumented
	shutdownTracer, err := telemetry.InitTracer(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if err := repos.InitSchema(ctx); err != nil {
		slog.Error("❌ Error creating the schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	var limiterStore ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.RateLimit.Backend == "redis" {
		limiterStore = ratelimit.NewRedisStore(redisClient)
	}
	limiter := ratelimit.New(limiterStore, ratelimit.WithSweepThreshold(cfg.RateLimit.SweepThreshold))

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid API key not set, order emails will only be logged")
		emailService = sendgrid.NewLogEmailService(logger)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	jwtExpiry := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	cartRepo := repository.NewCartRepo(redisClient)
	builder := checkout.NewBuilder(repos.Product, cfg.Checkout.MaxEntries, cfg.Checkout.MaxProductIDs)

	userService := service.NewUserService(repos.User, redisCache, jwtKey, jwtExpiry)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product, redisCache)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(cartRepo, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService)
	notificationService := service.NewNotificationService(repos.Notification, emailService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	checkoutService := service.NewCheckoutService(builder, repos.Order, cartRepo, notificationService, cfg.Checkout.Currency)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error creating the health handler", slog.String("error", err.Error()))
		os.Exit(1)
	}

	clientIPs, err := middleware.NewClientIPResolver(cfg.RateLimit.TrustedProxies)
	if err != nil {
		slog.Error("❌ Invalid trusted proxy configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	checkoutLimit := middleware.RateLimit(limiter, clientIPs, "checkout", cfg.RateLimit.CheckoutLimit, cfg.RateLimit.CheckoutWindow)
	loginLimit := middleware.RateLimit(limiter, clientIPs, "login", cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()

	// users
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.Handle("POST /api/v1/users/login", loginLimit(userHandler.Login()))
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	// catalog
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/admin/products", authMiddleware.Admin(productHandler.AdminListProducts()))
	routerMux.HandleFunc("POST /api/v1/admin/products", authMiddleware.Admin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PUT /api/v1/admin/products/{id}", authMiddleware.Admin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/admin/products/{id}", authMiddleware.Admin(productHandler.DeleteProduct()))

	// cart
	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("PUT /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.SetItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{key}", authMiddleware.Authenticate(cartHandler.RemoveItem()))

	// checkout
	routerMux.Handle("POST /api/v1/checkout", checkoutLimit(checkoutHandler.Checkout()))
	routerMux.Handle("POST /api/v1/cart/checkout", checkoutLimit(authMiddleware.Authenticate(checkoutHandler.CheckoutCart())))

	// orders
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{number}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/admin/orders", authMiddleware.Admin(orderHandler.AdminListOrders()))
	routerMux.HandleFunc("PATCH /api/v1/admin/orders/{id}/status", authMiddleware.Admin(orderHandler.UpdateOrderStatus()))

	// notifications
	routerMux.HandleFunc("GET /api/v1/admin/notifications", authMiddleware.Admin(notificationHandler.ListNotifications()))

	// operations
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
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

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
