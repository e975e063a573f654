package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/webproshub/marketplace-gateway/internal/api/handler"
	"github.com/webproshub/marketplace-gateway/internal/api/middleware"
	"github.com/webproshub/marketplace-gateway/internal/core/ports"
	"github.com/webproshub/marketplace-gateway/internal/core/service"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/config"
	mongodb "github.com/webproshub/marketplace-gateway/internal/infrastructure/db/mongo"
	"github.com/webproshub/marketplace-gateway/internal/infrastructure/signal"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every route passes through the navigation guard; the admin area adds the
// live-validation guard on top, and /api/admin answers with JSON 401s
// instead of redirects.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	sessions *service.SessionRegistry,
	profiles ports.ProfileCache,
	validator ports.TokenValidator,
	bus *signal.Bus,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Request metrics live in a per-router registry: registering into the
	// default registry would panic on the second NewRouter call in one
	// process. The package-level gateway metrics stay on the default
	// registry and are gathered alongside.
	promRegistry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "gateway",
		Registerer: promRegistry,
	}))
	e.Use(middleware.Guard(sessions, profiles, log))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	authService := service.NewAuthService(accountRepo, profiles, sessions, cfg.JWTSecret, 0)
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	adminUsersHandler := handler.NewAdminUsersHandler(accountRepo)
	adminGuard := middleware.AdminGuard(validator, sessions, profiles, log)

	// --- Credential lifecycle ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/admin-login", authHandler.AdminLogin)

	// --- Public storefront sections ---
	e.GET("/", handler.Section("home"))
	e.GET("/businesses", handler.Section("businesses"))
	e.GET("/services", handler.Section("services"))
	e.GET("/auth/login", handler.Section("login"))
	e.GET("/auth/register", handler.Section("register"))
	e.GET("/admin-login", handler.Section("admin-login"), middleware.AdminLoginGuard())

	// --- Authenticated sections (navigation guard enforces access) ---
	e.GET("/user", handler.Section("user-dashboard"))
	e.GET("/bookings", handler.Section("bookings"))
	e.GET("/business", handler.Section("business-dashboard"))

	// --- Admin area: navigation guard + live token validation ---
	e.GET("/admin", handler.Section("admin-dashboard"), adminGuard)
	e.GET("/admin/users", handler.Section("admin-users"), adminGuard)
	e.GET("/admin/admins", handler.Section("admin-admins"), adminGuard)

	// --- Admin data API ---
	adminAPI := e.Group("/api/admin", middleware.AdminAPIAuth(validator, bus, log))
	adminAPI.GET("/users", adminUsersHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, promRegistry},
	}))

	return e
}
