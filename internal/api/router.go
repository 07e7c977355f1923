package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/casabierta/realty-api/docs"
	"github.com/casabierta/realty-api/internal/api/handler"
	"github.com/casabierta/realty-api/internal/api/middleware"
	"github.com/casabierta/realty-api/internal/core/domain"
	"github.com/casabierta/realty-api/internal/core/ports"
	"github.com/casabierta/realty-api/internal/core/service"
	"github.com/casabierta/realty-api/internal/infrastructure/config"
	mongodb "github.com/casabierta/realty-api/internal/infrastructure/db/mongo"
	redisdb "github.com/casabierta/realty-api/internal/infrastructure/db/redis"
)

// Rate-limit policies are fixed at configuration time, not runtime-tunable.
var (
	contactPolicy = ports.RateLimitPolicy{Name: "contact", Limit: 5, Window: 6000 * time.Second}
	publicPolicy  = ports.RateLimitPolicy{Name: "public", Limit: 50, Window: 10 * time.Minute}
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every dependency is constructed here, once, and passed by reference to the
// handlers: no lazily-initialized global client handles.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("realty"))

	// --- Dependencies ---
	revocation := redisdb.NewRevocationList(rdb, cfg.Session.TTL)
	sessions := service.NewSessionService(cfg.JWTSecret, cfg.Session.TTL, revocation)

	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	leadRepo := mongodb.NewLeadRepository(db)

	authService := service.NewAuthService(userRepo, sessions, log)
	accessService := service.NewAccessService(propertyRepo, log)
	propertyService := service.NewPropertyService(propertyRepo, log)
	leadService := service.NewLeadService(leadRepo, log)

	cookie := middleware.SessionCookie{
		Name:   cfg.Session.Cookie,
		Secure: cfg.Production(),
		TTL:    sessions.TTL(),
	}

	authHandler := handler.NewAuthHandler(authService, sessions, cookie)
	accessHandler := handler.NewAccessHandler(accessService)
	propertyHandler := handler.NewPropertyHandler(propertyService, accessService)
	leadHandler := handler.NewLeadHandler(leadService)

	requireSession := middleware.Session(sessions, cookie)
	optionalSession := middleware.OptionalSession(sessions, cookie)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	contactLimit := middleware.RateLimit(redisdb.NewSlidingWindowLimiter(rdb, contactPolicy), contactPolicy.Name)
	publicLimit := middleware.RateLimit(redisdb.NewSlidingWindowLimiter(rdb, publicPolicy), publicPolicy.Name)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireSession)
	e.GET("/auth/me", authHandler.Me)

	// --- Public property browsing ---
	public := e.Group("/v1", publicLimit)
	public.GET("/properties", propertyHandler.List, optionalSession)
	public.GET("/properties/:id", propertyHandler.Get, optionalSession)
	public.GET("/access/check", accessHandler.Check, optionalSession)

	// --- Lead capture (tight policy) ---
	e.POST("/v1/leads", leadHandler.Capture, contactLimit)

	// --- Admin dashboard ---
	admin := e.Group("/v1/admin", requireSession, adminOnly)
	admin.POST("/properties", propertyHandler.Create)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)
	admin.PUT("/users/:uid/role", authHandler.ChangeRole)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
