package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bdhub/shoe-api/docs"
	"github.com/bdhub/shoe-api/internal/api/handler"
	"github.com/bdhub/shoe-api/internal/api/middleware"
	"github.com/bdhub/shoe-api/internal/core/ports"
	"github.com/bdhub/shoe-api/internal/core/service"
)

// Dependencies are the adapters the router wires into the services.
type Dependencies struct {
	Users    ports.UserRepository
	Products ports.ProductRepository
	Carts    ports.CartRepository
	// Cache is optional; suggestions go straight to storage when nil.
	Cache  ports.SuggestionCache
	Tokens ports.TokenService
	Logger zerolog.Logger

	// Probes are checked by /health/ready.
	Probes      map[string]handler.Probe
	CORSOrigins []string

	// Registerer and Gatherer back the HTTP metrics. A fresh registry is
	// used when both are nil.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	log := deps.Logger

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	if deps.Registerer == nil && deps.Gatherer == nil {
		reg := prometheus.NewRegistry()
		deps.Registerer, deps.Gatherer = reg, reg
	}
	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "bdhub",
		Registerer: deps.Registerer,
	}))

	// --- Dependencies ---
	authority := service.NewRoleAuthority(deps.Users, log)
	userService := service.NewUserService(deps.Users, authority, log)
	productService := service.NewProductService(deps.Products, deps.Cache, log)
	cartService := service.NewCartService(deps.Carts, log)

	tokenHandler := handler.NewTokenHandler(deps.Tokens)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)

	identity := middleware.Identity(deps.Tokens, log)
	adminOnly := middleware.AdminOnly(deps.Tokens, authority, log)

	// --- Probes and tooling (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Probes)

	e.GET("/", healthHandler.Banner)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Tokens ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- Products ---
	e.GET("/product", productHandler.List)
	e.GET("/product/:id", productHandler.Get)
	e.POST("/product", productHandler.Create, adminOnly...)
	e.PATCH("/product/:id", productHandler.Update, adminOnly...)
	e.DELETE("/product/:id", productHandler.Delete, adminOnly...)
	e.GET("/products/search", productHandler.Search)
	e.GET("/products/suggestions", productHandler.Suggestions)

	// --- Users ---
	e.POST("/user", userHandler.Register)
	e.GET("/user/admin/:email", userHandler.AdminStatus, identity)
	e.GET("/users", userHandler.List)
	e.DELETE("/users/:id", userHandler.Delete, adminOnly...)
	e.PATCH("/users/admin/:id", userHandler.Promote, adminOnly...)

	// --- Carts ---
	carts := e.Group("/carts", identity)
	carts.POST("", cartHandler.Add)
	carts.GET("", cartHandler.List)
	carts.DELETE("/:id", cartHandler.Remove)

	return e
}

