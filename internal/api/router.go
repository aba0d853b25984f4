package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storefront/storefront-api/internal/api/handler"
	"github.com/storefront/storefront-api/internal/api/middleware"
	"github.com/storefront/storefront-api/internal/core/domain"
	"github.com/storefront/storefront-api/internal/core/ports"
)

// Deps carries everything the router needs. MongoDB is nil when the static
// user directory is configured.
type Deps struct {
	Sessions  ports.SessionService
	Products  ports.ProductService
	Carts     ports.CartService
	Redis     *redis.Client
	Mongo     *mongo.Database
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.JWTSecret, deps.TokenTTL)
	productHandler := handler.NewProductHandler(deps.Products)
	cartHandler := handler.NewCartHandler(deps.Carts, deps.Products)
	authRequired := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Catalog routes: reads open, mutations gated by the role table ---
	products := e.Group("/v1/products")
	products.GET("", productHandler.List)
	products.GET("/categories", productHandler.Categories)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authRequired, middleware.RequireAction(domain.ActionCreate))
	products.PUT("/:id", productHandler.Update, authRequired, middleware.RequireAction(domain.ActionUpdate))
	products.DELETE("/:id", productHandler.Delete, authRequired, middleware.RequireAction(domain.ActionDelete))

	// --- Cart routes: any signed-in user (admin subsumes the check) ---
	cart := e.Group("/v1/cart", authRequired, middleware.RequireRole(domain.RoleUser))
	cart.GET("", cartHandler.Get)
	cart.POST("/items", cartHandler.AddItem)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	cart.POST("/checkout", cartHandler.Checkout)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
