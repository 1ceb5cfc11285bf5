package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/stockroom/inventory-api/internal/api/docs"
	"github.com/stockroom/inventory-api/internal/api/handler"
	"github.com/stockroom/inventory-api/internal/api/middleware"
	"github.com/stockroom/inventory-api/internal/core/ports"
	"github.com/stockroom/inventory-api/internal/core/service"
)

// Dependencies is everything the HTTP layer needs. Mongo and Redis are only
// used by the readiness check; Redis may be nil.
type Dependencies struct {
	Log           zerolog.Logger
	Tokens        ports.TokenService
	Policy        *service.Policy
	Users         ports.AccountService
	Registrations ports.AccountService
	Catalog       ports.CatalogService
	Orders        ports.OrderService
	Mongo         *mongo.Database
	Redis         *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("inventory"))

	auth := middleware.Auth(d.Tokens)
	admin := middleware.Authorize(d.Policy, service.ActionManageAccounts)
	catalogWrite := middleware.Authorize(d.Policy, service.ActionWriteCatalog)
	profile := middleware.Authorize(d.Policy, service.ActionReadProfile)

	// --- Accounts (users universe) ---
	users := handler.NewAccountHandler(d.Users)
	e.POST("/register", users.Register)
	e.POST("/login", users.Login)
	e.GET("/user-category", users.Category, auth, profile)

	g := e.Group("/users", auth, admin)
	g.GET("", users.List)
	g.DELETE("/:id", users.Delete)
	g.PUT("/:id", users.SetRole)
	g.PUT("/:id/category", users.SetCategory)

	// --- Accounts (user_registrations universe) ---
	registrations := handler.NewAccountHandler(d.Registrations)
	e.POST("/user-registration", registrations.Register)
	e.POST("/user-login", registrations.Login)

	// --- Catalog ---
	products := handler.NewProductHandler(d.Catalog, d.Policy)
	e.GET("/products", products.List)
	e.GET("/products/:id", products.Get)
	e.GET("/products-by-category", products.ListByCategory)
	e.GET("/my-products", products.Mine, auth, profile)
	e.POST("/products", products.Create, auth, catalogWrite)
	e.PUT("/products/:id", products.Update, auth, catalogWrite)
	e.DELETE("/products/:id", products.Delete, auth, catalogWrite)

	// --- Orders ---
	orders := handler.NewOrderHandler(d.Orders)
	e.POST("/orders", orders.Place)
	e.GET("/orders", orders.List)
	e.GET("/orders/:id", orders.Get)

	// --- Health checks, metrics and docs (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(d.Mongo, d.Redis, d.Log).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
