package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tiendadmin/catalog-admin/docs"
	"github.com/tiendadmin/catalog-admin/internal/api/handler"
	"github.com/tiendadmin/catalog-admin/internal/api/metrics"
	"github.com/tiendadmin/catalog-admin/internal/api/middleware"
	"github.com/tiendadmin/catalog-admin/internal/core/ports"
)

// Services groups the application services exposed over HTTP.
type Services struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Categories ports.CategoryService
	Products   ports.ProductService
	Sales      ports.SaleService
}

// Options configures NewRouter.
type Options struct {
	Codec    ports.TokenCodec
	Services Services
	// Readiness checks reported by /health/ready, keyed by dependency name.
	Readiness      map[string]handler.DependencyCheck
	AllowedOrigins []string
	Logger         zerolog.Logger
	// Registry receives the HTTP and auth metrics. A fresh one is created when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "Idempotency-Key"},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "catalog_admin",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	gate := middleware.NewGate(opts.Codec, m)
	protected := gate.Middleware()

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(opts.Services.Auth, m)
	e.POST("/auth", authHandler.Login)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/verify-token", authHandler.VerifyToken, protected)

	// --- Catalog routes (bearer token required) ---
	users := handler.NewUserHandler(opts.Services.Users, opts.Logger)
	u := e.Group("/usuarios", protected)
	u.GET("", users.List)
	u.POST("", users.Create)
	u.GET("/:id", users.Get)
	u.PUT("/:id", users.Update)
	u.DELETE("/:id", users.Delete)

	catalog := handler.NewCatalogHandler(opts.Services.Categories, opts.Services.Products)
	cg := e.Group("/categorias", protected)
	cg.GET("", catalog.ListCategories)
	cg.POST("", catalog.CreateCategory)
	cg.DELETE("/:id", catalog.DeleteCategory)

	pg := e.Group("/productos", protected)
	pg.GET("", catalog.ListProducts)
	pg.POST("", catalog.CreateProduct)
	pg.GET("/:id", catalog.GetProduct)
	pg.PUT("/:id", catalog.UpdateProduct)
	pg.DELETE("/:id", catalog.DeleteProduct)

	sales := handler.NewSaleHandler(opts.Services.Sales, m)
	sg := e.Group("/ventas", protected)
	sg.GET("", sales.List)
	sg.POST("", sales.Create)
	sg.PUT("/:id/despacho", sales.SetDispatch)

	// --- Operational routes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(opts.Readiness).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
