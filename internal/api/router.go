package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/velura/storefront-api/internal/api/handler"
	"github.com/velura/storefront-api/internal/api/middleware"
	"github.com/velura/storefront-api/internal/core/ports"
	"github.com/velura/storefront-api/internal/core/service"
	"github.com/velura/storefront-api/internal/infrastructure/config"
	mongorepo "github.com/velura/storefront-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/velura/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter wires repositories, services, and handlers into a configured
// Echo instance. provider may be nil when payments are unconfigured; events
// receives the order lifecycle facts for the audit trail.
func NewRouter(
	mongoClient *mongodriver.Client,
	db *mongodriver.Database,
	rdb *goredis.Client,
	provider ports.PaymentProvider,
	events ports.OrderEventSink,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// Repositories
	users := mongorepo.NewUserRepository(db)
	carts := mongorepo.NewCartRepository(db)
	orders := mongorepo.NewOrderRepository(db)
	products := mongorepo.NewProductRepository(db)
	models := mongorepo.NewModelRepository(db)
	bookings := mongorepo.NewBookingRepository(db)
	partnerships := mongorepo.NewPartnershipRepository(db)

	// Services
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(users, tokens, log)
	cartService := service.NewCartService(carts, redisinfra.NewCartLock(rdb), log)
	orderService := service.NewOrderService(orders, carts, provider, events, log)
	catalogService := service.NewCatalogService(products, models)
	bookingService := service.NewBookingService(bookings, models, log)
	partnershipService := service.NewPartnershipService(partnerships)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	partnershipHandler := handler.NewPartnershipHandler(partnershipService)
	healthHandler := handler.NewHealthHandler(mongoClient, rdb)

	requireAuth := middleware.Auth(authService)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, requireAuth)

	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.GET("/models", catalogHandler.ListModels)
	api.GET("/models/:id", catalogHandler.GetModel)
	api.POST("/partnerships", partnershipHandler.Create)

	cart := api.Group("/cart", requireAuth)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.Add)
	cart.DELETE("/items/:product_id", cartHandler.Remove)

	api.POST("/orders", orderHandler.Create, requireAuth)
	api.GET("/orders", orderHandler.List, requireAuth)
	api.POST("/paypal/create-order", orderHandler.CreateIntent, requireAuth)
	api.POST("/paypal/capture-order/:order_id", orderHandler.Capture, requireAuth)

	api.POST("/bookings", bookingHandler.Create, requireAuth)
	api.GET("/bookings", bookingHandler.List, requireAuth)

	return e
}
