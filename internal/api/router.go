package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/terravista/realty-api/internal/api/handler"
	"github.com/terravista/realty-api/internal/api/middleware"
	"github.com/terravista/realty-api/internal/core/domain"
	"github.com/terravista/realty-api/internal/core/service"
	mongodb "github.com/terravista/realty-api/internal/infrastructure/db/mongo"
	redisdb "github.com/terravista/realty-api/internal/infrastructure/db/redis"
	"github.com/terravista/realty-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The notifier receives new inquiries for async delivery; pass nil to disable.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, notifier service.InquiryNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("realty"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	assetRepo := mongodb.NewAssetRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	inquiryRepo := mongodb.NewInquiryRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	revoker := redisdb.NewSessionRevoker(rdb)

	authService := service.NewAuthService(accountRepo, revoker, cfg.Session.Secret, cfg.Session.TTL, log)
	mediaService := service.NewMediaService(assetRepo, service.MediaLimits{
		MaxImageBytes: cfg.Upload.MaxImageBytes,
		MaxVideoBytes: cfg.Upload.MaxVideoBytes,
	}, log)
	propertyService := service.NewPropertyService(propertyRepo, log)
	inquiryService := service.NewInquiryService(inquiryRepo, notifier, log)
	reviewService := service.NewReviewService(reviewRepo, log)

	authHandler := handler.NewAuthHandler(authService, handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: !cfg.IsDevelopment(),
	})
	mediaHandler := handler.NewMediaHandler(mediaService, cfg.Upload.MaxImageBytes, cfg.Upload.MaxVideoBytes)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	sessionGuard := middleware.Session(authService, cfg.Session.CookieName)
	pageGuard := middleware.PageGuard(authService, cfg.Session.CookieName)

	// --- Public API ---
	api := e.Group("/api")

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/session", authHandler.Check)

	api.GET("/properties", propertyHandler.List)
	api.GET("/properties/:id", propertyHandler.Get)
	api.GET("/properties/slug/:slug", propertyHandler.GetBySlug)

	api.POST("/inquiries", inquiryHandler.Create)

	api.GET("/reviews", reviewHandler.ListPublic)
	api.POST("/reviews", reviewHandler.Create)

	api.GET("/images/:id", mediaHandler.GetImage)
	api.GET("/videos/:id", mediaHandler.GetVideo)

	// Media mutations share the public /api paths but require a session.
	api.POST("/images/upload", mediaHandler.UploadImage, sessionGuard)
	api.POST("/videos/upload", mediaHandler.UploadVideo, sessionGuard)
	api.DELETE("/images/:id", mediaHandler.DeleteImage, sessionGuard)
	api.DELETE("/videos/:id", mediaHandler.DeleteVideo, sessionGuard)

	// --- Back-office API (session required) ---
	admin := api.Group("/admin", sessionGuard)

	admin.POST("/accounts", authHandler.Register, middleware.RequireRole(domain.RoleAdmin))

	admin.POST("/properties", propertyHandler.Create)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)

	admin.GET("/inquiries", inquiryHandler.List)
	admin.PATCH("/inquiries/:id/status", inquiryHandler.UpdateStatus)
	admin.DELETE("/inquiries/:id", inquiryHandler.Delete)

	admin.GET("/reviews", reviewHandler.ListAll)
	admin.POST("/reviews/:id/approve", reviewHandler.Approve)
	admin.DELETE("/reviews/:id", reviewHandler.Delete)

	// --- Back-office pages (redirect to login when unauthenticated) ---
	pages := e.Group("/admin", pageGuard)
	pages.Static("/", "web/admin")

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
