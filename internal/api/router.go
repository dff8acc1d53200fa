package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eadmin-africa/portal-api/docs"
	"github.com/eadmin-africa/portal-api/internal/api/handler"
	"github.com/eadmin-africa/portal-api/internal/api/middleware"
	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/service"
	"github.com/eadmin-africa/portal-api/internal/infrastructure/config"
	mongodb "github.com/eadmin-africa/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/eadmin-africa/portal-api/internal/infrastructure/db/redis"
	"github.com/eadmin-africa/portal-api/internal/infrastructure/genai"
	healthhandlers "github.com/eadmin-africa/portal-api/internal/infrastructure/http/handlers"
	"github.com/eadmin-africa/portal-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the delivery dispatcher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("eadmin"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	campaignRepo := mongodb.NewCampaignRepository(db)
	storeAdmin := mongodb.NewStoreAdmin(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, 24*time.Hour, log)
	directoryService := service.NewDirectoryService(userRepo, log)
	ledgerService := service.NewLedgerService(requestRepo, userRepo, log)
	adService := service.NewAdRotationService(campaignRepo, log)
	snapshotService := service.NewSnapshotService(userRepo, requestRepo, campaignRepo, storeAdmin, log)

	genaiClient := genai.NewClient(genai.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
	})
	newsCache := redisdb.NewNewsCache(rdb, cfg.Assistant.NewsCacheTTL)
	assistantService := service.NewAssistantService(genaiClient, newsCache, log)

	dispatcher := queue.NewDispatcher(cfg.ImpressionWorkers, adService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(directoryService, authService)
	requestHandler := handler.NewRequestHandler(ledgerService, directoryService)
	campaignHandler := handler.NewCampaignHandler(adService, dispatcher)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)

	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes ---
	health := healthhandlers.NewHealth(db, rdb)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Public ad rotation & assistant ---
	e.GET("/v1/ads", campaignHandler.List)
	e.GET("/v1/ads/pick", campaignHandler.Pick)
	e.POST("/v1/ads/:id/impressions", campaignHandler.RecordImpression)
	e.POST("/v1/ads/:id/clicks", campaignHandler.RecordClick)
	e.POST("/v1/assistant/chat", assistantHandler.Chat)
	e.GET("/v1/news/:topic", assistantHandler.News)

	// --- Requests (role-scoped) ---
	requests := e.Group("/v1/requests", authRequired)
	requests.POST("", requestHandler.Submit, middleware.RBAC(domain.RoleClient))
	requests.GET("", requestHandler.List)
	requests.GET("/:id", requestHandler.Get)
	requests.PATCH("/:id/status", requestHandler.AdvanceStatus, middleware.Admins())

	// --- Directory administration ---
	users := e.Group("/v1/users", authRequired)
	users.GET("", userHandler.List, middleware.Admins())
	users.POST("/:id/approve", userHandler.Approve, middleware.RBAC(domain.RoleAdminSuper, domain.RoleAdminBusiness))
	users.POST("/:id/toggle", userHandler.Toggle, middleware.RBAC(domain.RoleAdminSuper))
	users.PATCH("/:id/status", userHandler.SetStatus, middleware.RBAC(domain.RoleAdminSuper))
	users.PATCH("/:id/password", userHandler.ChangePassword)
	users.DELETE("/:id", userHandler.Delete, middleware.RBAC(domain.RoleAdminSuper))

	// --- Agent portfolio ---
	agents := e.Group("/v1/agents/me", authRequired, middleware.RBAC(domain.RoleAgent))
	agents.GET("/clients", userHandler.ListMyClients)
	agents.POST("/clients", userHandler.EnrollClient)

	// --- Partner campaigns ---
	e.POST("/v1/ads/campaigns", campaignHandler.Create,
		authRequired, middleware.RBAC(domain.RolePartner, domain.RoleAdminSuper))

	// --- Store administration ---
	admin := e.Group("/v1/admin/snapshot", authRequired, middleware.RBAC(domain.RoleAdminSuper))
	admin.POST("/export", snapshotHandler.Export)
	admin.POST("/import", snapshotHandler.Import)
	admin.POST("/reset", snapshotHandler.Reset)

	return e, dispatcher
}
