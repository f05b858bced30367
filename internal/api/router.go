package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pressroom/publishing-api/internal/api/handler"
	"github.com/pressroom/publishing-api/internal/api/middleware"
	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/service"
	"github.com/pressroom/publishing-api/internal/events"
	"github.com/pressroom/publishing-api/internal/infrastructure/config"
	mongodb "github.com/pressroom/publishing-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The hub is constructed once per process by the caller and shared between
// the comment pipeline and the stream endpoint.
func NewRouter(db *mongo.Database, rdb *redis.Client, hub *events.Hub, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("publishing"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokenService := service.NewTokenService(userRepo,
		cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	articleService := service.NewArticleService(articleRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo, hub, log)

	authHandler := handler.NewAuthHandler(authService, tokenService)
	userHandler := handler.NewUserHandler(authService, userService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)
	streamHandler := handler.NewStreamHandler(hub, cfg.AllowedOrigins, log)

	authMiddleware := middleware.Auth(tokenService)
	limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window, log)

	// --- Auth routes (rate limited) ---
	auth := e.Group("/auth", limiter.Middleware())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// --- User routes ---
	users := e.Group("/v1/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, middleware.RBAC(domain.RoleAdmin))
	users.PUT("/:id/role", userHandler.ChangeRole, middleware.RBAC(domain.RoleAdmin))

	// --- Article routes (reads are public) ---
	e.GET("/v1/articles", articleHandler.List)
	e.GET("/v1/articles/:id", articleHandler.Get)
	e.POST("/v1/articles", articleHandler.Create, authMiddleware,
		middleware.RBAC(domain.RoleWriter, domain.RoleEditor, domain.RoleAdmin))
	e.PUT("/v1/articles/:id", articleHandler.Update, authMiddleware)
	e.DELETE("/v1/articles/:id", articleHandler.Delete, authMiddleware,
		middleware.RBAC(domain.RoleAdmin))

	// --- Comment routes ---
	e.GET("/v1/comments/:articleId", commentHandler.ListByArticle)
	e.POST("/v1/comments", commentHandler.Create, authMiddleware)

	// --- Live event stream ---
	e.GET("/v1/stream", streamHandler.Serve)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
