package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/inkwell/blog-platform/docs" // swagger docs
	"github.com/inkwell/blog-platform/internal/api/handler"
	"github.com/inkwell/blog-platform/internal/api/middleware"
	"github.com/inkwell/blog-platform/internal/core/service"
	"github.com/inkwell/blog-platform/internal/infrastructure/config"
	"github.com/inkwell/blog-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/inkwell/blog-platform/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-platform/web"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *sql.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	denylist := redisdb.NewDenylist(rdb)

	tokenTTL := time.Duration(cfg.TokenTTLSecs) * time.Second
	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, tokenTTL, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authenticate := middleware.Authenticate(authService)
	identify := middleware.Identify(authService)

	// --- API routes ---
	v1 := e.Group("/v1")

	v1.POST("/user/signup", authHandler.Signup)
	v1.POST("/user/login", authHandler.Login)
	v1.GET("/user", authHandler.Me, authenticate)
	v1.PUT("/user", authHandler.UpdatePassword, authenticate)
	v1.DELETE("/user/logout", authHandler.Logout)

	v1.GET("/blogposts", postHandler.List, identify)
	v1.GET("/blogposts/:id", postHandler.Get, identify)
	v1.POST("/blogposts", postHandler.Create, authenticate)
	v1.PUT("/blogposts/:id", postHandler.Update, authenticate)
	v1.DELETE("/blogposts/:id", postHandler.Delete, authenticate)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Embedded SPA ---
	e.StaticFS("/", echo.MustSubFS(web.Assets, "static"))

	return e
}
