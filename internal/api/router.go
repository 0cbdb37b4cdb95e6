package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/monsterwith/monstermedia/internal/api/handler"
	"github.com/monsterwith/monstermedia/internal/api/middleware"
	"github.com/monsterwith/monstermedia/internal/core/ports"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Log zerolog.Logger

	AuthService    ports.AuthService
	VipService     ports.VipService
	UserService    ports.UserService
	ThemeService   ports.ThemeService
	ContentService ports.ContentService

	Sessions ports.SessionStore
	Users    ports.UserRepository

	Postgres *sql.DB
	Mongo    *mongo.Database
	Redis    *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("monstermedia"))

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Postgres, deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.VipService)
	adminHandler := handler.NewAdminHandler(deps.UserService, deps.VipService, deps.ThemeService)
	contentHandler := handler.NewContentHandler(deps.ContentService, deps.ThemeService)

	session := middleware.Session(deps.Sessions, deps.Users)
	optionalSession := middleware.OptionalSession(deps.Sessions, deps.Users)

	api := e.Group("/api")

	// --- Auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, session)
	auth.GET("/me", authHandler.Me, session)
	auth.POST("/request-vip", authHandler.RequestVip, optionalSession)

	// --- Catalog (anonymous allowed; identity picked up when present) ---
	api.GET("/content/featured", contentHandler.Featured)
	api.GET("/content/type/:type", contentHandler.ByType)
	api.GET("/content/vip", contentHandler.ListVip, session, middleware.RequireVip())
	api.GET("/content/:id", contentHandler.ByID, optionalSession)
	api.GET("/search", contentHandler.Search)
	api.GET("/theme", contentHandler.Theme)

	// --- Favorites and downloads (authenticated) ---
	api.POST("/favorites", contentHandler.AddFavorite, session)
	api.DELETE("/favorites/:contentId", contentHandler.RemoveFavorite, session)
	api.GET("/favorites", contentHandler.ListFavorites, session)
	api.POST("/downloads", contentHandler.RecordDownload, session)
	api.GET("/downloads", contentHandler.ListDownloads, session)

	// --- Admin ---
	admin := api.Group("/admin", session, middleware.RequireAdmin())
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.GET("/vip-requests", adminHandler.ListVipRequests)
	admin.PATCH("/vip-requests/:id", adminHandler.DecideVipRequest)
	admin.POST("/theme", adminHandler.UpdateTheme)

	return e
}
