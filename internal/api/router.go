package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/alumnoextra/alumnos-api/internal/api/handler"
	"github.com/alumnoextra/alumnos-api/internal/api/middleware"
	"github.com/alumnoextra/alumnos-api/internal/core/service"
	"github.com/alumnoextra/alumnos-api/internal/infrastructure/config"
	"github.com/alumnoextra/alumnos-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- Dependencies ---
	authService := service.NewAuthService(cfg.Auth.User, cfg.Auth.Password, cfg.JWTSecret, time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	alumnoRepo := postgres.NewAlumnoRepository(db)
	alumnoService := service.NewAlumnoService(alumnoRepo, log)
	alumnoHandler := handler.NewAlumnoHandler(alumnoService, cfg.IsProduction())

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)

	// --- Alumno routes (every one behind the token gate) ---
	alumnos := e.Group("/api/alumnos", middleware.Auth(authService))
	alumnos.GET("", alumnoHandler.List)
	alumnos.GET("/:id", alumnoHandler.Get)
	alumnos.POST("", alumnoHandler.Create)
	alumnos.PUT("/:id", alumnoHandler.Update)
	alumnos.DELETE("/:id", alumnoHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
