package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/erp/mockerp/internal/application/identity"
	materialapp "github.com/erp/mockerp/internal/application/material"
	procurementapp "github.com/erp/mockerp/internal/application/procurement"
	"github.com/erp/mockerp/internal/infrastructure/auth"
	"github.com/erp/mockerp/internal/infrastructure/config"
	"github.com/erp/mockerp/internal/infrastructure/logger"
	"github.com/erp/mockerp/internal/infrastructure/persistence/memory"
	"github.com/erp/mockerp/internal/interfaces/http/handler"
	"github.com/erp/mockerp/internal/interfaces/http/middleware"
	"github.com/erp/mockerp/internal/interfaces/http/router"
)

const appVersion = "0.1.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting mock ERP backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize in-memory stores
	materialRepo := memory.NewMaterialRepository()
	documentStore := memory.NewDocumentStore()

	if cfg.Simulator.SeedMaterials {
		if err := memory.SeedMaterials(context.Background(), materialRepo); err != nil {
			log.Fatal("Failed to seed material master data", zap.Error(err))
		}
		log.Info("Material master seeded")
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.Auth)
	authService := identityapp.NewAuthService(jwtService, cfg.Auth, log)
	materialService := materialapp.NewService(materialRepo, cfg.Simulator, log)
	procurementService := procurementapp.NewService(documentStore, materialService, cfg.Simulator, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	materialHandler := handler.NewMaterialHandler(materialService)
	procurementHandler := handler.NewProcurementHandler(procurementService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, appVersion, procurementService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:            jwtService,
		RequireAuthentication: cfg.Auth.RequireAuthentication,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/system/ping",
		},
	}))

	r.Register(authHandler).
		Register(materialHandler).
		Register(procurementHandler).
		Register(systemHandler)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
