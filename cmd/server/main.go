package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photopro/internal/assets"
	"photopro/internal/config"
	"photopro/internal/configdoc"
	"photopro/internal/kvstore"
	"photopro/internal/logger"
	"photopro/internal/middleware"
	"photopro/internal/schedule"
	"photopro/internal/shotlist"
	"photopro/internal/validation"
	"photopro/internal/worker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize logging
	logger.Init(config.AppConfig.Environment, config.AppConfig.LogFile)
	defer logger.Sync()

	// Open the persistence backend
	store, err := kvstore.Open()
	if err != nil {
		zap.S().Fatalf("failed to open storage backend: %v", err)
	}
	zap.S().Infof("Using %s storage backend", config.AppConfig.StorageBackend)

	// Resolve the asset storage strategy (remote when a blob token is
	// configured, ephemeral in-memory fallback otherwise)
	assetStore := assets.New()

	// Background pool for best-effort asset cleanup
	pool := worker.NewWorkerPool(2)

	// Register custom binding rules
	validation.Register()

	// Initialize services
	configService := configdoc.NewService(store, assetStore, pool)
	shotService := shotlist.NewService(store, assetStore, pool)
	scheduleService := schedule.NewService(store)

	// Initialize handlers
	configHandler := configdoc.NewHandler(configService)
	shotHandler := shotlist.NewHandler(shotService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	assetHandler := assets.NewHandler(assetStore)

	// Initialize Gin router
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.ErrorHandler())

	// cors setting
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}

	if config.AppConfig.Environment == "development" {
		// Allow all origins in development
		corsConfig.AllowAllOrigins = true
	} else {
		// Restrict origins in production
		corsConfig.AllowOrigins = []string{config.AppConfig.FrontendAddress}
	}
	router.Use(cors.New(corsConfig))

	// Configuration document routes
	router.GET("/config", configHandler.Show)
	router.PUT("/config", configHandler.Update)
	router.POST("/config/reset", configHandler.Reset)
	router.POST("/config/avatar", configHandler.UploadAvatar)
	router.POST("/config/group-shots", configHandler.AddGroupShot)
	router.DELETE("/config/group-shots/:id", configHandler.RemoveGroupShot)
	router.GET("/packages", configHandler.ListPackages)

	// Shot list routes
	router.GET("/shots", shotHandler.List)
	router.POST("/shots", shotHandler.Create)
	router.POST("/shots/reset", shotHandler.Reset)
	router.PUT("/shots/:id", shotHandler.Update)
	router.PATCH("/shots/:id/completed", shotHandler.ToggleCompleted)
	router.DELETE("/shots/:id", shotHandler.Delete)
	router.POST("/shots/:id/image", shotHandler.UploadImage)

	// Schedule routes
	router.GET("/schedule", scheduleHandler.List)
	router.POST("/schedule", scheduleHandler.Create)
	router.POST("/schedule/reset", scheduleHandler.Reset)
	router.PUT("/schedule/:id", scheduleHandler.Update)
	router.PATCH("/schedule/:id/completed", scheduleHandler.ToggleCompleted)
	router.DELETE("/schedule/:id", scheduleHandler.Delete)
	router.PUT("/schedule/:id/draft", scheduleHandler.SaveDraft)
	router.GET("/schedule/:id/draft", scheduleHandler.ShowDraft)
	router.DELETE("/schedule/:id/draft", scheduleHandler.DiscardDraft)

	// Asset routes
	router.GET("/assets", assetHandler.ListBlobs)
	router.GET("/assets/local/:handle", assetHandler.ServeLocal)

	// Server configuration
	serverPort := config.AppConfig.ServerPort
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", serverPort),
		Handler: router.Handler(),
	}

	// Start server
	go func() {
		zap.S().Infof("Server listening on port %s", serverPort)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.S().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.S().Errorf("Server shutdown error: %v", err)
	}

	// Drain pending asset cleanup before exiting
	pool.Shutdown()

	zap.S().Info("Server shutdown complete")
}
