package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/adverx/adverx-backend/internal/api/handlers"
	"github.com/adverx/adverx-backend/internal/api/middleware"
	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/cron"
	"github.com/adverx/adverx-backend/internal/email"
	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/notification"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/seed"
	"github.com/adverx/adverx-backend/internal/service"
	"github.com/adverx/adverx-backend/internal/socket"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Initialize Storage Backend
	// ============================================
	store, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	if cleanup != nil {
		defer cleanup()
	}
	log.Printf("[Storage] Using %s backend", cfg.StorageDriver)

	// ============================================
	// Initialize Repositories
	// ============================================
	repos := repository.NewRepositories(store, seed.DefaultProjects())

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)

	// ============================================
	// Initialize Notification Feed
	// ============================================
	notifier := notification.NewService()
	notifier.SetBroadcaster(broadcaster)

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.SMTPHost != "" {
		emailSvc = email.NewService(&email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
			UseTLS:   cfg.SMTPUseTLS,
		})
		log.Println("[Email] Service initialized")
	} else {
		log.Println("[Email] Not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Initialize All Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config:      cfg,
		Repos:       repos,
		Notifier:    notifier,
		EmailSvc:    emailSvc,
		Broadcaster: broadcaster,
	})

	// WebSocket handler authenticates with the same session tokens
	wsHandler := socket.NewHandler(hub, func(ctx context.Context, token string) error {
		_, err := services.Auth.Validate(ctx, token)
		return err
	})

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services, notifier)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(services)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL, "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now(),
			"storage":    cfg.StorageDriver,
			"ws_clients": hub.ClientCount(),
			"email":      emailStatus(emailSvc),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/projects", h.Project.List)
		api.GET("/projects/:id", h.Project.Get)
		api.POST("/contact", h.Message.Submit)
		api.POST("/requests", h.Request.Submit)
		api.POST("/pricing/estimate", h.Pricing.Estimate)

		// WebSocket route (token-authenticated itself)
		api.GET("/ws", wsHandler.HandleWebSocket)

		// ============================================
		// Protected routes (require auth middleware)
		// ============================================
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(services.Auth))
		{
			protected.POST("/auth/logout", h.Auth.Logout)
			protected.GET("/auth/me", h.Auth.Me)

			// Portfolio management
			protected.POST("/projects", h.Project.Create)
			protected.PUT("/projects/:id", h.Project.Update)
			protected.DELETE("/projects/:id", h.Project.Delete)

			// Admin dashboard
			admin := protected.Group("/admin")
			{
				admin.GET("/messages", h.Message.List)
				admin.PATCH("/messages/:id/status", h.Message.UpdateStatus)
				admin.DELETE("/messages/:id", h.Message.Delete)

				admin.GET("/requests", h.Request.List)
				admin.PATCH("/requests/:id/status", h.Request.UpdateStatus)
				admin.DELETE("/requests/:id", h.Request.Delete)

				admin.GET("/notifications", h.Notification.List)
				admin.DELETE("/notifications/:id", h.Notification.Dismiss)
			}
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// openStore picks the storage backend from configuration.
func openStore(cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.StorageDriver {
	case "memory":
		return kv.NewMemoryStore(), nil, nil

	case "file":
		store, err := kv.NewFileStore(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case "redis":
		store, err := kv.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := kv.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func emailStatus(emailSvc *email.Service) string {
	if emailSvc != nil {
		return "configured"
	}
	return "disabled"
}
