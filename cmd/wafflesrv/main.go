// Command wafflesrv serves validate/solve/swaps over HTTP plus a live
// diagnostics stream, backed by an optional Postgres run-telemetry
// store and optional SQLite/Redis caches. Every backing store is
// optional: a deployment with none configured still serves every
// route in demo mode, just without persistence or memoisation.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/crossplay/waffle/internal/api"
	"github.com/crossplay/waffle/internal/auth"
	"github.com/crossplay/waffle/internal/cache"
	"github.com/crossplay/waffle/internal/dictstore"
	"github.com/crossplay/waffle/internal/middleware"
	"github.com/crossplay/waffle/internal/models"
	"github.com/crossplay/waffle/internal/realtime"
	"github.com/crossplay/waffle/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := getEnv("PORT", "8080")
	dictPath := getEnv("DICTIONARY_PATH", "dictionary.bin")
	postgresURL := getEnv("DATABASE_URL", "")
	redisURL := getEnv("REDIS_URL", "")
	sqlitePath := getEnv("VALIDATION_CACHE_PATH", "validation_cache.db")
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	adminUsername := getEnv("ADMIN_USERNAME", "admin")
	adminPassword := getEnv("ADMIN_PASSWORD", "change-me")
	streamEnabled := getEnv("STREAM_ENABLED", "true") == "true"

	dict, err := dictstore.Load(dictPath)
	if err != nil {
		log.Fatalf("failed to load dictionary: %v", err)
	}
	log.Printf("dictionary loaded from %s (checksum %s)", dictPath, dict.Checksum())

	authService := auth.NewAuthService(jwtSecret)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	adminHash, err := authService.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	admin := &models.AdminUser{ID: "admin", Username: adminUsername, PasswordHash: adminHash, CreatedAt: time.Now()}

	var st *store.Store
	if postgresURL != "" {
		st, err = store.New(postgresURL)
		if err != nil {
			log.Printf("warning: postgres connection failed: %v", err)
			log.Println("running without run telemetry...")
			st = nil
		} else if err := st.InitSchema(); err != nil {
			log.Fatalf("failed to init run telemetry schema: %v", err)
		} else {
			log.Println("run telemetry connected")
		}
	}

	validationCache, err := cache.NewValidationCache(sqlitePath)
	if err != nil {
		log.Printf("warning: validation cache unavailable: %v", err)
		validationCache = nil
	}

	var redisClient *redis.Client
	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Printf("warning: invalid redis url: %v", err)
		} else {
			redisClient = redis.NewClient(opt)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				log.Printf("warning: redis connection failed: %v", err)
				redisClient = nil
			} else {
				log.Println("pattern cache connected")
			}
		}
	}
	patternCache := cache.NewPatternCache(redisClient)

	var hub *realtime.Hub
	if streamEnabled {
		hub = realtime.NewHub()
		go hub.Run()
	}

	handlers := api.NewHandlers(dict, st, validationCache, patternCache, hub, authService, admin)

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.PerformanceMonitor())

	router.GET("/healthz", handlers.Healthz)
	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.GetMetrics())
	})

	v1 := router.Group("/v1")
	{
		v1.POST("/validate", handlers.Validate)
		v1.POST("/solve", handlers.Solve)
		v1.POST("/swaps", handlers.Swaps)
		v1.GET("/validate/stream", handlers.ValidateStream)

		v1.POST("/admin/login", handlers.Login)

		adminGroup := v1.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAuth())
		{
			adminGroup.POST("/dictionary/reload", handlers.ReloadDictionary)
			adminGroup.POST("/cache/clear", handlers.ClearCache)
		}
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	log.Printf("wafflesrv listening on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if st != nil {
		st.Close()
	}
	if validationCache != nil {
		validationCache.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
