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

	"github.com/joho/godotenv"
	"github.com/npapadam/openclaw-dashboard/internal/config"
	"github.com/npapadam/openclaw-dashboard/internal/database"
	"github.com/npapadam/openclaw-dashboard/internal/repositories"
	"github.com/npapadam/openclaw-dashboard/internal/server"
	"github.com/npapadam/openclaw-dashboard/internal/services"
)

func main() {
	ctx := context.Background()

	godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database connections
	postgresPool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create postgres pool: %v", err)
	}
	defer postgresPool.Close()

	if err := database.EnsureSchema(ctx, postgresPool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to create redis client: %v", err)
	}
	defer redisClient.Close()

	// Wire the store and gateway
	activityRepo := repositories.NewPostgresActivityRepository(postgresPool)
	snapshotRepo := repositories.NewPostgresSnapshotRepository(postgresPool)
	sessionRepo := repositories.NewRedisSessionRepository(redisClient)

	authService := services.NewAuthService(
		sessionRepo,
		cfg.DashboardPasswordHash,
		cfg.JWTSecret,
		cfg.SessionTTL,
	)

	gateway := server.New(activityRepo, snapshotRepo, authService, cfg.WebhookAPIKey)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: gateway.Router(),
	}

	// graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)
	}()

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped gracefully")
}
