// Package main is the entry point for the LegalEase API server.
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

	"github.com/legalease-app/legalease-api/internal/config"
	"github.com/legalease-app/legalease-api/internal/database"
	"github.com/legalease-app/legalease-api/internal/router"
	"github.com/legalease-app/legalease-api/internal/services/simplify"
	"github.com/legalease-app/legalease-api/internal/session"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 LegalEase API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, gin_mode=%s", cfg.Port, cfg.GinMode)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Connect to Database
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Run migrations
	if err := db.RunMigrations("migrations"); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// Step 3: Session manager and processing providers
	sessions := session.NewManager()

	providers := simplify.Config{
		ChatEndpoint:   cfg.ChatAPIURL,
		ChatAPIKey:     cfg.ChatAPIKey,
		ChatModel:      cfg.ChatModel,
		HostedEndpoint: cfg.HostedAPIURL,
		HostedAPIKey:   cfg.HostedAPIKey,
	}

	if cfg.ChatAPIKey != "" {
		log.Println("✅ Chat provider configured with an operator key")
	} else {
		log.Println("⚠️  No operator chat key set (users must bring their own key for chat mode)")
	}
	if cfg.HostedAPIKey != "" {
		log.Println("✅ Hosted inference provider configured")
	} else {
		log.Println("⚠️  No hosted API key set (hosted mode disabled until HOSTED_API_KEY is provided)")
	}

	// Step 4: Setup HTTP Router
	r := router.Setup(db, sessions, providers, cfg.JWTSecret, cfg.MaxUploadBytes, cfg.DefaultRateLimit, cfg.AllowedOrigins)

	// Step 5: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // remote providers can take a while
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
