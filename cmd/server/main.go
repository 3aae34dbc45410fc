/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the NutriBucks rewards engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags and optional TOML config
  2. Initialize SQLite store
  3. Load content overlay (challenges/achievements) if configured
  4. Create API handler, seed first-launch state
  5. Start challenge rotation scheduler
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port     HTTP server port (default: 8080)
  -db       SQLite database path (default: rewards.db)
            Use ":memory:" for an in-memory database
  -config   TOML config file path (default: config.toml, optional)
  -content  YAML content overlay path (overrides config file)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop the challenge scheduler
  2. Stop accepting new connections
  3. Wait for active requests to complete (30s timeout)
  4. Close database connection
  5. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/rewards.db"

  # Run with an in-memory database and seasonal content
  ./server -db=":memory:" -content="./spring.yaml"

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nutribucks/rewards-engine/api"
	"github.com/nutribucks/rewards-engine/catalog"
	"github.com/nutribucks/rewards-engine/engine"
	"github.com/nutribucks/rewards-engine/factory"
	"github.com/nutribucks/rewards-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 0, "HTTP server port (0 = from config)")
	dbPath := flag.String("db", "", "SQLite database path")
	configPath := flag.String("config", "config.toml", "TOML config file path")
	contentPath := flag.String("content", "", "YAML content overlay path")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *contentPath != "" {
		cfg.Content.File = *contentPath
	}

	// Initialize store
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Build catalogs, merging the content overlay if configured
	challenges := engine.DefaultChallenges()
	achievements := engine.DefaultAchievements()
	if cfg.Content.File != "" {
		content, err := factory.LoadContent(cfg.Content.File)
		if err != nil {
			log.Fatalf("Failed to load content overlay: %v", err)
		}
		challenges = factory.MergeChallenges(challenges, content.Challenges)
		achievements = factory.MergeAchievements(achievements, content.Achievements)
		log.Printf("Loaded content overlay: %d challenges, %d achievements",
			len(content.Challenges), len(content.Achievements))
	}

	// Initialize handler and first-launch state
	handler := api.NewHandler(store, catalog.New(), challenges, achievements)
	if err := handler.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed state: %v", err)
	}

	// Background challenge rotation
	scheduler := api.NewChallengeScheduler(handler)
	scheduler.Enabled = cfg.Scheduler.Enabled
	if cfg.Scheduler.CheckIntervalMinutes > 0 {
		scheduler.CheckInterval = time.Duration(cfg.Scheduler.CheckIntervalMinutes) * time.Minute
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🥦 Server starting on http://localhost:%d", cfg.Server.Port)
		log.Printf("📊 API available at http://localhost:%d/api", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
