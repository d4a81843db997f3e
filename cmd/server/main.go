/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Finance Calculators API server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (best-effort) and environment configuration
  2. Parse command-line flags
  3. Create API handler
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: PORT env var, then 8000)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

ENVIRONMENT:
  PORT                     Listen port
  DATABASE_URL / DATABASE_NAME
                           Optional; only reflected by GET /test

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
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

	"github.com/joho/godotenv"

	"github.com/warp/finance-calculators/api"
	"github.com/warp/finance-calculators/config"
)

func main() {
	// Load .env in development; deploy platforms inject env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	// Flags override env
	port := flag.Int("port", cfg.Port, "HTTP server port")
	flag.Parse()
	cfg.Port = *port

	// Initialize handler and router
	handler := api.NewHandler(cfg)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on http://localhost:%d", cfg.Port)
		log.Printf("📊 Calculators available at http://localhost:%d/api/calc", cfg.Port)
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
