package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phone-extractor/internal/config"
	"phone-extractor/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := container.Config

	// Handlers
	phoneHandler := handler.NewPhoneHandler(
		container.PhoneExtractor,
		container.Logger,
		cfg.GetMaxFileSize(),
	)
	formHandler := handler.NewFormHandler(
		container.Logger,
		cfg.GetMaxFileSize(),
	)

	// Router
	router := handler.NewRouter(phoneHandler, formHandler, handler.RouterConfig{
		Logger:         container.Logger,
		Metrics:        container.Metrics,
		AllowedOrigins: cfg.GetAllowedOrigins(),
	})

	// start server
	server := &http.Server{
		Addr:              ":" + cfg.GetServerPort(),
		Handler:           router,
		ReadTimeout:       cfg.GetReadTimeout(),
		ReadHeaderTimeout: cfg.GetReadTimeout(),
		WriteTimeout:      cfg.GetWriteTimeout(),
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "max_file_size", cfg.GetMaxFileSize())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
}
