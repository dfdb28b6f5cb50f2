package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mitrasafety/storefront/internal/config"
	"mitrasafety/storefront/internal/container"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration using viper
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize container with all dependencies
	app, err := container.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Run the requested command
	runErr := app.Run(ctx, os.Args[1:])
	app.Close()
	if runErr != nil {
		log.Fatalf("Command failed: %v", runErr)
	}
}
