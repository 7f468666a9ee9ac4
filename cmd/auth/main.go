package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/app"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/config"
	"github.com/dkachur-dev/weather-dashboard/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	appLogger := logger.New("auth", cfg.LogFile)

	application := app.New(*cfg, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panic(err)
	}
}
