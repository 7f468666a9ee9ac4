// Package app wires the auth service together: user directory, token
// codec, HTTP handlers, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/config"
	authHandler "github.com/dkachur-dev/weather-dashboard/internal/auth/handlers/auth"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/repository/memory"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/services/token"
	"github.com/dkachur-dev/weather-dashboard/internal/auth/services/users"
)

type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{cfg: cfg, l: logger}
}

// Start runs the auth HTTP server until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	repo := memory.NewUserRepository()
	userService := users.NewService(repo)
	tokenService := token.NewService(a.cfg.JWTSecret, time.Duration(a.cfg.TokenTTLHours)*time.Hour)

	if a.cfg.Seed.Email != "" {
		if _, err := userService.Register(ctx, a.cfg.Seed.Email, a.cfg.Seed.Password, a.cfg.Seed.Name); err != nil {
			a.l.Error().Err(err).Str("email", a.cfg.Seed.Email).Msg("failed to seed user")
		} else {
			a.l.Info().Str("email", a.cfg.Seed.Email).Msg("seeded user")
		}
	}

	handler := authHandler.NewHandler(userService, tokenService)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "auth"})
	})
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	router.GET("/auth/verify", handler.Verify)

	srv := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	go func() {
		a.l.Info().Str("address", a.cfg.ServerAddress()).Msg("starting auth HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.l.Error().Err(err).Msg("auth server error")
		}
	}()

	<-ctx.Done()
	a.l.Info().Msg("shutdown signal received, stopping auth service")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(a.cfg.Server.ReadTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.l.Error().Err(err).Msg("forced shutdown due to error")
		return err
	}
	a.l.Info().Msg("auth service exited gracefully")
	return nil
}
