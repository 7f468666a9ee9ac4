// Package app wires the gateway together: pass-through auth routes,
// the composed weather endpoint, CORS, metrics, and graceful shutdown.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkachur-dev/weather-dashboard/internal/gateway/clients"
	"github.com/dkachur-dev/weather-dashboard/internal/gateway/config"
	authHandler "github.com/dkachur-dev/weather-dashboard/internal/gateway/handlers/auth"
	weatherHandler "github.com/dkachur-dev/weather-dashboard/internal/gateway/handlers/weather"
	"github.com/dkachur-dev/weather-dashboard/internal/gateway/metrics"
	"github.com/dkachur-dev/weather-dashboard/internal/gateway/middleware"
)

type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{cfg: cfg, l: logger}
}

// Start runs the gateway HTTP server until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	m := metrics.NewMetrics("gateway")

	httpClient := &http.Client{}

	authClient := clients.NewAuthClient(httpClient, a.cfg.AuthServiceURL, a.l)
	weatherClient := clients.NewWeatherClient(httpClient, a.cfg.WeatherServiceURL, a.l)

	authProxy := authHandler.NewHandler(httpClient, a.cfg.AuthServiceURL, a.l)
	weatherH := weatherHandler.NewHandler(authClient, weatherClient, a.l, m)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": "gateway"})
	})
	mux.Handle("/metrics", m.Handler())

	mux.Handle("/api/auth/register", m.InstrumentHandler(http.HandlerFunc(authProxy.HandleRegister)))
	mux.Handle("/api/auth/login", m.InstrumentHandler(http.HandlerFunc(authProxy.HandleLogin)))
	mux.Handle("/api/auth/verify", m.InstrumentHandler(http.HandlerFunc(authProxy.HandleVerify)))
	mux.Handle("/api/weather", m.InstrumentHandler(http.HandlerFunc(weatherH.HandleGetWeather)))

	srv := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     middleware.CORS(mux),
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	go func() {
		a.l.Info().
			Str("address", a.cfg.ServerAddress()).
			Str("auth_url", a.cfg.AuthServiceURL).
			Str("weather_url", a.cfg.WeatherServiceURL).
			Msg("starting gateway HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.l.Error().Err(err).Msg("gateway server error")
		}
	}()

	<-ctx.Done()
	a.l.Info().Msg("shutdown signal received, stopping gateway")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(a.cfg.Server.ReadTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.l.Error().Err(err).Msg("forced shutdown due to error")
		return err
	}
	a.l.Info().Msg("gateway exited gracefully")
	return nil
}
