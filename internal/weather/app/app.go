// Package app wires the weather service together: Open-Meteo clients
// behind circuit breakers, the normalizing forecast service, the Redis
// cache decorator, and the HTTP surface.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/dkachur-dev/weather-dashboard/internal/weather/config"
	weatherHandler "github.com/dkachur-dev/weather-dashboard/internal/weather/handlers/weather"
	"github.com/dkachur-dev/weather-dashboard/internal/weather/models"
	"github.com/dkachur-dev/weather-dashboard/internal/weather/services/cache"
	"github.com/dkachur-dev/weather-dashboard/internal/weather/services/forecast"
	"github.com/dkachur-dev/weather-dashboard/internal/weather/services/forecast/decorators"
	loggerT "github.com/dkachur-dev/weather-dashboard/internal/weather/services/logger"
	metricsSvc "github.com/dkachur-dev/weather-dashboard/internal/weather/services/metrics"
	fLogger "github.com/dkachur-dev/weather-dashboard/pkg/logger"
)

type App struct {
	cfg config.Config
	l   zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *App {
	return &App{cfg: cfg, l: logger}
}

// Start initializes services and runs the HTTP server until ctx is
// cancelled.
func (a *App) Start(ctx context.Context) error {
	fileLogger, err := fLogger.NewFileLogger(a.cfg.LogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger")
		fileLogger = zap.NewNop()
	}
	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		}
	}(fileLogger)

	// Outbound HTTP traffic is logged through the file logger.
	httpLogClient := &http.Client{Transport: loggerT.NewRoundTripper(fileLogger)}

	breakerCfg := forecast.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}

	geocoder := forecast.NewBreakerGeocoder("geocoding", breakerCfg,
		forecast.NewGeocodingClient(a.cfg.GeocodingAPIURL, httpLogClient, a.l))
	forecaster := forecast.NewBreakerForecaster("forecast", breakerCfg,
		forecast.NewForecastClient(a.cfg.ForecastAPIURL, httpLogClient, a.l))

	rawService := forecast.NewService(geocoder, forecaster, a.l)

	redisClient := redis.NewClient(&redis.Options{
		Addr: a.cfg.Redis.Host + ":" + a.cfg.Redis.Port,
		DB:   a.cfg.Redis.DB,
	})
	weatherCache := cache.NewRedisClient[models.NormalizedWeather](
		redisClient, a.l, time.Duration(a.cfg.Redis.LiveTime)*time.Minute)

	weatherService := decorators.NewCachedService(rawService, weatherCache, a.l)

	m := metricsSvc.NewMetrics("weather")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(m.HTTPMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "weather"})
	})
	router.GET("/metrics", m.Handler())

	handler := weatherHandler.NewHandler(weatherService, m)
	router.GET("/weather", handler.GetWeather)

	srv := &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	go func() {
		a.l.Info().Str("address", a.cfg.ServerAddress()).Msg("starting weather HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.l.Error().Err(err).Msg("weather server error")
		}
	}()

	<-ctx.Done()
	a.l.Info().Msg("shutdown signal received, stopping weather service")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(a.cfg.Server.ReadTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.l.Error().Err(err).Msg("forced shutdown due to error")
		return err
	}
	a.l.Info().Msg("weather service exited gracefully")
	return nil
}
