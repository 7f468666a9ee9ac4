package decorators

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dkachur-dev/weather-dashboard/internal/weather/models"
)

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.NormalizedWeather, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedService serves normalized forecasts from cache when present and
// falls back to the wrapped service, populating the cache on the way
// out. Cache failures never fail the request.
type CachedService struct {
	inner  weatherGetterService
	cache  cacheClient[models.NormalizedWeather]
	logger zerolog.Logger
}

func NewCachedService(
	inner weatherGetterService,
	cache cacheClient[models.NormalizedWeather],
	logger zerolog.Logger,
) *CachedService {
	return &CachedService{inner: inner, cache: cache, logger: logger}
}

func (s *CachedService) GetByCity(ctx context.Context, city string) (models.NormalizedWeather, error) {
	key := fmt.Sprintf("weather:%s", city)

	weather, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info().
			Str("city", city).
			Str("key", key).
			Msg("cache hit")
		return weather, nil
	}
	s.logger.Info().
		Str("city", city).
		Str("key", key).
		Msg("cache miss")

	weather, err = s.inner.GetByCity(ctx, city)
	if err != nil {
		return models.NormalizedWeather{}, err
	}

	if err := s.cache.Set(ctx, key, weather); err != nil {
		s.logger.Error().
			Str("city", city).
			Str("key", key).
			Err(err).
			Msg("cache set failed")
	}

	return weather, nil
}
