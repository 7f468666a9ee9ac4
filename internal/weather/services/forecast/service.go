// Package forecast resolves a city to coordinates, fetches the raw
// Open-Meteo forecast, and normalizes it into the client schema.
package forecast

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dkachur-dev/weather-dashboard/internal/weather/models"
)

type geocoder interface {
	Search(ctx context.Context, city string) (Place, error)
}

type forecaster interface {
	Fetch(ctx context.Context, lat, lon float64) (Payload, error)
}

type Service struct {
	geo    geocoder
	fc     forecaster
	logger zerolog.Logger
}

func NewService(geo geocoder, fc forecaster, logger zerolog.Logger) *Service {
	return &Service{geo: geo, fc: fc, logger: logger}
}

// GetByCity runs the two-stage lookup: geocode first, forecast second.
// A city with no geocoding results fails with ErrLocationNotFound
// before any forecast call is made.
func (s *Service) GetByCity(ctx context.Context, city string) (models.NormalizedWeather, error) {
	place, err := s.geo.Search(ctx, city)
	if err != nil {
		return models.NormalizedWeather{}, err
	}

	s.logger.Info().
		Str("city", city).
		Str("resolved", place.Name).
		Float64("lat", place.Latitude).
		Float64("lon", place.Longitude).
		Msg("geocoded city")

	payload, err := s.fc.Fetch(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return models.NormalizedWeather{}, err
	}

	normalized, err := Normalize(place, payload)
	if err != nil {
		return models.NormalizedWeather{}, fmt.Errorf("normalize forecast: %w", err)
	}
	return normalized, nil
}
