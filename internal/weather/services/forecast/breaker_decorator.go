package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

func newBreaker(name string, cfg BreakerConfig) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		// An unknown city is an answer, not an upstream fault; it must
		// not trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrLocationNotFound)
		},
	})
}

// BreakerGeocoder guards the geocoding leg with a circuit breaker so a
// flapping upstream stops being hammered.
type BreakerGeocoder struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped geocoder
}

func NewBreakerGeocoder(name string, cfg BreakerConfig, wrapped geocoder) *BreakerGeocoder {
	return &BreakerGeocoder{name: name, cb: newBreaker(name, cfg), wrapped: wrapped}
}

func (b *BreakerGeocoder) Search(ctx context.Context, city string) (Place, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Search(ctx, city)
	})
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return Place{}, ErrLocationNotFound
		}
		return Place{}, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	place, ok := result.(Place)
	if !ok {
		return Place{}, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return place, nil
}

// BreakerForecaster guards the forecast leg.
type BreakerForecaster struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped forecaster
}

func NewBreakerForecaster(name string, cfg BreakerConfig, wrapped forecaster) *BreakerForecaster {
	return &BreakerForecaster{name: name, cb: newBreaker(name, cfg), wrapped: wrapped}
}

func (b *BreakerForecaster) Fetch(ctx context.Context, lat, lon float64) (Payload, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, lat, lon)
	})
	if err != nil {
		return Payload{}, fmt.Errorf("%s unavailable: %w", b.name, err)
	}
	payload, ok := result.(Payload)
	if !ok {
		return Payload{}, fmt.Errorf("%s returned unexpected result", b.name)
	}
	return payload, nil
}
