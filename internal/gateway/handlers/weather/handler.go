// Package weather implements the gateway's composed weather endpoint:
// verify the caller's token against the auth service, then fetch and
// relay the normalized forecast.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkachur-dev/weather-dashboard/internal/gateway/clients"
	"github.com/dkachur-dev/weather-dashboard/internal/gateway/metrics"
)

type tokenVerifier interface {
	Verify(ctx context.Context, authHeader string) error
}

type weatherFetcher interface {
	Fetch(ctx context.Context, city string) (int, []byte, error)
}

type Handler struct {
	auth    tokenVerifier
	weather weatherFetcher
	logger  zerolog.Logger
	m       *metrics.Metrics
}

func NewHandler(auth tokenVerifier, weather weatherFetcher, logger zerolog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{auth: auth, weather: weather, logger: logger, m: m}
}

// HandleGetWeather handles GET /api/weather?city={city}. Verification
// strictly precedes the weather fetch; a missing token never reaches
// any downstream service.
func (h *Handler) HandleGetWeather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodGet {
		h.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		h.logger.Warn().
			Str("path", r.URL.Path).
			Str("client_ip", r.RemoteAddr).
			Msg("missing authorization header")
		h.writeError(w, r, http.StatusUnauthorized, "authorization token is required")
		return
	}

	if err := h.auth.Verify(r.Context(), authHeader); err != nil {
		if ue, ok := clients.AsUnavailable(err); ok {
			h.logger.Error().Err(err).Str("service", ue.Service).Msg("auth service unreachable")
			h.writeError(w, r, http.StatusServiceUnavailable, "auth service unavailable")
			return
		}
		if errors.Is(err, clients.ErrUnauthenticated) {
			h.writeError(w, r, http.StatusUnauthorized, "invalid token")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		h.writeError(w, r, http.StatusBadRequest, "city query parameter is required")
		return
	}

	status, body, err := h.weather.Fetch(r.Context(), city)
	if err != nil {
		if ue, ok := clients.AsUnavailable(err); ok {
			h.logger.Error().Err(err).Str("service", ue.Service).Msg("weather service unreachable")
			h.writeError(w, r, http.StatusServiceUnavailable, "weather service unavailable")
			return
		}
		h.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Error().Err(err).Msg("error writing weather response body")
		return
	}

	h.m.WeatherProcessingTime.
		WithLabelValues(r.Method, r.URL.Path, h.m.GetStatusClass(status)).
		Observe(time.Since(start).Seconds())

	h.logger.Info().
		Int("status", status).
		Str("city", city).
		Str("client_ip", r.RemoteAddr).
		Dur("duration_ms", time.Since(start)).
		Msg("served weather request")
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusBadRequest {
		h.m.WeatherFailures.
			WithLabelValues(r.Method, r.URL.Path, h.m.GetStatusClass(status)).
			Inc()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.logger.Error().Err(err).Msg("error writing error response")
	}
}
