package weather_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkachur-dev/weather-dashboard/internal/gateway/clients"
	"github.com/dkachur-dev/weather-dashboard/internal/gateway/handlers/weather"
	"github.com/dkachur-dev/weather-dashboard/internal/gateway/metrics"
)

type fixture struct {
	handler     *weather.Handler
	authHits    *atomic.Int64
	weatherHits *atomic.Int64
	closers     []func()
}

func (f *fixture) close() {
	for _, c := range f.closers {
		c()
	}
}

// newFixture wires the handler against real httptest downstreams so the
// test observes exactly which services a request reaches.
func newFixture(t *testing.T, authStatus int, weatherStatus int, weatherBody string) *fixture {
	t.Helper()

	f := &fixture{authHits: &atomic.Int64{}, weatherHits: &atomic.Int64{}}

	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.authHits.Add(1)
		w.WriteHeader(authStatus)
	}))
	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.weatherHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(weatherStatus)
		_, _ = w.Write([]byte(weatherBody))
	}))
	f.closers = append(f.closers, authSrv.Close, weatherSrv.Close)

	logger := zerolog.Nop()
	authClient := clients.NewAuthClient(authSrv.Client(), authSrv.URL, logger)
	weatherClient := clients.NewWeatherClient(weatherSrv.Client(), weatherSrv.URL, logger)
	f.handler = weather.NewHandler(authClient, weatherClient, logger, metrics.NewMetrics("gateway_test"))
	return f
}

func doRequest(handler http.HandlerFunc, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleGetWeather_Success(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusOK, `{"location":{"name":"London"}}`)
	defer f.close()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather?city=London", "good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"location":{"name":"London"}}`, rec.Body.String())
	assert.Equal(t, int64(1), f.authHits.Load())
	assert.Equal(t, int64(1), f.weatherHits.Load())
}

func TestHandleGetWeather_NoTokenSkipsDownstream(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusOK, `{}`)
	defer f.close()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather?city=London", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authorization token is required"}`, rec.Body.String())
	assert.Equal(t, int64(0), f.authHits.Load())
	assert.Equal(t, int64(0), f.weatherHits.Load())
}

func TestHandleGetWeather_RejectedToken(t *testing.T) {
	f := newFixture(t, http.StatusUnauthorized, http.StatusOK, `{}`)
	defer f.close()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather?city=London", "expired-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, rec.Body.String())
	assert.Equal(t, int64(0), f.weatherHits.Load())
}

func TestHandleGetWeather_AuthServiceDown(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusOK, `{}`)
	f.close()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather?city=London", "good-token")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"auth service unavailable"}`, rec.Body.String())
}

func TestHandleGetWeather_WeatherServiceDown(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusOK, `{}`)
	defer f.close()
	// Take down only the weather leg; auth keeps answering.
	f.closers[1]()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather?city=London", "good-token")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"weather service unavailable"}`, rec.Body.String())
	assert.Equal(t, int64(1), f.authHits.Load())
}

func TestHandleGetWeather_MissingCity(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusOK, `{}`)
	defer f.close()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather", "good-token")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"city query parameter is required"}`, rec.Body.String())
	assert.Equal(t, int64(0), f.weatherHits.Load())
}

func TestHandleGetWeather_NotFoundPassthrough(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusNotFound, `{"error":"City not found"}`)
	defer f.close()

	rec := doRequest(f.handler.HandleGetWeather, "/api/weather?city=Nowhereville", "good-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"City not found"}`, rec.Body.String())
}

func TestHandleGetWeather_MethodNotAllowed(t *testing.T) {
	f := newFixture(t, http.StatusOK, http.StatusOK, `{}`)
	defer f.close()

	req := httptest.NewRequest(http.MethodPost, "/api/weather?city=London", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	f.handler.HandleGetWeather(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, int64(0), f.authHits.Load())
}
