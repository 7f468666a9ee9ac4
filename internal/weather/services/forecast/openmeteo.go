package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
)

// ErrLocationNotFound is reported when geocoding resolves no place for
// the requested city. It short-circuits the pipeline before any
// forecast call is made.
var ErrLocationNotFound = errors.New("location not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Place is one geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Payload is the raw Open-Meteo forecast response. The hourly and
// daily blocks are parallel arrays keyed by time.
type Payload struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      int     `json:"relative_humidity_2m"`
		ApparentTemp  float64 `json:"apparent_temperature"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection int     `json:"wind_direction_10m"`
	} `json:"current"`
	Hourly struct {
		Time        []string  `json:"time"`
		Temperature []float64 `json:"temperature_2m"`
		WeatherCode []int     `json:"weather_code"`
	} `json:"hourly"`
	Daily struct {
		Time           []string  `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		WeatherCode    []int     `json:"weather_code"`
		UVIndexMax     []float64 `json:"uv_index_max"`
	} `json:"daily"`
}

// GeocodingClient resolves city names to coordinates via the
// Open-Meteo geocoding API.
type GeocodingClient struct {
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

func NewGeocodingClient(baseURL string, httpClient HTTPClient, logger zerolog.Logger) *GeocodingClient {
	return &GeocodingClient{baseURL: baseURL, client: httpClient, logger: logger}
}

func (g *GeocodingClient) Search(ctx context.Context, city string) (Place, error) {
	values := url.Values{}
	values.Set("name", city)
	values.Set("count", "1")

	reqURL := fmt.Sprintf("%s/v1/search?%s", g.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocoding request: %w", err)
	}
	defer g.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocoding API error: status %d", resp.StatusCode)
	}

	var raw struct {
		Results []Place `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Place{}, fmt.Errorf("decode geocoding response: %w", err)
	}

	if len(raw.Results) == 0 {
		return Place{}, ErrLocationNotFound
	}
	return raw.Results[0], nil
}

func (g *GeocodingClient) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		g.logger.Error().Err(err).Msg("failed to close geocoding response body")
	}
}

// ForecastClient fetches current, hourly, and daily conditions from the
// Open-Meteo forecast API.
type ForecastClient struct {
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

func NewForecastClient(baseURL string, httpClient HTTPClient, logger zerolog.Logger) *ForecastClient {
	return &ForecastClient{baseURL: baseURL, client: httpClient, logger: logger}
}

func (f *ForecastClient) Fetch(ctx context.Context, lat, lon float64) (Payload, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m,wind_direction_10m")
	values.Set("hourly", "temperature_2m,weather_code")
	values.Set("daily", "temperature_2m_max,weather_code,uv_index_max")
	values.Set("timezone", "auto")

	reqURL := fmt.Sprintf("%s/v1/forecast?%s", f.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Payload{}, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("forecast request: %w", err)
	}
	defer f.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Payload{}, fmt.Errorf("forecast API error: status %d", resp.StatusCode)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Payload{}, fmt.Errorf("decode forecast response: %w", err)
	}
	return payload, nil
}

func (f *ForecastClient) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		f.logger.Error().Err(err).Msg("failed to close forecast response body")
	}
}
