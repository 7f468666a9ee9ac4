package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const fetchTimeout = 10 * time.Second

// WeatherClient talks to the weather service.
type WeatherClient struct {
	client  HTTPClient
	baseURL string
	logger  zerolog.Logger
}

func NewWeatherClient(client HTTPClient, baseURL string, logger zerolog.Logger) *WeatherClient {
	return &WeatherClient{client: client, baseURL: baseURL, logger: logger}
}

// Fetch requests the normalized forecast for a city and returns the
// downstream status and body verbatim. The weather service owns the
// 404/500 semantics; the gateway only adds the unavailable case.
func (c *WeatherClient) Fetch(ctx context.Context, city string) (int, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	target := fmt.Sprintf("%s/weather?%s", c.baseURL, url.Values{"city": {city}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, &UnavailableError{Service: "weather", Err: err}
	}
	defer c.closeBody(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read weather response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func (c *WeatherClient) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Error().Err(err).Msg("failed to close weather response body")
	}
}
