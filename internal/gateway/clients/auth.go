package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const verifyTimeout = 5 * time.Second

// AuthClient talks to the auth service's verify endpoint.
type AuthClient struct {
	client  HTTPClient
	baseURL string
	logger  zerolog.Logger
}

func NewAuthClient(client HTTPClient, baseURL string, logger zerolog.Logger) *AuthClient {
	return &AuthClient{client: client, baseURL: baseURL, logger: logger}
}

// Verify forwards the Authorization header value to the auth service.
// A non-200 response means the token was rejected (ErrUnauthenticated);
// a transport failure means the auth service itself is unreachable.
func (c *AuthClient) Verify(ctx context.Context, authHeader string) error {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/verify", nil)
	if err != nil {
		return fmt.Errorf("create verify request: %w", err)
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		return &UnavailableError{Service: "auth", Err: err}
	}
	defer c.closeBody(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ErrUnauthenticated
	}
	return nil
}

func (c *AuthClient) closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		c.logger.Error().Err(err).Msg("failed to close auth response body")
	}
}
