// Package clients holds the gateway's downstream HTTP clients. Each
// client reports transport failures as an UnavailableError naming the
// collaborator, so the orchestrator can tell an unreachable auth
// service apart from an unreachable weather service.
package clients

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthenticated is reported when the auth service rejects a token.
var ErrUnauthenticated = errors.New("unauthenticated")

// UnavailableError marks a downstream call that failed at the transport
// level: connection refused, DNS failure, or timeout.
type UnavailableError struct {
	Service string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// AsUnavailable reports whether err is an UnavailableError and returns
// it if so.
func AsUnavailable(err error) (*UnavailableError, bool) {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// HTTPClient is the subset of *http.Client the gateway clients need.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
