// Package auth proxies register, login, and verify requests to the
// auth service unchanged. The gateway adds nothing to these flows
// beyond a timeout and the unavailable case.
package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dkachur-dev/weather-dashboard/internal/gateway/clients"
)

const timeoutDuration = 5 * time.Second

type Handler struct {
	client  clients.HTTPClient
	baseURL string
	logger  zerolog.Logger
}

func NewHandler(client clients.HTTPClient, authServiceBaseURL string, logger zerolog.Logger) *Handler {
	return &Handler{client: client, baseURL: authServiceBaseURL, logger: logger}
}

// HandleRegister handles POST /api/auth/register.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, http.MethodPost, "/auth/register")
}

// HandleLogin handles POST /api/auth/login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, http.MethodPost, "/auth/login")
}

// HandleVerify handles GET /api/auth/verify.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	h.proxy(w, r, http.MethodGet, "/auth/verify")
}

func (h *Handler) proxy(w http.ResponseWriter, r *http.Request, method, path string) {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeoutDuration)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, r.Body)
	if err != nil {
		h.logger.Error().Err(err).Str("path", path).Msg("failed to create proxied request")
		h.writeError(w, http.StatusInternalServerError, "failed to create request")
		return
	}
	req.Header.Set("Content-Type", r.Header.Get("Content-Type"))
	req.Header.Set("Authorization", r.Header.Get("Authorization"))

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error().Err(err).Str("path", path).Msg("auth service unreachable")
		h.writeError(w, http.StatusServiceUnavailable, "auth service unavailable")
		return
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			h.logger.Error().Err(err).Str("path", path).Msg("error closing response body")
		}
	}(resp.Body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.logger.Error().Err(err).Str("path", path).Msg("error writing response body")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		h.logger.Error().Err(err).Msg("error writing error response")
	}
}
