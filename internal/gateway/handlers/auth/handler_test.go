package auth_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkachur-dev/weather-dashboard/internal/gateway/handlers/auth"
)

type capturedRequest struct {
	method string
	path   string
	body   string
	auth   string
}

func newUpstream(t *testing.T, status int, responseBody string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		*captured = capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			body:   string(body),
			auth:   r.Header.Get("Authorization"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
}

func TestHandleRegister_ProxiesStatusAndBody(t *testing.T) {
	var captured capturedRequest
	upstream := newUpstream(t, http.StatusCreated, `{"message":"User created","email":"bob@example.com"}`, &captured)
	defer upstream.Close()

	h := auth.NewHandler(upstream.Client(), upstream.URL, zerolog.Nop())

	payload := `{"email":"bob@example.com","password":"hunter22","name":"Bob"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User created","email":"bob@example.com"}`, rec.Body.String())
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/auth/register", captured.path)
	assert.Equal(t, payload, captured.body)
}

func TestHandleLogin_PropagatesRejection(t *testing.T) {
	var captured capturedRequest
	upstream := newUpstream(t, http.StatusUnauthorized, `{"error":"Invalid credentials"}`, &captured)
	defer upstream.Close()

	h := auth.NewHandler(upstream.Client(), upstream.URL, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"bob@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	assert.Equal(t, "/auth/login", captured.path)
}

func TestHandleVerify_ForwardsAuthorizationHeader(t *testing.T) {
	var captured capturedRequest
	upstream := newUpstream(t, http.StatusOK, `{"valid":true,"email":"bob@example.com"}`, &captured)
	defer upstream.Close()

	h := auth.NewHandler(upstream.Client(), upstream.URL, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	h.HandleVerify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer some-token", captured.auth)
	assert.Equal(t, http.MethodGet, captured.method)
}

func TestProxy_ServiceDown(t *testing.T) {
	var captured capturedRequest
	upstream := newUpstream(t, http.StatusOK, `{}`, &captured)
	upstream.Close()

	h := auth.NewHandler(upstream.Client(), upstream.URL, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"auth service unavailable"}`, rec.Body.String())
}

func TestProxy_MethodNotAllowed(t *testing.T) {
	var captured capturedRequest
	upstream := newUpstream(t, http.StatusOK, `{}`, &captured)
	defer upstream.Close()

	h := auth.NewHandler(upstream.Client(), upstream.URL, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, captured.path)
}
