package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkachur-dev/weather-dashboard/internal/auth/services/token"
)

const testSecret = "test-secret"

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := token.NewService(testSecret, 24*time.Hour)

	signed, err := svc.Issue("user@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_Expired(t *testing.T) {
	svc := token.NewService(testSecret, -time.Hour)

	signed, err := svc.Issue("user@example.com", "Test User")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestVerify_Tampered(t *testing.T) {
	svc := token.NewService(testSecret, 24*time.Hour)

	signed, err := svc.Issue("user@example.com", "Test User")
	require.NoError(t, err)

	// Flip a byte in the middle of the token.
	tampered := []byte(signed)
	i := len(tampered) / 2
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	svc := token.NewService(testSecret, 24*time.Hour)
	other := token.NewService("other-secret", 24*time.Hour)

	signed, err := other.Issue("user@example.com", "Test User")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_UnsupportedAlgorithm(t *testing.T) {
	svc := token.NewService(testSecret, 24*time.Hour)

	// Same secret, different signing method: must be rejected.
	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "user@example.com",
		Name:  "Test User",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := token.NewService(testSecret, 24*time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(bad)
		assert.ErrorIs(t, err, token.ErrInvalidToken, "token %q", bad)
	}
}
