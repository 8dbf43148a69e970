package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	token, expiresAt, err := tm.Issue("boss@bistro.test", "Boss")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "boss@bistro.test", claims.Email)
	assert.Equal(t, "Boss", claims.Name)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	// Sign a token whose validity window already closed, signature intact.
	claims := &Claims{
		Email: "boss@bistro.test",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("other-secret", 60).Issue("boss@bistro.test", "")
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, 60).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSigningMethod(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	claims := &Claims{
		Email: "boss@bistro.test",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 60)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestTTLDefaultsToOneHour(t *testing.T) {
	tm := NewTokenManager(testSecret, 0)

	_, expiresAt, err := tm.Issue("boss@bistro.test", "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
}
