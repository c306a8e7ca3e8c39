package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("webcrm-sandbox", "mrossi", time.Hour, "secret")
	require.NoError(t, err)

	subject, err := ValidateJWTToken(token, "secret", "webcrm-sandbox")

	require.NoError(t, err)
	assert.Equal(t, "mrossi", subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("", "mrossi", time.Hour, "secret")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", "mrossi", 0, "secret")
	assert.Error(t, err)
}

func TestValidateJWTToken_WrongKeyOrIssuer(t *testing.T) {
	token, err := GenerateJWTToken("webcrm-sandbox", "mrossi", time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateJWTToken(token, "other", "webcrm-sandbox")
	assert.Error(t, err)

	_, err = ValidateJWTToken(token, "secret", "someone-else")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		require.NoError(t, err)
		return s
	}

	expired := sign(jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
	valid := sign(jwt.MapClaims{"exp": now.Add(time.Minute).Unix()})
	noExp := sign(jwt.MapClaims{"sub": "x"})

	assert.True(t, IsTokenExpired(expired, now))
	assert.False(t, IsTokenExpired(valid, now))
	assert.False(t, IsTokenExpired(noExp, now))
	assert.False(t, IsTokenExpired("opaque-owin-token", now))
}
