package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := []byte("secret")

	token, err := CreateSessionToken(secret, "session-1", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "tripplanner", claims.Issuer)
}

func TestSessionToken_Rejects(t *testing.T) {
	secret := []byte("secret")

	expired, err := CreateSessionToken(secret, "session-1", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateSessionToken(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	valid, err := CreateSessionToken(secret, "session-1", time.Hour)
	require.NoError(t, err)
	_, err = ValidateSessionToken([]byte("other"), valid)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	_, err = ValidateSessionToken(secret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		SessionID:        "session-1",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else"},
	})
	signed, err := foreign.SignedString(secret)
	require.NoError(t, err)
	_, err = ValidateSessionToken(secret, signed)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "tripplanner"},
	})
	signed, err = noID.SignedString(secret)
	require.NoError(t, err)
	_, err = ValidateSessionToken(secret, signed)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}
