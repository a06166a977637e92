package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/config"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService("test-secret")
	ownerID := uuid.New()

	token, err := svc.GenerateToken(ownerID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.GetOwnerID())
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := newTestJWTService("secret-one").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = newTestJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTRejectsEmptyToken(t *testing.T) {
	_, err := newTestJWTService("test-secret").ValidateToken("")
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	_, err := newTestJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
