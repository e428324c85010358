package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidVeksler/ResumeForge/internal/config"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "secret-a", ExpirationHours: 1})

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: "secret-a", ExpirationHours: 1})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-b", ExpirationHours: 1})

	token, err := issuer.GenerateToken()
	require.NoError(t, err)

	assert.Error(t, verifier.ValidateToken(token))
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{Secret: "secret-a", ExpirationHours: 1})

	assert.Error(t, svc.ValidateToken("not.a.token"))
	assert.Error(t, svc.ValidateToken(""))
}
