package utils

import (
	"testing"

	"github.com/Emeenent14/omniverse/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "ada@example.com")
	require.NoError(t, err)

	oldSecret := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = "different-secret"
	defer func() { config.AppConfig.JWTSecret = oldSecret }()

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	oldExpiry := config.AppConfig.JWTExpiry
	config.AppConfig.JWTExpiry = "-1h"
	token, err := GenerateToken(42, "ada@example.com")
	require.NoError(t, err)
	config.AppConfig.JWTExpiry = oldExpiry

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
