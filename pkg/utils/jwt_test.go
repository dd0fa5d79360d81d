package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "admin@example.com", "Admin", "admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userCtx, err := ValidateTokenStringToUUID(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, userCtx.ID)
	assert.Equal(t, "admin@example.com", userCtx.Email)
	assert.Equal(t, "admin", userCtx.Role)
}

func TestValidateTokenErrors(t *testing.T) {
	_, err := ValidateTokenStringToUUID("", "secret")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = ValidateTokenStringToUUID("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := GenerateToken(uuid.New(), "a@b.c", "", "user", "secret")
	require.NoError(t, err)

	_, err = ValidateTokenStringToUUID(token, "wrong-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Empty(t, ExtractTokenFromHeader(""))
	assert.Empty(t, ExtractTokenFromHeader("abc"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc"))
}
