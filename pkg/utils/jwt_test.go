package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDanValidateJWTToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "rahasia-uji")

	token, err := GenerateJWTToken(3, "drg. Sari", "dokter", "sari", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.IDKaryawan)
	assert.Equal(t, "drg. Sari", claims.Nama)
	assert.Equal(t, "dokter", claims.Role)
	assert.Equal(t, "sari", claims.Username)
}

func TestValidateJWTToken_SecretBerbeda(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "rahasia-uji")
	token, err := GenerateJWTToken(3, "drg. Sari", "dokter", "sari", time.Now().Add(time.Hour))
	require.NoError(t, err)

	t.Setenv("JWT_SECRET_KEY", "rahasia-lain")
	_, err = ValidateJWTToken(token)
	assert.Error(t, err)
}

func TestGenerateJWTToken_TanpaSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	_, err := GenerateJWTToken(3, "drg. Sari", "dokter", "sari", time.Now().Add(time.Hour))
	assert.Error(t, err)
}
