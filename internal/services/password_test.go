package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hash)

	require.True(t, CheckPassword("supersecret", hash))
	require.False(t, CheckPassword("wrongpassword", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("supersecret")
	require.NoError(t, err)
	second, err := HashPassword("supersecret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	require.False(t, CheckPassword("supersecret", "not-a-bcrypt-hash"))
	require.False(t, CheckPassword("supersecret", ""))
}
