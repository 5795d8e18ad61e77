package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("hunter22")
	require.NoError(t, err)
	second, err := HashPassword("hunter22")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so identical inputs hash differently
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("hunter22", first))
	assert.True(t, CheckPasswordHash("hunter22", second))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("hunter22", "not-a-bcrypt-hash"))
}
