package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("inkka")
	require.NoError(t, err)
	assert.Contains(t, token, "Bearer ")

	username, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "inkka", username)

	// prefix is optional on parse
	username, err = ParseJWT(token[len("Bearer "):])
	require.NoError(t, err)
	assert.Equal(t, "inkka", username)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)
	_, err = ParseJWT("Bearer not.a.token")
	assert.Error(t, err)
}
