package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)

	// bcrypt output, never the plaintext
	assert.True(t, strings.HasPrefix(hash, "$2"))
	assert.NotContains(t, hash, "Secret123")

	assert.True(t, CheckPassword(hash, "Secret123"))
	assert.False(t, CheckPassword(hash, "Secret124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPassword_NotAHash(t *testing.T) {
	assert.False(t, CheckPassword("plaintext-record", "plaintext-record"))
}
