package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureRandomString(t *testing.T) {
	key, err := GenerateSecureRandomString(20)
	require.NoError(t, err)
	assert.Len(t, key, 20)

	for _, r := range key {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		assert.True(t, isAlnum, "beklenmeyen karakter: %q", r)
	}
}

func TestGenerateSecureRandomString_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := GenerateSecureRandomString(20)
		require.NoError(t, err)
		assert.False(t, seen[key], "tekrar eden anahtar üretildi")
		seen[key] = true
	}
}
