package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordKnownDigest(t *testing.T) {
	// SHA-256 of "password", hex encoded. The scheme is intentionally
	// unsalted and deterministic; login depends on equality of digests.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
}

func TestHashPasswordDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("secret123"), HashPassword("secret123"))
	assert.NotEqual(t, HashPassword("secret123"), HashPassword("secret124"))
}
