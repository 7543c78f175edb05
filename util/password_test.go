package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("admin@123456789")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "argon2id$"))

	match, err := VerifyPassword("admin@123456789", hash)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	assert.NoError(t, err)

	match, err := VerifyPassword("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	assert.NoError(t, err)
	second, err := HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("whatever", "not-a-valid-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("whatever", "argon2id$zz$zz")
	assert.Error(t, err)
}
