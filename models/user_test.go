package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	user := User{Password: hash}
	assert.True(t, user.ComparePassword("secret1"))
	assert.False(t, user.ComparePassword("secret2"))
	assert.False(t, user.ComparePassword(""))
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
