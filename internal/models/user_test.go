package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("s3cret-pass"))
	assert.NotEqual(t, "s3cret-pass", u.Password)
	assert.True(t, u.CheckPassword("s3cret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestSanitizeOmitsDigest(t *testing.T) {
	u := &User{Name: "Maria", Email: "maria@salon.local", Role: RoleHairdresser}
	require.NoError(t, u.SetPassword("s3cret-pass"))

	data, err := json.Marshal(u.Sanitize())
	require.NoError(t, err)
	assert.NotContains(t, string(data), u.Password)

	// The raw model never serializes the digest either.
	data, err = json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), u.Password)
}
