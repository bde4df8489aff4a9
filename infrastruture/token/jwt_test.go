package token

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	require.NoError(t, err)
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "testIssuer"

	svc, err := NewJwtService(secretKey, issuer)
	require.NoError(t, err)

	t.Run("Generate and Decode valid token", func(t *testing.T) {
		claims := map[string]interface{}{
			"sub": "maze-client",
		}

		token, err := svc.Generate(claims, 5*time.Minute)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		decoded, err := svc.Decode(token)
		assert.NoError(t, err)
		assert.Equal(t, "maze-client", decoded["sub"])
		assert.Equal(t, issuer, decoded["iss"])
	})

	t.Run("Decode invalid token", func(t *testing.T) {
		_, err := svc.Decode("invalidTokenString")
		assert.Error(t, err)
	})

	t.Run("Decode expired token", func(t *testing.T) {
		token, err := svc.Generate(map[string]interface{}{"sub": "maze-client"}, -time.Minute)
		assert.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Decode token from another issuer", func(t *testing.T) {
		other, err := NewJwtService(secretKey, "someoneElse")
		require.NoError(t, err)

		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.ErrorIs(t, err, ErrWrongIssuer)
	})

	t.Run("Decode token signed with another secret", func(t *testing.T) {
		other, err := NewJwtService("another-secret", issuer)
		require.NoError(t, err)

		token, err := other.Generate(map[string]interface{}{}, time.Minute)
		require.NoError(t, err)

		_, err = svc.Decode(token)
		assert.Error(t, err)
	})

	t.Run("Empty secret", func(t *testing.T) {
		_, err := NewJwtService("", issuer)
		assert.ErrorIs(t, err, ErrEmptySecret)
	})
}
