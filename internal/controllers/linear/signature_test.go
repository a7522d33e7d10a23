package linear

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSign(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	body := []byte(`{"action":"create"}`)

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	sig := Sign(secret, body)
	assert.Equal(t, expected, sig)
	assert.Equal(t, strings.ToLower(sig), sig)
	assert.Len(t, sig, 64)
}

func TestVerifier_Verify(t *testing.T) {
	t.Parallel()

	const secret = "test-secret"
	body := []byte(`{"action":"create","data":{"title":"Fix bug","identifier":"ENG-1","url":"https://x.test/1"}}`)
	verifier := NewVerifier(secret)

	t.Run("valid signature", func(t *testing.T) {
		require.NoError(t, verifier.Verify(body, Sign([]byte(secret), body)))
	})

	t.Run("missing signature", func(t *testing.T) {
		require.ErrorIs(t, verifier.Verify(body, ""), ErrMissingSignature)
	})

	t.Run("wrong secret", func(t *testing.T) {
		require.ErrorIs(t, verifier.Verify(body, Sign([]byte("other"), body)), ErrSignatureMismatch)
	})

	t.Run("uppercase hex is rejected", func(t *testing.T) {
		sig := strings.ToUpper(Sign([]byte(secret), body))
		require.ErrorIs(t, verifier.Verify(body, sig), ErrSignatureMismatch)
	})

	t.Run("empty body", func(t *testing.T) {
		require.NoError(t, verifier.Verify(nil, Sign([]byte(secret), nil)))
	})

	t.Run("any single bit flip in the body is rejected", func(t *testing.T) {
		sig := Sign([]byte(secret), body)
		for i := range body {
			for bit := 0; bit < 8; bit++ {
				mutated := append([]byte(nil), body...)
				mutated[i] ^= 1 << bit
				assert.ErrorIs(t, verifier.Verify(mutated, sig), ErrSignatureMismatch, "byte %d bit %d", i, bit)
			}
		}
	})

	t.Run("any single bit flip in the signature is rejected", func(t *testing.T) {
		sig := []byte(Sign([]byte(secret), body))
		for i := range sig {
			for bit := 0; bit < 8; bit++ {
				mutated := append([]byte(nil), sig...)
				mutated[i] ^= 1 << bit
				assert.ErrorIs(t, verifier.Verify(body, string(mutated)), ErrSignatureMismatch, "byte %d bit %d", i, bit)
			}
		}
	})
}
