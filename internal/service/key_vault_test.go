package service

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVaultSecret = "correct horse battery staple"

func newTestVault(t *testing.T) *AESKeyVault {
	t.Helper()
	v, err := NewAESKeyVault(testVaultSecret)
	require.NoError(t, err)
	return v
}

func randomKey(t *testing.T) []byte {
	t.Helper()
	b := make([]byte, 64)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestAESKeyVault_EmptySecret(t *testing.T) {
	_, err := NewAESKeyVault("")
	assert.Error(t, err)
}

func TestAESKeyVault_RoundTrip(t *testing.T) {
	v := newTestVault(t)

	for i := 0; i < 200; i++ {
		raw := randomKey(t)
		blob, err := v.Encrypt(raw)
		require.NoError(t, err)

		decoded, err := base64.StdEncoding.DecodeString(blob)
		require.NoError(t, err)
		assert.Len(t, decoded, 16+16+64, "nonce || tag || ciphertext")

		got, err := v.Decrypt(blob)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}
	assert.Equal(t, "v1", v.Version())
}

func TestAESKeyVault_FreshNoncePerCall(t *testing.T) {
	v := newTestVault(t)
	raw := randomKey(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		blob, err := v.Encrypt(raw)
		require.NoError(t, err)
		decoded, _ := base64.StdEncoding.DecodeString(blob)
		nonce := string(decoded[:16])
		assert.False(t, seen[nonce], "nonce reused")
		seen[nonce] = true
	}
}

func TestAESKeyVault_EveryBitFlipDetected(t *testing.T) {
	v := newTestVault(t)
	blob, err := v.Encrypt(randomKey(t))
	require.NoError(t, err)
	data, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	for i := 0; i < len(data)*8; i++ {
		tampered := make([]byte, len(data))
		copy(tampered, data)
		tampered[i/8] ^= 1 << (i % 8)

		got, err := v.Decrypt(base64.StdEncoding.EncodeToString(tampered))
		require.ErrorIs(t, err, ErrIntegrity, "bit %d", i)
		assert.Nil(t, got)
	}
}

func TestAESKeyVault_WrongSecret(t *testing.T) {
	v1 := newTestVault(t)
	v2, err := NewAESKeyVault("a different operator secret")
	require.NoError(t, err)

	blob, err := v1.Encrypt(randomKey(t))
	require.NoError(t, err)

	_, err = v2.Decrypt(blob)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestAESKeyVault_MalformedBlob(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Decrypt("not base64 !!!")
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = v.Decrypt(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrIntegrity)
}
