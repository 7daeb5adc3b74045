package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

const (
	vaultNonceSize = 16
	vaultTagSize   = 16
	vaultVersion   = "v1"
)

// ErrIntegrity is returned when a vault blob fails authentication or is malformed.
// Callers must never fall back to using the key.
var ErrIntegrity = errors.New("key vault integrity check failed")

// AESKeyVault implements ports.KeyVault using AES-256-GCM.
type AESKeyVault struct {
	aead cipher.AEAD
}

// NewAESKeyVault derives the vault key as SHA-256 of the operator secret, so the
// secret may be any length.
func NewAESKeyVault(secret string) (*AESKeyVault, error) {
	if secret == "" {
		return nil, errors.New("vault secret must not be empty")
	}
	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, vaultNonceSize)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &AESKeyVault{aead: aead}, nil
}

// Version identifies the blob layout and key derivation.
func (v *AESKeyVault) Version() string {
	return vaultVersion
}

// Encrypt seals raw key bytes. The blob is base64(nonce(16) || tag(16) || ciphertext).
func (v *AESKeyVault) Encrypt(raw []byte) (string, error) {
	nonce := make([]byte, vaultNonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}

	sealed := v.aead.Seal(nil, nonce, raw, nil)
	ciphertext, tag := sealed[:len(sealed)-vaultTagSize], sealed[len(sealed)-vaultTagSize:]

	blob := make([]byte, 0, vaultNonceSize+vaultTagSize+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a blob produced by Encrypt. Any failure is reported as ErrIntegrity.
func (v *AESKeyVault) Decrypt(blob string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding blob", ErrIntegrity)
	}
	if len(data) < vaultNonceSize+vaultTagSize {
		return nil, fmt.Errorf("%w: blob too short", ErrIntegrity)
	}

	nonce := data[:vaultNonceSize]
	tag := data[vaultNonceSize : vaultNonceSize+vaultTagSize]
	ciphertext := data[vaultNonceSize+vaultTagSize:]

	sealed := make([]byte, 0, len(ciphertext)+vaultTagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIntegrity, err)
	}
	return plaintext, nil
}
