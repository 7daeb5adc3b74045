package domain

import (
	"crypto/ed25519"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// ErrInvalidSecretKey is returned when decrypted key bytes are not a usable ed25519 secret key.
var ErrInvalidSecretKey = errors.New("invalid secret key")

// SigningKey holds decrypted key material for the span of one signing operation.
// Callers must Destroy it on every exit path.
type SigningKey struct {
	priv    ed25519.PrivateKey
	address string
}

// NewSigningKey wraps a 64-byte ed25519 secret key. The slice is owned by the
// returned value and is zeroed by Destroy.
func NewSigningKey(secret []byte) (*SigningKey, error) {
	if len(secret) != ed25519.PrivateKeySize {
		return nil, ErrInvalidSecretKey
	}
	priv := ed25519.PrivateKey(secret)
	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, ErrInvalidSecretKey
	}
	// The trailing 32 bytes must be the public key derived from the seed.
	derived := ed25519.NewKeyFromSeed(priv.Seed())
	defer zero(derived)
	if !ed25519.PublicKey(derived[32:]).Equal(pub) {
		return nil, ErrInvalidSecretKey
	}
	return &SigningKey{priv: priv, address: base58.Encode(pub)}, nil
}

// Address returns the base58 public address.
func (k *SigningKey) Address() string {
	return k.address
}

// Sign signs msg. It panics if the key was destroyed.
func (k *SigningKey) Sign(msg []byte) []byte {
	if k.priv == nil {
		panic("signing key used after destroy")
	}
	return ed25519.Sign(k.priv, msg)
}

// Destroy zeroes the key bytes. Safe to call more than once.
func (k *SigningKey) Destroy() {
	if k == nil || k.priv == nil {
		return
	}
	zero(k.priv)
	k.priv = nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
