package secrets

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/candado/internal/errors"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/chacha20poly1305"
)

// NonceSize is the XChaCha20-Poly1305 nonce length. At 192 bits a random nonce
// is safe to generate for every write.
const NonceSize = chacha20poly1305.NonceSizeX

// TagSize is the Poly1305 authentication tag length appended by Seal.
const TagSize = chacha20poly1305.Overhead

// NewNonce returns a fresh random nonce.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}

// NewSalt returns a fresh random salt for a new vault.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Seal encrypts and authenticates plaintext, binding aad to the result.
// The returned slice is ciphertext followed by the tag.
func Seal(key, nonce, plaintext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("invalid nonce length: expected %d bytes, got %d bytes", aead.NonceSize(), len(nonce))
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open authenticates and decrypts ciphertext. Every failure, including a bad
// key or nonce length, is reported as ErrAuth and no plaintext is returned.
func Open(key, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil || len(nonce) != aead.NonceSize() || len(ciphertext) < aead.Overhead() {
		return nil, kerrors.ErrAuth
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, kerrors.ErrAuth
	}
	return plaintext, nil
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
