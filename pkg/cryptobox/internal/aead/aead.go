// Package aead provides the authenticated ciphers cryptobox can be configured with.
//
// All ciphers take 256-bit keys and append a 16-byte tag to the ciphertext.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	KeySize = 32 // KeySize is the size of AEAD keys in bytes.
	TagSize = 16 // TagSize is the size of AEAD tags in bytes.
)

// ErrInvalidKeySize is returned when a key is not KeySize bytes long.
var ErrInvalidKeySize = errors.New("invalid key size")

// Algorithm is an authenticated cipher.
type Algorithm struct {
	Name      string // Name is the canonical name of the cipher.
	NonceSize int    // NonceSize is the size of the cipher's nonces in bytes.

	new func(key []byte) (cipher.AEAD, error)
}

//nolint:gochecknoglobals // immutable algorithms
var (
	// AES256GCM is AES-256 in Galois/Counter Mode with a 96-bit nonce.
	AES256GCM = &Algorithm{Name: "AES-256-GCM", NonceSize: 12, new: newAESGCM}

	// ChaCha20Poly1305 is the RFC 8439 AEAD with a 96-bit nonce.
	ChaCha20Poly1305 = &Algorithm{
		Name:      "ChaCha20-Poly1305",
		NonceSize: chacha20poly1305.NonceSize,
		new:       chacha20poly1305.New,
	}

	// XChaCha20Poly1305 is the extended-nonce variant of ChaCha20-Poly1305 with a 192-bit nonce.
	XChaCha20Poly1305 = &Algorithm{
		Name:      "XChaCha20-Poly1305",
		NonceSize: chacha20poly1305.NonceSizeX,
		new:       chacha20poly1305.NewX,
	}
)

// New returns a new AEAD using the given key.
func (a *Algorithm) New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	return a.new(key)
}

func newAESGCM(key []byte) (cipher.AEAD, error) {
	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(b)
}
