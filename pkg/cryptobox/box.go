package cryptobox

import (
	"crypto/cipher"
	"fmt"
	"io"
)

// KeyMaterial is the key a Box is built from: either a SharedSecret or a KeyAgreement.
type KeyMaterial interface {
	isKeyMaterial()
}

// SharedSecret is a symmetric key, used directly as the cipher key. It must be exactly the cipher's
// key size, e.g. the output of DeriveKey.
type SharedSecret []byte

// KeyAgreement is the caller's own private key and a peer's public key. The cipher key is derived
// from their Diffie-Hellman shared secret.
type KeyAgreement struct {
	Private *PrivateKey
	Peer    *PublicKey
}

func (SharedSecret) isKeyMaterial() {}

func (KeyAgreement) isKeyMaterial() {}

// Box encrypts and decrypts messages with a single symmetric key, fixed when the Box is created.
// The key is never exposed.
//
// A Box is safe for concurrent use. Callers must never encrypt two messages with the same nonce
// under the same Box: doing so leaks the XOR of the plaintexts and, for AES-GCM and
// ChaCha20-Poly1305, allows forgeries. The Box does not detect nonce reuse.
type Box struct {
	aead cipher.AEAD
	rand io.Reader
}

// New returns a Box for the given key material with the default configuration.
func New(km KeyMaterial) (*Box, error) {
	return DefaultConfig().NewBox(km)
}

// NewBox returns a Box for the given key material.
func (c *Config) NewBox(km KeyMaterial) (*Box, error) {
	switch km := km.(type) {
	case SharedSecret:
		return c.FromSharedSecret(km)
	case KeyAgreement:
		return c.FromKeyAgreement(km.Private, km.Peer)
	case *KeyAgreement:
		if km == nil {
			return nil, fmt.Errorf("%w: nil key material", ErrInvalidParameters)
		}

		return c.FromKeyAgreement(km.Private, km.Peer)
	default:
		return nil, fmt.Errorf("%w: unknown key material %T", ErrInvalidParameters, km)
	}
}

// FromSharedSecret returns a Box which uses the given key with the default cipher.
func FromSharedSecret(key []byte) (*Box, error) {
	return DefaultConfig().FromSharedSecret(key)
}

// FromSharedSecret returns a Box which uses the given key with the configured cipher. It returns
// ErrInvalidKeyLength if the key is not the cipher's key size.
func (c *Config) FromSharedSecret(key []byte) (*Box, error) {
	alg, err := c.Cipher.algorithm()
	if err != nil {
		return nil, err
	}

	if len(key) != c.Cipher.KeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), c.Cipher.KeySize())
	}

	aead, err := alg.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	}

	return &Box{aead: aead, rand: c.rand()}, nil
}

// FromKeyAgreement returns a Box using the default configuration, keyed by the agreement between
// the caller's private key and the peer's public key.
func FromKeyAgreement(own *PrivateKey, peer *PublicKey) (*Box, error) {
	return DefaultConfig().FromKeyAgreement(own, peer)
}

// FromKeyAgreement returns a Box keyed by the agreement between the caller's private key and the
// peer's public key. The peer, using its own private key and the caller's public key, derives the
// same Box.
//
// It returns ErrAgreementFailed if either key is not on the configured curve, or if the peer's key
// produces an invalid shared secret.
func (c *Config) FromKeyAgreement(own *PrivateKey, peer *PublicKey) (*Box, error) {
	if own == nil || peer == nil {
		return nil, fmt.Errorf("%w: missing key", ErrInvalidParameters)
	}

	s, err := c.Curve.scheme()
	if err != nil {
		return nil, err
	}

	alg, err := c.Cipher.algorithm()
	if err != nil {
		return nil, err
	}

	kdf, err := c.AgreementKDF.function()
	if err != nil {
		return nil, err
	}

	if own.curve != c.Curve || peer.curve != c.Curve {
		return nil, fmt.Errorf("%w: expected %s keys, got %s private and %s public",
			ErrAgreementFailed, c.Curve, own.curve, peer.curve)
	}

	zz, err := s.SharedSecret(own.d, peer.q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAgreementFailed, err)
	}

	defer Wipe(zz)

	key := kdf(zz, own.pub.q, peer.q, alg.Name, c.Cipher.KeySize())
	defer Wipe(key)

	return c.FromSharedSecret(key)
}

// NonceSize returns the size of the nonces which must be passed to Encrypt and Decrypt.
func (b *Box) NonceSize() int {
	return b.aead.NonceSize()
}

// Overhead returns the difference between the lengths of a ciphertext and its plaintext.
func (b *Box) Overhead() int {
	return b.aead.Overhead()
}

// Encrypt encrypts and authenticates the plaintext, returning the ciphertext with the
// authentication tag appended. The nonce must be NonceSize bytes and must never be reused with this
// Box.
func (b *Box) Encrypt(nonce, plaintext []byte) ([]byte, error) {
	return b.EncryptWithAD(nonce, plaintext, nil)
}

// EncryptWithAD is Encrypt with additional data, which is authenticated but not encrypted.
func (b *Box) EncryptWithAD(nonce, plaintext, additionalData []byte) ([]byte, error) {
	if err := b.checkNonce(nonce); err != nil {
		return nil, err
	}

	return b.aead.Seal(nil, nonce, plaintext, additionalData), nil
}

// Decrypt authenticates and decrypts the ciphertext. It returns ErrInvalidCiphertextLength if the
// ciphertext is shorter than Overhead, and ErrAuthenticationFailed if the ciphertext, nonce, or key
// are incorrect. No plaintext is returned unless the ciphertext is authentic.
func (b *Box) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	return b.DecryptWithAD(nonce, ciphertext, nil)
}

// DecryptWithAD is Decrypt with additional data, which must match that passed to EncryptWithAD.
func (b *Box) DecryptWithAD(nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if err := b.checkNonce(nonce); err != nil {
		return nil, err
	}

	if len(ciphertext) < b.aead.Overhead() {
		return nil, ErrInvalidCiphertextLength
	}

	plaintext, err := b.aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// Seal encrypts the plaintext under a fresh random nonce and returns the nonce followed by the
// ciphertext and tag.
func (b *Box) Seal(plaintext, additionalData []byte) ([]byte, error) {
	nonce := make([]byte, b.aead.NonceSize(), b.aead.NonceSize()+len(plaintext)+b.aead.Overhead())
	if _, err := io.ReadFull(b.rand, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return b.aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

// Open decrypts the output of Seal. It returns ErrInvalidCiphertextLength if sealed is shorter than
// a nonce and a tag.
func (b *Box) Open(sealed, additionalData []byte) ([]byte, error) {
	if len(sealed) < b.aead.NonceSize()+b.aead.Overhead() {
		return nil, ErrInvalidCiphertextLength
	}

	n := b.aead.NonceSize()

	return b.DecryptWithAD(sealed[:n], sealed[n:], additionalData)
}

func (b *Box) checkNonce(nonce []byte) error {
	if len(nonce) != b.aead.NonceSize() {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceLength, len(nonce), b.aead.NonceSize())
	}

	return nil
}
