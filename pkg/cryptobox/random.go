package cryptobox

import (
	"fmt"
	"io"
)

// RandomBytes returns n bytes from the default random source.
func RandomBytes(n int) ([]byte, error) {
	return DefaultConfig().RandomBytes(n)
}

// RandomBytes returns n bytes from the configured random source, or ErrEntropyUnavailable if the
// source fails.
func (c *Config) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: size must be positive", ErrInvalidParameters)
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(c.rand(), b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return b, nil
}

// NewNonce returns a random nonce of the configured cipher's nonce size.
//
// Random 96-bit nonces should not be used for more than 2^32 messages under a single key. Use
// XChaCha20Poly1305 if more are needed.
func (c *Config) NewNonce() ([]byte, error) {
	alg, err := c.Cipher.algorithm()
	if err != nil {
		return nil, err
	}

	return c.RandomBytes(alg.NonceSize)
}
