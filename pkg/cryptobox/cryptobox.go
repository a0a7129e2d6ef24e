// Package cryptobox implements a small crypto-box engine: password-based key derivation, elliptic
// curve key pairs, and authenticated encryption under either a shared secret or a Diffie-Hellman
// agreement between two key pairs.
//
// Every operation is synchronous and free of shared mutable state, with the exception of the
// package's random source, which is safe for concurrent use. Algorithms are never negotiated: the
// curve, cipher, and key derivation functions are fixed by a Config value.
//
// Byte strings which cross a text boundary are encoded as lowercase hexadecimal.
package cryptobox

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is returned when a caller-supplied argument is malformed or out of range.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidKeyLength is returned when a symmetric key is not the cipher's key size.
	ErrInvalidKeyLength = fmt.Errorf("%w: invalid key length", ErrInvalidParameters)

	// ErrInvalidNonceLength is returned when a nonce is not the cipher's nonce size.
	ErrInvalidNonceLength = fmt.Errorf("%w: invalid nonce length", ErrInvalidParameters)

	// ErrInvalidCiphertextLength is returned when a ciphertext is shorter than the cipher's
	// overhead.
	ErrInvalidCiphertextLength = errors.New("invalid ciphertext length")

	// ErrInvalidEncoding is returned when text is not valid lowercase or uppercase hexadecimal.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidKeyEncoding is returned when an encoded key is malformed, of the wrong kind, or for
	// the wrong curve.
	ErrInvalidKeyEncoding = errors.New("invalid key encoding")

	// ErrAuthenticationFailed is returned when a ciphertext cannot be decrypted, either due to an
	// incorrect key or nonce, or tampering.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAgreementFailed is returned when a key agreement cannot be performed with the given keys.
	ErrAgreementFailed = errors.New("key agreement failed")

	// ErrEntropyUnavailable is returned when the random source cannot produce random data.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrUnsupportedAlgorithm is returned when a configured algorithm is unknown, or an operation
	// is not available for a curve.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// Wipe overwrites b with zeros. It is a best-effort measure: the runtime may have made copies of b
// which cannot be reached.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
