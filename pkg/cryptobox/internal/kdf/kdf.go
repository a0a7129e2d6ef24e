// Package kdf provides the key derivation functions which turn a Diffie-Hellman shared secret into
// a symmetric key.
//
// Both parties to an agreement must derive the same key, so the two public keys are always bound
// into the derivation in lexicographic order rather than in sender/recipient order.
//
// HKDF derivation is as follows, given a shared secret ZZ, public keys Q_low and Q_high, a context
// string C, and an output size N:
//
//	HKDF-SHA-256(IKM=ZZ, salt=Q_low||Q_high, info='cryptobox agreement '||C, L=N)
//
// STROBE derivation is as follows:
//
//	INIT('cryptobox.kdf.agreement', level=256)
//	AD(C,                 meta=true)
//	AD(BIG_ENDIAN_U32(N), meta=true)
//	KEY(ZZ)
//	AD(Q_low)
//	AD(Q_high)
//	PRF(N)
package kdf

import (
	"bytes"
	"crypto/sha256"
	"io"

	"github.com/codahale/cryptobox/pkg/cryptobox/internal/protocols"
	"github.com/sammyne/strobe"
	"golang.org/x/crypto/hkdf"
)

// Func derives an n-byte key from the shared secret zz, the two parties' public keys, and a context
// string.
type Func func(zz, pubA, pubB []byte, context string, n int) []byte

// HKDF derives a key using HKDF-SHA-256.
func HKDF(zz, pubA, pubB []byte, context string, n int) []byte {
	low, high := order(pubA, pubB)

	salt := make([]byte, 0, len(low)+len(high))
	salt = append(salt, low...)
	salt = append(salt, high...)

	h := hkdf.New(sha256.New, zz, salt, []byte("cryptobox agreement "+context))

	k := make([]byte, n)
	if _, err := io.ReadFull(h, k); err != nil {
		panic(err)
	}

	return k
}

// STROBE derives a key using the cryptobox.kdf.agreement STROBE protocol.
func STROBE(zz, pubA, pubB []byte, context string, n int) []byte {
	low, high := order(pubA, pubB)

	// Initialize the protocol.
	kdf := protocols.New("cryptobox.kdf.agreement")

	// Add the context to the protocol.
	protocols.Must(kdf.AD([]byte(context), &strobe.Options{Meta: true}))

	// Add the output size to the protocol.
	protocols.Must(kdf.AD(protocols.BigEndianU32(n), &strobe.Options{Meta: true}))

	// Key the protocol with the shared secret.
	protocols.Must(kdf.KEY(protocols.Copy(zz), false))

	// Add both public keys to the protocol.
	protocols.Must(kdf.AD(protocols.Copy(low), &strobe.Options{}))
	protocols.Must(kdf.AD(protocols.Copy(high), &strobe.Options{}))

	// Extract an n-byte derived secret and return it.
	k := make([]byte, n)
	protocols.Must(kdf.PRF(k, false))

	return k
}

func order(a, b []byte) ([]byte, []byte) {
	if bytes.Compare(a, b) <= 0 {
		return a, b
	}

	return b, a
}
