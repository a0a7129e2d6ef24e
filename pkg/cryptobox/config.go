package cryptobox

import (
	"crypto/sha1" //nolint:gosec // PBKDF2-HMAC-SHA-1 is kept for compatibility
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/codahale/cryptobox/pkg/cryptobox/internal/aead"
	"github.com/codahale/cryptobox/pkg/cryptobox/internal/kdf"
	"github.com/codahale/cryptobox/pkg/cryptobox/internal/rng"
	"github.com/codahale/cryptobox/pkg/cryptobox/internal/xdh"
)

// Curve is an elliptic curve used for key agreement. Its value is the curve tag in encoded keys.
type Curve uint8

const (
	P256         Curve = iota + 1 // P256 is NIST P-256.
	P384                          // P384 is NIST P-384.
	P521                          // P521 is NIST P-521.
	X25519                        // X25519 is Curve25519 in Montgomery form.
	X448                          // X448 is Curve448 in Montgomery form.
	Secp256k1                     // Secp256k1 is the SEC 2 Koblitz curve.
	Ristretto255                  // Ristretto255 is the prime-order group over Curve25519.
)

//nolint:gochecknoglobals // immutable lookup table
var schemes = map[Curve]xdh.Scheme{
	P256:         xdh.P256,
	P384:         xdh.P384,
	P521:         xdh.P521,
	X25519:       xdh.X25519,
	X448:         xdh.X448,
	Secp256k1:    xdh.Secp256k1,
	Ristretto255: xdh.Ristretto255,
}

// Curves returns all supported curves.
func Curves() []Curve {
	return []Curve{P256, P384, P521, X25519, X448, Secp256k1, Ristretto255}
}

// ParseCurve returns the curve with the given name, ignoring case.
func ParseCurve(name string) (Curve, error) {
	for _, c := range Curves() {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: curve %q", ErrUnsupportedAlgorithm, name)
}

func (c Curve) String() string {
	if s, ok := schemes[c]; ok {
		return s.Name()
	}

	return fmt.Sprintf("Curve(%d)", uint8(c))
}

func (c Curve) scheme() (xdh.Scheme, error) {
	s, ok := schemes[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, c)
	}

	return s, nil
}

// Cipher is an authenticated cipher. All ciphers use 256-bit keys and 128-bit tags.
type Cipher uint8

const (
	AES256GCM         Cipher = iota + 1 // AES256GCM is AES-256-GCM with 96-bit nonces.
	ChaCha20Poly1305                    // ChaCha20Poly1305 is ChaCha20-Poly1305 with 96-bit nonces.
	XChaCha20Poly1305                   // XChaCha20Poly1305 is XChaCha20-Poly1305 with 192-bit nonces.
)

//nolint:gochecknoglobals // immutable lookup table
var ciphers = map[Cipher]*aead.Algorithm{
	AES256GCM:         aead.AES256GCM,
	ChaCha20Poly1305:  aead.ChaCha20Poly1305,
	XChaCha20Poly1305: aead.XChaCha20Poly1305,
}

// Ciphers returns all supported ciphers.
func Ciphers() []Cipher {
	return []Cipher{AES256GCM, ChaCha20Poly1305, XChaCha20Poly1305}
}

// ParseCipher returns the cipher with the given name, ignoring case.
func ParseCipher(name string) (Cipher, error) {
	for _, c := range Ciphers() {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: cipher %q", ErrUnsupportedAlgorithm, name)
}

func (c Cipher) String() string {
	if a, ok := ciphers[c]; ok {
		return a.Name
	}

	return fmt.Sprintf("Cipher(%d)", uint8(c))
}

// KeySize returns the size of the cipher's keys in bytes.
func (c Cipher) KeySize() int {
	return aead.KeySize
}

// NonceSize returns the size of the cipher's nonces in bytes, or zero for an unknown cipher.
func (c Cipher) NonceSize() int {
	if a, ok := ciphers[c]; ok {
		return a.NonceSize
	}

	return 0
}

func (c Cipher) algorithm() (*aead.Algorithm, error) {
	a, ok := ciphers[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, c)
	}

	return a, nil
}

// AgreementKDF is the function which turns a Diffie-Hellman shared secret into a cipher key.
type AgreementKDF uint8

const (
	HKDFSHA256 AgreementKDF = iota + 1 // HKDFSHA256 is HKDF with SHA-256.
	STROBE                             // STROBE is a STROBE-256 protocol.
)

// ParseAgreementKDF returns the agreement KDF with the given name, ignoring case.
func ParseAgreementKDF(name string) (AgreementKDF, error) {
	for _, k := range []AgreementKDF{HKDFSHA256, STROBE} {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: agreement KDF %q", ErrUnsupportedAlgorithm, name)
}

func (k AgreementKDF) String() string {
	switch k {
	case HKDFSHA256:
		return "HKDF-SHA-256"
	case STROBE:
		return "STROBE"
	default:
		return fmt.Sprintf("AgreementKDF(%d)", uint8(k))
	}
}

func (k AgreementKDF) function() (kdf.Func, error) {
	switch k {
	case HKDFSHA256:
		return kdf.HKDF, nil
	case STROBE:
		return kdf.STROBE, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, k)
	}
}

// PRF is the pseudorandom function PBKDF2 iterates.
type PRF uint8

const (
	HMACSHA1   PRF = iota + 1 // HMACSHA1 is HMAC-SHA-1, for compatibility with older derivations.
	HMACSHA256                // HMACSHA256 is HMAC-SHA-256.
	HMACSHA512                // HMACSHA512 is HMAC-SHA-512.
)

// ParsePRF returns the PRF with the given name, ignoring case.
func ParsePRF(name string) (PRF, error) {
	for _, p := range []PRF{HMACSHA1, HMACSHA256, HMACSHA512} {
		if strings.EqualFold(p.String(), name) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: PRF %q", ErrUnsupportedAlgorithm, name)
}

func (p PRF) String() string {
	switch p {
	case HMACSHA1:
		return "HMAC-SHA-1"
	case HMACSHA256:
		return "HMAC-SHA-256"
	case HMACSHA512:
		return "HMAC-SHA-512"
	default:
		return fmt.Sprintf("PRF(%d)", uint8(p))
	}
}

func (p PRF) hash() (func() hash.Hash, error) {
	switch p {
	case HMACSHA1:
		return sha1.New, nil
	case HMACSHA256:
		return sha256.New, nil
	case HMACSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, p)
	}
}

// Config fixes the algorithms used by key generation, key derivation, and boxes.
type Config struct {
	Curve        Curve        // Curve is the key agreement curve.
	Cipher       Cipher       // Cipher is the authenticated cipher.
	AgreementKDF AgreementKDF // AgreementKDF derives cipher keys from shared secrets.
	PasswordPRF  PRF          // PasswordPRF is the PBKDF2 pseudorandom function.

	// Rand is the source of randomness for keys, salts, and nonces. If nil, a shared
	// STROBE-hardened reader over crypto/rand is used.
	Rand io.Reader
}

// DefaultConfig returns a configuration using P-256, AES-256-GCM, HKDF-SHA-256, and
// PBKDF2-HMAC-SHA-256.
func DefaultConfig() *Config {
	return &Config{
		Curve:        P256,
		Cipher:       AES256GCM,
		AgreementKDF: HKDFSHA256,
		PasswordPRF:  HMACSHA256,
	}
}

// Validate returns ErrUnsupportedAlgorithm if any of the configured algorithms are unknown.
func (c *Config) Validate() error {
	if _, err := c.Curve.scheme(); err != nil {
		return err
	}

	if _, err := c.Cipher.algorithm(); err != nil {
		return err
	}

	if _, err := c.AgreementKDF.function(); err != nil {
		return err
	}

	if _, err := c.PasswordPRF.hash(); err != nil {
		return err
	}

	return nil
}

func (c *Config) rand() io.Reader {
	if c.Rand != nil {
		return c.Rand
	}

	return rng.Reader
}
