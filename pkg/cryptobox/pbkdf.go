package cryptobox

import (
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count DeriveKey accepts. Lower counts are
	// rejected rather than raised.
	MinIterations = 1000

	// DefaultIterations is the PBKDF2 iteration count used by DerivePasswordKey.
	DefaultIterations = 20000

	MinSaltSize      = 8    // MinSaltSize is the shortest salt DeriveKey accepts, in bytes.
	DefaultSaltSize  = 16   // DefaultSaltSize is the size of salts generated by NewSalt, in bytes.
	DefaultKeyLength = 32   // DefaultKeyLength is the size of keys derived by DerivePasswordKey.
	MaxKeyLength     = 1024 // MaxKeyLength is the largest key DeriveKey will produce, in bytes.
)

// DeriveKey derives a keyLen-byte key from the password and salt using PBKDF2-HMAC-SHA-256 with the
// given number of iterations.
func DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	return DefaultConfig().DeriveKey(password, salt, iterations, keyLen)
}

// DeriveKey derives a keyLen-byte key from the password and salt using PBKDF2 with the configured
// PRF and the given number of iterations. The result depends only on its arguments and the PRF.
//
// The password is not modified; callers should Wipe it once it is no longer needed.
func (c *Config) DeriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	h, err := c.PasswordPRF.hash()
	if err != nil {
		return nil, err
	}

	switch {
	case len(password) == 0:
		return nil, fmt.Errorf("%w: empty password", ErrInvalidParameters)
	case len(salt) < MinSaltSize:
		return nil, fmt.Errorf("%w: salt is %d bytes, need at least %d",
			ErrInvalidParameters, len(salt), MinSaltSize)
	case iterations < MinIterations:
		return nil, fmt.Errorf("%w: %d iterations, need at least %d",
			ErrInvalidParameters, iterations, MinIterations)
	case keyLen <= 0 || keyLen > MaxKeyLength:
		return nil, fmt.Errorf("%w: key length must be in [1,%d], got %d",
			ErrInvalidParameters, MaxKeyLength, keyLen)
	}

	return pbkdf2.Key(password, salt, iterations, keyLen, h), nil
}

// PasswordKey is a key derived from a password, along with the parameters needed to derive it
// again.
type PasswordKey struct {
	Key        []byte // Key is the derived key.
	Salt       []byte // Salt is the PBKDF2 salt.
	Iterations int    // Iterations is the PBKDF2 iteration count.
}

// Destroy wipes the derived key.
func (pk *PasswordKey) Destroy() {
	Wipe(pk.Key)
}

// DerivePasswordKey derives a DefaultKeyLength-byte key from the password with DefaultIterations
// iterations of PBKDF2-HMAC-SHA-256. If salt is nil, a new random salt is generated.
func DerivePasswordKey(password, salt []byte) (*PasswordKey, error) {
	return DefaultConfig().DerivePasswordKey(password, salt)
}

// DerivePasswordKey derives a DefaultKeyLength-byte key from the password with DefaultIterations
// iterations of PBKDF2 using the configured PRF. If salt is nil, a new random salt is generated.
func (c *Config) DerivePasswordKey(password, salt []byte) (*PasswordKey, error) {
	if salt == nil {
		var err error

		if salt, err = c.NewSalt(); err != nil {
			return nil, err
		}
	}

	key, err := c.DeriveKey(password, salt, DefaultIterations, DefaultKeyLength)
	if err != nil {
		return nil, err
	}

	return &PasswordKey{Key: key, Salt: salt, Iterations: DefaultIterations}, nil
}

// NewSalt returns a new random DefaultSaltSize-byte salt.
func NewSalt() ([]byte, error) {
	return DefaultConfig().NewSalt()
}

// NewSalt returns a new random DefaultSaltSize-byte salt from the configured random source.
func (c *Config) NewSalt() ([]byte, error) {
	return c.RandomBytes(DefaultSaltSize)
}
