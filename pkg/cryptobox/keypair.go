package cryptobox

import "fmt"

// KeyPair is a private key and a public key on the same curve.
//
// A generated KeyPair holds matching halves. A reconstructed KeyPair may hold the caller's own
// private key and a peer's public key, which is the form FromKeyAgreement consumes.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// GenerateKeyPair generates a new P-256 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	return DefaultConfig().GenerateKeyPair()
}

// GenerateKeyPair generates a new key pair on the configured curve. It returns
// ErrEntropyUnavailable if the random source fails.
func (c *Config) GenerateKeyPair() (*KeyPair, error) {
	s, err := c.Curve.scheme()
	if err != nil {
		return nil, err
	}

	d, err := s.GenerateKey(c.rand())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	defer Wipe(d)

	sk, err := NewPrivateKey(c.Curve, d)
	if err != nil {
		return nil, err
	}

	return &KeyPair{Public: sk.PublicKey(), Private: sk}, nil
}

// Matched returns true if the public key corresponds to the private key.
func (kp *KeyPair) Matched() bool {
	return kp.Private.PublicKey().Equal(kp.Public)
}

// Destroy wipes the private key.
func (kp *KeyPair) Destroy() {
	kp.Private.Destroy()
}

// Reconstruct decodes a P-256 key pair from the canonical encodings of its halves.
func Reconstruct(encodedPublic, encodedPrivate []byte) (*KeyPair, error) {
	return DefaultConfig().Reconstruct(encodedPublic, encodedPrivate)
}

// Reconstruct decodes a key pair from the canonical encodings of its halves. It returns
// ErrInvalidKeyEncoding if either half is malformed or if either is not on the configured curve.
func (c *Config) Reconstruct(encodedPublic, encodedPrivate []byte) (*KeyPair, error) {
	pk, err := ParsePublicKey(encodedPublic)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}

	sk, err := ParsePrivateKey(encodedPrivate)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}

	return c.pair(pk, sk)
}

// pair checks that both halves are on the configured curve.
func (c *Config) pair(pk *PublicKey, sk *PrivateKey) (*KeyPair, error) {
	if pk.curve != c.Curve || sk.curve != c.Curve {
		sk.Destroy()

		return nil, fmt.Errorf("%w: expected %s keys, got %s public and %s private",
			ErrInvalidKeyEncoding, c.Curve, pk.curve, sk.curve)
	}

	return &KeyPair{Public: pk, Private: sk}, nil
}

// ReconstructHex decodes a P-256 key pair from the hex text of its halves' canonical encodings.
func ReconstructHex(publicHex, privateHex string) (*KeyPair, error) {
	return DefaultConfig().ReconstructHex(publicHex, privateHex)
}

// ReconstructHex decodes a key pair from the hex text of its halves' canonical encodings.
func (c *Config) ReconstructHex(publicHex, privateHex string) (*KeyPair, error) {
	pub, err := DecodeHex(publicHex)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidKeyEncoding, err)
	}

	priv, err := DecodeHex(privateHex)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %w", ErrInvalidKeyEncoding, err)
	}

	defer Wipe(priv)

	return c.Reconstruct(pub, priv)
}
