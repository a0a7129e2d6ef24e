package cryptobox

import (
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestParseCurve(t *testing.T) {
	t.Parallel()

	for _, c := range Curves() {
		got, err := ParseCurve(c.String())
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, c.String(), c, got)
	}

	got, err := ParseCurve("x25519")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "lowercase", X25519, got)

	if _, err := ParseCurve("P-192"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}
}

func TestParseCipher(t *testing.T) {
	t.Parallel()

	for _, c := range Ciphers() {
		got, err := ParseCipher(c.String())
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, c.String(), c, got)
	}

	if _, err := ParseCipher("DES"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}
}

func TestParseAgreementKDF(t *testing.T) {
	t.Parallel()

	got, err := ParseAgreementKDF("hkdf-sha-256")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "HKDF", HKDFSHA256, got)

	got, err = ParseAgreementKDF("strobe")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "STROBE", STROBE, got)

	if _, err := ParseAgreementKDF("scrypt"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}
}

func TestParsePRF(t *testing.T) {
	t.Parallel()

	for _, p := range []PRF{HMACSHA1, HMACSHA256, HMACSHA512} {
		got, err := ParsePRF(p.String())
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, p.String(), p, got)
	}

	if _, err := ParsePRF("HMAC-MD5"); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}
}

func TestAlgorithmNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "P-256", "P-256", P256.String())
	assert.Equal(t, "secp256k1", "secp256k1", Secp256k1.String())
	assert.Equal(t, "AES-256-GCM", "AES-256-GCM", AES256GCM.String())
	assert.Equal(t, "unknown curve", "Curve(99)", Curve(99).String())
	assert.Equal(t, "unknown cipher", "Cipher(0)", Cipher(0).String())
	assert.Equal(t, "unknown KDF", "AgreementKDF(9)", AgreementKDF(9).String())
	assert.Equal(t, "unknown PRF", "PRF(9)", PRF(9).String())
}

func TestCipherSizes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AES-256-GCM nonce", 12, AES256GCM.NonceSize())
	assert.Equal(t, "ChaCha20-Poly1305 nonce", 12, ChaCha20Poly1305.NonceSize())
	assert.Equal(t, "XChaCha20-Poly1305 nonce", 24, XChaCha20Poly1305.NonceSize())
	assert.Equal(t, "unknown nonce", 0, Cipher(9).NonceSize())
	assert.Equal(t, "key size", 32, AES256GCM.KeySize())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}

	for name, mutate := range map[string]func(*Config){
		"curve":         func(c *Config) { c.Curve = 0 },
		"cipher":        func(c *Config) { c.Cipher = 42 },
		"agreement KDF": func(c *Config) { c.AgreementKDF = 0 },
		"PRF":           func(c *Config) { c.PasswordPRF = 7 },
	} {
		cfg := DefaultConfig()
		mutate(cfg)

		if err := cfg.Validate(); !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("%s: expected ErrUnsupportedAlgorithm but was %v", name, err)
		}
	}
}

func TestConfig_UnsupportedAlgorithm(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cipher = 42

	if _, err := cfg.FromSharedSecret(make([]byte, 32)); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}

	if _, err := cfg.NewNonce(); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}

	cfg = DefaultConfig()
	cfg.Curve = 0

	if _, err := cfg.GenerateKeyPair(); !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm but was %v", err)
	}
}
