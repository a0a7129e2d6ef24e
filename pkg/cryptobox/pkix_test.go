package cryptobox

import (
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestPKIX(t *testing.T) {
	t.Parallel()

	for _, c := range []Curve{P256, P384, P521, X25519} {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			kp := generate(t, c)

			der, err := kp.Public.MarshalPKIX()
			if err != nil {
				t.Fatal(err)
			}

			pub, err := ParsePKIXPublicKey(der)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "public key", kp.Public.Bytes(), pub.Bytes())
			assert.Equal(t, "curve", c, pub.Curve())

			der, err = kp.Private.MarshalPKCS8()
			if err != nil {
				t.Fatal(err)
			}

			priv, err := ParsePKCS8PrivateKey(der)
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "private key", kp.Private.Bytes(), priv.Bytes())
			assert.Equal(t, "derived public key", kp.Public.Bytes(), priv.PublicKey().Bytes())
		})
	}
}

func TestPKIX_Unsupported(t *testing.T) {
	t.Parallel()

	for _, c := range []Curve{X448, Secp256k1, Ristretto255} {
		kp := generate(t, c)

		if _, err := kp.Public.MarshalPKIX(); !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("%s: expected ErrUnsupportedAlgorithm but was %v", c, err)
		}

		if _, err := kp.Private.MarshalPKCS8(); !errors.Is(err, ErrUnsupportedAlgorithm) {
			t.Errorf("%s: expected ErrUnsupportedAlgorithm but was %v", c, err)
		}
	}
}

func TestPKIX_Invalid(t *testing.T) {
	t.Parallel()

	garbage := []byte{0x30, 0x03, 0x02, 0x01, 0x00}

	if _, err := ParsePKIXPublicKey(garbage); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Errorf("expected ErrInvalidKeyEncoding but was %v", err)
	}

	if _, err := ParsePKCS8PrivateKey(garbage); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Errorf("expected ErrInvalidKeyEncoding but was %v", err)
	}
}

func TestReconstructPKIX(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Curve = X25519

	alice := generate(t, X25519)
	bob := generate(t, X25519)

	pub, err := bob.Public.MarshalPKIX()
	if err != nil {
		t.Fatal(err)
	}

	priv, err := alice.Private.MarshalPKCS8()
	if err != nil {
		t.Fatal(err)
	}

	kp, err := cfg.ReconstructPKIXHex(EncodeHex(pub), EncodeHex(priv))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "public key", bob.Public.Bytes(), kp.Public.Bytes())
	assert.Equal(t, "private key", alice.Private.Bytes(), kp.Private.Bytes())
	assert.Equal(t, "matched", false, kp.Matched())

	if _, err := ReconstructPKIX(pub, priv); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Errorf("expected ErrInvalidKeyEncoding but was %v", err)
	}

	if _, err := cfg.ReconstructPKIX(priv, pub); !errors.Is(err, ErrInvalidKeyEncoding) {
		t.Errorf("expected ErrInvalidKeyEncoding but was %v", err)
	}
}
