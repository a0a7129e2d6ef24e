package main

import (
	"github.com/codahale/cryptobox/pkg/cryptobox"
	"github.com/tidwall/sjson"
)

type generateKeyPairCmd struct {
	Format string `enum:"canonical,pkix" default:"canonical" help:"The key encoding: canonical, or X.509/PKCS #8 (pkix)."`
}

func (cmd *generateKeyPairCmd) Run(s *session) error {
	kp, err := s.cfg.GenerateKeyPair()
	if err != nil {
		return err
	}

	defer kp.Destroy()

	s.log.Debug().Stringer("public_key", kp.Public).Str("format", cmd.Format).Msg("generated key pair")

	pub, priv, err := encodeKeyPair(kp, cmd.Format)
	if err != nil {
		return err
	}

	out, err := sjson.Set("", "publicKey", pub)
	if err != nil {
		return err
	}

	if out, err = sjson.Set(out, "privateKey", priv); err != nil {
		return err
	}

	return s.println(out)
}

func encodeKeyPair(kp *cryptobox.KeyPair, format string) (string, string, error) {
	if format != "pkix" {
		pub, err := kp.Public.MarshalText()
		if err != nil {
			return "", "", err
		}

		priv, err := kp.Private.MarshalText()
		if err != nil {
			return "", "", err
		}

		return string(pub), string(priv), nil
	}

	pub, err := kp.Public.MarshalPKIX()
	if err != nil {
		return "", "", err
	}

	priv, err := kp.Private.MarshalPKCS8()
	if err != nil {
		return "", "", err
	}

	defer cryptobox.Wipe(priv)

	return cryptobox.EncodeHex(pub), cryptobox.EncodeHex(priv), nil
}
