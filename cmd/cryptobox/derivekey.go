package main

import (
	"bytes"
	"os"

	"github.com/codahale/cryptobox/pkg/cryptobox"
	"github.com/tidwall/sjson"
)

type deriveKeyCmd struct {
	PasswordFile string `type:"existingfile" help:"Read the password from a file instead of prompting."`
	Salt         string `help:"The hex-encoded salt. A random salt is used if omitted."`
	Iterations   int    `default:"20000" help:"The number of PBKDF2 iterations."`
	Length       int    `default:"32" help:"The length of the derived key in bytes."`
}

func (cmd *deriveKeyCmd) Run(s *session) error {
	// Read the password.
	password, err := cmd.readPassword(s)
	if err != nil {
		return err
	}

	defer cryptobox.Wipe(password)

	// Decode or generate the salt.
	var salt []byte
	if cmd.Salt != "" {
		salt, err = cryptobox.DecodeHex(cmd.Salt)
	} else {
		salt, err = s.cfg.NewSalt()
	}

	if err != nil {
		return err
	}

	// Derive the key.
	key, err := s.cfg.DeriveKey(password, salt, cmd.Iterations, cmd.Length)
	if err != nil {
		return err
	}

	defer cryptobox.Wipe(key)

	s.log.Debug().
		Int("salt_size", len(salt)).
		Int("iterations", cmd.Iterations).
		Int("key_size", len(key)).
		Msg("derived key")

	out, err := sjson.Set("", "key", cryptobox.EncodeHex(key))
	if err != nil {
		return err
	}

	if out, err = sjson.Set(out, "salt", cryptobox.EncodeHex(salt)); err != nil {
		return err
	}

	if out, err = sjson.Set(out, "iterations", cmd.Iterations); err != nil {
		return err
	}

	return s.println(out)
}

func (cmd *deriveKeyCmd) readPassword(s *session) ([]byte, error) {
	if cmd.PasswordFile == "" {
		return s.password("Enter password: ")
	}

	b, err := os.ReadFile(cmd.PasswordFile)
	if err != nil {
		return nil, err
	}

	password := bytes.TrimRight(b, "\r\n")
	if len(password) < len(b) {
		cryptobox.Wipe(b[len(password):])
	}

	return password, nil
}
