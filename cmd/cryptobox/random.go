package main

import (
	"github.com/codahale/cryptobox/pkg/cryptobox"
)

type randomCmd struct {
	Size int `default:"32" help:"The number of bytes to generate."`
}

func (cmd *randomCmd) Run(s *session) error {
	b, err := s.cfg.RandomBytes(cmd.Size)
	if err != nil {
		return err
	}

	return s.println(cryptobox.EncodeHex(b))
}
