package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/cryptobox/pkg/cryptobox"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type cli struct {
	Curve        string `help:"The key agreement curve." default:"P-256" env:"CRYPTOBOX_CURVE"`
	Cipher       string `help:"The authenticated cipher." default:"AES-256-GCM" env:"CRYPTOBOX_CIPHER"`
	AgreementKDF string `help:"The key agreement KDF." default:"HKDF-SHA-256" env:"CRYPTOBOX_AGREEMENT_KDF" name:"agreement-kdf"`
	PRF          string `help:"The PBKDF2 pseudorandom function." default:"HMAC-SHA-256" env:"CRYPTOBOX_PRF" name:"prf"`
	Verbose      bool   `help:"Log diagnostics to stderr." short:"v"`

	DeriveKey       deriveKeyCmd       `cmd:"" help:"Derive a key from a password."`
	GenerateKeyPair generateKeyPairCmd `cmd:"" help:"Generate a new key pair."`
	Encrypt         encryptCmd         `cmd:"" help:"Encrypt a message."`
	Decrypt         decryptCmd         `cmd:"" help:"Decrypt a message."`
	Random          randomCmd          `cmd:"" help:"Generate random bytes."`
}

// session is the state shared by every command.
type session struct {
	cfg      *cryptobox.Config
	log      zerolog.Logger
	stdin    io.Reader
	stdout   io.Writer
	password func(prompt string) ([]byte, error)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, askPassword); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "cryptobox: %v\n", err)
		os.Exit(1)
	}
}

func run(
	args []string, stdin io.Reader, stdout, stderr io.Writer, password func(string) ([]byte, error),
) error {
	var cli cli

	parser, err := kong.New(&cli,
		kong.Name("cryptobox"),
		kong.Description("Derive keys, generate key pairs, and encrypt messages."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.config()
	if err != nil {
		return err
	}

	s := &session{
		cfg:      cfg,
		log:      newLogger(stderr, cli.Verbose).With().Str("command", ctx.Command()).Logger(),
		stdin:    stdin,
		stdout:   stdout,
		password: password,
	}

	s.log.Debug().
		Stringer("curve", cfg.Curve).
		Stringer("cipher", cfg.Cipher).
		Stringer("agreement_kdf", cfg.AgreementKDF).
		Stringer("prf", cfg.PasswordPRF).
		Msg("starting")

	if err := ctx.Run(s); err != nil {
		s.log.Debug().Err(err).Msg("failed")

		return err
	}

	return nil
}

func (c *cli) config() (*cryptobox.Config, error) {
	var err error

	cfg := cryptobox.DefaultConfig()

	if cfg.Curve, err = cryptobox.ParseCurve(c.Curve); err != nil {
		return nil, err
	}

	if cfg.Cipher, err = cryptobox.ParseCipher(c.Cipher); err != nil {
		return nil, err
	}

	if cfg.AgreementKDF, err = cryptobox.ParseAgreementKDF(c.AgreementKDF); err != nil {
		return nil, err
	}

	if cfg.PasswordPRF, err = cryptobox.ParsePRF(c.PRF); err != nil {
		return nil, err
	}

	return cfg, nil
}

func askPassword(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

// readData returns the argument, or all of stdin if the argument is "-".
func (s *session) readData(arg string) ([]byte, error) {
	if arg != "-" {
		return []byte(arg), nil
	}

	return io.ReadAll(s.stdin)
}

func (s *session) println(v string) error {
	_, err := fmt.Fprintln(s.stdout, v)

	return err
}
