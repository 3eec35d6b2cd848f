package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bluesky-social/go-multikey/cryptokey"
	"github.com/bluesky-social/go-multikey/multikey"

	"github.com/urfave/cli/v2"
)

var cmdGenerate = &cli.Command{
	Name:  "generate",
	Usage: "outputs a new key pair",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "indicate curve type (Ed25519 is default; also P-256, P-384)",
			EnvVars: []string{"MULTIKEY_KEY_TYPE"},
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: 'multikey' or 'jwk'",
			Value: "multikey",
		},
		&cli.StringFlag{
			Name:  "jwk-file",
			Usage: "also save the private key to this path, as JWK",
		},
	},
	Action: runGenerate,
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "parses and outputs metadata about a public or secret Multikey",
	ArgsUsage: `<multikey-or-did:key>`,
	Action:    runInspect,
}

func runGenerate(cctx *cli.Context) error {
	scheme, err := parseScheme(cctx.String("type"))
	if err != nil {
		return err
	}
	sk, err := cryptokey.Generate(scheme)
	if err != nil {
		return err
	}
	jp, err := cryptokey.ExportPair(sk)
	if err != nil {
		return err
	}
	slog.Debug("generated key pair", "scheme", scheme)

	if p := cctx.String("jwk-file"); p != "" {
		if err := cryptokey.SaveJWKFile(p, *jp.Private); err != nil {
			return err
		}
		slog.Info("saved private key", "path", p)
	}

	switch cctx.String("format") {
	case "jwk":
		return printJSON(cctx.App.Writer, jp)
	case "multikey", "":
		mk, err := multikey.FromJWKPair(*jp)
		if err != nil {
			return err
		}
		return printJSON(cctx.App.Writer, mk)
	default:
		return fmt.Errorf("unknown output format: %s", cctx.String("format"))
	}
}

func runInspect(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide key as an argument")
	}
	encoding := "Multikey"
	if strings.HasPrefix(s, "did:key:") {
		mb, err := multikey.ParseDIDKey(s)
		if err != nil {
			return err
		}
		s = mb
		encoding = "DID Key"
	}

	info, err := multikey.Inspect(s)
	if err != nil {
		return err
	}
	w := cctx.App.Writer
	fmt.Fprintf(w, "Type: %s %s key\n", info.Scheme.Description(), info.Role)
	fmt.Fprintf(w, "Encoding: %s\n", encoding)
	fmt.Fprintf(w, "Multicodec: %s (%s)\n", info.Codec, info.Preamble)
	fmt.Fprintf(w, "Key Length: %d bytes\n", info.KeyLength)

	if info.Role != multikey.Public {
		return nil
	}
	jwk, err := multikey.ToJWK(s)
	if err != nil {
		return err
	}
	tp, err := cryptokey.Thumbprint(*jwk)
	if err != nil {
		return err
	}
	did, err := multikey.DIDKey(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "JWK Thumbprint: %s\n", tp)
	fmt.Fprintf(w, "As DID Key: %s\n", did)
	return nil
}
