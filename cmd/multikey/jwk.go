package main

import (
	"fmt"
	"log/slog"

	"github.com/bluesky-social/go-multikey/multikey"

	"github.com/urfave/cli/v2"
)

var cmdToJWK = &cli.Command{
	Name:      "to-jwk",
	Usage:     "convert a Multikey public key (and optional secret key) to JWK",
	ArgsUsage: `<public-multikey>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "secret",
			Aliases: []string{"s"},
			Usage:   "secret key, in Multikey format; output is a JWK pair",
			EnvVars: []string{"MULTIKEY_SECRET_KEY"},
		},
	},
	Action: runToJWK,
}

var cmdFromJWK = &cli.Command{
	Name:      "from-jwk",
	Usage:     "convert a JWK public key, or JWK pair, to Multikey",
	ArgsUsage: `<file-or-"-">`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "pair",
			Usage: `input is a JWK pair object ("publicKey" and optional "privateKey"); output is a Multikey pair`,
		},
	},
	Action: runFromJWK,
}

func runToJWK(cctx *cli.Context) error {
	pub := cctx.Args().First()
	if pub == "" {
		return fmt.Errorf("need to provide public key as an argument")
	}
	// a did:key is also accepted
	if mb, err := multikey.ParseDIDKey(pub); err == nil {
		slog.Debug("input is a did:key", "multikey", mb)
		pub = mb
	}

	secret := cctx.String("secret")
	if secret == "" {
		jwk, err := multikey.ToJWK(pub)
		if err != nil {
			return err
		}
		return printJSON(cctx.App.Writer, jwk)
	}

	jp, err := multikey.ToJWKPair(multikey.Pair{
		PublicKeyMultibase: pub,
		SecretKeyMultibase: secret,
	})
	if err != nil {
		return err
	}
	slog.Debug("converted multikey pair", "curve", jp.Public.Curve)
	return printJSON(cctx.App.Writer, jp)
}

func runFromJWK(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide a JWK file path (or '-' for stdin) as an argument")
	}
	b, err := readFileOrStdin(path)
	if err != nil {
		return err
	}
	slog.Debug("read JWK input", "path", path, "size", len(b))

	if cctx.Bool("pair") {
		jp, err := multikey.ParseJWKPairBytes(b)
		if err != nil {
			return err
		}
		mk, err := multikey.FromJWKPair(*jp)
		if err != nil {
			return err
		}
		return printJSON(cctx.App.Writer, mk)
	}

	jwk, err := multikey.ParseJWKBytes(b)
	if err != nil {
		return err
	}
	mk, err := multikey.FromJWK(*jwk)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, mk)
	return nil
}
