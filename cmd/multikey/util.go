package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bluesky-social/go-multikey/multikey"
)

const stdIOPath = "-"

func getFileOrStdin(path string) (io.ReadCloser, error) {
	if path == stdIOPath {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func readFileOrStdin(path string) ([]byte, error) {
	r, err := getFileOrStdin(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Installs a JSON slog logger on the writer as the default logger. Level names are those accepted by [slog.Level.UnmarshalText] ("debug", "INFO", "warn+2", etc).
func configLogger(writer io.Writer, levelName string) (*slog.Logger, error) {
	var level slog.Level
	if levelName != "" {
		if err := level.UnmarshalText([]byte(levelName)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, nil
}

func printJSON(w io.Writer, val any) error {
	b, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}

func parseScheme(s string) (multikey.Scheme, error) {
	switch s {
	case "", "Ed25519", "ed25519", "EdDSA", "eddsa":
		return multikey.Eddsa, nil
	case "P-256", "p256", "ES256", "secp256r1":
		return multikey.EcdsaP256, nil
	case "P-384", "p384", "ES384", "secp384r1":
		return multikey.EcdsaP384, nil
	default:
		return 0, fmt.Errorf("unknown key type: %s", s)
	}
}
