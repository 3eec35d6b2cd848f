package cryptokey

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bluesky-social/go-multikey/multikey"
)

// Loads a JWK from JSON on disk.
func LoadJWKFile(fpath string) (*multikey.JWK, error) {
	kb, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	return multikey.ParseJWKBytes(kb)
}

// Saves a JWK to disk as JSON. Files are created with owner-only permissions, since they may contain secret key material.
func SaveJWKFile(fpath string, j multikey.JWK) error {
	buf, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal key into JSON: %w", err)
	}

	// ensure data directory exists; won't error if it does
	if err := os.MkdirAll(filepath.Dir(fpath), 0700); err != nil {
		return err
	}
	return os.WriteFile(fpath, buf, 0600)
}
