package multikey

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// Encodes bytes with the bitcoin base58 alphabet. Leading zero bytes are kept, as leading '1' characters.
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}

// Decodes bitcoin-alphabet base58 text. Returns an error wrapping [ErrFormat] if any character is outside the alphabet.
func DecodeBase58(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	buf, err := base58.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base58: %w", ErrFormat, err)
	}
	return buf, nil
}

// Encodes bytes as base64url (RFC 4648 URL-safe alphabet) with no padding, as used in JWK fields.
func EncodeBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decodes base64url text. Trailing '=' padding is tolerated only when it matches the input length. Line breaks, non-canonical trailing bits, and characters outside the URL-safe alphabet (including '+' and '/') are an error wrapping [ErrFormat].
func DecodeBase64URL(text string) ([]byte, error) {
	// the stdlib decoder silently skips CR and LF, even in strict mode
	if strings.ContainsAny(text, "\r\n") {
		return nil, fmt.Errorf("%w: invalid base64url: contains line break", ErrFormat)
	}
	trimmed := strings.TrimRight(text, "=")
	if pad := len(text) - len(trimmed); pad > 0 {
		if pad > 2 || pad != (4-len(trimmed)%4)%4 {
			return nil, fmt.Errorf("%w: invalid base64url: %d padding characters for %d characters of data", ErrFormat, pad, len(trimmed))
		}
	}
	buf, err := base64.RawURLEncoding.Strict().DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64url: %w", ErrFormat, err)
	}
	return buf, nil
}
