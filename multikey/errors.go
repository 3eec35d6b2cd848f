package multikey

import (
	"errors"
)

var (
	// Malformed Multikey text: missing 'z' header, invalid base58 character, truncated bytes, or malformed base64url JWK field.
	ErrFormat = errors.New("multikey: malformed encoding")

	// Decoded two-byte preamble is not one of the registered values.
	ErrUnknownPreamble = errors.New("multikey: unknown preamble")

	// Public key found where a private key was expected, or vice versa.
	ErrRole = errors.New("multikey: wrong key role")

	// Public and private halves of a pair use different schemes.
	ErrSchemeMismatch = errors.New("multikey: scheme mismatch between public and private key")

	// JWK kty/crv combination is not supported.
	ErrUnknownCurve = errors.New("multikey: unsupported JWK key type or curve")

	// Required JWK field is absent.
	ErrMissingField = errors.New("multikey: missing JWK field")

	// Coordinates do not correspond to a valid point on the curve.
	ErrCurve = errors.New("multikey: invalid curve point")
)
