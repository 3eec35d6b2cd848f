package multikey

import (
	"encoding/json"
	"fmt"
)

// Representation of a JSON Web Key (JWK), as relevant to the keys supported by this package.
//
// Coordinate fields are base64url encoded with no padding, and are left empty when absent. Expected to be marshalled/unmarshalled as JSON.
type JWK struct {
	KeyType string   `json:"kty"`
	Curve   string   `json:"crv,omitempty"`
	X       string   `json:"x,omitempty"`
	Y       string   `json:"y,omitempty"`
	D       string   `json:"d,omitempty"`
	KeyOps  []string `json:"key_ops,omitempty"`
	Ext     bool     `json:"ext,omitempty"`
	Use     string   `json:"use,omitempty"`
	Alg     string   `json:"alg,omitempty"`
	KeyID   *string  `json:"kid,omitempty"`
}

// Public JWK with an optional private JWK for the same key.
type JWKPair struct {
	Public  JWK  `json:"publicKey"`
	Private *JWK `json:"privateKey,omitempty"`
}

// Multikey encoded public key with an optional private (secret) key. Field names are those of the W3C Multikey verification method.
type Pair struct {
	PublicKeyMultibase string `json:"publicKeyMultibase"`
	SecretKeyMultibase string `json:"secretKeyMultibase,omitempty"`
}

// Whether the pair includes a private key.
func (p Pair) HasSecret() bool {
	return p.SecretKeyMultibase != ""
}

// Loads a [JWK] from JSON bytes. Only JSON syntax is checked here.
func ParseJWKBytes(b []byte) (*JWK, error) {
	var jwk JWK
	if err := json.Unmarshal(b, &jwk); err != nil {
		return nil, fmt.Errorf("parsing JWK JSON: %w", err)
	}
	return &jwk, nil
}

// Loads a [JWKPair] from JSON bytes, as an object with "publicKey" and optional "privateKey" fields.
func ParseJWKPairBytes(b []byte) (*JWKPair, error) {
	var pair JWKPair
	if err := json.Unmarshal(b, &pair); err != nil {
		return nil, fmt.Errorf("parsing JWK pair JSON: %w", err)
	}
	if pair.Public.KeyType == "" {
		return nil, fmt.Errorf("%w: JWK pair has no publicKey", ErrMissingField)
	}
	return &pair, nil
}

// Loads a [Pair] from JSON bytes, as an object with "publicKeyMultibase" and optional "secretKeyMultibase" fields.
func ParsePairBytes(b []byte) (*Pair, error) {
	var pair Pair
	if err := json.Unmarshal(b, &pair); err != nil {
		return nil, fmt.Errorf("parsing multikey pair JSON: %w", err)
	}
	if pair.PublicKeyMultibase == "" {
		return nil, fmt.Errorf("%w: multikey pair has no publicKeyMultibase", ErrFormat)
	}
	return &pair, nil
}

// Determines the scheme from the JWK "kty" and "crv" fields.
func SchemeFromJWK(jwk JWK) (Scheme, error) {
	switch jwk.KeyType {
	case "":
		return 0, fmt.Errorf("%w: no kty value for the key", ErrUnknownCurve)
	case "EC":
		switch jwk.Curve {
		case "P-256":
			return EcdsaP256, nil
		case "P-384":
			return EcdsaP384, nil
		default:
			return 0, fmt.Errorf("%w: unknown crv value for an EC key: %q", ErrUnknownCurve, jwk.Curve)
		}
	case "OKP":
		if jwk.Curve == "Ed25519" {
			return Eddsa, nil
		}
		return 0, fmt.Errorf("%w: unknown crv value for an OKP key: %q", ErrUnknownCurve, jwk.Curve)
	default:
		return 0, fmt.Errorf("%w: unknown kty value: %q", ErrUnknownCurve, jwk.KeyType)
	}
}
