package multikey

import (
	"crypto/elliptic"
	"fmt"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
)

// One of the supported cryptographic schemes. The set is closed; adding a scheme means adding a row to the registry tables in this file.
type Scheme uint8

const (
	EcdsaP256 Scheme = 1
	EcdsaP384 Scheme = 2
	Eddsa     Scheme = 3
)

// Indicates whether key material is the public or the private (secret) half of a key pair.
type KeyRole uint8

const (
	Public  KeyRole = 1
	Private KeyRole = 2
)

// The two leading bytes of decoded Multikey material, identifying both the scheme and the role of the key.
//
// These are the unsigned-varint encoding of the corresponding multicodec code (eg, 0x1200 "p256-pub" encodes as [0x80, 0x24]), but they are matched here as fixed byte pairs.
type Preamble [2]byte

type schemeInfo struct {
	// JWK "kty" and "crv" values
	keyType string
	curve   string
	public  Preamble
	private Preamble
	codec   pointCodec
}

var schemes = map[Scheme]schemeInfo{
	EcdsaP256: {
		keyType: "EC",
		curve:   "P-256",
		public:  Preamble{0x80, 0x24},
		private: Preamble{0x86, 0x26},
		codec:   ecPointCodec{curve: elliptic.P256()},
	},
	EcdsaP384: {
		keyType: "EC",
		curve:   "P-384",
		public:  Preamble{0x81, 0x24},
		private: Preamble{0x87, 0x26},
		codec:   ecPointCodec{curve: elliptic.P384()},
	},
	Eddsa: {
		keyType: "OKP",
		curve:   "Ed25519",
		public:  Preamble{0xED, 0x01},
		private: Preamble{0x80, 0x26},
		codec:   eddsaCodec{},
	},
}

type classification struct {
	scheme Scheme
	role   KeyRole
}

// reverse of the schemes table; the two must be kept in sync
var preambles = map[Preamble]classification{
	{0x80, 0x24}: {EcdsaP256, Public},
	{0x86, 0x26}: {EcdsaP256, Private},
	{0x81, 0x24}: {EcdsaP384, Public},
	{0x87, 0x26}: {EcdsaP384, Private},
	{0xED, 0x01}: {Eddsa, Public},
	{0x80, 0x26}: {Eddsa, Private},
}

// All supported schemes, in a stable order.
var Schemes = []Scheme{EcdsaP256, EcdsaP384, Eddsa}

// Determines the scheme and key role for a preamble. Returns an error wrapping [ErrUnknownPreamble] for anything but the six registered byte pairs.
func Classify(p Preamble) (Scheme, KeyRole, error) {
	c, ok := preambles[p]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s (should refer to a public or private Ed25519, P-256 or P-384 key)", ErrUnknownPreamble, p)
	}
	return c.scheme, c.role, nil
}

func (p Preamble) String() string {
	return fmt.Sprintf("0x%02x%02x", p[0], p[1])
}

// Interprets the preamble as the varint-encoded multicodec code it carries. This does not check that the code is one supported by this package; use [Classify] for that.
func (p Preamble) Codec() (multicodec.Code, error) {
	code, n, err := varint.FromUvarint(p[:])
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a varint multicodec: %w", ErrUnknownPreamble, p, err)
	}
	if n != len(p) {
		return 0, fmt.Errorf("%w: %s has trailing bytes after multicodec varint", ErrUnknownPreamble, p)
	}
	return multicodec.Code(code), nil
}

func (s Scheme) String() string {
	switch s {
	case EcdsaP256:
		return "P-256"
	case EcdsaP384:
		return "P-384"
	case Eddsa:
		return "Ed25519"
	default:
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
}

// Human-readable description, including common aliases for the curve.
func (s Scheme) Description() string {
	switch s {
	case EcdsaP256:
		return "ECDSA P-256 / secp256r1 / ES256"
	case EcdsaP384:
		return "ECDSA P-384 / secp384r1 / ES384"
	case Eddsa:
		return "EdDSA Ed25519 / Curve25519"
	default:
		return "unknown"
	}
}

// Returns the registered preamble for this scheme and role. The zero Preamble is returned for an unknown scheme or role.
func (s Scheme) Preamble(role KeyRole) Preamble {
	info, ok := schemes[s]
	if !ok {
		return Preamble{}
	}
	switch role {
	case Public:
		return info.public
	case Private:
		return info.private
	default:
		return Preamble{}
	}
}

// Returns the multicodec code for this scheme and role.
func (s Scheme) Codec(role KeyRole) (multicodec.Code, error) {
	p := s.Preamble(role)
	if p == (Preamble{}) {
		return 0, fmt.Errorf("%w: no preamble registered for %s %s key", ErrUnknownPreamble, s, role)
	}
	return p.Codec()
}

// JWK "kty" value for the scheme, or empty string for an unknown scheme.
func (s Scheme) KeyType() string {
	return schemes[s].keyType
}

// JWK "crv" value for the scheme, or empty string for an unknown scheme.
func (s Scheme) Curve() string {
	return schemes[s].curve
}

// Whether the scheme uses compressed elliptic curve points (ie, has a separate "y" coordinate in JWK).
func (s Scheme) IsECDSA() bool {
	return s == EcdsaP256 || s == EcdsaP384
}

func (r KeyRole) String() string {
	switch r {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("KeyRole(%d)", uint8(r))
	}
}

func lookupScheme(s Scheme) (schemeInfo, error) {
	info, ok := schemes[s]
	if !ok {
		return schemeInfo{}, fmt.Errorf("%w: %s", ErrUnknownCurve, s)
	}
	return info, nil
}
