package multikey

import (
	"fmt"

	"github.com/multiformats/go-multibase"
)

// Leading character of every Multikey string, signaling base58btc multibase encoding.
const Header = byte(multibase.Base58BTC)

// Splits a Multikey string in to its preamble and raw key bytes. The key bytes are a compressed point for ECDSA public keys, and the unencoded coordinate or scalar otherwise.
//
// The preamble is not checked against the registry; see [Classify].
func DecodeString(text string) (Preamble, []byte, error) {
	if text == "" {
		return Preamble{}, nil, fmt.Errorf("%w: empty string (first character should be a 'z')", ErrFormat)
	}
	if text[0] != Header {
		if name, ok := multibase.EncodingToStr[multibase.Encoding(text[0])]; ok {
			return Preamble{}, nil, fmt.Errorf("%w: multibase %s encoding is not supported (first character should be a 'z')", ErrFormat, name)
		}
		return Preamble{}, nil, fmt.Errorf("%w: %q is not multibase encoded (first character should be a 'z')", ErrFormat, text)
	}
	buf, err := DecodeBase58(text[1:])
	if err != nil {
		return Preamble{}, nil, err
	}
	if len(buf) < len(Preamble{}) {
		return Preamble{}, nil, fmt.Errorf("%w: decoded key is %d bytes, too short for a preamble", ErrFormat, len(buf))
	}
	return Preamble{buf[0], buf[1]}, buf[2:], nil
}

// Prepends the preamble to the key bytes, and encodes as base58btc multibase (including the 'z' header).
func EncodeString(p Preamble, raw []byte) string {
	buf := make([]byte, 0, len(p)+len(raw))
	buf = append(buf, p[:]...)
	buf = append(buf, raw...)
	return string(Header) + EncodeBase58(buf)
}

// Decodes and classifies a Multikey string, and checks it is of the expected role.
func decodeRole(text string, role KeyRole) (Scheme, []byte, error) {
	p, raw, err := DecodeString(text)
	if err != nil {
		return 0, nil, err
	}
	s, r, err := Classify(p)
	if err != nil {
		return 0, nil, err
	}
	if r != role {
		return 0, nil, fmt.Errorf("%w: %q has a %s %s preamble (should refer to a %s key)", ErrRole, text, s, r, role)
	}
	if len(raw) == 0 {
		return 0, nil, fmt.Errorf("%w: %q has a preamble but no key material", ErrFormat, text)
	}
	return s, raw, nil
}

// Metadata about a single Multikey string.
type Info struct {
	Scheme   Scheme
	Role     KeyRole
	Preamble Preamble
	// Multicodec name, eg "p256-pub"
	Codec string
	// Length of the key material after the preamble
	KeyLength int
}

// Decodes and classifies a Multikey string, without converting it. For public ECDSA keys, the compressed point is checked to be on the curve.
func Inspect(text string) (*Info, error) {
	p, raw, err := DecodeString(text)
	if err != nil {
		return nil, err
	}
	s, r, err := Classify(p)
	if err != nil {
		return nil, err
	}
	if r == Public {
		if _, _, err := DecompressPoint(s, raw); err != nil {
			return nil, err
		}
	}
	code, err := p.Codec()
	if err != nil {
		return nil, err
	}
	return &Info{
		Scheme:    s,
		Role:      r,
		Preamble:  p,
		Codec:     code.String(),
		KeyLength: len(raw),
	}, nil
}
