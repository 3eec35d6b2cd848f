package multikey

import (
	"fmt"
)

// Converts a Multikey pair to JWK. The public key is required; the secret key is optional, and must use the same scheme.
//
// The public JWK has key_ops ["verify"]; the private JWK repeats the public coordinates, adds "d", and has key_ops ["sign"].
func ToJWKPair(pair Pair) (*JWKPair, error) {
	scheme, pubRaw, err := decodeRole(pair.PublicKeyMultibase, Public)
	if err != nil {
		return nil, err
	}
	info, err := lookupScheme(scheme)
	if err != nil {
		return nil, err
	}

	var privRaw []byte
	if pair.HasSecret() {
		p, raw, err := DecodeString(pair.SecretKeyMultibase)
		if err != nil {
			return nil, err
		}
		s, r, err := Classify(p)
		if err != nil {
			return nil, err
		}
		if s != scheme {
			return nil, fmt.Errorf("%w: public key is %s, secret key is %s", ErrSchemeMismatch, scheme, s)
		}
		if r != Private {
			return nil, fmt.Errorf("%w: %q has the wrong preamble (should refer to a secret key)", ErrRole, pair.SecretKeyMultibase)
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("%w: %q has a preamble but no key material", ErrFormat, pair.SecretKeyMultibase)
		}
		privRaw = raw
	}

	x, y, err := info.codec.decompress(pubRaw)
	if err != nil {
		return nil, err
	}

	pub := JWK{
		KeyType: info.keyType,
		Curve:   info.curve,
		X:       EncodeBase64URL(x),
		KeyOps:  []string{"verify"},
		Ext:     true,
	}
	if y != nil {
		pub.Y = EncodeBase64URL(y)
	}
	out := JWKPair{Public: pub}

	if privRaw != nil {
		priv := pub
		priv.D = EncodeBase64URL(privRaw)
		priv.KeyOps = []string{"sign"}
		out.Private = &priv
	}
	return &out, nil
}

// Converts a single public Multikey string to a public JWK.
func ToJWK(publicMultibase string) (*JWK, error) {
	pair, err := ToJWKPair(Pair{PublicKeyMultibase: publicMultibase})
	if err != nil {
		return nil, err
	}
	return &pair.Public, nil
}

// Converts a JWK pair to Multikey. The public JWK is required; the private JWK is optional, and must have the same kty and crv.
//
// Only the fields needed for encoding are checked: the public coordinates in the private JWK are ignored, and the private scalar is not checked against the public key.
func FromJWKPair(pair JWKPair) (*Pair, error) {
	scheme, err := SchemeFromJWK(pair.Public)
	if err != nil {
		return nil, err
	}
	if pair.Private != nil {
		privScheme, err := SchemeFromJWK(*pair.Private)
		if err != nil {
			return nil, err
		}
		if privScheme != scheme {
			return nil, fmt.Errorf("%w: public key is %s, private key is %s", ErrSchemeMismatch, scheme, privScheme)
		}
	}
	info, err := lookupScheme(scheme)
	if err != nil {
		return nil, err
	}

	x, err := decodeField(pair.Public, "x", pair.Public.X)
	if err != nil {
		return nil, err
	}
	var y []byte
	if scheme.IsECDSA() {
		y, err = decodeField(pair.Public, "y", pair.Public.Y)
		if err != nil {
			return nil, err
		}
	}
	var d []byte
	if pair.Private != nil {
		d, err = decodeField(*pair.Private, "d", pair.Private.D)
		if err != nil {
			return nil, err
		}
	}

	compressed, err := info.codec.compress(x, y)
	if err != nil {
		return nil, err
	}
	out := Pair{
		PublicKeyMultibase: EncodeString(info.public, compressed),
	}
	if d != nil {
		out.SecretKeyMultibase = EncodeString(info.private, d)
	}
	return &out, nil
}

// Converts a single public JWK to a public Multikey string. Any "d" field is ignored.
func FromJWK(jwk JWK) (string, error) {
	pair, err := FromJWKPair(JWKPair{Public: jwk})
	if err != nil {
		return "", err
	}
	return pair.PublicKeyMultibase, nil
}

func decodeField(jwk JWK, name, val string) ([]byte, error) {
	if val == "" {
		return nil, fmt.Errorf("%w: %s value is missing from %s %s key", ErrMissingField, name, jwk.KeyType, jwk.Curve)
	}
	buf, err := DecodeBase64URL(val)
	if err != nil {
		return nil, fmt.Errorf("JWK %s field: %w", name, err)
	}
	return buf, nil
}
