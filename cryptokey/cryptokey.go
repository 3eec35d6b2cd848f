// Conversion between JWK and native golang crypto key handles, for the curves supported by the multikey package.
//
// Public keys are *ecdsa.PublicKey or ed25519.PublicKey; private keys are *ecdsa.PrivateKey or ed25519.PrivateKey. JWK parsing and serialization is implemented using https://github.com/lestrrat-go/jwx.
package cryptokey

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/bluesky-social/go-multikey/multikey"

	"github.com/lestrrat-go/jwx/v2/jwk"
)

// Creates a secure new key pair for the given scheme.
func Generate(scheme multikey.Scheme) (crypto.Signer, error) {
	switch scheme {
	case multikey.EcdsaP256:
		sk, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("P-256/secp256r1 key generation failed: %w", err)
		}
		return sk, nil
	case multikey.EcdsaP384:
		sk, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("P-384/secp384r1 key generation failed: %w", err)
		}
		return sk, nil
	case multikey.Eddsa:
		_, sk, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("Ed25519 key generation failed: %w", err)
		}
		return sk, nil
	default:
		return nil, fmt.Errorf("%w: %s", multikey.ErrUnknownCurve, scheme)
	}
}

// Loads a native public key from a JWK. Any private key material in the JWK is ignored.
func PublicKey(j multikey.JWK) (crypto.PublicKey, error) {
	scheme, err := multikey.SchemeFromJWK(j)
	if err != nil {
		return nil, err
	}
	j.D = ""
	key, err := parseKey(j)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case multikey.EcdsaP256, multikey.EcdsaP384:
		var pk ecdsa.PublicKey
		if err := key.Raw(&pk); err != nil {
			return nil, fmt.Errorf("%w: %s public key: %w", multikey.ErrCurve, scheme, err)
		}
		if !pk.Curve.IsOnCurve(pk.X, pk.Y) {
			return nil, fmt.Errorf("%w: %s public key (not on curve)", multikey.ErrCurve, scheme)
		}
		return &pk, nil
	default:
		var pk ed25519.PublicKey
		if err := key.Raw(&pk); err != nil {
			return nil, fmt.Errorf("%w: Ed25519 public key: %w", multikey.ErrCurve, err)
		}
		return pk, nil
	}
}

// Loads a native private key from a JWK, which must include the "d" field.
func PrivateKey(j multikey.JWK) (crypto.Signer, error) {
	scheme, err := multikey.SchemeFromJWK(j)
	if err != nil {
		return nil, err
	}
	if j.D == "" {
		return nil, fmt.Errorf("%w: d value is missing from %s private key", multikey.ErrMissingField, scheme)
	}
	key, err := parseKey(j)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case multikey.EcdsaP256, multikey.EcdsaP384:
		var sk ecdsa.PrivateKey
		if err := key.Raw(&sk); err != nil {
			return nil, fmt.Errorf("%w: %s private key: %w", multikey.ErrCurve, scheme, err)
		}
		return &sk, nil
	default:
		var sk ed25519.PrivateKey
		if err := key.Raw(&sk); err != nil {
			return nil, fmt.Errorf("%w: Ed25519 private key: %w", multikey.ErrCurve, err)
		}
		return sk, nil
	}
}

// Exports a native public key as a JWK.
func FromPublicKey(pub crypto.PublicKey) (*multikey.JWK, error) {
	switch k := pub.(type) {
	case *ecdsa.PublicKey:
		if _, err := ecdsaScheme(k.Curve); err != nil {
			return nil, err
		}
	case ed25519.PublicKey:
		if len(k) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("%w: Ed25519 public key must be %d bytes", multikey.ErrCurve, ed25519.PublicKeySize)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported public key type: %T", multikey.ErrUnknownCurve, pub)
	}
	return exportKey(pub)
}

// Exports a native private key as a JWK, including the public coordinates.
func FromPrivateKey(priv crypto.PrivateKey) (*multikey.JWK, error) {
	switch k := priv.(type) {
	case *ecdsa.PrivateKey:
		if _, err := ecdsaScheme(k.Curve); err != nil {
			return nil, err
		}
	case ed25519.PrivateKey:
		if len(k) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("%w: Ed25519 private key must be %d bytes", multikey.ErrCurve, ed25519.PrivateKeySize)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported private key type: %T", multikey.ErrUnknownCurve, priv)
	}
	return exportKey(priv)
}

// Exports a native key pair as a JWK pair, shaped the same as the output of [multikey.ToJWKPair].
func ExportPair(sk crypto.Signer) (*multikey.JWKPair, error) {
	pub, err := FromPublicKey(sk.Public())
	if err != nil {
		return nil, err
	}
	priv, err := FromPrivateKey(sk)
	if err != nil {
		return nil, err
	}
	pub.KeyOps = []string{"verify"}
	pub.Ext = true
	priv.KeyOps = []string{"sign"}
	priv.Ext = true
	return &multikey.JWKPair{Public: *pub, Private: priv}, nil
}

// RFC 7638 JWK thumbprint (SHA-256, base64url encoded), of the public part of the key. Commonly used as a "kid" value.
func Thumbprint(j multikey.JWK) (string, error) {
	if _, err := multikey.SchemeFromJWK(j); err != nil {
		return "", err
	}
	j.D = ""
	key, err := parseKey(j)
	if err != nil {
		return "", err
	}
	tp, err := key.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", fmt.Errorf("computing JWK thumbprint: %w", err)
	}
	return multikey.EncodeBase64URL(tp), nil
}

func ecdsaScheme(curve elliptic.Curve) (multikey.Scheme, error) {
	switch curve {
	case elliptic.P256():
		return multikey.EcdsaP256, nil
	case elliptic.P384():
		return multikey.EcdsaP384, nil
	default:
		return 0, fmt.Errorf("%w: unsupported ECDSA curve: %s", multikey.ErrUnknownCurve, curve.Params().Name)
	}
}

func parseKey(j multikey.JWK) (jwk.Key, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("serializing JWK: %w", err)
	}
	key, err := jwk.ParseKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing JWK: %w", multikey.ErrFormat, err)
	}
	return key, nil
}

func exportKey(raw any) (*multikey.JWK, error) {
	key, err := jwk.FromRaw(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWK: %w", err)
	}
	b, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key into JSON: %w", err)
	}
	out, err := multikey.ParseJWKBytes(b)
	if err != nil {
		return nil, err
	}
	return normalize(out)
}

// Left-pads EC coordinates and scalar to the curve size, as required by RFC 7518 and by Multikey.
func normalize(j *multikey.JWK) (*multikey.JWK, error) {
	scheme, err := multikey.SchemeFromJWK(*j)
	if err != nil {
		return nil, err
	}
	if !scheme.IsECDSA() {
		return j, nil
	}
	size := 32
	if scheme == multikey.EcdsaP384 {
		size = 48
	}
	for _, field := range []*string{&j.X, &j.Y, &j.D} {
		if *field == "" {
			continue
		}
		buf, err := multikey.DecodeBase64URL(*field)
		if err != nil {
			return nil, err
		}
		if len(buf) > size {
			return nil, fmt.Errorf("%w: %s coordinate is %d bytes", multikey.ErrCurve, scheme, len(buf))
		}
		padded := make([]byte, size)
		copy(padded[size-len(buf):], buf)
		*field = multikey.EncodeBase64URL(padded)
	}
	return j, nil
}
