package multikey

import (
	"fmt"
	"strings"
)

const didKeyPrefix = "did:key:"

// did:key string encoding of a public Multikey, as would be used in a DID document or credential issuer field:
//
//   - compressed / compacted binary representation
//   - prefix with appropriate curve multicodec bytes
//   - encode bytes with base58btc
//   - add "z" prefix to indicate encoding
//   - add "did:key:" prefix
//
// The Multikey string is validated (including point decompression for ECDSA) before being wrapped.
func DIDKey(publicMultibase string) (string, error) {
	if _, err := ToJWK(publicMultibase); err != nil {
		return "", err
	}
	return didKeyPrefix + publicMultibase, nil
}

// Extracts and validates the public Multikey string from a did:key identifier.
func ParseDIDKey(didKey string) (string, error) {
	if !strings.HasPrefix(didKey, didKeyPrefix) {
		return "", fmt.Errorf("%w: string is not a did:key: %q", ErrFormat, didKey)
	}
	mb := strings.TrimPrefix(didKey, didKeyPrefix)
	if _, err := ToJWK(mb); err != nil {
		return "", err
	}
	return mb, nil
}
