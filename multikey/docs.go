// Conversion between the W3C "Multikey" key encoding and JSON Web Keys (JWK)
//
// Multikey is the multibase-prefixed, multicodec-tagged binary key encoding defined by the W3C controller document specification (https://www.w3.org/TR/controller-document/#multikey). It is used in DID documents and Verifiable Credential data integrity proofs. JWK (RFC 7517) is the representation produced and consumed by most platform crypto APIs.
//
// The three supported cryptographic schemes are:
//
//   - ECDSA over NIST P-256 / secp256r1 (JWK "EC" / "P-256")
//   - ECDSA over NIST P-384 / secp384r1 (JWK "EC" / "P-384")
//   - EdDSA over Curve25519 / Ed25519 (JWK "OKP" / "Ed25519")
//
// Multikey only stores the compressed form of ECDSA public keys, while JWK carries both curve coordinates; points are compressed and decompressed using golang's stdlib NIST curve implementation.
//
// All functions in this package are pure: they do no I/O, hold no state, and are safe for concurrent use. Failures are reported as errors wrapping one of the ErrFormat, ErrUnknownPreamble, ErrRole, ErrSchemeMismatch, ErrUnknownCurve, ErrMissingField or ErrCurve sentinel values, which can be checked with [errors.Is].
//
// This package does not check that a private key corresponds to the public key it is paired with.
package multikey
