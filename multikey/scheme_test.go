package multikey

import (
	"testing"

	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-varint"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTotality(t *testing.T) {
	assert := assert.New(t)

	found := 0
	for i := 0; i < 0x10000; i++ {
		p := Preamble{byte(i >> 8), byte(i)}
		s, r, err := Classify(p)
		if err != nil {
			assert.ErrorIs(err, ErrUnknownPreamble)
			continue
		}
		found++
		assert.Equal(p, s.Preamble(r))
	}
	assert.Equal(6, found)
}

func TestPreambleTable(t *testing.T) {
	assert := assert.New(t)

	tbl := []struct {
		scheme  Scheme
		role    KeyRole
		bytes   Preamble
		codec   multicodec.Code
		codecID string
	}{
		{Eddsa, Public, Preamble{0xED, 0x01}, multicodec.Ed25519Pub, "ed25519-pub"},
		{Eddsa, Private, Preamble{0x80, 0x26}, multicodec.Ed25519Priv, "ed25519-priv"},
		{EcdsaP256, Public, Preamble{0x80, 0x24}, multicodec.P256Pub, "p256-pub"},
		{EcdsaP256, Private, Preamble{0x86, 0x26}, multicodec.P256Priv, "p256-priv"},
		{EcdsaP384, Public, Preamble{0x81, 0x24}, multicodec.P384Pub, "p384-pub"},
		{EcdsaP384, Private, Preamble{0x87, 0x26}, multicodec.P384Priv, "p384-priv"},
	}

	seen := map[Preamble]bool{}
	for _, row := range tbl {
		assert.Equal(row.bytes, row.scheme.Preamble(row.role))
		assert.Equal(varint.ToUvarint(uint64(row.codec)), row.bytes[:])

		s, r, err := Classify(row.bytes)
		assert.NoError(err)
		assert.Equal(row.scheme, s)
		assert.Equal(row.role, r)

		code, err := row.scheme.Codec(row.role)
		assert.NoError(err)
		assert.Equal(row.codec, code)
		assert.Equal(row.codecID, code.String())

		assert.False(seen[row.bytes])
		seen[row.bytes] = true
	}
	assert.Equal(len(schemes)*2, len(preambles))
}

func TestSchemeMetadata(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("EC", EcdsaP256.KeyType())
	assert.Equal("P-384", EcdsaP384.Curve())
	assert.Equal("OKP", Eddsa.KeyType())
	assert.Equal("Ed25519", Eddsa.String())
	assert.True(EcdsaP384.IsECDSA())
	assert.False(Eddsa.IsECDSA())
	assert.Equal("public", Public.String())
	assert.Equal("private", Private.String())

	unknown := Scheme(9)
	assert.Equal("Scheme(9)", unknown.String())
	assert.Equal(Preamble{}, unknown.Preamble(Public))
	assert.Equal("", unknown.Curve())
	_, err := unknown.Codec(Public)
	assert.ErrorIs(err, ErrUnknownPreamble)
}

func TestPreambleCodec(t *testing.T) {
	assert := assert.New(t)

	code, err := Preamble{0x80, 0x24}.Codec()
	assert.NoError(err)
	assert.Equal(multicodec.P256Pub, code)

	// single-byte varint, with a trailing byte
	_, err = Preamble{0x01, 0x02}.Codec()
	assert.ErrorIs(err, ErrUnknownPreamble)

	assert.Equal("0xed01", Preamble{0xED, 0x01}.String())
}
