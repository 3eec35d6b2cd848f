package multikey

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase58(t *testing.T) {
	assert := assert.New(t)

	tbl := []struct {
		raw []byte
		enc string
	}{
		{raw: []byte{}, enc: ""},
		{raw: []byte{0x00}, enc: "1"},
		{raw: []byte{0x00, 0x00, 0x01}, enc: "112"},
		{raw: []byte{57}, enc: "z"},
		{raw: []byte{58}, enc: "21"},
		{raw: []byte("hello world"), enc: "StV1DL6CwTryKyV"},
	}
	for _, row := range tbl {
		assert.Equal(row.enc, EncodeBase58(row.raw))
		dec, err := DecodeBase58(row.enc)
		assert.NoError(err)
		assert.Equal(row.raw, dec)
	}

	for _, bad := range []string{"0", "O", "I", "l", "abc+", "z z"} {
		_, err := DecodeBase58(bad)
		assert.ErrorIs(err, ErrFormat, bad)
	}
}

func TestBase58LeadingZeros(t *testing.T) {
	assert := assert.New(t)

	for n := 0; n < 8; n++ {
		buf := append(make([]byte, n), 0xED, 0x01)
		dec, err := DecodeBase58(EncodeBase58(buf))
		assert.NoError(err)
		assert.Equal(buf, dec)
	}
}

func TestBase64URL(t *testing.T) {
	assert := assert.New(t)

	for size := 0; size < 70; size++ {
		buf := make([]byte, size)
		_, err := rand.Read(buf)
		assert.NoError(err)
		enc := EncodeBase64URL(buf)
		assert.NotContains(enc, "=")
		assert.NotContains(enc, "+")
		assert.NotContains(enc, "/")
		dec, err := DecodeBase64URL(enc)
		assert.NoError(err)
		assert.True(bytes.Equal(buf, dec))
	}

	// URL-safe alphabet
	assert.Equal("-_8", EncodeBase64URL([]byte{0xfb, 0xff}))

	// padding is tolerated
	dec, err := DecodeBase64URL("-_8=")
	assert.NoError(err)
	assert.Equal([]byte{0xfb, 0xff}, dec)

	// two bytes of padding
	dec, err = DecodeBase64URL("-w==")
	assert.NoError(err)
	assert.Equal([]byte{0xfb}, dec)

	tbl := []string{
		"+/8",
		"ab$d",
		"a",
		// line breaks are skipped by the stdlib decoder
		"-_\n8",
		"-_\r8",
		"-_8\n",
		// non-zero trailing bits; canonical form is "-_8"
		"-_9",
		"-x",
		// padding must match the data length
		"-_8=======",
		"-_8==",
		"-w=",
		"-_8A=",
		"=",
	}
	for _, bad := range tbl {
		_, err := DecodeBase64URL(bad)
		assert.ErrorIs(err, ErrFormat, bad)
	}
}
