package multikey

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ecdsaCurves = map[Scheme]elliptic.Curve{
	EcdsaP256: elliptic.P256(),
	EcdsaP384: elliptic.P384(),
}

func TestPointCompressionRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for scheme, curve := range ecdsaCurves {
		size := (curve.Params().BitSize + 7) / 8
		for i := 0; i < 64; i++ {
			sk, err := ecdsa.GenerateKey(curve, rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			x := make([]byte, size)
			y := make([]byte, size)
			sk.X.FillBytes(x)
			sk.Y.FillBytes(y)

			compressed, err := CompressPoint(scheme, x, y)
			assert.NoError(err)
			assert.Equal(1+size, len(compressed))
			assert.Equal(x, compressed[1:])
			if sk.Y.Bit(0) == 0 {
				assert.Equal(byte(0x02), compressed[0])
			} else {
				assert.Equal(byte(0x03), compressed[0])
			}

			x2, y2, err := DecompressPoint(scheme, compressed)
			assert.NoError(err)
			assert.True(bytes.Equal(x, x2))
			assert.True(bytes.Equal(y, y2))
		}
	}
}

func TestPointCompressionGenerator(t *testing.T) {
	assert := assert.New(t)

	// P-256 base point has an odd y coordinate
	params := elliptic.P256().Params()
	x := params.Gx.FillBytes(make([]byte, 32))
	y := params.Gy.FillBytes(make([]byte, 32))

	compressed, err := CompressPoint(EcdsaP256, x, y)
	assert.NoError(err)
	assert.Equal(33, len(compressed))
	assert.Equal(byte(0x03), compressed[0])

	_, y2, err := DecompressPoint(EcdsaP256, compressed)
	assert.NoError(err)
	assert.Equal(y, y2)

	// flipping the parity byte selects the other root, p - y
	compressed[0] = 0x02
	_, y3, err := DecompressPoint(EcdsaP256, compressed)
	assert.NoError(err)
	assert.NotEqual(y, y3)
}

func TestPointCompressionShortCoordinates(t *testing.T) {
	assert := assert.New(t)

	// some encoders strip leading zero bytes from coordinates
	curve := elliptic.P256()
	var sk *ecdsa.PrivateKey
	var err error
	for {
		sk, err = ecdsa.GenerateKey(curve, rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		if len(sk.X.Bytes()) < 32 {
			break
		}
	}
	compressed, err := CompressPoint(EcdsaP256, sk.X.Bytes(), sk.Y.Bytes())
	assert.NoError(err)
	x, _, err := DecompressPoint(EcdsaP256, compressed)
	assert.NoError(err)
	assert.Equal(32, len(x))
	assert.Equal(byte(0), x[0])
}

func TestPointCompressionInvalid(t *testing.T) {
	assert := assert.New(t)

	params := elliptic.P256().Params()
	x := params.Gx.FillBytes(make([]byte, 32))
	y := params.Gy.FillBytes(make([]byte, 32))

	// not on curve
	badY := append([]byte{}, y...)
	badY[31] ^= 0x01
	_, err := CompressPoint(EcdsaP256, x, badY)
	assert.ErrorIs(err, ErrCurve)

	// coordinates too long
	_, err = CompressPoint(EcdsaP256, append([]byte{0x00}, x...), y)
	assert.ErrorIs(err, ErrCurve)

	// P-256 point is not a P-384 point
	_, err = CompressPoint(EcdsaP384, x, y)
	assert.ErrorIs(err, ErrCurve)

	compressed, err := CompressPoint(EcdsaP256, x, y)
	assert.NoError(err)

	// x larger than the field prime
	tooBig := bytes.Repeat([]byte{0xFF}, 33)
	tooBig[0] = 0x02
	_, _, err = DecompressPoint(EcdsaP256, tooBig)
	assert.ErrorIs(err, ErrCurve)

	// bad parity byte
	bad := append([]byte{}, compressed...)
	bad[0] = 0x04
	_, _, err = DecompressPoint(EcdsaP256, bad)
	assert.ErrorIs(err, ErrCurve)

	// wrong lengths
	_, _, err = DecompressPoint(EcdsaP256, compressed[:32])
	assert.ErrorIs(err, ErrCurve)
	_, _, err = DecompressPoint(EcdsaP384, compressed)
	assert.ErrorIs(err, ErrCurve)
	_, _, err = DecompressPoint(EcdsaP256, nil)
	assert.ErrorIs(err, ErrCurve)

	_, _, err = DecompressPoint(Scheme(0), compressed)
	assert.ErrorIs(err, ErrUnknownCurve)
}

func TestEddsaPassThrough(t *testing.T) {
	assert := assert.New(t)

	raw := make([]byte, 32)
	_, err := rand.Read(raw)
	assert.NoError(err)

	c, err := CompressPoint(Eddsa, raw, nil)
	assert.NoError(err)
	assert.Equal(raw, c)

	x, y, err := DecompressPoint(Eddsa, c)
	assert.NoError(err)
	assert.Equal(raw, x)
	assert.Nil(y)
}
