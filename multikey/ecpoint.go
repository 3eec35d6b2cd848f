package multikey

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// Converts between the JWK coordinates of a public key and the bytes stored in Multikey.
type pointCodec interface {
	compress(x, y []byte) ([]byte, error)
	decompress(data []byte) (x, y []byte, err error)
}

// Point (de)compression for the NIST curves. Arithmetic is delegated to the stdlib curve implementation, including the modular square root needed for decompression.
type ecPointCodec struct {
	curve elliptic.Curve
}

var _ pointCodec = ecPointCodec{}

func (c ecPointCodec) byteLen() int {
	return (c.curve.Params().BitSize + 7) / 8
}

// Output is 1+N bytes: 0x02 or 0x03 depending on the parity of y, followed by x as N bytes big-endian.
func (c ecPointCodec) compress(xbuf, ybuf []byte) ([]byte, error) {
	name := c.curve.Params().Name
	size := c.byteLen()
	if len(xbuf) > size || len(ybuf) > size {
		return nil, fmt.Errorf("%w: %s coordinates must be at most %d bytes, got x=%d y=%d", ErrCurve, name, size, len(xbuf), len(ybuf))
	}
	var x, y big.Int
	x.SetBytes(xbuf)
	y.SetBytes(ybuf)

	// MarshalCompressed panics on points which are not on the curve
	if !c.curve.IsOnCurve(&x, &y) {
		return nil, fmt.Errorf("%w: %s public key (not on curve)", ErrCurve, name)
	}
	return elliptic.MarshalCompressed(c.curve, &x, &y), nil
}

// Solves the curve equation for y, picking the root matching the parity byte. Both returned coordinates are N bytes.
func (c ecPointCodec) decompress(data []byte) ([]byte, []byte, error) {
	name := c.curve.Params().Name
	size := c.byteLen()
	if len(data) != 1+size {
		return nil, nil, fmt.Errorf("%w: compressed %s public key must be %d bytes, got %d", ErrCurve, name, 1+size, len(data))
	}
	x, y := elliptic.UnmarshalCompressed(c.curve, data)
	if x == nil {
		return nil, nil, fmt.Errorf("%w: invalid compressed %s public key", ErrCurve, name)
	}
	if !c.curve.IsOnCurve(x, y) {
		return nil, nil, fmt.Errorf("%w: %s public key (not on curve)", ErrCurve, name)
	}
	xbuf := make([]byte, size)
	ybuf := make([]byte, size)
	x.FillBytes(xbuf)
	y.FillBytes(ybuf)
	return xbuf, ybuf, nil
}

// Compresses public key coordinates (raw, big-endian bytes) for the given scheme. For [Eddsa] the x value is returned as-is and y is ignored.
func CompressPoint(s Scheme, x, y []byte) ([]byte, error) {
	info, err := lookupScheme(s)
	if err != nil {
		return nil, err
	}
	return info.codec.compress(x, y)
}

// Recovers public key coordinates from the compressed form stored in Multikey. For [Eddsa] the input is returned as x, and y is nil.
func DecompressPoint(s Scheme, data []byte) (x, y []byte, err error) {
	info, err := lookupScheme(s)
	if err != nil {
		return nil, nil, err
	}
	return info.codec.decompress(data)
}
