package ed25519

import "math/big"

// Mode selects how strictly decodePoint validates a compressed point.
// Sign and key derivation never decode points; Verify accepts
// a Mode argument so callers doing consensus-critical verification can
// opt into ZIP215Mode.
type Mode int

const (
	// StrictMode enforces RFC 8032 §5.1.3: the y-coordinate encoding
	// must be canonical (< p), and the encoding of x==0 with the sign
	// bit set (the "negative zero" encoding) is rejected outright.
	StrictMode Mode = iota
	// ZIP215Mode relaxes canonicity: a non-canonical y encoding (y in
	// [p, 2^255-1], or the sign bit combined with x==0) is accepted
	// and reduced rather than rejected, matching Zcash's ZIP-215 so
	// that consensus code gets the same accept/reject answer
	// regardless of which conforming implementation produced the
	// encoding.
	ZIP215Mode
)

// encodePoint produces the 32-byte little-endian compressed encoding
// of p: y in the low 255 bits, the sign (parity) of x in the top bit.
func encodePoint(p *Point) [32]byte {
	var zInv, x, y FieldElement
	zInv.invert(&p.Z)
	x.mul(&p.X, &zInv)
	y.mul(&p.Y, &zInv)

	var out [32]byte
	y.bytes(&out)
	if x.isNegative() == 1 {
		out[31] |= 0x80
	}
	return out
}

// decodePoint parses a compressed point encoding under the given
// Mode. It never performs small-order or torsion-free membership
// checks on the result — those are Point.isSmallOrder /
// Point.isTorsionFree, applied explicitly by callers (verify.go) that
// need them; decodePoint's job is purely "is this
// 32-byte string *some* curve point under this Mode's canonicity
// rule".
func decodePoint(b []byte, mode Mode) (Point, error) {
	if len(b) != 32 {
		return Point{}, newErr(InvalidEncoding, "point encoding must be 32 bytes, got %d", len(b))
	}
	var enc [32]byte
	copy(enc[:], b)
	sign := enc[31] >> 7
	enc[31] &= 0x7f

	if mode == StrictMode {
		be := reverseBytes(enc[:])
		v := new(big.Int).SetBytes(be)
		if v.Cmp(fieldModulus) >= 0 {
			return Point{}, newErr(InvalidEncoding, "y coordinate is not canonically encoded")
		}
	}

	var y FieldElement
	y.setBytes(&enc)

	var y2, u, vv, one FieldElement
	one = feOne
	y2.square(&y)
	u.sub(&y2, &one)
	vv.mul(&feD, &y2)
	vv.add(&vv, &one)

	x, ok := sqrtRatio(&u, &vv)
	if !ok {
		return Point{}, newErr(InvalidPoint, "no curve point has the given y coordinate")
	}

	if x.isZero() == 1 && sign == 1 {
		if mode == StrictMode {
			return Point{}, newErr(InvalidEncoding, "negative-zero x encoding is not canonical")
		}
	}

	if x.isNegative() != int(sign) {
		x.neg(&x)
	}

	var t FieldElement
	t.mul(&x, &y)
	return Point{X: x, Y: y, Z: feOne, T: t}, nil
}

// DecodePoint is the exported counterpart of decodePoint: it parses a
// 32-byte compressed point encoding, strictly if zip215 is false and
// permissively (ZIP-215) if true.
func DecodePoint(b []byte, zip215 bool) (Point, error) {
	mode := StrictMode
	if zip215 {
		mode = ZIP215Mode
	}
	return decodePoint(b, mode)
}
