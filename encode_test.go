package ed25519

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBaseRoundTrip(t *testing.T) {
	B := Base()
	enc := encodePoint(&B)
	decoded, err := decodePoint(enc[:], StrictMode)
	require.NoError(t, err)
	require.True(t, B.equal(&decoded))
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := decodePoint(make([]byte, 31), StrictMode)
	require.Error(t, err)
	kind, ok := CauseKind(err)
	require.True(t, ok)
	require.Equal(t, InvalidEncoding, kind)
}

func TestDecodeRejectsYCoordinateWithNoRoot(t *testing.T) {
	// Every byte 0xff (with the sign bit masked off below) does not
	// decode to a valid y for almost all curves; scan a handful of
	// candidates and require at least one rejection, since the exact
	// set of y values lacking a square root is curve-specific.
	found := false
	for b0 := byte(2); b0 < 20; b0++ {
		var enc [32]byte
		for i := range enc {
			enc[i] = 0xff
		}
		enc[0] = b0
		enc[31] &= 0x7f
		if _, err := decodePoint(enc[:], StrictMode); err != nil {
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one candidate y with no square root")
}

func TestEncodeDecodeIdentity(t *testing.T) {
	id := Identity()
	enc := encodePoint(&id)
	decoded, err := decodePoint(enc[:], StrictMode)
	require.NoError(t, err)
	require.True(t, id.equal(&decoded))
}

func TestZIP215AcceptsWhatStrictRejects(t *testing.T) {
	// A non-canonical y encoding (y-coordinate bytes >= p) is rejected
	// by StrictMode and tolerated by ZIP215Mode, provided the reduced
	// value still names a valid curve point.
	// Push the encoding just past the modulus by adding p to the
	// encoded y value: p = 2^255-19, so y+p has the same bit pattern
	// mod p but a non-canonical 255-bit representation as long as the
	// addition does not overflow 255 bits. We construct this via the
	// field modulus directly against a small y to stay in range.
	var small [32]byte
	small[0] = 2
	nonCanonical := addFieldModulus(small)

	_, errStrict := decodePoint(nonCanonical[:], StrictMode)
	require.Error(t, errStrict)

	_, errPermissive := decodePoint(nonCanonical[:], ZIP215Mode)
	// The reduced y (2) may or may not have a square root; either way
	// ZIP215Mode must not fail for the canonicity reason StrictMode
	// failed for.
	if errPermissive != nil {
		kind, ok := CauseKind(errPermissive)
		require.True(t, ok)
		require.NotEqual(t, InvalidEncoding, kind)
	}
}

// addFieldModulus returns the little-endian encoding of p + small,
// where small is itself already a little-endian encoded small
// integer, for constructing non-canonical field element encodings in
// tests.
func addFieldModulus(small [32]byte) [32]byte {
	be := reverseBytes(small[:])
	v := new(big.Int).SetBytes(be)
	v.Add(v, fieldModulus)
	out := v.Bytes()
	if len(out) > 32 {
		out = out[len(out)-32:]
	}
	var result [32]byte
	for i, b := range out {
		result[len(out)-1-i] = b
	}
	return result
}
