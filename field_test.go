package ed25519

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestFieldAddSubRoundTrip(t *testing.T) {
	f := func(a, b [32]byte) bool {
		var fa, fb, sum, back FieldElement
		fa.setBytes(&a)
		fb.setBytes(&b)
		sum.add(&fa, &fb)
		back.sub(&sum, &fb)
		return back.equal(&fa) == 1
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestFieldMulInverseIsOne(t *testing.T) {
	f := func(a [32]byte) bool {
		var fa, inv, product FieldElement
		fa.setBytes(&a)
		if fa.isZero() == 1 {
			return true
		}
		inv.invert(&fa)
		product.mul(&fa, &inv)
		return product.equal(&feOne) == 1
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestFieldSquareMatchesMul(t *testing.T) {
	f := func(a [32]byte) bool {
		var fa, sq, mulled FieldElement
		fa.setBytes(&a)
		sq.square(&fa)
		mulled.mul(&fa, &fa)
		return sq.equal(&mulled) == 1
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestFieldNegIsAdditiveInverse(t *testing.T) {
	var a [32]byte
	a[0] = 7
	var fa, neg, sum FieldElement
	fa.setBytes(&a)
	neg.neg(&fa)
	sum.add(&fa, &neg)
	require.EqualValues(t, 1, sum.isZero())
}

func TestFieldBytesRoundTrip(t *testing.T) {
	var a [32]byte
	for i := range a {
		a[i] = byte(i * 7)
	}
	a[31] &= 0x7f // below p, so bytes() round-trips exactly
	var fa FieldElement
	fa.setBytes(&a)
	var out [32]byte
	fa.bytes(&out)
	require.Equal(t, a, out)
}

func TestSqrtRatioOneOverOneIsOne(t *testing.T) {
	cand, ok := sqrtRatio(&feOne, &feOne)
	require.True(t, ok)
	require.EqualValues(t, 1, cand.equal(&feOne))
}

func TestSqrtMinusOneSquaresToMinusOne(t *testing.T) {
	var sq, minusOne FieldElement
	sq.square(&feSqrtM1)
	minusOne.neg(&feOne)
	require.EqualValues(t, 1, sq.equal(&minusOne))
}
