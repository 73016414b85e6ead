package ed25519

import "math/big"

// CofactorH is the cofactor h = 8 of the edwards25519 curve group: the
// factor by which the full curve's point count exceeds the
// prime-order subgroup every operation in this package works within.
const CofactorH = 8

// FieldPrime, GroupOrder, CurveA, CurveD, GeneratorX, and GeneratorY
// are the curve parameters named in the data model — p, ℓ, a, d, and
// the standard base point B = (Gx, Gy) — exposed as big.Int values for
// callers assembling their own field or group arithmetic against this
// curve rather than going through Point and Scalar.
var (
	FieldPrime = fieldModulus
	GroupOrder = groupOrder
	CurveA     = big.NewInt(-1)
	CurveD     = feD.toBigInt()
	GeneratorX = func() *big.Int {
		b := Base()
		return b.X.toBigInt()
	}()
	GeneratorY = func() *big.Int {
		b := Base()
		return b.Y.toBigInt()
	}()
)
