package ed25519

import "math/big"

// Point is a point on the twisted Edwards curve
//
//	-x^2 + y^2 = 1 + d*x^2*y^2   (mod p)
//
// held in extended projective coordinates (X, Y, Z, T) with
// x = X/Z, y = Y/Z, x*y = T/Z. This single flat struct mirrors the
// data model's ExtendedPoint entity directly; there is no separate
// affine/completed/cached coordinate zoo — every operation below
// consumes and produces this one representation, projecting to affine
// only for encoding (see encode.go), equality checks, Affine, and the
// fixed-base table (see basetable.go).
type Point struct {
	X, Y, Z, T FieldElement
}

// Identity is the neutral element (0, 1).
func Identity() Point {
	return Point{X: feZero, Y: feOne, Z: feOne, T: feZero}
}

// Base is the standard edwards25519 base point B, the generator of
// the prime-order subgroup.
func Base() Point {
	return Point{
		X: FieldElement{n: [10]int32{
			-14297830, -7645148, 16144683, -16471763, 27570974,
			-2696100, -26142465, 8378389, 20764389, 8758491,
		}},
		Y: FieldElement{n: [10]int32{
			-26843541, -6710886, 13421773, -13421773, 26843546,
			6710886, -13421773, 13421773, -26843546, -6710886,
		}},
		Z: feOne,
		T: FieldElement{n: [10]int32{
			28827062, -6116119, -27349572, 244363, 8635006,
			11264893, 19351346, 13413597, 16611511, -6414980,
		}},
	}
}

// add sets p to a+b using the HWCD "add-2008-hwcd-3" complete, unified
// formula (Hisil-Wong-Carter-Dawson): 8 field multiplications and one
// multiplication by the curve constant 2d, no branches, correct for
// any pair of extended-coordinate inputs including a == b.
func (p *Point) add(a, b *Point) *Point {
	var A, B, C, D, E, F, G, H FieldElement

	A.sub(&a.Y, &a.X)
	B.sub(&b.Y, &b.X)
	A.mul(&A, &B)

	B.add(&a.Y, &a.X)
	C.add(&b.Y, &b.X)
	B.mul(&B, &C)

	C.mul(&a.T, &b.T)
	C.mul(&C, &fe2D)

	D.mul(&a.Z, &b.Z)
	D.add(&D, &D)

	E.sub(&B, &A)
	F.sub(&D, &C)
	G.add(&D, &C)
	H.add(&B, &A)

	p.X.mul(&E, &F)
	p.Y.mul(&G, &H)
	p.Z.mul(&F, &G)
	p.T.mul(&E, &H)
	return p
}

// sub sets p to a-b.
func (p *Point) sub(a, b *Point) *Point {
	var negB Point
	negB.negate(b)
	return p.add(a, &negB)
}

// double sets p to 2*a using the HWCD doubling formula: 4
// multiplications, 4 squarings, a multiplication by the curve
// constant a=-1 folded into the subtraction, matching
// "dbl-2008-hwcd".
func (p *Point) double(a *Point) *Point {
	var A, B, C, E, G, H, F, sum FieldElement

	A.square(&a.X)
	B.square(&a.Y)
	C.double2(&a.Z)

	sum.add(&a.X, &a.Y)
	E.square(&sum)
	E.sub(&E, &A)
	E.sub(&E, &B)

	G.sub(&B, &A)
	H.add(&A, &B)
	H.neg(&H)

	F.sub(&G, &C)

	p.X.mul(&E, &F)
	p.Y.mul(&G, &H)
	p.Z.mul(&F, &G)
	p.T.mul(&E, &H)
	return p
}

// negate sets p to -a.
func (p *Point) negate(a *Point) *Point {
	p.X.neg(&a.X)
	p.Y = a.Y
	p.Z = a.Z
	p.T.neg(&a.T)
	return p
}

// equal reports whether a and b represent the same curve point,
// comparing their affine coordinates rather than their (non-unique)
// projective representatives.
func (a *Point) equal(b *Point) bool {
	var ax, ay, bx, by, t1, t2 FieldElement
	t1.invert(&a.Z)
	ax.mul(&a.X, &t1)
	ay.mul(&a.Y, &t1)

	t2.invert(&b.Z)
	bx.mul(&b.X, &t2)
	by.mul(&b.Y, &t2)

	return ax.equal(&bx) == 1 && ay.equal(&by) == 1
}

// isSmallOrder reports whether p lies in the curve's 8-element torsion
// subgroup, i.e. whether 8*p is the identity. The identity itself
// satisfies this trivially; callers that need to distinguish "is the
// identity" from "is a nontrivial low-order point" check isZero on the
// affine coordinates separately.
func (p *Point) isSmallOrder() bool {
	var eight Point
	eight.double(p)
	eight.double(&eight)
	eight.double(&eight)
	id := Identity()
	return eight.equal(&id)
}

// isTorsionFree reports whether ℓ*p is the identity, i.e. p lies in
// the prime-order subgroup generated by Base. This is the strict
// membership test a caller can apply to a decoded public key or R
// component when it needs to reject torsion components outright
// rather than relying on cofactor clearing to absorb them.
func (p *Point) isTorsionFree() bool {
	var scaled Point
	var l Scalar
	l.v.Set(groupOrder)
	scaled = scalarMultVar(&l, p)
	id := Identity()
	return scaled.equal(&id)
}

// basePoint is Base's value, compared by representation in
// Point.ScalarMult's fixed/variable-base tie-break.
var basePoint = Base()

// NewAffinePoint lifts the affine coordinates (x, y) into extended
// projective form. It performs no on-curve check; callers that need
// one should go through DecodePoint instead, which validates via
// sqrtRatio.
func NewAffinePoint(x, y *big.Int) Point {
	var xf, yf, t FieldElement
	xf.setFromBigInt(x)
	yf.setFromBigInt(y)
	t.mul(&xf, &yf)
	return Point{X: xf, Y: yf, Z: feOne, T: t}
}

// Add returns p+other.
func (p Point) Add(other Point) Point {
	var out Point
	out.add(&p, &other)
	return out
}

// Sub returns p-other.
func (p Point) Sub(other Point) Point {
	var out Point
	out.sub(&p, &other)
	return out
}

// Negate returns -p.
func (p Point) Negate() Point {
	var out Point
	out.negate(&p)
	return out
}

// Double returns 2*p.
func (p Point) Double() Point {
	var out Point
	out.double(&p)
	return out
}

// Equal reports whether p and other represent the same curve point.
func (p Point) Equal(other Point) bool {
	return p.equal(&other)
}

// ScalarMult returns s*p, routing through the windowed fixed-base
// table when p is (by representation) the standard generator B, and
// through the variable-base ladder otherwise. The tie-break is
// representation equality, not the more expensive projective-equal
// check Equal performs: a point that is merely numerically equal to B
// via a different Z-scaling still takes the slower path, a minor
// efficiency cost rather than a correctness issue.
func (p Point) ScalarMult(s Scalar) Point {
	if p == basePoint {
		return scalarMultBase(&s)
	}
	return scalarMultVar(&s, &p)
}

// ClearCofactor returns h*p = 8*p, collapsing any component of p in
// the curve's small-order subgroup to the identity.
func (p Point) ClearCofactor() Point {
	var out Point
	out.double(&p)
	out.double(&out)
	out.double(&out)
	return out
}

// IsSmallOrder reports whether p lies in the curve's 8-element torsion
// subgroup.
func (p Point) IsSmallOrder() bool {
	return p.isSmallOrder()
}

// IsTorsionFree reports whether p lies in the prime-order subgroup
// generated by Base.
func (p Point) IsTorsionFree() bool {
	return p.isTorsionFree()
}

// Affine projects p to affine (x, y) coordinates as big.Int values.
func (p Point) Affine() (x, y *big.Int) {
	ap := toAffine(&p)
	return ap.x.toBigInt(), ap.y.toBigInt()
}

// Encode returns the 32-byte compressed encoding of p.
func (p Point) Encode() [32]byte {
	return encodePoint(&p)
}

// Hex returns the lowercase hex encoding of p's compressed form.
func (p Point) Hex() string {
	enc := p.Encode()
	return BytesToHex(enc[:])
}
