package ed25519

// cmovFieldElement sets fe to src when cond == 1, and leaves fe
// unchanged when cond == 0, without branching on cond.
func cmovFieldElement(fe, src *FieldElement, cond int32) {
	mask := -cond
	for i := range fe.n {
		fe.n[i] ^= mask & (fe.n[i] ^ src.n[i])
	}
}

// cmovPoint sets p to src when cond == 1, leaving p unchanged
// otherwise.
func cmovPoint(p, src *Point, cond int32) {
	cmovFieldElement(&p.X, &src.X, cond)
	cmovFieldElement(&p.Y, &src.Y, cond)
	cmovFieldElement(&p.Z, &src.Z, cond)
	cmovFieldElement(&p.T, &src.T, cond)
}

// scalarMultVar computes s*p for an arbitrary (variable) base point,
// as needed when verifying a signature against a caller-supplied
// public key or checking subgroup membership. It walks s from the
// most significant of its 256 possible bits down to the least
// significant, doubling unconditionally and performing exactly one
// point addition per bit regardless of whether that bit is set.
//
// The addition's result is always computed against the *real*
// accumulator; a fake-add decoy accumulator absorbs the same shape of
// work on the bits that turn out to be zero, so every iteration of the
// loop does one double and one add no matter the bit pattern. This is
// a timing-uniformity measure, not a performance optimization — see
// the package's design notes on constant-time variable-base
// multiplication.
func scalarMultVar(s *Scalar, p *Point) Point {
	acc := Identity()
	decoy := Identity()
	base := *p

	for i := 255; i >= 0; i-- {
		acc.double(&acc)
		decoy.double(&decoy)

		var realSum, decoySum Point
		realSum.add(&acc, &base)
		decoySum.add(&decoy, &base)

		bit := int32(s.bit(uint(i)))

		cmovPoint(&acc, &realSum, bit)
		cmovPoint(&decoy, &decoySum, 1-bit)
	}
	return acc
}

// doubleScalarMultVar computes a*A + b*B for two variable base points,
// the combined operation strict and ZIP-215 verification both need to
// check [S]B == R + [k]A (rewritten here as -[k]A + [S]B == R, i.e. a
// single double-base multiplication instead of two separate ones
// followed by a subtraction). It is not required to run in constant
// time — the values it combines (a signature's public components) are
// not secret — so it uses plain double-and-add without the fake-add
// decoy, trading the timing-uniformity defense for speed where that
// tradeoff is safe.
func doubleScalarMultVar(a *Scalar, A *Point, b *Scalar, B *Point) Point {
	acc := Identity()
	top := a.bitLen()
	if bl := b.bitLen(); bl > top {
		top = bl
	}
	for i := top - 1; i >= 0; i-- {
		acc.double(&acc)
		if a.bit(uint(i)) == 1 {
			acc.add(&acc, A)
		}
		if b.bit(uint(i)) == 1 {
			acc.add(&acc, B)
		}
	}
	return acc
}
