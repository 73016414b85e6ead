package ed25519

import "sync"

// wNAFWindowBits is the window size W used by the fixed-base
// precomputed table and scalar recoding. wNAFHalfWindow is the number
// of distinct positive digit magnitudes a window can produce,
// [1, 2^(W-1)]. wNAFWindowCount is ⌈256/W⌉+1 — one window per byte of a
// 256-bit scalar, plus one extra window to absorb a carry out of the
// top byte.
const (
	wNAFWindowBits  = 8
	wNAFHalfWindow  = 1 << (wNAFWindowBits - 1)
	wNAFWindowCount = 256/wNAFWindowBits + 1
)

// baseTable is the explicit initialize-once container that owns the
// fixed-base precomputed point table, replacing what would otherwise
// be an implicit package-level lazy variable. It is built exactly
// once, on first use, by buildBaseTable, mirroring an explicit-
// container/sync.Once precompute pattern rather than a bare lazily
// initialized package variable.
type baseTable struct {
	// points[w][v-1] holds v * 2^(w*wNAFWindowBits) * B for
	// w in [0, wNAFWindowCount) and v in [1, wNAFHalfWindow]: the
	// windowed digit table a fixed-base wNAF multiply walks. Each
	// window covers wNAFWindowBits bits of the scalar; a negative
	// digit reuses the same entry, negated, at lookup time.
	points [wNAFWindowCount][wNAFHalfWindow]affinePoint
}

type affinePoint struct {
	x, y FieldElement
}

var (
	globalBaseTable     *baseTable
	globalBaseTableOnce sync.Once
)

func getBaseTable() *baseTable {
	globalBaseTableOnce.Do(func() {
		globalBaseTable = buildBaseTable()
	})
	return globalBaseTable
}

// buildBaseTable computes the windowed fixed-base precompute table.
// For each of the wNAFWindowCount window positions it starts from
// 2^(w*W)*B and repeatedly adds that window base to itself to fill in
// every digit magnitude [1, 2^(W-1)] at that position. The expensive
// part (wNAFWindowCount*wNAFWindowBits doublings to establish the window bases,
// wNAFWindowCount*wNAFHalfWindow additions to fill the table) is paid
// once, lazily, the first time any caller needs a fixed-base multiply.
func buildBaseTable() *baseTable {
	t := &baseTable{}

	windowBase := Base()
	for w := 0; w < wNAFWindowCount; w++ {
		acc := Identity()
		for v := 1; v <= wNAFHalfWindow; v++ {
			acc.add(&acc, &windowBase)
			t.points[w][v-1] = toAffine(&acc)
		}
		for j := 0; j < wNAFWindowBits; j++ {
			windowBase.double(&windowBase)
		}
	}
	return t
}

func toAffine(p *Point) affinePoint {
	var zInv FieldElement
	zInv.invert(&p.Z)
	var ap affinePoint
	ap.x.mul(&p.X, &zInv)
	ap.y.mul(&p.Y, &zInv)
	return ap
}

func fromAffine(ap *affinePoint) Point {
	var t FieldElement
	t.mul(&ap.x, &ap.y)
	return Point{X: ap.x, Y: ap.y, Z: feOne, T: t}
}

// scalarMultBase computes s*B using the lazily built windowed table.
// s is recoded into wNAFWindowCount signed W-bit digits: each window's
// byte plus the carry out of the previous window is corrected into
// the range [-2^(W-1)+1, 2^(W-1)] by conditionally subtracting 2^W and
// carrying 1 forward, the standard windowed-NAF construction.
//
// Every window iteration performs exactly one point addition — into
// the real accumulator for a nonzero digit, into a decoy accumulator
// for a zero one — selected with cmovPoint rather than a branch on the
// digit's value, matching the fake-add decoy scalarMultVar already
// carries for the variable-base ladder. Preserve this pattern; it is a
// timing-uniformity defense, not an optimization. Besides
// Point.ScalarMult, its callers pass secret scalar bytes: the signer's
// clamped key (keys.go) and the per-message nonce (sign.go), exactly
// the data a branch keyed on digit value would leak.
func scalarMultBase(s *Scalar) Point {
	table := getBaseTable()

	var enc [32]byte
	s.bytes(&enc)

	acc := Identity()
	decoy := Identity()

	carry := int32(0)
	for w := 0; w < wNAFWindowCount; w++ {
		var windowByte int32
		if w < 32 {
			windowByte = int32(enc[w])
		}
		digit := windowByte + carry

		// carryOut = 1 if digit > wNAFHalfWindow, else 0, computed via
		// the sign bit of (digit-half-1) instead of a branch.
		overflow := (digit - wNAFHalfWindow - 1) >> 31
		carryOut := int32(1) + overflow
		digit -= (1 << wNAFWindowBits) * carryOut
		carry = carryOut

		signMask := digit >> 31
		absDigit := (digit ^ signMask) - signMask
		negCond := -signMask

		nonZero := int32((uint32(digit) | uint32(-digit)) >> 31)
		isZero := 1 - nonZero

		idx := absDigit + isZero // clamp the zero-digit lookup into range; its result is discarded below

		entry := fromAffine(&table.points[w][idx-1])
		var negEntry Point
		negEntry.negate(&entry)

		signed := entry
		cmovPoint(&signed, &negEntry, negCond)

		var realSum, decoySum Point
		realSum.add(&acc, &signed)
		decoySum.add(&decoy, &entry)

		cmovPoint(&acc, &realSum, nonZero)
		cmovPoint(&decoy, &decoySum, isZero)
	}
	return acc
}
