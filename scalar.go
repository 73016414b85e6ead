package ed25519

import "math/big"

// groupOrder is ℓ = 2^252 + 27742317777372353535851937790883648493, the
// order of the edwards25519 prime-order subgroup.
var groupOrder, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed",
	16,
)

// Scalar represents an integer modulo ℓ. Per the package's own
// performance note, native big-integer arithmetic is an acceptable
// implementation of this component: a fixed 64-bit-limb scalar
// representation is a standard optimization that would not change any
// externally observable behavior, so Scalar wraps math/big directly
// rather than hand-rolling limb arithmetic mod ℓ.
type Scalar struct {
	v big.Int
}

func newScalar(v *big.Int) Scalar {
	var s Scalar
	s.v.Mod(v, groupOrder)
	return s
}

// scalarFromBytesReduced interprets b as a little-endian integer and
// reduces it mod ℓ. Used for hash outputs (64 bytes) that must be
// brought into the scalar field before use as a nonce or challenge.
func scalarFromBytesReduced(b []byte) Scalar {
	be := reverseBytes(b)
	v := new(big.Int).SetBytes(be)
	return newScalar(v)
}

// scalarFromCanonicalBytes parses a 32-byte little-endian encoding
// that must already be the reduced representative in [0, ℓ); it
// returns an error otherwise. This is the strict decode used for the
// `s` half of a signature.
func scalarFromCanonicalBytes(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, newErr(InvalidEncoding, "scalar must be 32 bytes, got %d", len(b))
	}
	be := reverseBytes(b)
	v := new(big.Int).SetBytes(be)
	if v.Cmp(groupOrder) >= 0 {
		return Scalar{}, newErr(InvalidScalar, "scalar is not reduced mod the group order")
	}
	return Scalar{v: *v}, nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// bytes writes the 32-byte little-endian canonical encoding of s to out.
func (s *Scalar) bytes(out *[32]byte) {
	be := s.v.Bytes()
	for i, v := range be {
		out[len(be)-1-i] = v
	}
	for i := len(be); i < 32; i++ {
		out[i] = 0
	}
}

func (s *Scalar) isZero() bool {
	return s.v.Sign() == 0
}

func (s *Scalar) add(a, b *Scalar) *Scalar {
	s.v.Add(&a.v, &b.v)
	s.v.Mod(&s.v, groupOrder)
	return s
}

func (s *Scalar) mul(a, b *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	s.v.Mod(&s.v, groupOrder)
	return s
}

// muladd sets s = a*b + c (mod ℓ), the combined step Sign needs for
// S = r + k*s.
func (s *Scalar) muladd(a, b, c *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	s.v.Add(&s.v, &c.v)
	s.v.Mod(&s.v, groupOrder)
	return s
}

// bitLen returns the number of bits in the scalar's canonical
// representative, used to bound doubleScalarMultVar's loop count.
func (s *Scalar) bitLen() int {
	return s.v.BitLen()
}

// bit returns the i'th least-significant bit of s's canonical
// representative.
func (s *Scalar) bit(i uint) uint {
	return s.v.Bit(int(i))
}

// NewScalar reduces v mod ℓ and returns the resulting Scalar, the
// exported constructor for callers assembling scalars from their own
// big.Int arithmetic.
func NewScalar(v *big.Int) Scalar {
	return newScalar(v)
}

// ScalarFromBytes interprets b as a little-endian integer and reduces
// it mod ℓ, the exported counterpart of the hash-output reduction
// Sign and Verify use for nonces and challenges.
func ScalarFromBytes(b []byte) Scalar {
	return scalarFromBytesReduced(b)
}

// ScalarFromCanonicalBytes parses a 32-byte little-endian encoding
// that must already lie in [0, ℓ).
func ScalarFromCanonicalBytes(b []byte) (Scalar, error) {
	return scalarFromCanonicalBytes(b)
}

// Bytes returns the 32-byte little-endian canonical encoding of s.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	s.bytes(&out)
	return out
}

// Hex returns the lowercase hex encoding of s's canonical bytes.
func (s Scalar) Hex() string {
	b := s.Bytes()
	return BytesToHex(b[:])
}

// BigInt returns s's representative in [0, ℓ) as a big.Int.
func (s Scalar) BigInt() *big.Int {
	return new(big.Int).Set(&s.v)
}

// IsZero reports whether s is the zero scalar.
func (s Scalar) IsZero() bool {
	return s.isZero()
}

// Add returns s+other mod ℓ.
func (s Scalar) Add(other Scalar) Scalar {
	var out Scalar
	out.add(&s, &other)
	return out
}

// Mul returns s*other mod ℓ.
func (s Scalar) Mul(other Scalar) Scalar {
	var out Scalar
	out.mul(&s, &other)
	return out
}

// Negate returns -s mod ℓ.
func (s Scalar) Negate() Scalar {
	var out Scalar
	out.v.Neg(&s.v)
	out.v.Mod(&out.v, groupOrder)
	return out
}
