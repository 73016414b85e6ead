package ed25519

import (
	"encoding/hex"
	"math/big"
)

// HexToBytes decodes a hex string into bytes, implementing the
// wire-format contract shared by every external entry point in this
// package: hex digits only (accepted case-insensitively), no
// separators, no "0x" prefix, and an even number of digits.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, newErr(InvalidEncoding, "hex string must have even length, got %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, wrapErr(InvalidEncoding, err, "invalid hex string")
	}
	return b, nil
}

// BytesToHex encodes b as a lowercase hex string, the inverse of
// HexToBytes.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ConcatBytes concatenates parts into a single new slice, the byte
// concatenation utility named alongside hex<->bytes conversion in the
// package's external interface.
func ConcatBytes(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// NormalizeBytes implements the Bytes|Hex input contract that every
// seed, message, signature, and public-key parameter in this
// package's external API accepts: a []byte, or one of the package's
// own fixed-size byte types, passes through unchanged; a string is
// decoded as hex. wantLen < 0 skips the length check, used for
// message parameters that carry no fixed size.
func NormalizeBytes(v interface{}, wantLen int) ([]byte, error) {
	var b []byte
	switch x := v.(type) {
	case []byte:
		b = x
	case string:
		decoded, err := HexToBytes(x)
		if err != nil {
			return nil, err
		}
		b = decoded
	case Signature:
		b = x[:]
	case PublicKey:
		b = x[:]
	case [32]byte:
		b = x[:]
	case [64]byte:
		b = x[:]
	case nil:
		b = nil
	default:
		return nil, newErr(InvalidEncoding, "input must be []byte or a hex string, got %T", v)
	}
	if wantLen >= 0 && len(b) != wantLen {
		return nil, newErr(InvalidEncoding, "expected %d bytes, got %d", wantLen, len(b))
	}
	return b, nil
}

// ModAdd, ModMul, and ModInverse are generic modular-arithmetic
// helpers for callers working with this package's curve constants
// directly, wrapping math/big's own modular routines rather than
// hand-rolling a second implementation alongside FieldElement's
// limb-based one.
func ModAdd(a, b, m *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), m)
}

func ModMul(a, b, m *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), m)
}

func ModInverse(a, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, m)
}
