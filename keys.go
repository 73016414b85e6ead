package ed25519

// SeedSize is the length in bytes of an Ed25519 signing seed.
const SeedSize = 32

// PublicKeySize is the length in bytes of a compressed public key.
const PublicKeySize = 32

// SignatureSize is the length in bytes of an Ed25519 signature.
const SignatureSize = 64

// PublicKey is a compressed Ed25519 public key.
type PublicKey [PublicKeySize]byte

// ExtendedPrivateKey holds everything derived from a 32-byte seed,
// matching the data model's ExtendedPrivateKey entity field for field:
// the raw seed, the clamped scalar-seed half of the hash ("head"), the
// nonce-derivation prefix, the reduced signing scalar, the
// corresponding curve point, and that point's compressed encoding.
// Every field is exported so a caller building its own protocol on top
// of this package (key export formats, alternative encodings, HD
// derivation schemes) never has to re-derive what DeriveKeySync already
// computed.
type ExtendedPrivateKey struct {
	Seed       [SeedSize]byte
	Head       [32]byte
	Prefix     [32]byte
	Scalar     Scalar
	Point      Point
	PointBytes PublicKey
}

// clamp applies the RFC 8032 §5.1.5 clamping operation to the low 32
// bytes of a SHA-512 digest: clear the bottom three bits (forcing the
// scalar to a multiple of the cofactor 8), clear the top bit, and set
// the second-highest bit (fixing the bit length so every clamped
// scalar takes the same number of ladder steps).
func clamp(b *[32]byte) {
	b[0] &= 248
	b[31] &= 127
	b[31] |= 64
}

func expandSeed(digest [64]byte) ExtendedPrivateKey {
	var xpk ExtendedPrivateKey
	copy(xpk.Head[:], digest[:32])
	clamp(&xpk.Head)
	copy(xpk.Prefix[:], digest[32:])

	xpk.Scalar = scalarFromBytesReduced(xpk.Head[:])
	xpk.Point = scalarMultBase(&xpk.Scalar)
	xpk.PointBytes = PublicKey(encodePoint(&xpk.Point))
	return xpk
}

// DeriveKeySync expands a seed into an ExtendedPrivateKey using the
// installed synchronous hash collaborator. seed accepts the package's
// Bytes|Hex dual-input contract: a []byte (or the package's own
// fixed-size byte types) is used as-is, a string is decoded as hex. It
// returns ConfigMissing if no synchronous hash has been installed.
func DeriveKeySync(seed interface{}) (ExtendedPrivateKey, error) {
	seedBytes, err := NormalizeBytes(seed, SeedSize)
	if err != nil {
		return ExtendedPrivateKey{}, err
	}
	h, err := getSyncHash()
	if err != nil {
		return ExtendedPrivateKey{}, err
	}
	digest := h(seedBytes)
	xpk := expandSeed(digest)
	copy(xpk.Seed[:], seedBytes)
	return xpk, nil
}

// DeriveKeyResult is delivered over the channel DeriveKeyAsync returns.
type DeriveKeyResult struct {
	Key ExtendedPrivateKey
	Err error
}

// DeriveKeyAsync is the asynchronous counterpart of DeriveKeySync; it
// always succeeds in scheduling the work (the default async hash
// needs no installed collaborator) and delivers the result, or a
// decode error if seed fails normalization or has the wrong length,
// over the returned channel.
func DeriveKeyAsync(seed interface{}) <-chan DeriveKeyResult {
	out := make(chan DeriveKeyResult, 1)
	seedBytes, err := NormalizeBytes(seed, SeedSize)
	if err != nil {
		out <- DeriveKeyResult{Err: err}
		close(out)
		return out
	}
	digestCh := getAsyncHash()(seedBytes)
	go func() {
		digest := <-digestCh
		xpk := expandSeed(digest)
		copy(xpk.Seed[:], seedBytes)
		out <- DeriveKeyResult{Key: xpk}
		close(out)
	}()
	return out
}

// GetPublicKeySync derives just the public key for seed, discarding
// the rest of the ExtendedPrivateKey.
func GetPublicKeySync(seed interface{}) (PublicKey, error) {
	xpk, err := DeriveKeySync(seed)
	if err != nil {
		return PublicKey{}, err
	}
	return xpk.PointBytes, nil
}

// GetPublicKeyResult is delivered over the channel GetPublicKeyAsync
// returns.
type GetPublicKeyResult struct {
	Key PublicKey
	Err error
}

// GetPublicKeyAsync is the asynchronous counterpart of GetPublicKeySync.
func GetPublicKeyAsync(seed interface{}) <-chan GetPublicKeyResult {
	out := make(chan GetPublicKeyResult, 1)
	go func() {
		r := <-DeriveKeyAsync(seed)
		out <- GetPublicKeyResult{Key: r.Key.PointBytes, Err: r.Err}
		close(out)
	}()
	return out
}
