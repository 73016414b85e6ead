package ed25519

// verifyCore implements both the strict RFC 8032 §5.1.7 check and the
// permissive ZIP-215 check against already-decoded components. Both
// modes reduce to the same cofactored comparison: combine
// [k]A - [S]B via doubleScalarMultVar, add R, clear the cofactor by
// doubling the result three times (8*P = ((P double) double) double), and accept
// iff that lands on the identity. Multiplying by the cofactor 8
// collapses any small-order component to the identity, so the check
// is insensitive to exactly which small-order point (if any) a signer
// or attacker supplied.
//
// StrictMode layers one additional, pre-emptive check on top: it
// rejects a small-order A outright, surfaced to the caller only as a
// false return since Verify never returns an error, so that a caller
// relying on StrictMode never accepts a signature from a degenerate
// public key even though the cofactored comparison below would itself
// tolerate one. R is not subject to this extra check under either
// mode: a small-order R is absorbed by the cofactor-clearing
// comparison the same way a small-order A would be.
func verifyCore(sig *Signature, message []byte, pub *PublicKey, h SyncHashFunc, mode Mode) bool {
	A, err := decodePoint(pub[:], mode)
	if err != nil {
		return false
	}
	R, err := decodePoint(sig[:32], mode)
	if err != nil {
		return false
	}
	S, err := scalarFromCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}

	if mode == StrictMode && A.isSmallOrder() {
		return false
	}

	challengeDigest := h(sig[:32], pub[:], message)
	k := scalarFromBytesReduced(challengeDigest[:])
	negS := S.Negate()

	B := Base()
	combined := doubleScalarMultVar(&k, &A, &negS, &B)

	var P Point
	P.add(&R, &combined)
	P.double(&P)
	P.double(&P)
	P.double(&P)

	id := Identity()
	return P.equal(&id)
}

// VerifySync reports whether sig is a valid signature over message
// under pub, using the installed synchronous hash collaborator. sig,
// message, and pub all accept the package's Bytes|Hex dual-input
// contract. Unlike Sign and key derivation it does not propagate a
// ConfigMissing or malformed-input error — any normalization failure
// or missing collaborator simply yields false, since Verify never
// throws.
func VerifySync(sig, message, pub interface{}, mode Mode) bool {
	sigBytes, err := NormalizeBytes(sig, SignatureSize)
	if err != nil {
		return false
	}
	msgBytes, err := NormalizeBytes(message, -1)
	if err != nil {
		return false
	}
	pubBytes, err := NormalizeBytes(pub, PublicKeySize)
	if err != nil {
		return false
	}
	h, err := getSyncHash()
	if err != nil {
		return false
	}
	var sigArr Signature
	copy(sigArr[:], sigBytes)
	var pubArr PublicKey
	copy(pubArr[:], pubBytes)
	return verifyCore(&sigArr, msgBytes, &pubArr, h, mode)
}

// VerifyAsync is the asynchronous counterpart of VerifySync. It always
// produces a result, since the default async hash needs no
// installation; a normalization failure resolves to false on the
// returned channel rather than panicking.
func VerifyAsync(sig, message, pub interface{}, mode Mode) <-chan bool {
	out := make(chan bool, 1)
	sigBytes, errSig := NormalizeBytes(sig, SignatureSize)
	msgBytes, errMsg := NormalizeBytes(message, -1)
	pubBytes, errPub := NormalizeBytes(pub, PublicKeySize)
	if errSig != nil || errMsg != nil || errPub != nil {
		out <- false
		close(out)
		return out
	}
	var sigArr Signature
	copy(sigArr[:], sigBytes)
	var pubArr PublicKey
	copy(pubArr[:], pubBytes)
	go func() {
		asyncHash := getAsyncHash()
		syncShim := func(parts ...[]byte) [64]byte {
			return <-asyncHash(parts...)
		}
		out <- verifyCore(&sigArr, msgBytes, &pubArr, syncShim, mode)
		close(out)
	}()
	return out
}
