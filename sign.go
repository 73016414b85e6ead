package ed25519

// Signature is a 64-byte Ed25519 signature: a compressed point R
// followed by a scalar S, both little-endian.
type Signature [SignatureSize]byte

func signWithExpanded(xpk *ExtendedPrivateKey, message []byte, h SyncHashFunc) Signature {
	nonceDigest := h(xpk.Prefix[:], message)
	r := scalarFromBytesReduced(nonceDigest[:])

	R := scalarMultBase(&r)
	Renc := encodePoint(&R)

	challengeDigest := h(Renc[:], xpk.PointBytes[:], message)
	k := scalarFromBytesReduced(challengeDigest[:])

	var S Scalar
	S.muladd(&k, &xpk.Scalar, &r)

	var sig Signature
	copy(sig[:32], Renc[:])
	var Senc [32]byte
	S.bytes(&Senc)
	copy(sig[32:], Senc[:])
	return sig
}

// SignSync signs message with the key derived from seed, using the
// installed synchronous hash collaborator for both the nonce and
// challenge derivations. message and seed both accept the package's
// Bytes|Hex dual-input contract. It returns ConfigMissing if no
// synchronous hash has been installed.
func SignSync(message, seed interface{}) (Signature, error) {
	msgBytes, err := NormalizeBytes(message, -1)
	if err != nil {
		return Signature{}, err
	}
	xpk, err := DeriveKeySync(seed)
	if err != nil {
		return Signature{}, err
	}
	h, err := getSyncHash()
	if err != nil {
		return Signature{}, err
	}
	return signWithExpanded(&xpk, msgBytes, h), nil
}

// SignResult is delivered over the channel SignAsync returns.
type SignResult struct {
	Sig Signature
	Err error
}

// SignAsync is the asynchronous counterpart of SignSync: it always
// succeeds in scheduling the work, using the default (or installed)
// async hash collaborator, which needs no prior setup.
func SignAsync(message, seed interface{}) <-chan SignResult {
	out := make(chan SignResult, 1)
	msgBytes, err := NormalizeBytes(message, -1)
	if err != nil {
		out <- SignResult{Err: err}
		close(out)
		return out
	}
	go func() {
		kr := <-DeriveKeyAsync(seed)
		if kr.Err != nil {
			out <- SignResult{Err: kr.Err}
			close(out)
			return
		}
		xpk := kr.Key
		asyncHash := getAsyncHash()

		nonceDigest := <-asyncHash(xpk.Prefix[:], msgBytes)
		r := scalarFromBytesReduced(nonceDigest[:])
		R := scalarMultBase(&r)
		Renc := encodePoint(&R)

		challengeDigest := <-asyncHash(Renc[:], xpk.PointBytes[:], msgBytes)
		k := scalarFromBytesReduced(challengeDigest[:])

		var S Scalar
		S.muladd(&k, &xpk.Scalar, &r)

		var sig Signature
		copy(sig[:32], Renc[:])
		var Senc [32]byte
		S.bytes(&Senc)
		copy(sig[32:], Senc[:])

		out <- SignResult{Sig: sig}
		close(out)
	}()
	return out
}
