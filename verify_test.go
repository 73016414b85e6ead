package ed25519

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifySyncKnownVectorSingleByteMessage(t *testing.T) {
	seed, _ := hex.DecodeString("4ccd089b28ff96da9db6c346ec114e0f5b8a319b35ab6c6a3163e3f5e4c6e4c5")
	message, _ := hex.DecodeString("72")
	wantPub, _ := hex.DecodeString("c6c5e590e29d286b06f391bdf19e409d3a87c80033d7dc484fdb674b26937782")
	wantSig, _ := hex.DecodeString(
		"df58801a45dd31d5fa39cad38d0737fada77a57aba0960833477d64b1ae131" +
			"4be2f6242eb523fb736229ad5c03c431a8a3ea6c4e2366f5d2ff3e257dafc62706")

	xpk, err := DeriveKeySync(seed)
	require.NoError(t, err)
	require.Equal(t, wantPub, xpk.PointBytes[:])

	sig, err := SignSync(message, seed)
	require.NoError(t, err)
	require.Equal(t, wantSig, sig[:])

	var sigArr Signature
	copy(sigArr[:], wantSig)
	var pubArr PublicKey
	copy(pubArr[:], wantPub)
	require.True(t, VerifySync(sigArr, message, pubArr, StrictMode))
}

func TestVerifySyncRejectsFlippedMessageByte(t *testing.T) {
	seed := make([]byte, 32)
	seed[1] = 0xaa
	message := []byte("original message")

	pub, err := GetPublicKeySync(seed)
	require.NoError(t, err)
	sig, err := SignSync(message, seed)
	require.NoError(t, err)

	tampered := append([]byte{}, message...)
	tampered[0] ^= 1
	require.False(t, VerifySync(sig, tampered, pub, StrictMode))
}

func TestVerifySyncRejectsUnreducedS(t *testing.T) {
	seed := make([]byte, 32)
	message := []byte("s must be reduced")
	pub, err := GetPublicKeySync(seed)
	require.NoError(t, err)
	sig, err := SignSync(message, seed)
	require.NoError(t, err)

	var tooLarge [32]byte
	groupOrder.FillBytes(tooLarge[:])
	for i, j := 0, 31; i < j; i, j = i+1, j-1 {
		tooLarge[i], tooLarge[j] = tooLarge[j], tooLarge[i]
	}
	copy(sig[32:], tooLarge[:])

	require.False(t, VerifySync(sig, message, pub, StrictMode))
}

func TestVerifySyncAndAsyncAgree(t *testing.T) {
	seed := make([]byte, 32)
	seed[7] = 0x55
	message := []byte("agree on verify too")

	pub, err := GetPublicKeySync(seed)
	require.NoError(t, err)
	sig, err := SignSync(message, seed)
	require.NoError(t, err)

	syncResult := VerifySync(sig, message, pub, StrictMode)
	asyncResult := <-VerifyAsync(sig, message, pub, StrictMode)
	require.Equal(t, syncResult, asyncResult)
	require.True(t, syncResult)
}

func TestVerifySyncRejectsWrongLengthSignatureComponents(t *testing.T) {
	require.False(t, VerifySync([]byte("short"), []byte("x"), []byte("short"), StrictMode))
}

// TestZIP215AcceptsSmallOrderPublicKeyStrictRejects exercises the
// divergence ZIP215Mode exists for: a signature verified against a
// genuine small-order public key. (0, p-1) is the curve's unique point
// of order 2 — a nontrivial element of the 8-torsion subgroup, built
// here directly from its affine coordinates rather than a hardcoded
// encoding, and confirmed small-order before use.
//
// Once A has order dividing the cofactor 8, the cofactor-cleared
// verification equation 8*(R + k*A - S*B) == O collapses to 8*R ==
// 8*S*B regardless of k, because 8*k*A == k*(8*A) == k*O == O. Taking
// R as the identity and S as zero satisfies that reduced equation
// trivially for any message, which is what lets this test hold
// without depending on the hash collaborator's output.
func TestZIP215AcceptsSmallOrderPublicKeyStrictRejects(t *testing.T) {
	orderTwoY := new(big.Int).Sub(FieldPrime, big.NewInt(1))
	orderTwoPoint := NewAffinePoint(big.NewInt(0), orderTwoY)
	require.True(t, orderTwoPoint.IsSmallOrder())

	pubBytes := orderTwoPoint.Encode()

	var sig Signature
	idBytes := Identity().Encode()
	copy(sig[:32], idBytes[:])

	message := []byte("small-order public key divergence")

	require.False(t, VerifySync(sig, message, pubBytes, StrictMode))
	require.True(t, VerifySync(sig, message, pubBytes, ZIP215Mode))

	require.False(t, <-VerifyAsync(sig, message, pubBytes, StrictMode))
	require.True(t, <-VerifyAsync(sig, message, pubBytes, ZIP215Mode))
}
