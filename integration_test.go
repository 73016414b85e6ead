package ed25519

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTripProperty(t *testing.T) {
	f := func(seedSeed byte, msg []byte) bool {
		seed := make([]byte, 32)
		for i := range seed {
			seed[i] = seedSeed ^ byte(i)
		}
		pub, err := GetPublicKeySync(seed)
		if err != nil {
			return false
		}
		sig, err := SignSync(msg, seed)
		if err != nil {
			return false
		}
		return VerifySync(sig, msg, pub, StrictMode)
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 64}))
}

func TestDifferentSeedsProduceDifferentPublicKeys(t *testing.T) {
	seedA := make([]byte, 32)
	seedB := make([]byte, 32)
	seedB[0] = 1

	pubA, err := GetPublicKeySync(seedA)
	require.NoError(t, err)
	pubB, err := GetPublicKeySync(seedB)
	require.NoError(t, err)
	require.NotEqual(t, pubA, pubB)
}

func TestVerifyFailsAgainstWrongPublicKey(t *testing.T) {
	seedA := make([]byte, 32)
	seedB := make([]byte, 32)
	seedB[0] = 1

	message := []byte("signed by A, checked against B")
	sig, err := SignSync(message, seedA)
	require.NoError(t, err)

	pubB, err := GetPublicKeySync(seedB)
	require.NoError(t, err)
	require.False(t, VerifySync(sig, message, pubB, StrictMode))
}

func TestZIP215AndStrictAgreeOnWellFormedSignatures(t *testing.T) {
	seed := make([]byte, 32)
	seed[2] = 0x10
	message := []byte("both modes accept an ordinary signature")

	pub, err := GetPublicKeySync(seed)
	require.NoError(t, err)
	sig, err := SignSync(message, seed)
	require.NoError(t, err)

	require.True(t, VerifySync(sig, message, pub, StrictMode))
	require.True(t, VerifySync(sig, message, pub, ZIP215Mode))
}
