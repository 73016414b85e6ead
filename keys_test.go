package ed25519

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKeySyncRejectsWrongSeedLength(t *testing.T) {
	_, err := DeriveKeySync(make([]byte, 31))
	require.Error(t, err)
	kind, ok := CauseKind(err)
	require.True(t, ok)
	require.Equal(t, InvalidEncoding, kind)
}

func TestDeriveKeySyncMatchesKnownVector(t *testing.T) {
	seed, _ := hex.DecodeString("0000000000000000000000000000000000000000000000000000000000000000")
	wantPub, _ := hex.DecodeString("3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29")

	xpk, err := DeriveKeySync(seed)
	require.NoError(t, err)
	require.Equal(t, wantPub, xpk.PointBytes[:])
}

func TestDeriveKeySyncAndAsyncAgree(t *testing.T) {
	seed := make([]byte, 32)
	seed[0] = 0x42

	syncKey, err := DeriveKeySync(seed)
	require.NoError(t, err)

	r := <-DeriveKeyAsync(seed)
	require.NoError(t, r.Err)
	require.Equal(t, syncKey.PointBytes, r.Key.PointBytes)
}

func TestClampSetsExpectedBits(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = 0xff
	}
	clamp(&b)
	require.EqualValues(t, 0xf8, b[0])
	require.EqualValues(t, 0x7f, b[31]|0x7f)
	require.NotZero(t, b[31]&0x40)
	require.Zero(t, b[31]&0x80)
}

func TestGetPublicKeySyncMatchesDerive(t *testing.T) {
	seed := make([]byte, 32)
	seed[5] = 9

	xpk, err := DeriveKeySync(seed)
	require.NoError(t, err)

	pub, err := GetPublicKeySync(seed)
	require.NoError(t, err)
	require.Equal(t, xpk.PointBytes, pub)
}
