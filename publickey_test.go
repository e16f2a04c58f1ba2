package ed25519core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-ed25519/ed25519core"
)

func TestNewPublicKeyRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33, 64} {
		_, err := ed25519core.NewPublicKey(make([]byte, n))
		require.Error(t, err)
		require.ErrorIs(t, err, ed25519core.ErrInvalidPublicKey)
	}
}

func TestNewPublicKeyRejectsNonCurvePoint(t *testing.T) {
	// An all-0xff encoding is not a valid compressed Edwards point.
	b := make([]byte, 32)
	for i := range b {
		b[i] = 0xff
	}
	_, err := ed25519core.NewPublicKey(b)
	require.Error(t, err)
	require.ErrorIs(t, err, ed25519core.ErrInvalidPublicKey)
}

func TestPublicKeyCodecRoundTrip(t *testing.T) {
	seed, err := ed25519core.NewSeed(make([]byte, 32))
	require.NoError(t, err)
	pub := seed.Expand().PublicKey()

	encoded := pub.Bytes()
	require.Len(t, encoded, ed25519core.PublicKeySize)

	decoded, err := ed25519core.NewPublicKey(encoded)
	require.NoError(t, err)
	require.True(t, pub.Equal(decoded))
}

func TestPublicKeyBytesIsDefensiveCopy(t *testing.T) {
	seed, err := ed25519core.NewSeed(make([]byte, 32))
	require.NoError(t, err)
	pub := seed.Expand().PublicKey()

	b1 := pub.Bytes()
	b1[0] ^= 0xff
	b2 := pub.Bytes()
	require.NotEqual(t, b1[0], b2[0])
}

func TestPublicKeyEqual(t *testing.T) {
	seedA, err := ed25519core.NewSeed(make([]byte, 32))
	require.NoError(t, err)
	seedBBytes := make([]byte, 32)
	seedBBytes[0] = 1
	seedB, err := ed25519core.NewSeed(seedBBytes)
	require.NoError(t, err)

	pubA1 := seedA.Expand().PublicKey()
	pubA2 := seedA.Expand().PublicKey()
	pubB := seedB.Expand().PublicKey()

	require.True(t, pubA1.Equal(pubA2))
	require.False(t, pubA1.Equal(pubB))
}
