package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/usexfg/burnmint-stark/field"
)

func TestTiersForVersion(t *testing.T) {
	require.Equal(t, []uint64{TierSmall, TierLarge}, TiersForVersion(1))
	require.Equal(t, []uint64{TierSmall, TierMedium, TierLarge}, TiersForVersion(2))
	require.Nil(t, TiersForVersion(3))
}

func TestIsValidTier(t *testing.T) {
	require.True(t, IsValidTier(1, TierSmall))
	require.True(t, IsValidTier(1, TierLarge))
	require.False(t, IsValidTier(1, TierMedium))
	require.True(t, IsValidTier(2, TierMedium))
	require.False(t, IsValidTier(3, TierSmall))
}

func TestAtomicXfgRoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, AtomicUnitsPerToken, TierSmall, TierLarge} {
		require.Equal(t, x, XfgToAtomic(AtomicToXfg(x)))
	}
}

func TestTxPrefixHashFromBytes(t *testing.T) {
	var hash [32]byte
	hash[0] = 0x01
	limbs := TxPrefixHashFromBytes(hash)
	require.Equal(t, field.New(1), limbs[0])
	require.True(t, limbs[1].IsZero())
	require.True(t, limbs[2].IsZero())
	require.True(t, limbs[3].IsZero())
}

func TestLegacyTxPrefixHashDefaultsRemainingLimbs(t *testing.T) {
	limbs := LegacyTxPrefixHash(0xDEADBEEF)
	require.Equal(t, field.New(0xDEADBEEF), limbs[0])
	require.True(t, limbs[1].IsZero())
	require.True(t, limbs[2].IsZero())
	require.True(t, limbs[3].IsZero())
}

func TestPublicInputsSerializeLength(t *testing.T) {
	pi := PublicInputs{
		BurnAmount:        field.New(TierSmall),
		MintAmount:        field.New(TierSmall),
		TxPrefixHash:      [4]field.Element{field.New(1), field.New(2), field.New(3), field.New(4)},
		RecipientHash:     field.New(5),
		NetworkID:         field.New(4),
		TargetChainID:     field.New(42161),
		CommitmentVersion: field.New(1),
		State:             field.Zero(),
	}
	out := pi.Serialize()
	require.Len(t, out, 96)
}

func TestSecretWitnessZero(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	w := NewSecretWitness(buf)
	require.Equal(t, 4, w.Len())
	require.False(t, w.IsZeroized())

	w.Zero()
	require.True(t, w.IsZeroized())
	require.Equal(t, 0, w.Len())
	require.Nil(t, w.Bytes())
	for _, b := range buf {
		require.Equal(t, byte(0), b)
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := NewError(CodeEngineFailure, "boom")
	wrapped := WrapError(CodeProofRejected, "outer", cause)
	require.ErrorIs(t, wrapped, cause)
	require.Contains(t, wrapped.Error(), "ProofRejected")
}
