// End-to-end scenario and universal-property tests (spec §8), wired
// against the public prover/verifier/batch contracts rather than any
// internal package.
package burnmintstark_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/usexfg/burnmint-stark/batch"
	"github.com/usexfg/burnmint-stark/prover"
	"github.com/usexfg/burnmint-stark/types"
	"github.com/usexfg/burnmint-stark/verifier"
)

func s1Request() prover.Request {
	recipient := make([]byte, 20)
	for i := range recipient {
		recipient[i] = 0x12
	}
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = 0x2A
	}
	var txHash [32]byte
	txHash[0] = 0x01

	return prover.Request{
		BurnAmount:        8_000_000,
		MintAmount:        8_000_000,
		TxPrefixHash:      txHash,
		RecipientAddr:     recipient,
		Secret:            secret,
		NetworkID:         4,
		TargetChainID:     42161,
		CommitmentVersion: 1,
	}
}

func s4Request() prover.Request {
	req := s1Request()
	req.BurnAmount = 800_000_000
	req.MintAmount = 800_000_000
	req.CommitmentVersion = 2
	recipient := make([]byte, 20)
	for i := range recipient {
		recipient[i] = 0xAB
	}
	req.RecipientAddr = recipient
	return req
}

func verifyRequestFor(req prover.Request, recipient []byte) verifier.Request {
	return verifier.Request{
		BurnAmount:        req.BurnAmount,
		MintAmount:        req.MintAmount,
		TxPrefixHash:      req.TxPrefixHash,
		RecipientAddr:     recipient,
		NetworkID:         req.NetworkID,
		TargetChainID:     req.TargetChainID,
		CommitmentVersion: req.CommitmentVersion,
	}
}

func TestScenarioS1RoundTrip(t *testing.T) {
	req := s1Request()
	recipient := append([]byte(nil), req.RecipientAddr...)

	proof, err := prover.Prove(req)
	require.NoError(t, err)

	ok, err := verifier.Verify(proof, verifyRequestFor(req, recipient))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScenarioS2FlippedRecipientByteRejected(t *testing.T) {
	req := s1Request()
	recipient := append([]byte(nil), req.RecipientAddr...)

	proof, err := prover.Prove(req)
	require.NoError(t, err)

	recipient[0] = 0x13
	ok, err := verifier.Verify(proof, verifyRequestFor(req, recipient))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestScenarioS3InvalidTierRejectedByBoth(t *testing.T) {
	req := s1Request()
	req.BurnAmount = 16_000_000
	req.MintAmount = 16_000_000
	recipient := append([]byte(nil), req.RecipientAddr...)

	_, proveErr := prover.Prove(req)
	require.Error(t, proveErr)
	var pErr *types.Error
	require.ErrorAs(t, proveErr, &pErr)
	require.Equal(t, types.CodeInvalidAmountTier, pErr.Code)

	_, verifyErr := verifier.Verify(nil, verifyRequestFor(req, recipient))
	require.Error(t, verifyErr)
	var vErr *types.Error
	require.ErrorAs(t, verifyErr, &vErr)
	require.Equal(t, types.CodeInvalidAmountTier, vErr.Code)
}

func TestScenarioS4V2MediumTierSucceeds(t *testing.T) {
	req := s4Request()
	recipient := append([]byte(nil), req.RecipientAddr...)

	proof, err := prover.Prove(req)
	require.NoError(t, err)

	ok, err := verifier.Verify(proof, verifyRequestFor(req, recipient))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestScenarioS5VersionMismatchRejected(t *testing.T) {
	req := s4Request()
	recipient := append([]byte(nil), req.RecipientAddr...)

	proof, err := prover.Prove(req)
	require.NoError(t, err)

	vreq := verifyRequestFor(req, recipient)
	vreq.CommitmentVersion = 1

	// Spec §8 S5 allows either outcome: an AIR-variant mismatch
	// (false, nil) or a pre-check InvalidAmountTier rejection, since
	// burn = 800_000_000 isn't itself a valid tier under version 1.
	ok, err := verifier.Verify(proof, vreq)
	if err != nil {
		var verr *types.Error
		require.ErrorAs(t, err, &verr)
		require.Equal(t, types.CodeInvalidAmountTier, verr.Code)
		require.False(t, ok)
		return
	}
	require.False(t, ok)
}

func TestScenarioS6BatchVerifyTwoIndependentProofs(t *testing.T) {
	s1 := s1Request()
	s1Recipient := append([]byte(nil), s1.RecipientAddr...)
	s1Proof, err := prover.Prove(s1)
	require.NoError(t, err)

	s4 := s4Request()
	s4Recipient := append([]byte(nil), s4.RecipientAddr...)
	s4Proof, err := prover.Prove(s4)
	require.NoError(t, err)

	items := []batch.Item{
		{ProofBytes: s1Proof, Request: verifyRequestFor(s1, s1Recipient)},
		{ProofBytes: s4Proof, Request: verifyRequestFor(s4, s4Recipient)},
	}

	require.Equal(t, []bool{true, true}, batch.VerifyBatch(items))
	require.True(t, batch.VerifyAll(items))
}

func TestNegativeZeroLegacyTxnHashLimb(t *testing.T) {
	req := s1Request()
	req.TxPrefixHash = [32]byte{}

	_, err := prover.Prove(req)
	require.Error(t, err)
	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, types.CodeInvalidTxHash, perr.Code)
}

func TestNegative19ByteRecipient(t *testing.T) {
	req := s1Request()
	req.RecipientAddr = req.RecipientAddr[:19]

	_, err := prover.Prove(req)
	require.Error(t, err)
	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, types.CodeInvalidRecipientLength, perr.Code)
}

func TestNegative7ByteSecret(t *testing.T) {
	req := s1Request()
	req.Secret = req.Secret[:7]

	_, err := prover.Prove(req)
	require.Error(t, err)
	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, types.CodeInvalidSecretLength, perr.Code)
}

func TestNegativeMintDoublesBurn(t *testing.T) {
	req := s1Request()
	req.MintAmount = req.BurnAmount * 2

	_, err := prover.Prove(req)
	require.Error(t, err)
	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, types.CodeAmountMismatch, perr.Code)
}

func TestNegativeCommitmentVersion3(t *testing.T) {
	req := s1Request()
	req.CommitmentVersion = 3

	_, err := prover.Prove(req)
	require.Error(t, err)
	var perr *types.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, types.CodeUnsupportedVersion, perr.Code)
}

// Property 2-5: binding of the proof to amount, recipient, tx-prefix
// hash, and network/chain/version.

func TestPropertyBindingToAmount(t *testing.T) {
	req := s1Request()
	recipient := append([]byte(nil), req.RecipientAddr...)
	proof, err := prover.Prove(req)
	require.NoError(t, err)

	vreq := verifyRequestFor(req, recipient)
	vreq.BurnAmount = 8_000_000_000
	vreq.MintAmount = 8_000_000_000

	ok, err := verifier.Verify(proof, vreq)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPropertyBindingToTxPrefixHash(t *testing.T) {
	req := s1Request()
	recipient := append([]byte(nil), req.RecipientAddr...)
	proof, err := prover.Prove(req)
	require.NoError(t, err)

	vreq := verifyRequestFor(req, recipient)
	vreq.TxPrefixHash[9] ^= 0xFF // byte 9 falls in limb 1, never checked by input validation

	ok, err := verifier.Verify(proof, vreq)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPropertyBindingToNetworkChainVersion(t *testing.T) {
	req := s1Request()
	recipient := append([]byte(nil), req.RecipientAddr...)
	proof, err := prover.Prove(req)
	require.NoError(t, err)

	mutations := []func(*verifier.Request){
		func(v *verifier.Request) { v.NetworkID = 5 },
		func(v *verifier.Request) { v.TargetChainID = 1 },
		func(v *verifier.Request) { v.CommitmentVersion = 2 },
	}
	for _, mutate := range mutations {
		vreq := verifyRequestFor(req, recipient)
		mutate(&vreq)

		ok, err := verifier.Verify(proof, vreq)
		require.NoError(t, err)
		require.False(t, ok)
	}
}

// Property 7: input-validation parity, already exercised per-code in
// TestScenarioS3InvalidTierRejectedByBoth; here across every rejection
// category at once.

func TestPropertyInputValidationParityAcrossAllCodes(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*prover.Request)
	}{
		{"bad tier", func(r *prover.Request) { r.BurnAmount, r.MintAmount = 123, 123 }},
		{"mismatch", func(r *prover.Request) { r.MintAmount = r.BurnAmount * 2 }},
		{"short recipient", func(r *prover.Request) { r.RecipientAddr = r.RecipientAddr[:19] }},
		{"zero tx hash", func(r *prover.Request) { r.TxPrefixHash = [32]byte{} }},
		{"bad version", func(r *prover.Request) { r.CommitmentVersion = 9 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := s1Request()
			tc.mutate(&req)
			recipient := append([]byte(nil), req.RecipientAddr...)

			_, proveErr := prover.Prove(req)
			_, verifyErr := verifier.Verify(nil, verifyRequestFor(req, recipient))

			var pErr, vErr *types.Error
			require.ErrorAs(t, proveErr, &pErr)
			require.ErrorAs(t, verifyErr, &vErr)
			require.Equal(t, pErr.Code, vErr.Code)
		})
	}
}

// Property 9: tier enumeration exactness.

func TestPropertyTierEnumerationExactness(t *testing.T) {
	require.Equal(t, []uint64{types.TierSmall, types.TierLarge}, types.TiersForVersion(1))
	require.Equal(t, []uint64{types.TierSmall, types.TierMedium, types.TierLarge}, types.TiersForVersion(2))
}

// Property 8: atomic-unit conversion round trip.

func TestPropertyAtomicUnitRoundTrip(t *testing.T) {
	for _, whole := range []uint64{0, 1, 2, 100, 800} {
		atomic := whole * types.AtomicUnitsPerToken
		require.Equal(t, atomic, types.XfgToAtomic(types.AtomicToXfg(atomic)))
	}
}
