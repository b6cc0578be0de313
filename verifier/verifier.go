// Package verifier implements the public verification contract (C7):
// check a serialized proof against the claimed public inputs, never
// touching a secret witness.
package verifier

import (
	"fmt"

	"github.com/usexfg/burnmint-stark/air"
	"github.com/usexfg/burnmint-stark/domainhash"
	"github.com/usexfg/burnmint-stark/field"
	"github.com/usexfg/burnmint-stark/starkengine"
	"github.com/usexfg/burnmint-stark/types"
)

// Request bundles the claimed public inputs a proof is checked against
// (spec §4.5). TxPrefixHash is the full 32-byte transaction prefix;
// callers with only a legacy 64-bit value should use VerifyLegacy.
type Request struct {
	BurnAmount        uint64
	MintAmount        uint64
	TxPrefixHash      [32]byte
	RecipientAddr     []byte
	NetworkID         uint64
	TargetChainID     uint64
	CommitmentVersion uint64
}

// Verify parses proofBytes and checks it against req. It always
// recomputes RecipientHash from req.RecipientAddr itself — a caller can
// never short-circuit that check by supplying a precomputed hash.
//
// A return of (false, nil) means the proof was well-formed but rejected
// by the engine (spec §4.5 step 6, CodeProofRejected territory without
// the error wrapper, per spec: rejection is not itself an error). A
// non-nil error means the inputs or proof bytes were malformed before
// the engine ever ran.
func Verify(proofBytes []byte, req Request) (bool, error) {
	legacyLimb := types.TxPrefixHashFromBytes(req.TxPrefixHash)[0]
	if err := types.ValidateInputs(req.CommitmentVersion, req.BurnAmount, req.MintAmount, len(req.RecipientAddr), legacyLimb.Uint64()); err != nil {
		return false, err
	}

	a, ok := air.New(req.CommitmentVersion)
	if !ok {
		return false, types.NewError(types.CodeUnsupportedVersion, fmt.Sprintf("commitment_version %d not in {1, 2}", req.CommitmentVersion))
	}

	var recipient types.RecipientAddress
	copy(recipient[:], req.RecipientAddr)

	pi := types.PublicInputs{
		BurnAmount:        field.New(req.BurnAmount),
		MintAmount:        field.New(req.MintAmount),
		TxPrefixHash:      types.TxPrefixHashFromBytes(req.TxPrefixHash),
		RecipientHash:     domainhash.RecipientHashTruncated(recipient),
		NetworkID:         field.New(req.NetworkID),
		TargetChainID:     field.New(req.TargetChainID),
		CommitmentVersion: field.New(req.CommitmentVersion),
	}

	proof, err := starkengine.DeserializeProof(proofBytes)
	if err != nil {
		return false, types.WrapError(types.CodeProofMalformed, "failed to decode proof bytes", err)
	}

	ok, err = starkengine.Verify(a, proof, pi, recipient)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// VerifyLegacy is Verify for callers that only have a legacy 64-bit
// transaction-hash value. The remaining three limbs default to zero
// (spec §9's documented legacy path): a proof bound to a full 32-byte
// prefix hash whose upper three limbs are non-zero will be rejected
// here, not silently accepted.
func VerifyLegacy(proofBytes []byte, burnAmount, mintAmount uint64, legacyTxnHash uint64, recipientAddr []byte, networkID, targetChainID, commitmentVersion uint64) (bool, error) {
	limbs := types.LegacyTxPrefixHash(legacyTxnHash)
	var hash32 [32]byte
	for i, l := range limbs {
		b := l.LEBytes()
		copy(hash32[i*8:i*8+8], b[:])
	}
	return Verify(proofBytes, Request{
		BurnAmount:        burnAmount,
		MintAmount:        mintAmount,
		TxPrefixHash:      hash32,
		RecipientAddr:     recipientAddr,
		NetworkID:         networkID,
		TargetChainID:     targetChainID,
		CommitmentVersion: commitmentVersion,
	})
}
