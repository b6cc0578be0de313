// Package prover implements the public proving contract (C6): turn a
// burn event plus a secret witness into an opaque, transferable proof.
package prover

import (
	"fmt"

	"github.com/usexfg/burnmint-stark/air"
	"github.com/usexfg/burnmint-stark/domainhash"
	"github.com/usexfg/burnmint-stark/field"
	"github.com/usexfg/burnmint-stark/starkengine"
	"github.com/usexfg/burnmint-stark/trace"
	"github.com/usexfg/burnmint-stark/types"
)

// Request bundles every input to Prove (spec §4.4). TxPrefixHash is the
// full 32-byte transaction prefix; callers that only have a legacy
// 64-bit value should use types.LegacyTxPrefixHash and place the result
// into a Request built by hand, or see ProveLegacy.
type Request struct {
	BurnAmount        uint64
	MintAmount        uint64
	TxPrefixHash      [32]byte
	RecipientAddr     []byte
	Secret            []byte
	NetworkID         uint64
	TargetChainID     uint64
	CommitmentVersion uint64
}

// Prove validates req, builds the execution trace from the secret
// witness, and returns a serialized proof. The secret buffer backing
// req.Secret is zeroed in place before Prove returns, by way of
// types.SecretWitness — callers must not retain a separate reference to
// it if they need the zeroing guarantee to hold.
func Prove(req Request) ([]byte, error) {
	secret := types.NewSecretWitness(req.Secret)
	defer secret.Zero()

	if len(req.Secret) < 32 {
		return nil, types.NewError(types.CodeInvalidSecretLength, fmt.Sprintf("secret must be at least 32 bytes, got %d", len(req.Secret)))
	}

	legacyLimb := types.TxPrefixHashFromBytes(req.TxPrefixHash)[0]
	if err := types.ValidateInputs(req.CommitmentVersion, req.BurnAmount, req.MintAmount, len(req.RecipientAddr), legacyLimb.Uint64()); err != nil {
		return nil, err
	}

	a, ok := air.New(req.CommitmentVersion)
	if !ok {
		return nil, types.NewError(types.CodeUnsupportedVersion, fmt.Sprintf("commitment_version %d not in {1, 2}", req.CommitmentVersion))
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

	tr, s, err := trace.Build(secret.Bytes(), pi, recipient)
	secret.Zero()
	if err != nil {
		return nil, err
	}

	proof, err := starkengine.Prove(a, tr, s, pi, recipient)
	if err != nil {
		return nil, err
	}

	data, err := proof.Serialize()
	if err != nil {
		return nil, types.WrapError(types.CodeEngineFailure, "failed to serialize proof", err)
	}
	return data, nil
}

// ProveLegacy is Prove for callers that only have a legacy 64-bit
// transaction-hash value rather than the full 32-byte prefix hash. The
// remaining three limbs default to zero, matching the verifier's
// documented legacy path (spec §9).
func ProveLegacy(burnAmount, mintAmount uint64, legacyTxnHash uint64, recipientAddr, secret []byte, networkID, targetChainID, commitmentVersion uint64) ([]byte, error) {
	limbs := types.LegacyTxPrefixHash(legacyTxnHash)
	var hash32 [32]byte
	for i, l := range limbs {
		b := l.LEBytes()
		copy(hash32[i*8:i*8+8], b[:])
	}
	return Prove(Request{
		BurnAmount:        burnAmount,
		MintAmount:        mintAmount,
		TxPrefixHash:      hash32,
		RecipientAddr:     recipientAddr,
		Secret:            secret,
		NetworkID:         networkID,
		TargetChainID:     targetChainID,
		CommitmentVersion: commitmentVersion,
	})
}
