// Package domainhash implements the fixed, domain-separated Keccak256
// derivations used by the burn/mint circuit: nullifier, recipient hash,
// legacy transaction hash, and commitment. Every derivation appends a
// distinct trailing domain tag so hashes computed for different
// purposes can never collide.
package domainhash

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/usexfg/burnmint-stark/field"
)

const (
	tagNullifier         = "nullifier"
	tagRecipientAddrPart = "ethereum-recipient"
	tagBridgePart        = "fuego-to-heat-bridge"
	tagLegacyTx          = "fuego-burn-transaction"
	tagCommitment        = "heat-commitment-v1"
)

// Nullifier derives the circuit nullifier from the secret and the burn
// amount: keccak256(le_bytes(s) ‖ "nullifier" ‖ le_bytes(amount)),
// truncated to the first 4 bytes little-endian and field-reduced.
func Nullifier(s, amount field.Element) field.Element {
	sBytes := s.LEBytes()
	amountBytes := amount.LEBytes()

	preimage := make([]byte, 0, len(sBytes)+len(tagNullifier)+len(amountBytes))
	preimage = append(preimage, sBytes[:]...)
	preimage = append(preimage, tagNullifier...)
	preimage = append(preimage, amountBytes[:]...)

	digest := crypto.Keccak256(preimage)
	return field.FromUint32LE([4]byte{digest[0], digest[1], digest[2], digest[3]})
}

// RecipientHashFull returns the full 32-byte digest
// keccak256(addr ‖ "ethereum-recipient" ‖ "fuego-to-heat-bridge").
func RecipientHashFull(addr [20]byte) [32]byte {
	preimage := make([]byte, 0, 20+len(tagRecipientAddrPart)+len(tagBridgePart))
	preimage = append(preimage, addr[:]...)
	preimage = append(preimage, tagRecipientAddrPart...)
	preimage = append(preimage, tagBridgePart...)

	var out [32]byte
	copy(out[:], crypto.Keccak256(preimage))
	return out
}

// RecipientHashTruncated returns the first 4 bytes of RecipientHashFull,
// little-endian, field-reduced — this is the value bound as the
// `recipient_hash` public input.
func RecipientHashTruncated(addr [20]byte) field.Element {
	full := RecipientHashFull(addr)
	return field.FromUint32LE([4]byte{full[0], full[1], full[2], full[3]})
}

// TxHashLegacy computes the legacy transaction-hash derivation. It is
// informational only: it folds in unixSeconds and therefore is NOT
// deterministic across invocations. It must never be used to populate a
// bound public input or to derive a value checked by the AIR — see
// spec design note on tx_hash_legacy. Callers proving or verifying a
// real transaction must instead supply the externally computed
// tx-prefix hash.
func TxHashLegacy(amount, recipientHashF field.Element, unixSeconds uint64) [32]byte {
	amountBytes := amount.LEBytes()
	recipientBytes := recipientHashF.LEBytes()
	var tsBytes [8]byte
	binary.LittleEndian.PutUint64(tsBytes[:], unixSeconds)

	preimage := make([]byte, 0, 8+8+8+len(tagLegacyTx))
	preimage = append(preimage, amountBytes[:]...)
	preimage = append(preimage, recipientBytes[:]...)
	preimage = append(preimage, tsBytes[:]...)
	preimage = append(preimage, tagLegacyTx...)

	var out [32]byte
	copy(out[:], crypto.Keccak256(preimage))
	return out
}

// CommitmentInputs is the minimal set of public values the commitment
// binds, kept independent of the types package to avoid an import
// cycle (C2 sits below C3 in the dependency order).
type CommitmentInputs struct {
	BurnAmount        field.Element
	MintAmount        field.Element
	TxPrefixHash      [4]field.Element
	RecipientAddr     [20]byte
	NetworkID         field.Element
	TargetChainID     field.Element
	CommitmentVersion field.Element
}

// Commitment derives the circuit commitment from the secret and every
// public input, per the fixed pre-image order:
//  1. le_bytes(s)
//  2. le_bytes(burn_amount), le_bytes(mint_amount)
//  3. tx_prefix_hash_{0,1,2,3} as 4 x 8-byte little-endian
//  4. recipient_hash_full(addr) (32 bytes)
//  5. le_bytes(network_id), le_bytes(target_chain_id), le_bytes(commitment_version)
//  6. ASCII tag "heat-commitment-v1"
//
// The first 4 bytes of the resulting digest, little-endian, are
// field-reduced to produce the bound commitment value.
func Commitment(s field.Element, in CommitmentInputs) field.Element {
	preimage := make([]byte, 0, 8+8+8+32+32+8+8+8+len(tagCommitment))

	sBytes := s.LEBytes()
	preimage = append(preimage, sBytes[:]...)

	burnBytes := in.BurnAmount.LEBytes()
	mintBytes := in.MintAmount.LEBytes()
	preimage = append(preimage, burnBytes[:]...)
	preimage = append(preimage, mintBytes[:]...)

	for _, limb := range in.TxPrefixHash {
		b := limb.LEBytes()
		preimage = append(preimage, b[:]...)
	}

	recipientFull := RecipientHashFull(in.RecipientAddr)
	preimage = append(preimage, recipientFull[:]...)

	networkBytes := in.NetworkID.LEBytes()
	chainBytes := in.TargetChainID.LEBytes()
	versionBytes := in.CommitmentVersion.LEBytes()
	preimage = append(preimage, networkBytes[:]...)
	preimage = append(preimage, chainBytes[:]...)
	preimage = append(preimage, versionBytes[:]...)

	preimage = append(preimage, tagCommitment...)

	digest := crypto.Keccak256(preimage)
	return field.FromUint32LE([4]byte{digest[0], digest[1], digest[2], digest[3]})
}
