package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/usexfg/burnmint-stark/domainhash"
	"github.com/usexfg/burnmint-stark/field"
)

// RecipientAddress is the exactly-20-byte destination address. The
// bridge treats it as an opaque binary blob; common.Address happens to
// be the right width and is already in the teacher's dependency graph.
type RecipientAddress = common.Address

// PublicInputs is the typed container of every value bound to a proof
// (spec §3). Any mismatch between the values supplied here and the
// values used at proving time causes verification to fail.
type PublicInputs struct {
	BurnAmount        field.Element
	MintAmount        field.Element
	TxPrefixHash      [4]field.Element
	RecipientHash     field.Element
	NetworkID         field.Element
	TargetChainID     field.Element
	CommitmentVersion field.Element
	State             field.Element
}

// TxPrefixHashFromBytes splits a 32-byte transaction prefix hash into
// four 64-bit little-endian limbs, field-reducing each.
func TxPrefixHashFromBytes(hash32 [32]byte) [4]field.Element {
	var limbs [4]field.Element
	for i := 0; i < 4; i++ {
		var b [8]byte
		copy(b[:], hash32[i*8:i*8+8])
		limbs[i] = field.FromLEBytes(b)
	}
	return limbs
}

// LegacyTxPrefixHash builds the 4-limb tx-prefix-hash array from only a
// legacy 64-bit value, defaulting the remaining three limbs to zero.
// This matches the verifier's documented sharp edge (spec §9): callers
// needing strong tx binding must supply all 32 bytes via
// TxPrefixHashFromBytes instead.
func LegacyTxPrefixHash(legacy uint64) [4]field.Element {
	return [4]field.Element{field.New(legacy), field.Zero(), field.Zero(), field.Zero()}
}

// CommitmentInputs projects the public inputs plus a recipient address
// into the shape domainhash.Commitment expects.
func (pi PublicInputs) CommitmentInputs(recipient RecipientAddress) domainhash.CommitmentInputs {
	return domainhash.CommitmentInputs{
		BurnAmount:        pi.BurnAmount,
		MintAmount:        pi.MintAmount,
		TxPrefixHash:      pi.TxPrefixHash,
		RecipientAddr:     recipient,
		NetworkID:         pi.NetworkID,
		TargetChainID:     pi.TargetChainID,
		CommitmentVersion: pi.CommitmentVersion,
	}
}

// Serialize encodes the public-input record as 12 consecutive 8-byte
// little-endian values (96 bytes total), per spec §6. The 8 listed
// logical fields occupy 11 slots (tx_prefix_hash counts as 4); the
// 12th slot is a reserved field fixed at zero, reconciling §3's 8-row
// table with §6's explicit "12 field elements / 96 bytes" framing —
// see DESIGN.md for this Open Question resolution.
func (pi PublicInputs) Serialize() []byte {
	out := make([]byte, 0, 96)
	for _, e := range pi.elements() {
		b := e.LEBytes()
		out = append(out, b[:]...)
	}
	return out
}

func (pi PublicInputs) elements() []field.Element {
	return []field.Element{
		pi.BurnAmount,
		pi.MintAmount,
		pi.TxPrefixHash[0], pi.TxPrefixHash[1], pi.TxPrefixHash[2], pi.TxPrefixHash[3],
		pi.RecipientHash,
		pi.NetworkID,
		pi.TargetChainID,
		pi.CommitmentVersion,
		pi.State,
		field.Zero(), // reserved
	}
}

// Version returns the commitment_version as a uint64 for dispatch
// against TiersForVersion / AIR-variant selection.
func (pi PublicInputs) Version() uint64 {
	return pi.CommitmentVersion.Uint64()
}
