// Package trace implements the deterministic, side-effect-free
// execution-trace builder (C5): a pure function from a secret witness
// and public inputs to the fixed-shape trace the AIR constrains.
package trace

import (
	"github.com/usexfg/burnmint-stark/air"
	"github.com/usexfg/burnmint-stark/domainhash"
	"github.com/usexfg/burnmint-stark/field"
	"github.com/usexfg/burnmint-stark/types"
)

// Trace is a rectangular matrix, width air.TraceWidth, length
// air.TraceLength, column-major by register.
type Trace struct {
	Columns [air.TraceWidth][air.TraceLength]field.Element
}

// Row returns a copy of row i as an air.Row.
func (t Trace) Row(i int) air.Row {
	var r air.Row
	for c := 0; c < air.TraceWidth; c++ {
		r[c] = t.Columns[c][i]
	}
	return r
}

// Build constructs the execution trace for (secretBytes, pi,
// recipient). secretBytes must be at least 8 bytes; the first 4 bytes,
// little-endian, are reduced into F to form the in-circuit secret s
// per spec §4.3 step 1. Build never mutates secretBytes, never
// consults wall-clock time, and is deterministic: the same inputs
// always yield a byte-identical trace.
func Build(secretBytes []byte, pi types.PublicInputs, recipient types.RecipientAddress) (Trace, field.Element, error) {
	if len(secretBytes) < 8 {
		return Trace{}, field.Element{}, types.NewError(types.CodeInvalidSecretLength, "secret must be at least 8 bytes to derive the in-circuit secret")
	}

	// recipient is a fixed-width types.RecipientAddress (common.Address);
	// length validation of caller-supplied raw bytes happens at the
	// prover/verifier API boundary before conversion into this type.

	var sBytes [4]byte
	copy(sBytes[:], secretBytes[:4])
	s := field.FromUint32LE(sBytes)

	nullifier := domainhash.Nullifier(s, pi.BurnAmount)
	commitment := domainhash.Commitment(s, pi.CommitmentInputs(recipient))

	var t Trace
	for i := 0; i < air.TraceLength; i++ {
		t.Columns[air.RegBurnAmount][i] = pi.BurnAmount
		t.Columns[air.RegMintAmount][i] = pi.MintAmount
		t.Columns[air.RegTxnHashLegacy][i] = pi.TxPrefixHash[0]
		t.Columns[air.RegRecipientHash][i] = pi.RecipientHash
		t.Columns[air.RegNullifier][i] = nullifier
		t.Columns[air.RegCommitment][i] = commitment
	}

	// r4: [0]*16 ++ [1]*16 ++ [2]*16 ++ [3]*16
	for block := 0; block < 4; block++ {
		v := field.New(uint64(block))
		for i := 0; i < 16; i++ {
			t.Columns[air.RegState][block*16+i] = v
		}
	}

	return t, s, nil
}
