package starkengine

import (
	"encoding/binary"

	"github.com/usexfg/burnmint-stark/air"
	"github.com/usexfg/burnmint-stark/field"
	"github.com/usexfg/burnmint-stark/trace"
	"github.com/usexfg/burnmint-stark/types"
)

func rowHash(r air.Row) [32]byte {
	buf := make([]byte, 0, 8*air.TraceWidth)
	for _, e := range r {
		b := e.LEBytes()
		buf = append(buf, b[:]...)
	}
	return hashLeaf(buf)
}

func buildMerkleTree(tr trace.Trace) *MerkleTree {
	leaves := make([][32]byte, air.TraceLength)
	for i := 0; i < air.TraceLength; i++ {
		leaves[i] = rowHash(tr.Row(i))
	}
	return NewMerkleTree(leaves)
}

func newTranscript(pi types.PublicInputs, traceCommitment [32]byte) *Transcript {
	t := NewTranscript("burnmint-stark-v1")
	t.Absorb(pi.Serialize())
	t.Absorb(traceCommitment[:])
	return t
}

func leadingZeroBits(state [32]byte) int {
	count := 0
	for _, b := range state {
		if b == 0 {
			count += 8
			continue
		}
		for m := byte(0x80); m != 0; m >>= 1 {
			if b&m != 0 {
				return count
			}
			count++
		}
	}
	return count
}

// grind searches for a nonce such that absorbing it into a snapshot of
// the transcript state yields a digest with at least `bits` leading
// zero bits — a proof-of-work cost the prover pays once and the
// verifier re-checks cheaply.
func grind(t *Transcript, bits int) uint64 {
	base := t.State()
	for nonce := uint64(0); ; nonce++ {
		snapshot := Transcript{state: base}
		var nonceBytes [8]byte
		binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
		snapshot.Absorb(nonceBytes[:])
		if leadingZeroBits(snapshot.State()) >= bits {
			return nonce
		}
	}
}

// Prove builds a proof that tr, built from secret for pi and
// recipient, satisfies every constraint of a. Prove is only ever
// called by the party holding the secret; it re-checks every
// transition under the full secret-aware formula before committing to
// a proof, so a faulty witness is caught here rather than surfacing as
// an engine-level rejection downstream.
func Prove(a air.BurnMintAIR, tr trace.Trace, secret field.Element, pi types.PublicInputs, recipient types.RecipientAddress) (*Proof, error) {
	for i := 0; i < air.TraceLength-1; i++ {
		residuals := a.EvaluateTransition(tr.Row(i), tr.Row(i+1), &secret, pi, recipient)
		for _, r := range residuals {
			if !r.IsZero() {
				return nil, types.NewError(types.CodeEngineFailure, "witness violates a transition constraint")
			}
		}
	}

	merkle := buildMerkleTree(tr)
	root := merkle.Root()

	transcript := newTranscript(pi, root)

	nonce := grind(transcript, ProtocolGrindingFactor)
	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)
	transcript.Absorb(nonceBytes[:])

	queries := make([]QueryOpening, 0, QueryCount)
	for i := 0; i < QueryCount; i++ {
		idx := int(transcript.ChallengeUint64(uint64(air.TraceLength - 1)))
		queries = append(queries, QueryOpening{
			Index:     idx,
			Row:       tr.Row(idx),
			RowProof:  merkle.Open(idx),
			NextRow:   tr.Row(idx + 1),
			NextProof: merkle.Open(idx + 1),
		})
	}

	return &Proof{
		TraceCommitment:       root,
		PowNonce:              nonce,
		BoundaryRow0:          tr.Row(0),
		BoundaryRow0Proof:     merkle.Open(0),
		BoundaryRowFinal:      tr.Row(air.TraceLength - 1),
		BoundaryRowFinalProof: merkle.Open(air.TraceLength - 1),
		Queries:               queries,
	}, nil
}

// Verify checks proof against pi for the given AIR variant and
// recipient. It never sees the secret: T6/T7 are checked in the
// register-constancy mode air.EvaluateTransition falls back to when
// secret is nil. Returns (false, nil) for any structural or
// constraint failure, including an AIR variant whose version differs
// from pi's commitment_version — rejection is not an error, per spec
// §4.5/§7.
func Verify(a air.BurnMintAIR, proof *Proof, pi types.PublicInputs, recipient types.RecipientAddress) (bool, error) {
	if proof == nil {
		return false, types.NewError(types.CodeProofMalformed, "nil proof")
	}
	if a.Version != pi.Version() {
		return false, nil
	}

	transcript := newTranscript(pi, proof.TraceCommitment)

	var nonceBytes [8]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], proof.PowNonce)
	powCheck := Transcript{state: transcript.State()}
	powCheck.Absorb(nonceBytes[:])
	if leadingZeroBits(powCheck.State()) < ProtocolGrindingFactor {
		return false, nil
	}
	transcript.Absorb(nonceBytes[:])

	if !VerifyMerkleProof(proof.TraceCommitment, rowHash(proof.BoundaryRow0), 0, proof.BoundaryRow0Proof) {
		return false, nil
	}
	row0 := proof.BoundaryRow0
	if !row0[air.RegBurnAmount].Equal(pi.BurnAmount) ||
		!row0[air.RegMintAmount].Equal(pi.MintAmount) ||
		!row0[air.RegTxnHashLegacy].Equal(pi.TxPrefixHash[0]) ||
		!row0[air.RegRecipientHash].Equal(pi.RecipientHash) ||
		!row0[air.RegState].IsZero() {
		return false, nil
	}

	if !VerifyMerkleProof(proof.TraceCommitment, rowHash(proof.BoundaryRowFinal), air.TraceLength-1, proof.BoundaryRowFinalProof) {
		return false, nil
	}
	rowFinal := proof.BoundaryRowFinal
	if !rowFinal[air.RegState].Equal(field.New(3)) {
		return false, nil
	}
	if !rowFinal[air.RegNullifier].Equal(row0[air.RegNullifier]) ||
		!rowFinal[air.RegCommitment].Equal(row0[air.RegCommitment]) {
		return false, nil
	}

	if len(proof.Queries) != QueryCount {
		return false, nil
	}
	for _, q := range proof.Queries {
		idx := int(transcript.ChallengeUint64(uint64(air.TraceLength - 1)))
		if idx != q.Index {
			return false, nil
		}
		if !VerifyMerkleProof(proof.TraceCommitment, rowHash(q.Row), q.Index, q.RowProof) {
			return false, nil
		}
		if !VerifyMerkleProof(proof.TraceCommitment, rowHash(q.NextRow), q.Index+1, q.NextProof) {
			return false, nil
		}
		residuals := a.EvaluateTransition(q.Row, q.NextRow, nil, pi, recipient)
		for _, r := range residuals {
			if !r.IsZero() {
				return false, nil
			}
		}
	}

	return true, nil
}
