// Package batch implements independent verification of many proofs
// (C8). Each item is checked in isolation; one malformed or rejected
// proof never affects the outcome of any other.
package batch

import (
	"github.com/usexfg/burnmint-stark/types"
	"github.com/usexfg/burnmint-stark/verifier"
)

// Item pairs a serialized proof with the public inputs it claims to
// satisfy.
type Item struct {
	ProofBytes []byte
	Request    verifier.Request
}

// VerifyBatch verifies every item independently and returns one bool
// per item, in input order.
func VerifyBatch(items []Item) []bool {
	results := make([]bool, len(items))
	for i, item := range items {
		ok, err := verifier.Verify(item.ProofBytes, item.Request)
		results[i] = err == nil && ok
	}
	return results
}

// VerifyAll reports whether every item in the batch verifies.
func VerifyAll(items []Item) bool {
	for _, ok := range VerifyBatch(items) {
		if !ok {
			return false
		}
	}
	return true
}

// DetailedResult is one item's outcome plus, on rejection, the reason:
// either the types.Code of a validation/decoding failure, or a bare
// engine-level rejection with no Code (the proof was well-formed but
// failed a constraint check).
type DetailedResult struct {
	Valid bool
	Code  types.Code // zero value if Valid, or if the engine rejected a well-formed proof
}

// VerifyBatchDetailed is VerifyBatch with a diagnostic Code attached to
// each rejection, so a caller can distinguish "this proof is malformed"
// from "this proof is well-formed but doesn't check out" without
// re-running verification.
func VerifyBatchDetailed(items []Item) []DetailedResult {
	out := make([]DetailedResult, len(items))
	for i, item := range items {
		ok, err := verifier.Verify(item.ProofBytes, item.Request)
		if err != nil {
			code := types.CodeProofRejected
			if terr, isTypesErr := err.(*types.Error); isTypesErr {
				code = terr.Code
			}
			out[i] = DetailedResult{Valid: false, Code: code}
			continue
		}
		out[i] = DetailedResult{Valid: ok}
	}
	return out
}
