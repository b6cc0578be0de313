package types

import "fmt"

// Code enumerates the error surface exposed to callers of the prover
// and verifier (spec §6). Both prover and verifier must reject
// identical malformed inputs with the same Code.
type Code int

const (
	// CodeInvalidAmountTier: burn amount not in the allowed tier set
	// for the stated commitment version.
	CodeInvalidAmountTier Code = iota + 1
	// CodeAmountMismatch: mint_amount != burn_amount.
	CodeAmountMismatch
	// CodeInvalidRecipientLength: recipient is not exactly 20 bytes.
	CodeInvalidRecipientLength
	// CodeInvalidSecretLength: secret witness shorter than required.
	CodeInvalidSecretLength
	// CodeInvalidTxHash: legacy txn-hash limb is zero, or full hash
	// length != 32.
	CodeInvalidTxHash
	// CodeUnsupportedVersion: commitment_version not in {1, 2}.
	CodeUnsupportedVersion
	// CodeProofMalformed: proof bytes do not deserialise.
	CodeProofMalformed
	// CodeProofRejected: the STARK engine rejected the proof.
	CodeProofRejected
	// CodeEngineFailure: internal error inside the STARK engine.
	CodeEngineFailure
)

func (c Code) String() string {
	switch c {
	case CodeInvalidAmountTier:
		return "InvalidAmountTier"
	case CodeAmountMismatch:
		return "AmountMismatch"
	case CodeInvalidRecipientLength:
		return "InvalidRecipientLength"
	case CodeInvalidSecretLength:
		return "InvalidSecretLength"
	case CodeInvalidTxHash:
		return "InvalidTxHash"
	case CodeUnsupportedVersion:
		return "UnsupportedVersion"
	case CodeProofMalformed:
		return "ProofMalformed"
	case CodeProofRejected:
		return "ProofRejected"
	case CodeEngineFailure:
		return "EngineFailure"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is the enumerated error type returned by the prover and
// verifier. It wraps an optional underlying cause while exposing a
// stable Code callers can switch on without string matching.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError constructs an *Error with no wrapped cause.
func NewError(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// WrapError constructs an *Error wrapping an underlying cause.
func WrapError(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}
