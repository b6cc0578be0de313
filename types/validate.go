package types

import "fmt"

// ValidateInputs runs the checks shared verbatim by the prover and the
// verifier (spec §4.4 step 1 / §4.5 step 1), in the same order, so that
// a rejected input set produces the same error Code from both sides
// (Testable Property 7: input-validation parity).
func ValidateInputs(version, burnAmount, mintAmount uint64, recipientLen int, legacyTxnHashLimb uint64) error {
	if version != 1 && version != 2 {
		return NewError(CodeUnsupportedVersion, fmt.Sprintf("commitment_version %d not in {1, 2}", version))
	}
	if !IsValidTier(version, burnAmount) {
		return NewError(CodeInvalidAmountTier, fmt.Sprintf("burn_amount %d is not an admissible tier for version %d", burnAmount, version))
	}
	if mintAmount != burnAmount {
		return NewError(CodeAmountMismatch, fmt.Sprintf("mint_amount %d != burn_amount %d", mintAmount, burnAmount))
	}
	if recipientLen != 20 {
		return NewError(CodeInvalidRecipientLength, fmt.Sprintf("recipient must be exactly 20 bytes, got %d", recipientLen))
	}
	if legacyTxnHashLimb == 0 {
		return NewError(CodeInvalidTxHash, "legacy transaction-hash limb must be non-zero")
	}
	return nil
}
