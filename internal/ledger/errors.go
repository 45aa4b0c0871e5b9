package ledger

import "errors"

var (
	// ErrHashNotFound is returned when no block carries the requested hash.
	ErrHashNotFound = errors.New("hash_not_found")
	// ErrPredictionMissing is returned when the target block has no usable numeric yield.
	ErrPredictionMissing = errors.New("prediction_missing")
	// ErrInvalidOutcome is returned for observed values that are not finite numbers.
	ErrInvalidOutcome = errors.New("invalid_outcome")
	// ErrChainInvalid wraps every chain integrity violation found by Validate.
	ErrChainInvalid = errors.New("chain invalid")
)

// Verification results reported to Metrics.ObserveVerify.
const (
	VerifySuccess           = "success"
	VerifyHashNotFound      = "hash_not_found"
	VerifyPredictionMissing = "prediction_missing"
	VerifyInvalidOutcome    = "invalid_outcome"
	VerifyError             = "error"
)

func verifyResult(err error) string {
	switch {
	case err == nil:
		return VerifySuccess
	case errors.Is(err, ErrHashNotFound):
		return VerifyHashNotFound
	case errors.Is(err, ErrPredictionMissing):
		return VerifyPredictionMissing
	case errors.Is(err, ErrInvalidOutcome):
		return VerifyInvalidOutcome
	default:
		return VerifyError
	}
}
