package model

// VerificationResult is returned after an observed outcome was recorded for a prediction.
type VerificationResult struct {
	// BlockIndex is the index of the verified prediction block.
	BlockIndex uint64 `json:"block_index"`
	// ErrorAbs is |actual - predicted yield| for this prediction.
	ErrorAbs float64 `json:"error_abs"`
	// MAPEPercent is the chain-wide mean absolute percentage error; nil when no outcome qualifies.
	MAPEPercent *float64 `json:"mape_percent"`
	ChainValid  bool     `json:"chain_valid"`
	// OutcomeIndex and OutcomeHash identify the outcome block appended for this verification.
	OutcomeIndex uint64 `json:"outcome_index"`
	OutcomeHash  string `json:"outcome_hash"`
}
