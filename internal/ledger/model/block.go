// Package model defines domain models for the prediction ledger.
package model

// BlockKind describes what a block records.
type BlockKind string

const (
	// KindGenesis marks the first block of every chain.
	KindGenesis BlockKind = "genesis"
	// KindPrediction marks a block holding a yield prediction.
	KindPrediction BlockKind = "prediction"
	// KindOutcome marks a block annotating an earlier prediction with the observed yield.
	KindOutcome BlockKind = "outcome"
)

// GenesisSubject is the subject id carried by the genesis block.
const GenesisSubject = "genesis"

// ZeroHash is the prev_hash of the genesis block.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Block is a single hash-linked ledger record. Blocks are never mutated after append.
type Block struct {
	Index         uint64    `json:"index"`
	Timestamp     string    `json:"timestamp"`
	Kind          BlockKind `json:"kind"`
	SubjectID     string    `json:"subject_id"`
	InputSnapshot any       `json:"input_snapshot"`
	Prediction    any       `json:"prediction"`
	RefHash       string    `json:"ref_hash"`
	Actual        *float64  `json:"actual"`
	ErrorAbs      *float64  `json:"error_abs"`
	PrevHash      string    `json:"prev_hash"`
	Nonce         uint64    `json:"nonce"`
	Hash          string    `json:"hash"`
}

// Fields returns every hashed field of the block keyed by its JSON name. Hash is excluded.
func (b Block) Fields() map[string]any {
	return map[string]any{
		"index":          b.Index,
		"timestamp":      b.Timestamp,
		"kind":           string(b.Kind),
		"subject_id":     b.SubjectID,
		"input_snapshot": b.InputSnapshot,
		"prediction":     b.Prediction,
		"ref_hash":       b.RefHash,
		"actual":         optional(b.Actual),
		"error_abs":      optional(b.ErrorAbs),
		"prev_hash":      b.PrevHash,
		"nonce":          b.Nonce,
	}
}

// Clone returns a deep copy of the block so callers cannot reach stored values.
func (b Block) Clone() Block {
	out := b
	out.InputSnapshot = CloneValue(b.InputSnapshot)
	out.Prediction = CloneValue(b.Prediction)
	if b.Actual != nil {
		v := *b.Actual
		out.Actual = &v
	}
	if b.ErrorAbs != nil {
		v := *b.ErrorAbs
		out.ErrorAbs = &v
	}
	return out
}

// CloneValue deep-copies a normalized value tree.
func CloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = CloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return value
	}
}

func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
