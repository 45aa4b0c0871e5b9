// Package accuracy derives prediction error statistics from a ledger chain.
package accuracy

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

// YieldField is the prediction key compared against observed outcomes.
const YieldField = "yield"

// Outcome pairs a prediction with the most recent observed value recorded for it.
type Outcome struct {
	PredictionHash  string  `json:"prediction_hash"`
	PredictionIndex uint64  `json:"prediction_index"`
	OutcomeIndex    uint64  `json:"outcome_index"`
	SubjectID       string  `json:"subject_id"`
	Predicted       float64 `json:"predicted"`
	Actual          float64 `json:"actual"`
	ErrorAbs        float64 `json:"error_abs"`
	// InMAPE is false when the outcome cannot contribute a percentage error (actual == 0).
	InMAPE bool `json:"in_mape"`
}

// Report summarizes accuracy over a chain.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	// MAPEPercent is nil when no outcome qualifies.
	MAPEPercent  *float64 `json:"mape_percent"`
	Counted      int      `json:"counted"`
	ExcludedZero int      `json:"excluded_zero"`
}

// PredictedYield extracts a finite numeric yield from a prediction payload.
func PredictedYield(prediction any) (float64, bool) {
	m, ok := prediction.(map[string]any)
	if !ok {
		return 0, false
	}
	return toFloat(m[YieldField])
}

// AbsoluteError returns |actual - predicted|.
func AbsoluteError(actual, predicted float64) float64 {
	return math.Abs(actual - predicted)
}

// Analyze walks blocks in chain order. Re-verified predictions keep only their latest
// outcome, and outcomes whose prediction is unknown or has no usable yield are skipped.
func Analyze(blocks []model.Block) Report {
	predictions := make(map[string]model.Block)
	for _, b := range blocks {
		if b.Kind == model.KindPrediction {
			predictions[b.Hash] = b
		}
	}

	report := Report{Outcomes: []Outcome{}}
	positions := make(map[string]int)
	for _, b := range blocks {
		if b.Kind != model.KindOutcome || b.Actual == nil {
			continue
		}
		actual := *b.Actual
		if math.IsNaN(actual) || math.IsInf(actual, 0) {
			continue
		}
		p, ok := predictions[b.RefHash]
		if !ok {
			continue
		}
		predicted, ok := PredictedYield(p.Prediction)
		if !ok {
			continue
		}

		o := Outcome{
			PredictionHash:  p.Hash,
			PredictionIndex: p.Index,
			OutcomeIndex:    b.Index,
			SubjectID:       p.SubjectID,
			Predicted:       predicted,
			Actual:          actual,
			ErrorAbs:        AbsoluteError(actual, predicted),
			InMAPE:          actual != 0,
		}
		if pos, seen := positions[p.Hash]; seen {
			report.Outcomes[pos] = o
			continue
		}
		positions[p.Hash] = len(report.Outcomes)
		report.Outcomes = append(report.Outcomes, o)
	}

	report.MAPEPercent, report.Counted = MAPE(report.Outcomes)
	report.ExcludedZero = len(report.Outcomes) - report.Counted
	return report
}

// MAPE returns mean(|actual - predicted| / |actual|) * 100 over outcomes with a non-zero
// actual, and how many outcomes contributed.
func MAPE(outcomes []Outcome) (*float64, int) {
	var sum float64
	var n int
	for _, o := range outcomes {
		if o.Actual == 0 {
			continue
		}
		sum += math.Abs((o.Actual - o.Predicted) / o.Actual)
		n++
	}
	if n == 0 {
		return nil, 0
	}
	mape := sum / float64(n) * 100
	return &mape, n
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch value := v.(type) {
	case float64:
		f = value
	case float32:
		f = float64(value)
	case int:
		f = float64(value)
	case int64:
		f = float64(value)
	case uint64:
		f = float64(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
