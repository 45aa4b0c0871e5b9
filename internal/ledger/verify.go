package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/accuracy"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

// VerifyPredictionAccuracy records the observed yield for the prediction stored under
// hash. The prediction block is left untouched: the outcome is appended as a new block
// referencing it, so every earlier hash keeps covering exactly what it covered at append.
func (l *Ledger) VerifyPredictionAccuracy(ctx context.Context, hash string, actual float64) (res model.VerificationResult, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveVerify(verifyResult(err), started)
	}()

	if math.IsNaN(actual) || math.IsInf(actual, 0) {
		return model.VerificationResult{}, fmt.Errorf("%w: actual %v is not finite", ErrInvalidOutcome, actual)
	}

	target, ok := l.BlockByHash(hash)
	if !ok {
		return model.VerificationResult{}, fmt.Errorf("%w: %s", ErrHashNotFound, hash)
	}
	if target.Kind != model.KindPrediction {
		return model.VerificationResult{}, fmt.Errorf("%w: block %d is a %s block", ErrPredictionMissing, target.Index, target.Kind)
	}
	predicted, ok := accuracy.PredictedYield(target.Prediction)
	if !ok {
		return model.VerificationResult{}, fmt.Errorf("%w: block %d has no numeric %s", ErrPredictionMissing, target.Index, accuracy.YieldField)
	}

	errorAbs := accuracy.AbsoluteError(actual, predicted)
	outcome, err := l.append(ctx, model.Block{
		Kind:          model.KindOutcome,
		SubjectID:     target.SubjectID,
		InputSnapshot: map[string]any{},
		Prediction:    map[string]any{},
		RefHash:       target.Hash,
		Actual:        &actual,
		ErrorAbs:      &errorAbs,
	})
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("append outcome for block %d: %w", target.Index, err)
	}

	blocks := l.snapshot()
	report := accuracy.Analyze(blocks)
	// The outcome is already appended; a canceled request must not read as tampering.
	validateErr := l.validate(context.WithoutCancel(ctx), blocks)
	if validateErr != nil {
		l.logger.Warn("chain invalid after verification", zap.Error(validateErr))
	}

	return model.VerificationResult{
		BlockIndex:   target.Index,
		ErrorAbs:     errorAbs,
		MAPEPercent:  report.MAPEPercent,
		ChainValid:   validateErr == nil,
		OutcomeIndex: outcome.Index,
		OutcomeHash:  outcome.Hash,
	}, nil
}
