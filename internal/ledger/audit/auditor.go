// Package audit periodically re-validates the ledger and publishes its accuracy.
package audit

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/yieldledger-backend/internal/clock"
)

const defaultInterval = time.Minute

// Auditor walks the whole chain on an interval. An invalid chain is reported, never repaired.
type Auditor struct {
	chain    Chain
	metrics  Metrics
	logger   *zap.Logger
	sleep    func(context.Context, time.Duration) error
	interval time.Duration
}

// NewAuditor builds an Auditor over chain.
func NewAuditor(chain Chain, metrics Metrics, interval time.Duration, logger *zap.Logger) (*Auditor, error) {
	if chain == nil {
		return nil, errors.New("audit chain is required")
	}
	if metrics == nil {
		return nil, errors.New("audit metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Auditor{
		chain:    chain,
		metrics:  metrics,
		logger:   logger,
		sleep:    clock.SleepWithContext,
		interval: interval,
	}, nil
}

// Run audits the chain until ctx is canceled.
func (a *Auditor) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := a.run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Warn("audit pass found a problem", zap.Error(err))
		}
		if err := a.sleep(ctx, a.interval); err != nil {
			return err
		}
	}
}

func (a *Auditor) run(ctx context.Context) error {
	started := time.Now()
	err := a.chain.Validate(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	valid := err == nil
	a.metrics.SetChainValid(valid)
	if !valid {
		a.logger.Error("chain integrity violation", zap.Int("length", a.chain.Len()), zap.Error(err))
	}

	report := a.chain.Accuracy()
	a.metrics.SetAccuracy(report.MAPEPercent, report.Counted, report.ExcludedZero)
	a.metrics.ObserveRun(err, started)

	fields := []zap.Field{
		zap.Int("length", a.chain.Len()),
		zap.Bool("valid", valid),
		zap.Int("outcomes", report.Counted+report.ExcludedZero),
	}
	if report.MAPEPercent != nil {
		fields = append(fields, zap.Float64("mape_percent", *report.MAPEPercent))
	}
	a.logger.Debug("audit pass done", fields...)
	return err
}
