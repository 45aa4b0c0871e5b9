package audit

import (
	"context"
	"time"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/accuracy"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		Validate(ctx context.Context) error
		Accuracy() accuracy.Report
		Len() int
	}
	Metrics interface {
		ObserveRun(err error, started time.Time)
		SetChainValid(valid bool)
		SetAccuracy(mape *float64, counted, excludedZero int)
	}
)
