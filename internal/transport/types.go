package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/accuracy"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		ID() string
		Difficulty() int
		Len() int
		AppendRecord(ctx context.Context, subjectID string, inputSnapshot, prediction any) (string, error)
		VerifyPredictionAccuracy(ctx context.Context, hash string, actual float64) (model.VerificationResult, error)
		BlockByHash(hash string) (model.Block, bool)
		Validate(ctx context.Context) error
		Accuracy() accuracy.Report
	}
	Metrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
