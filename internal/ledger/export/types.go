package export

import (
	"context"
	"time"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertBlocks(ctx context.Context, ledgerID string, blocks []model.Block) error
		MaxBlockIndex(ctx context.Context, ledgerID string) (uint64, error)
	}
	Metrics interface {
		ObserveFlush(err error, blocks int, started time.Time)
	}
)
