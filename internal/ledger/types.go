package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics observes ledger operations.
	Metrics interface {
		ObserveAppend(kind model.BlockKind, err error, started time.Time)
		ObserveSeal(attempts uint64, err error, started time.Time)
		ObserveVerify(result string, started time.Time)
		ObserveValidate(valid bool, started time.Time)
		ObserveSink(err error)
		SetChainLength(length int)
	}
	// BlockSink receives every block after it has been appended, in append order per
	// caller. Sink failures never fail the append.
	BlockSink interface {
		WriteBlock(ctx context.Context, block model.Block) error
	}
)
