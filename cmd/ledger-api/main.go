package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/audit"
	"github.com/goodnatureofminers/yieldledger-backend/internal/ledger/export"
	"github.com/goodnatureofminers/yieldledger-backend/internal/metrics"
	"github.com/goodnatureofminers/yieldledger-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/yieldledger-backend/internal/transport"
	"github.com/goodnatureofminers/yieldledger-backend/pkg/safe"
)

type config struct {
	Addr                string        `long:"addr" env:"LEDGER_API_ADDR" description:"HTTP listen address" default:":8000"`
	LedgerID            string        `long:"ledger-id" env:"LEDGER_API_LEDGER_ID" description:"ledger id, generated when empty"`
	Difficulty          int           `long:"difficulty" env:"LEDGER_API_DIFFICULTY" description:"leading hex zeros required on block hashes, 0 disables mining" default:"2"`
	MaxSealAttempts     int64         `long:"max-seal-attempts" env:"LEDGER_API_MAX_SEAL_ATTEMPTS" description:"nonce search cap per block, 0 for unbounded" default:"0"`
	SealTimeout         time.Duration `long:"seal-timeout" env:"LEDGER_API_SEAL_TIMEOUT" description:"time budget of a single nonce search, 0 for none" default:"30s"`
	ValidateWorkers     int           `long:"validate-workers" env:"LEDGER_API_VALIDATE_WORKERS" description:"goroutines recomputing hashes on long chains" default:"4"`
	AuditInterval       time.Duration `long:"audit-interval" env:"LEDGER_API_AUDIT_INTERVAL" description:"pause between full chain audits" default:"1m"`
	ClickhouseDSN       string        `long:"clickhouse-dsn" env:"LEDGER_API_CLICKHOUSE_DSN" description:"ClickHouse DSN of the block mirror, export disabled when empty"`
	ExportFlushSize     int           `long:"export-flush-size" env:"LEDGER_API_EXPORT_FLUSH_SIZE" description:"blocks per export batch" default:"100"`
	ExportFlushInterval time.Duration `long:"export-flush-interval" env:"LEDGER_API_EXPORT_FLUSH_INTERVAL" description:"max delay before a partial export batch is flushed" default:"1s"`
	ExportRPS           int           `long:"export-rps" env:"LEDGER_API_EXPORT_RPS" description:"export flushes per second" default:"10"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledger api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	maxSealAttempts, err := safe.Uint64(cfg.MaxSealAttempts)
	if err != nil {
		return fmt.Errorf("max seal attempts: %w", err)
	}
	ledgerID := cfg.LedgerID
	if ledgerID == "" {
		ledgerID = uuid.NewString()
	}
	opts := []ledger.Option{ledger.WithID(ledgerID)}

	if cfg.ClickhouseDSN != "" {
		writer, closeExport, err := startExport(ctx, cfg, ledgerID, logger)
		if err != nil {
			return err
		}
		defer closeExport()
		opts = append(opts, ledger.WithSink(writer))
	}

	l, err := ledger.NewLedger(ledger.Config{
		Difficulty:      cfg.Difficulty,
		MaxSealAttempts: maxSealAttempts,
		SealTimeout:     cfg.SealTimeout,
		ValidateWorkers: cfg.ValidateWorkers,
	}, metrics.NewLedger(), logger.Named("ledger"), opts...)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}

	auditor, err := audit.NewAuditor(l, metrics.NewAuditor(), cfg.AuditInterval, logger.Named("audit").With(zap.String("ledger_id", ledgerID)))
	if err != nil {
		return fmt.Errorf("init auditor: %w", err)
	}
	auditCtx, cancelAudit := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := auditor.Run(auditCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("auditor stopped", zap.Error(err))
		}
	}()
	defer func() {
		cancelAudit()
		wg.Wait()
	}()

	return serve(ctx, cfg, l, logger)
}

func startExport(ctx context.Context, cfg config, ledgerID string, logger *zap.Logger) (*export.BlockWriter, func(), error) {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return nil, nil, fmt.Errorf("init repository: %w", err)
	}

	writer, err := export.NewBlockWriter(repo, ledgerID, export.WriterConfig{
		FlushSize:     cfg.ExportFlushSize,
		FlushInterval: cfg.ExportFlushInterval,
		RPS:           cfg.ExportRPS,
	}, metrics.NewBlockWriter(), logger.Named("export"))
	if err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("init block writer: %w", err)
	}
	// The writer outlives the signal context: Stop drains it once the server has
	// finished in-flight requests.
	if err := writer.Start(context.WithoutCancel(ctx)); err != nil {
		_ = repo.Close()
		return nil, nil, fmt.Errorf("start block export: %w", err)
	}

	return writer, func() {
		writer.Stop()
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close clickhouse connection", zap.Error(err))
		}
	}, nil
}

func serve(ctx context.Context, cfg config, l *ledger.Ledger, logger *zap.Logger) error {
	mux := http.NewServeMux()
	transport.NewLedgerHandler(l, logger.Named("http")).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(transport.Wrap(mux, logger.Named("access"), metrics.NewHTTP())),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.SealTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.String("ledger_id", l.ID()),
		zap.Int("difficulty", l.Difficulty()),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
