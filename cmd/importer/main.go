package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/cubeindex/cubecatalog/internal/config"
	"github.com/cubeindex/cubecatalog/internal/ingest"
	"github.com/cubeindex/cubecatalog/internal/logging"
	"github.com/cubeindex/cubecatalog/internal/migrate"
	"github.com/cubeindex/cubecatalog/internal/normalize"
	"github.com/cubeindex/cubecatalog/internal/pipeline"
	"github.com/cubeindex/cubecatalog/internal/store"
)

func main() {
	cfg := config.Load()
	logger := logging.NewStdLogger("importer ")

	runID, err := ingest.NewRunID()
	if err != nil {
		logger.Printf("run id: %v", err)
		os.Exit(1)
	}

	logger.Printf("%s starting (env=%s backend=%s stores=%s)",
		runID, cfg.Env, cfg.StoreBackend, cfg.StoresDir)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	driver := pipeline.Driver{
		Rules:  normalize.DefaultRules(),
		Logger: logger,
	}

	out, err := driver.Run(cfg.StoresDir)
	if err != nil {
		logger.Printf("pipeline failed: %v", err)
		os.Exit(1)
	}

	s := out.Summary
	logger.Printf("%d files, %d listings scanned, %d skipped, %d candidate rows, %d unique",
		s.FilesScanned, s.ListingsScanned, s.Skipped, s.CandidateRows, s.UniqueRows)
	if len(out.Issues) > 0 {
		logger.Printf("%d rows flagged for review (empty slug/brand/image)", len(out.Issues))
	}

	if s.UniqueRows == 0 {
		logger.Printf("nothing suitable found, exiting")
		return
	}

	reportDelta(cfg, logger, out)

	// The local dump is written before the remote upsert so a storage
	// outage never costs us the run's output.
	if err := pipeline.WriteDump(cfg.OutputFile, out.Rows); err != nil {
		logger.Printf("writing dump %s: %v", cfg.OutputFile, err)
		os.Exit(1)
	}
	logger.Printf("normalized dump saved to %s", cfg.OutputFile)

	if err := upsert(ctx, cfg, logger, out); err != nil {
		logger.Printf("upsert failed (dump is intact): %v", err)
		os.Exit(1)
	}

	logger.Printf("%s finished: %d rows from %d source files", runID, s.UniqueRows, s.FilesScanned)
}

func reportDelta(cfg config.Config, logger interface{ Printf(string, ...any) }, out pipeline.Output) {
	previous, err := pipeline.ReadDump(cfg.OutputFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Printf("previous dump unreadable, skipping delta: %v", err)
		}
		return
	}

	rep, err := pipeline.Delta(previous, out.Rows)
	if err != nil {
		logger.Printf("delta report failed: %v", err)
		return
	}
	logger.Printf("delta vs previous run: %d new, %d changed, %d unchanged, %d removed",
		rep.New, rep.Changed, rep.Unchanged, rep.Removed)
}

func upsert(ctx context.Context, cfg config.Config, logger interface{ Printf(string, ...any) }, out pipeline.Output) error {
	res, err := store.NewStore(ctx, store.FactoryConfig{
		Backend:     cfg.StoreBackend,
		MySQLDSN:    cfg.MySQLDSN,
		SupabaseURL: cfg.SupabaseURL,
		SupabaseKey: cfg.SupabaseKey,
	})
	if err != nil {
		return err
	}
	if res.DB != nil {
		defer res.DB.Close()

		if cfg.RunMigrations {
			if err := migrate.Apply(ctx, res.DB); err != nil {
				return err
			}
			logger.Printf("migrations applied")
		}
	}

	logger.Printf("upserting %d rows to %s backend", len(out.Rows), cfg.StoreBackend)
	return res.Store.UpsertRows(ctx, out.Rows)
}
