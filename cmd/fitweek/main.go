package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/felixgeelhaar/fitweek/adapter/cli"
	"github.com/felixgeelhaar/fitweek/adapter/cli/week"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/commands"
	"github.com/felixgeelhaar/fitweek/internal/tracking/application/queries"
	"github.com/felixgeelhaar/fitweek/internal/tracking/domain"
	"github.com/felixgeelhaar/fitweek/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/fitweek/pkg/config"
	"github.com/felixgeelhaar/fitweek/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development", StoreBackend: config.StoreFile, DataFile: "weeks.json"}
	}
	cli.SetLogger(logger)

	repo, cleanup, err := newWeekStore(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer cleanup()

	cliApp := cli.NewApp(
		commands.NewAddWeekHandler(repo),
		commands.NewLogDayHandler(repo),
		commands.NewUpdateWeekHandler(repo),
		commands.NewImportWeeksHandler(repo),
		queries.NewGetDashboardHandler(repo),
		queries.NewGetTrendsHandler(repo),
		queries.NewListWeeksHandler(repo),
		queries.NewExportWeeksHandler(repo),
	)
	cli.SetApp(cliApp)

	cli.AddCommand(week.Cmd)

	cli.Execute()
}

// newWeekStore opens the configured persistence backend.
func newWeekStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.WeekRepository, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o700); err != nil {
			return nil, nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		db, err := sql.Open("sqlite", cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		store := persistence.NewSQLiteWeekStore(db, logger)
		if err := store.InitSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil
	case config.StoreFile, "":
		return persistence.NewFileWeekStore(cfg.DataFile, logger), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}
