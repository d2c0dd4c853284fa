package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/sheet_ingest/internal/config"
	v1 "github.com/kurochkinivan/sheet_ingest/internal/controller/http/v1"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
	"github.com/kurochkinivan/sheet_ingest/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/sheet_ingest/internal/pipeline"
	"github.com/kurochkinivan/sheet_ingest/internal/repository/postgresql"
	"github.com/kurochkinivan/sheet_ingest/internal/repository/redis"
	"golang.org/x/sync/errgroup"
)

const (
	summariesBuffer = 10
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type repositories struct {
	sheetMappings *postgresql.SheetMappingsRepository
	customers     *postgresql.CustomersRepository
	ingest        *postgresql.IngestRepository
	uploadLogs    *postgresql.UploadLogsRepository
	maintenance   *postgresql.MaintenanceRepository
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.Int("batch_size", a.cfg.App.BatchSize),
		slog.Duration("heartbeat_interval", a.cfg.App.HeartbeatInterval),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	txManager := postgresql.NewTxManager(pool)
	repos := repositories{
		sheetMappings: postgresql.NewSheetMappingsRepository(pool),
		customers:     postgresql.NewCustomersRepository(pool),
		ingest:        postgresql.NewIngestRepository(pool, txManager),
		uploadLogs:    postgresql.NewUploadLogsRepository(pool),
		maintenance:   postgresql.NewMaintenanceRepository(pool),
	}

	interrupted, err := repos.uploadLogs.FailInterruptedUploadLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to close interrupted upload logs: %w", err)
	}
	if interrupted > 0 {
		a.log.WarnContext(ctx, "closed upload logs left in processing", slog.Int64("count", interrupted))
	}

	var keeper pipeline.SessionKeeper
	if a.cfg.Redis.Addr != "" {
		a.log.InfoContext(ctx, "establishing redis connection", slog.String("redis_addr", a.cfg.Redis.Addr))

		client, err := redis.NewClient(ctx, a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to create redis connection: %w", err)
		}
		defer client.Close()

		keeper = redis.NewSessionStore(client, a.cfg.Redis.SessionPrefix, a.cfg.Redis.SessionTTL)
	} else {
		a.log.InfoContext(ctx, "redis address is empty, session keep-alive disabled")
	}

	return a.startPipeline(ctx, repos, keeper)
}

func (a *App) startPipeline(ctx context.Context, repos repositories, keeper pipeline.SessionKeeper) error {
	summaries := make(chan *domain.RunSummary, summariesBuffer)

	orchestrator := pipeline.NewOrchestrator(a.log, pipeline.Components{
		Reader:     pipeline.NewReader(a.log),
		Validator:  pipeline.NewValidator(a.log),
		Resolver:   pipeline.NewResolver(a.log, repos.customers),
		Uploader:   pipeline.NewUploader(a.log, repos.ingest, a.cfg.App.BatchSize),
		Ledger:     pipeline.NewLedger(a.log, repos.uploadLogs),
		Heartbeat:  pipeline.NewHeartbeat(a.log, keeper, a.cfg.App.HeartbeatInterval),
		Mappings:   repos.sheetMappings,
		Maintainer: repos.maintenance,
	}, summaries)

	if err := orchestrator.LoadSheetMappings(ctx); err != nil {
		return err
	}

	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, summaries, report_generator.New())
	server := v1.NewServer(a.cfg.HTTP, orchestrator, repos.uploadLogs, a.cfg.App.MaxUploadSize)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "orchestrator started")
		return orchestrator.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
