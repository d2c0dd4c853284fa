package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

// Reporter writes a report for every run summary the Orchestrator publishes.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	summaries       <-chan *domain.RunSummary
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	summaries <-chan *domain.RunSummary,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		summaries:       summaries,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case summary, ok := <-r.summaries:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("uploader", summary.Uploader),
				slog.Int("total_files", summary.TotalFiles),
			)

			log.InfoContext(ctx, "received run summary, generating report")

			if err := r.processSummary(summary); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processSummary(summary *domain.RunSummary) error {
	// пустой прогон отчёта не требует
	if summary.TotalFiles == 0 {
		return nil
	}

	name := fmt.Sprintf("run-%s.pdf", summary.FinishedAt.UTC().Format("20060102-150405"))
	path := filepath.Join(r.outputDir, name)

	if err := r.reportGenerator.GenerateReport(path, summary); err != nil {
		return fmt.Errorf("report %s: %w", name, err)
	}

	return nil
}
