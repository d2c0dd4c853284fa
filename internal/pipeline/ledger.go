package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
	"github.com/shopspring/decimal"
)

// Ledger keeps one audit record per file: opened as processing before the first
// batch and finalized exactly once.
type Ledger struct {
	log  *slog.Logger
	repo UploadLogRepository
}

func NewLedger(log *slog.Logger, repo UploadLogRepository) *Ledger {
	return &Ledger{
		log:  log,
		repo: repo,
	}
}

func (l *Ledger) Open(
	ctx context.Context,
	fileName, uploader, sheetMappingID string,
	distinctDates []string,
) (string, error) {
	if distinctDates == nil {
		distinctDates = []string{}
	}

	id, err := l.repo.OpenUploadLog(ctx, &domain.UploadLog{
		FileName:            fileName,
		UploaderIdentity:    uploader,
		SheetMappingID:      sheetMappingID,
		Status:              domain.LogStatusProcessing,
		TotalValue:          decimal.Zero,
		DistinctSourceDates: distinctDates,
	})
	if err != nil {
		return "", fmt.Errorf("failed to open upload log: %w", err)
	}

	l.log.DebugContext(ctx, "upload log opened", slog.String("log_id", id), slog.String("filename", fileName))

	return id, nil
}

// Finalize records the terminal state. A non-nil failure marks the record failed but
// still stores the counters of the batches that were applied.
func (l *Ledger) Finalize(ctx context.Context, logID string, outcome *domain.UploadOutcome, failure error) error {
	if outcome == nil {
		outcome = &domain.UploadOutcome{TotalValue: decimal.Zero}
	}

	patch := &domain.UploadLogPatch{
		Status:            domain.LogStatusCompleted,
		RecordsProcessed:  outcome.RecordCount,
		NewCustomersCount: outcome.NewCustomers,
		NewProductsCount:  outcome.NewProducts,
		NewBrandsCount:    outcome.NewBrands,
		TotalValue:        outcome.TotalValue,
		DateRangeStart:    outcome.DateRange.Start,
		DateRangeEnd:      outcome.DateRange.End,
		FinishedAt:        time.Now(),
	}

	if failure != nil {
		msg := failure.Error()
		patch.Status = domain.LogStatusFailed
		patch.ErrorMessage = &msg
	}

	if err := l.repo.UpdateUploadLog(ctx, logID, patch); err != nil {
		return fmt.Errorf("failed to finalize upload log %s: %w", logID, err)
	}

	return nil
}
