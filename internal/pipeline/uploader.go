package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
	"github.com/shopspring/decimal"
)

// ClassifyFunc blocks until the user classifies newBrands. batch is 1-based.
type ClassifyFunc func(ctx context.Context, batch int, newBrands []string) (map[string]string, error)

type ProgressFunc func(p domain.BatchProgress)

type UploadRequest struct {
	Mapping     *domain.SheetMapping
	UploadLogID string
	Rows        []domain.RowRecord
}

// BatchError carries the boundary's message for the batch that failed.
type BatchError struct {
	Batch        int
	TotalBatches int
	Err          error
}

func (e *BatchError) Error() string {
	return e.Err.Error()
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

type Uploader struct {
	log       *slog.Logger
	submitter BatchSubmitter
	batchSize int
}

func NewUploader(log *slog.Logger, submitter BatchSubmitter, batchSize int) *Uploader {
	if batchSize <= 0 {
		batchSize = 1000
	}

	return &Uploader{
		log:       log,
		submitter: submitter,
		batchSize: batchSize,
	}
}

func (u *Uploader) BatchSize() int {
	return u.batchSize
}

// Partition splits rows into consecutive batches of size; the last one may be shorter.
func Partition(rows []domain.RowRecord, size int) [][]domain.RowRecord {
	if size <= 0 || len(rows) == 0 {
		return nil
	}

	batches := make([][]domain.RowRecord, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		batches = append(batches, rows[start:min(start+size, len(rows))])
	}

	return batches
}

// Upload submits the rows batch by batch, in order. When the boundary asks for brand
// classifications the same batch is resubmitted once classify answers. On error the
// counters of the batches already applied are returned together with the error.
func (u *Uploader) Upload(
	ctx context.Context,
	req UploadRequest,
	classify ClassifyFunc,
	progress ProgressFunc,
) (*domain.UploadOutcome, error) {
	batches := Partition(req.Rows, u.batchSize)
	outcome := &domain.UploadOutcome{TotalValue: decimal.Zero}
	classifications := make(map[string]string)

	for i := 0; i < len(batches); {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		log := u.log.With(
			slog.Int("batch", i+1),
			slog.Int("total_batches", len(batches)),
			slog.Int("rows", len(batches[i])),
		)

		log.DebugContext(ctx, "submitting batch")

		result, err := u.submitter.SubmitBatch(ctx, &domain.BatchRequest{
			SheetMapping:         req.Mapping,
			UploadLogID:          req.UploadLogID,
			Rows:                 batches[i],
			BrandClassifications: maps.Clone(classifications),
		})
		if err != nil {
			log.ErrorContext(ctx, "batch failed", slog.String("err", err.Error()))
			return outcome, &BatchError{Batch: i + 1, TotalBatches: len(batches), Err: err}
		}

		if result.RequiresBrandTypeSelection {
			pending := unclassified(result.NewBrands, classifications)
			if len(pending) == 0 {
				return outcome, &BatchError{
					Batch:        i + 1,
					TotalBatches: len(batches),
					Err:          fmt.Errorf("classification rejected for brands %v", result.NewBrands),
				}
			}

			log.InfoContext(ctx, "batch requires brand classification", slog.Any("brands", pending))

			answer, err := classify(ctx, i+1, pending)
			if err != nil {
				return outcome, err
			}

			maps.Copy(classifications, answer)
			continue
		}

		outcome.Add(result)

		if progress != nil {
			progress(domain.BatchProgress{
				Batch:         i + 1,
				TotalBatches:  len(batches),
				ProcessedRows: outcome.RecordCount,
				TotalRows:     len(req.Rows),
			})
		}

		i++
	}

	return outcome, nil
}

func unclassified(brands []string, classifications map[string]string) []string {
	pending := make([]string, 0, len(brands))
	for _, b := range brands {
		if _, ok := classifications[b]; !ok && !slices.Contains(pending, b) {
			pending = append(pending, b)
		}
	}
	return pending
}
