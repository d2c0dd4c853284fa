package pipeline

import (
	"context"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

type SheetMappingProvider interface {
	ActiveSheetMappings(ctx context.Context) ([]*domain.SheetMapping, error)
	ColumnMapping(ctx context.Context, sheetMappingID string) ([]string, error)
}

type CustomerRepository interface {
	ExistingPhones(ctx context.Context, phones []string) ([]string, error)
	InsertCustomers(ctx context.Context, customers ...*domain.CustomerStub) error
}

type BatchSubmitter interface {
	SubmitBatch(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResult, error)
}

type UploadLogRepository interface {
	OpenUploadLog(ctx context.Context, log *domain.UploadLog) (string, error)
	UpdateUploadLog(ctx context.Context, id string, patch *domain.UploadLogPatch) error
}

type Maintainer interface {
	RunPostIngestMaintenance(ctx context.Context) error
}

type SessionKeeper interface {
	KeepAlive(ctx context.Context, identity string) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, summary *domain.RunSummary) error
}
