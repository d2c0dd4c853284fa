package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type UploadLog struct {
	ID                  string          `db:"id"                   json:"id"`
	FileName            string          `db:"file_name"            json:"file_name"`
	UploaderIdentity    string          `db:"uploader_identity"    json:"uploader_identity"`
	SheetMappingID      string          `db:"sheet_mapping_id"     json:"sheet_mapping_id"`
	Status              LogStatus       `db:"status"               json:"status"`
	RecordsProcessed    int             `db:"records_processed"    json:"records_processed"`
	NewCustomersCount   int             `db:"new_customers_count"  json:"new_customers_count"`
	NewProductsCount    int             `db:"new_products_count"   json:"new_products_count"`
	NewBrandsCount      int             `db:"new_brands_count"     json:"new_brands_count"`
	TotalValue          decimal.Decimal `db:"total_value"          json:"total_value"`
	DateRangeStart      *time.Time      `db:"date_range_start"     json:"date_range_start,omitempty"`
	DateRangeEnd        *time.Time      `db:"date_range_end"       json:"date_range_end,omitempty"`
	ErrorMessage        *string         `db:"error_message"        json:"error_message,omitempty"`
	DistinctSourceDates []string        `db:"distinct_source_dates" json:"distinct_source_dates"`
	CreatedAt           time.Time       `db:"created_at"           json:"created_at"`
	FinishedAt          *time.Time      `db:"finished_at"          json:"finished_at,omitempty"`
}

// UploadLogPatch is the terminal update of a ledger record.
type UploadLogPatch struct {
	Status            LogStatus
	RecordsProcessed  int
	NewCustomersCount int
	NewProductsCount  int
	NewBrandsCount    int
	TotalValue        decimal.Decimal
	DateRangeStart    *time.Time
	DateRangeEnd      *time.Time
	ErrorMessage      *string
	FinishedAt        time.Time
}
