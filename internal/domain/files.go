package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SourceFile struct {
	Name string
	Data []byte
}

type FileTask struct {
	ID              string       `json:"id"`
	Source          SourceFile   `json:"-"`
	FileName        string       `json:"file_name"`
	SheetMappingID  string       `json:"sheet_mapping_id"`
	Status          Status       `json:"status"`
	ProgressPercent int          `json:"progress_percent"`
	ErrorMessage    string       `json:"error_message,omitempty"`
	Summary         *FileSummary `json:"summary,omitempty"`
	AddedAt         time.Time    `json:"added_at"`
}

type FileSummary struct {
	RecordCount  int             `json:"record_count"  csv:"record_count"`
	TotalValue   decimal.Decimal `json:"total_value"   csv:"total_value"`
	NewCustomers int             `json:"new_customers" csv:"new_customers"`
	NewProducts  int             `json:"new_products"  csv:"new_products"`
	NewBrands    int             `json:"new_brands"    csv:"new_brands"`
}

// Clone returns a copy safe to hand out of the queue. The file payload is not copied.
func (t *FileTask) Clone() *FileTask {
	c := *t
	if t.Summary != nil {
		s := *t.Summary
		c.Summary = &s
	}
	return &c
}
