package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BatchRequest struct {
	SheetMapping         *SheetMapping
	UploadLogID          string
	Rows                 []RowRecord
	BrandClassifications map[string]string
}

type BatchResult struct {
	Count            int
	TotalValue       decimal.Decimal
	ProductsUpserted int
	BrandsUpserted   int
	DateRange        DateRange

	RequiresBrandTypeSelection bool
	NewBrands                  []string
}

type BatchProgress struct {
	Batch         int
	TotalBatches  int
	ProcessedRows int
	TotalRows     int
}

// DateRange is empty until the first date is observed.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r *DateRange) Observe(t time.Time) {
	if r.Start == nil || t.Before(*r.Start) {
		start := t
		r.Start = &start
	}
	if r.End == nil || t.After(*r.End) {
		end := t
		r.End = &end
	}
}

func (r *DateRange) Extend(other DateRange) {
	if other.Start != nil {
		r.Observe(*other.Start)
	}
	if other.End != nil {
		r.Observe(*other.End)
	}
}

type UploadOutcome struct {
	RecordCount  int
	TotalValue   decimal.Decimal
	NewProducts  int
	NewBrands    int
	NewCustomers int
	DateRange    DateRange
	Batches      int
}

func (o *UploadOutcome) Add(r *BatchResult) {
	o.RecordCount += r.Count
	o.TotalValue = o.TotalValue.Add(r.TotalValue)
	o.NewProducts += r.ProductsUpserted
	o.NewBrands += r.BrandsUpserted
	o.DateRange.Extend(r.DateRange)
	o.Batches++
}

func (o *UploadOutcome) Summary() *FileSummary {
	return &FileSummary{
		RecordCount:  o.RecordCount,
		TotalValue:   o.TotalValue,
		NewCustomers: o.NewCustomers,
		NewProducts:  o.NewProducts,
		NewBrands:    o.NewBrands,
	}
}
