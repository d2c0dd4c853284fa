package domain

import (
	"sort"
	"time"
)

// RowRecord maps a column name to a raw cell value: string, time.Time for date-like
// columns, or nil for a mapped column absent from the file.
type RowRecord map[string]any

// Sheet is a decoded spreadsheet. Columns keeps the header order.
type Sheet struct {
	Columns []string
	Rows    []RowRecord
}

type ColumnDecision struct {
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

func (d ColumnDecision) NeedsDecision() bool {
	return len(d.Extra) > 0
}

// String returns v as text. Dates render as YYYY-MM-DD.
func (r RowRecord) String(column string) string {
	switch v := r[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.DateOnly)
	default:
		return ""
	}
}

// Date returns the value of column when it was normalised to a calendar date.
func (r RowRecord) Date(column string) (time.Time, bool) {
	t, ok := r[column].(time.Time)
	return t, ok
}

// DistinctDates lists the dates found in column, ascending, formatted as YYYY-MM-DD.
func DistinctDates(rows []RowRecord, column string) []string {
	if column == "" {
		return nil
	}

	seen := make(map[string]struct{})
	for _, row := range rows {
		if d, ok := row.Date(column); ok {
			seen[d.Format(time.DateOnly)] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	return dates
}
