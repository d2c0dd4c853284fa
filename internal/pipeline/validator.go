package pipeline

import (
	"log/slog"
	"strings"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

type Validator struct {
	log *slog.Logger
}

func NewValidator(log *slog.Logger) *Validator {
	return &Validator{log: log}
}

// NormalizeColumn lowercases a column name and collapses runs of whitespace.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Validate compares the file header to the mapped columns. Missing columns are only
// logged; extra columns need a user decision before the file can continue.
func (v *Validator) Validate(fileColumns, mappedColumns []string) domain.ColumnDecision {
	fileSet := make(map[string]struct{}, len(fileColumns))
	for _, c := range fileColumns {
		fileSet[NormalizeColumn(c)] = struct{}{}
	}

	mappedSet := make(map[string]struct{}, len(mappedColumns))
	for _, c := range mappedColumns {
		mappedSet[NormalizeColumn(c)] = struct{}{}
	}

	decision := domain.ColumnDecision{
		Missing: []string{},
		Extra:   []string{},
	}

	for _, c := range mappedColumns {
		if _, ok := fileSet[NormalizeColumn(c)]; !ok {
			decision.Missing = append(decision.Missing, c)
		}
	}

	for _, c := range fileColumns {
		if _, ok := mappedSet[NormalizeColumn(c)]; !ok {
			decision.Extra = append(decision.Extra, c)
		}
	}

	if len(decision.Missing) > 0 {
		v.log.Warn("mapped columns missing from file, values will be null",
			slog.Any("missing", decision.Missing),
		)
	}

	return decision
}

// Project rewrites rows onto the mapped columns: extra columns are dropped and
// missing ones are set to nil. Strings left in dateColumn are parsed once more as
// textual dates so that role columns with unusual headers still yield dates.
func (v *Validator) Project(rows []domain.RowRecord, fileColumns, mappedColumns []string, dateColumn string) []domain.RowRecord {
	source := make(map[string]string, len(fileColumns))
	for _, c := range fileColumns {
		source[NormalizeColumn(c)] = c
	}

	var dates DateParser
	if fileColumn, ok := source[NormalizeColumn(dateColumn)]; ok && dateColumn != "" {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			if s, isString := row[fileColumn].(string); isString {
				values = append(values, s)
			}
		}
		dates = NewDateParser(values, false)
	}

	projected := make([]domain.RowRecord, 0, len(rows))
	for _, row := range rows {
		out := make(domain.RowRecord, len(mappedColumns))

		for _, c := range mappedColumns {
			fileColumn, ok := source[NormalizeColumn(c)]
			if !ok {
				out[c] = nil
				continue
			}

			value := row[fileColumn]
			if s, isString := value.(string); isString && c == dateColumn && s != "" {
				if date, parsed := dates.Parse(s); parsed {
					value = date
				}
			}

			out[c] = value
		}

		projected = append(projected, out)
	}

	return projected
}
