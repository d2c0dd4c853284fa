package pipeline

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/kurochkinivan/sheet_ingest/internal/domain"
	"github.com/xuri/excelize/v2"
)

// maxExcelSerial is 9999-12-31 in the 1900 date system.
const maxExcelSerial = 2958465

var (
	dateLayouts = []string{
		time.DateOnly,
		time.RFC3339,
		time.DateTime,
		"2006-01-02T15:04:05",
		"2006/01/02",
		"02.01.2006",
	}
	dayFirstLayouts   = []string{"02/01/2006", "02-01-2006"}
	monthFirstLayouts = []string{"01/02/2006", "01-02-2006"}
)

type Reader struct {
	log *slog.Logger
}

func NewReader(log *slog.Logger) *Reader {
	return &Reader{log: log}
}

// Read decodes the first sheet of an xlsx workbook or a csv file into rows keyed by
// header name. With skipFirstRow the leading title row is dropped and the header is
// taken from the second row.
func (r *Reader) Read(file domain.SourceFile, skipFirstRow bool) (*domain.Sheet, error) {
	records, err := r.records(file)
	if err != nil {
		return nil, err
	}

	if skipFirstRow && len(records) > 0 {
		records = records[1:]
	}

	if len(records) == 0 {
		return nil, domain.ErrEmptyFile
	}

	sheet := r.buildSheet(records[0], records[1:], isWorkbook(file.Name))
	if len(sheet.Rows) == 0 {
		return nil, domain.ErrEmptyFile
	}

	r.log.Debug("successfully read sheet",
		slog.String("filename", file.Name),
		slog.Int("columns", len(sheet.Columns)),
		slog.Int("rows", len(sheet.Rows)),
	)

	return sheet, nil
}

func (r *Reader) records(file domain.SourceFile) ([][]string, error) {
	switch {
	case isWorkbook(file.Name):
		return readWorkbook(file.Data)
	case strings.EqualFold(filepath.Ext(file.Name), ".csv"):
		return readCSV(file.Data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(file.Name))
	}
}

func isWorkbook(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

func readWorkbook(data []byte) (_ [][]string, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, domain.ErrEmptyFile
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of %q: %w", sheetName, err)
	}

	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record #%d: %w", len(records)+1, err)
		}

		records = append(records, record)
	}

	return records, nil
}

// buildSheet keys data by header. Date-like columns get one DateParser each, so a
// column is read with a single day/month order. Bare numbers count as Excel serials
// only in workbooks.
func (r *Reader) buildSheet(header []string, data [][]string, workbook bool) *domain.Sheet {
	type column struct {
		index int
		name  string
		dates *DateParser
	}

	columns := make([]column, 0, len(header))
	names := make([]string, 0, len(header))
	for i, raw := range header {
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		if name == "" {
			continue
		}

		col := column{index: i, name: name}
		if isDateColumn(name) {
			parser := NewDateParser(columnValues(data, i), workbook)
			col.dates = &parser
		}

		columns = append(columns, col)
		names = append(names, name)
	}

	sheet := &domain.Sheet{Columns: names}
	for _, record := range data {
		row := make(domain.RowRecord, len(columns))
		blank := true

		for _, col := range columns {
			if col.index >= len(record) {
				row[col.name] = ""
				continue
			}

			value := strings.TrimSpace(record[col.index])
			if value != "" {
				blank = false
			}

			if col.dates != nil && value != "" {
				if date, ok := col.dates.Parse(value); ok {
					row[col.name] = date
					continue
				}
			}

			row[col.name] = value
		}

		if !blank {
			sheet.Rows = append(sheet.Rows, row)
		}
	}

	return sheet
}

func columnValues(data [][]string, index int) []string {
	values := make([]string, 0, len(data))
	for _, record := range data {
		if index < len(record) {
			values = append(values, strings.TrimSpace(record[index]))
		}
	}
	return values
}

// isDateColumn reports whether a header word starts with "date", so "Sale Date" and
// "date_of_sale" match while "update_count" does not.
func isDateColumn(name string) bool {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, w := range words {
		if strings.HasPrefix(w, "date") {
			return true
		}
	}

	return false
}

// DateParser normalises the values of one date column to UTC midnight.
type DateParser struct {
	// ExcelSerials accepts bare numbers as 1900-system serial dates.
	ExcelSerials bool
	// MonthFirst reads slash and dash dates as mm/dd/yyyy instead of dd/mm/yyyy.
	MonthFirst bool
}

// NewDateParser takes the day/month order from the first value whose leading or
// middle part is above 12. Without one the order is day first.
func NewDateParser(values []string, excelSerials bool) DateParser {
	p := DateParser{ExcelSerials: excelSerials}

	for _, v := range values {
		first, second, ok := numericDateParts(v)
		if !ok {
			continue
		}

		switch {
		case first > 12 && second <= 12:
			return p
		case second > 12 && first <= 12:
			p.MonthFirst = true
			return p
		}
	}

	return p
}

func (p DateParser) Parse(value string) (time.Time, bool) {
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if !p.ExcelSerials || serial <= 0 || serial > maxExcelSerial {
			return time.Time{}, false
		}

		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}

		return truncateDate(t), true
	}

	ordered := dayFirstLayouts
	if p.MonthFirst {
		ordered = monthFirstLayouts
	}

	for _, layouts := range [][]string{dateLayouts, ordered} {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, value); err == nil {
				return truncateDate(t), true
			}
		}
	}

	return time.Time{}, false
}

// numericDateParts splits "aa/bb/yyyy" or "aa-bb-yyyy" into its first two numbers.
func numericDateParts(value string) (int, int, bool) {
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 || len(parts[2]) != 4 {
		return 0, 0, false
	}

	first, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	second, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return first, second, true
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
