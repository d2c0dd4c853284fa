package report_generator

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

const (
	headerHeight = 12
	rowHeight    = 6
)

var (
	bold   = props.Text{Style: fontstyle.Bold, Size: 9}
	normal = props.Text{Size: 9}
	title  = props.Text{Style: fontstyle.Bold, Size: 14, Align: align.Center}
)

// Generator renders a run summary as a PDF with a CSV of the per-file rows next to it.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// FileRow is one line of the CSV companion.
type FileRow struct {
	FileName     string `csv:"file_name"`
	Status       string `csv:"status"`
	RecordCount  int    `csv:"record_count"`
	TotalValue   string `csv:"total_value"`
	NewCustomers int    `csv:"new_customers"`
	NewProducts  int    `csv:"new_products"`
	NewBrands    int    `csv:"new_brands"`
	ErrorMessage string `csv:"error_message,omitempty"`
}

func (g *Generator) GenerateReport(outputPath string, summary *domain.RunSummary) error {
	if err := g.writePDF(outputPath, summary); err != nil {
		return err
	}

	csvPath := strings.TrimSuffix(outputPath, ".pdf") + ".csv"
	if err := g.writeCSV(csvPath, summary); err != nil {
		return err
	}

	return nil
}

func (g *Generator) writePDF(path string, summary *domain.RunSummary) error {
	m := maroto.New()

	m.AddRows(text.NewRow(headerHeight, "Upload run report", title))

	m.AddRows(
		pair("Uploader", summary.Uploader),
		pair("Started", summary.StartedAt.Format(time.DateTime)),
		pair("Finished", summary.FinishedAt.Format(time.DateTime)),
		pair("Files", strconv.Itoa(summary.TotalFiles)),
		pair("Successful", strconv.Itoa(summary.SuccessfulFiles)),
		pair("Failed", strconv.Itoa(summary.FailedFiles)),
		pair("Records", strconv.Itoa(summary.TotalRecords)),
		pair("Total value", summary.TotalValue.StringFixed(2)),
	)

	m.AddRows(text.NewRow(headerHeight, "Files", props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}))

	m.AddRow(rowHeight,
		text.NewCol(4, "File", bold),
		text.NewCol(2, "Status", bold),
		text.NewCol(2, "Records", bold),
		text.NewCol(2, "Value", bold),
		text.NewCol(2, "New c/p/b", bold),
	)

	for _, f := range summary.Files {
		r := fileRow(f)

		m.AddRow(rowHeight,
			text.NewCol(4, r.FileName, normal),
			text.NewCol(2, r.Status, normal),
			text.NewCol(2, strconv.Itoa(r.RecordCount), normal),
			text.NewCol(2, r.TotalValue, normal),
			text.NewCol(2, fmt.Sprintf("%d/%d/%d", r.NewCustomers, r.NewProducts, r.NewBrands), normal),
		)

		if r.ErrorMessage != "" {
			m.AddRows(text.NewRow(rowHeight, r.ErrorMessage, props.Text{Size: 8, Left: 4}))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(path); err != nil {
		return fmt.Errorf("failed to save pdf %q: %w", path, err)
	}

	return nil
}

func (g *Generator) writeCSV(path string, summary *domain.RunSummary) (err error) {
	rows := make([]FileRow, 0, len(summary.Files))
	for _, f := range summary.Files {
		rows = append(rows, fileRow(f))
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal csv: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	return nil
}

func pair(label, value string) core.Row {
	return text.NewRow(rowHeight, label+": "+value, normal)
}

func fileRow(f *domain.FileTask) FileRow {
	r := FileRow{
		FileName:     f.FileName,
		Status:       string(f.Status),
		TotalValue:   "0.00",
		ErrorMessage: f.ErrorMessage,
	}

	if f.Summary != nil {
		r.RecordCount = f.Summary.RecordCount
		r.TotalValue = f.Summary.TotalValue.StringFixed(2)
		r.NewCustomers = f.Summary.NewCustomers
		r.NewProducts = f.Summary.NewProducts
		r.NewBrands = f.Summary.NewBrands
	}

	return r
}
