package postgresql

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	TableBrands   = "brands"
	TableProducts = "products"

	columnUploadLogID = "upload_log_id"

	insertChunk = 1000
)

type IngestRepository struct {
	pool      *pgxpool.Pool
	txManager *TxManager
	qb        sq.StatementBuilderType
}

func NewIngestRepository(pool *pgxpool.Pool, txManager *TxManager) *IngestRepository {
	return &IngestRepository{
		pool:      pool,
		txManager: txManager,
		qb:        sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SubmitBatch writes one batch of rows atomically. When the batch names brands that
// are neither stored nor classified in the request, nothing is written and the
// result lists them.
func (r *IngestRepository) SubmitBatch(ctx context.Context, req *domain.BatchRequest) (*domain.BatchResult, error) {
	mapping := req.SheetMapping

	totalValue, dateRange, err := batchTotals(req.Rows, mapping)
	if err != nil {
		return nil, err
	}

	values, err := rowValues(req.Rows, mapping, req.UploadLogID)
	if err != nil {
		return nil, err
	}

	result := &domain.BatchResult{
		TotalValue: totalValue,
		DateRange:  dateRange,
	}

	err = r.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if mapping.CheckBrand && mapping.BrandColumn != "" {
			newBrands, err := r.newBrands(ctx, distinctValues(req.Rows, mapping.BrandColumn))
			if err != nil {
				return fmt.Errorf("failed to check brands: %w", err)
			}

			if unclassified := unclassifiedBrands(newBrands, req.BrandClassifications); len(unclassified) > 0 {
				result.RequiresBrandTypeSelection = true
				result.NewBrands = unclassified
				return nil
			}

			result.BrandsUpserted, err = r.insertBrands(ctx, newBrands, req.BrandClassifications)
			if err != nil {
				return fmt.Errorf("failed to insert brands: %w", err)
			}
		}

		if mapping.CheckProduct && mapping.ProductColumn != "" {
			var err error
			result.ProductsUpserted, err = r.insertProducts(ctx, req.Rows, mapping)
			if err != nil {
				return fmt.Errorf("failed to insert products: %w", err)
			}
		}

		var err error
		result.Count, err = r.copyRows(ctx, mapping, values)
		if err != nil {
			return fmt.Errorf("failed to insert rows into %s: %w", mapping.TargetTable, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.RequiresBrandTypeSelection {
		return &domain.BatchResult{
			RequiresBrandTypeSelection: true,
			NewBrands:                  result.NewBrands,
		}, nil
	}

	return result, nil
}

func (r *IngestRepository) newBrands(ctx context.Context, names []string) ([]string, error) {
	db := extractDB(ctx, r.pool)
	var existing []string

	for start := 0; start < len(names); start += insertChunk {
		end := min(start+insertChunk, len(names))

		sql, args, err := r.qb.
			Select("name").
			From(TableBrands).
			Where(sq.Eq{"name": names[start:end]}).
			ToSql()
		if err != nil {
			return nil, createQueryError(err)
		}

		rows, err := db.Query(ctx, sql, args...)
		if err != nil {
			return nil, executeQueryError(err)
		}

		found, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return nil, collectRowsError(err)
		}

		existing = append(existing, found...)
	}

	return missingNames(names, existing), nil
}

func (r *IngestRepository) insertBrands(ctx context.Context, names []string, classifications map[string]string) (int, error) {
	rows := make([][]any, 0, len(names))
	for _, name := range names {
		rows = append(rows, []any{name, classifications[name]})
	}

	return r.insertIgnoring(ctx, TableBrands, []string{"name", "brand_type_id"}, "ON CONFLICT (name) DO NOTHING", rows)
}

func (r *IngestRepository) insertProducts(ctx context.Context, rows []domain.RowRecord, mapping *domain.SheetMapping) (int, error) {
	type product struct{ name, brand string }

	seen := make(map[product]struct{})
	var products [][]any

	for _, row := range rows {
		p := product{
			name:  strings.TrimSpace(row.String(mapping.ProductColumn)),
			brand: strings.TrimSpace(row.String(mapping.BrandColumn)),
		}
		if p.name == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		products = append(products, []any{p.name, p.brand})
	}

	return r.insertIgnoring(ctx, TableProducts, []string{"name", "brand_name"}, "ON CONFLICT (name, brand_name) DO NOTHING", products)
}

// insertIgnoring inserts rows in chunks that stay under the bind parameter limit and
// returns how many were actually created.
func (r *IngestRepository) insertIgnoring(ctx context.Context, table string, columns []string, conflict string, rows [][]any) (int, error) {
	db := extractDB(ctx, r.pool)
	inserted := 0

	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))

		query := r.qb.
			Insert(table).
			Columns(columns...).
			Suffix(conflict)

		for _, values := range rows[start:end] {
			query = query.Values(values...)
		}

		sql, args, err := query.ToSql()
		if err != nil {
			return 0, createQueryError(err)
		}

		tag, err := db.Exec(ctx, sql, args...)
		if err != nil {
			return 0, executeQueryError(err)
		}

		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// copyRows streams the batch into the target table with COPY.
func (r *IngestRepository) copyRows(ctx context.Context, mapping *domain.SheetMapping, values [][]any) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	copied, err := extractDB(ctx, r.pool).CopyFrom(ctx,
		pgx.Identifier{mapping.TargetTable},
		targetColumns(mapping),
		pgx.CopyFromRows(values),
	)
	if err != nil {
		return 0, executeQueryError(err)
	}

	if copied != int64(len(values)) {
		return 0, fmt.Errorf("copied %d rows, expected %d", copied, len(values))
	}

	return int(copied), nil
}

func targetColumns(mapping *domain.SheetMapping) []string {
	columns := make([]string, 0, len(mapping.Columns)+1)
	for _, c := range mapping.Columns {
		columns = append(columns, ColumnIdentifier(c))
	}
	return append(columns, columnUploadLogID)
}

// rowValues lays out rows in targetColumns order.
func rowValues(rows []domain.RowRecord, mapping *domain.SheetMapping, uploadLogID string) ([][]any, error) {
	values := make([][]any, 0, len(rows))
	for i, row := range rows {
		record := make([]any, 0, len(mapping.Columns)+1)
		for _, c := range mapping.Columns {
			value, err := columnValue(row, c, mapping.ValueColumn)
			if err != nil {
				return nil, fmt.Errorf("invalid value in column %q of row #%d: %w", c, i+1, err)
			}
			record = append(record, value)
		}
		values = append(values, append(record, uploadLogID))
	}
	return values, nil
}

// batchTotals sums valueColumn and spans the dates of dateColumn.
func batchTotals(rows []domain.RowRecord, mapping *domain.SheetMapping) (decimal.Decimal, domain.DateRange, error) {
	total := decimal.Zero
	var dates domain.DateRange

	for _, row := range rows {
		if mapping.ValueColumn != "" {
			amount, err := ParseAmount(row.String(mapping.ValueColumn))
			if err != nil {
				return decimal.Zero, domain.DateRange{}, fmt.Errorf("invalid value in column %q: %w", mapping.ValueColumn, err)
			}
			total = total.Add(amount)
		}

		if mapping.DateColumn != "" {
			if d, ok := row.Date(mapping.DateColumn); ok {
				dates.Observe(d)
			}
		}
	}

	return total, dates, nil
}

// missingNames returns names absent from existing, keeping their order.
func missingNames(names, existing []string) []string {
	known := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}

	var fresh []string
	for _, name := range names {
		if _, ok := known[name]; !ok {
			fresh = append(fresh, name)
		}
	}

	return fresh
}

func unclassifiedBrands(brands []string, classifications map[string]string) []string {
	var out []string
	for _, b := range brands {
		if classifications[b] == "" {
			out = append(out, b)
		}
	}
	return out
}

func columnValue(row domain.RowRecord, column, valueColumn string) (any, error) {
	switch v := row[column].(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		if column == valueColumn {
			return ParseAmount(v)
		}
		return v, nil
	default:
		return v, nil
	}
}

// ColumnIdentifier turns a mapped column name into the target table column:
// lowercase, with every run of other characters replaced by an underscore.
func ColumnIdentifier(name string) string {
	var b strings.Builder
	pending := false

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}

// ParseAmount reads a money value, ignoring currency symbols, spaces and thousands
// separators. An empty value is zero.
func ParseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsDigit(r), r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, value)

	if cleaned == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(cleaned)
}

func distinctValues(rows []domain.RowRecord, column string) []string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		if v := strings.TrimSpace(row.String(column)); v != "" {
			seen[v] = struct{}{}
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	return values
}
