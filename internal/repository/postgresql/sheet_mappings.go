package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

const (
	TableSheetMappings       = "sheet_mappings"
	TableSheetMappingColumns = "sheet_mapping_columns"
)

type SheetMappingsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewSheetMappingsRepository(pool *pgxpool.Pool) *SheetMappingsRepository {
	return &SheetMappingsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *SheetMappingsRepository) ActiveSheetMappings(ctx context.Context) ([]*domain.SheetMapping, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"id",
			"name",
			"target_table",
			"check_customer",
			"check_brand",
			"check_product",
			"skip_first_row",
			"phone_column",
			"customer_name_column",
			"date_column",
			"value_column",
			"brand_column",
			"product_column",
		).
		From(TableSheetMappings).
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	mappings, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.SheetMapping])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return mappings, nil
}

// ColumnMapping returns the ordered column names configured for a sheet mapping.
func (r *SheetMappingsRepository) ColumnMapping(ctx context.Context, sheetMappingID string) ([]string, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("column_name").
		From(TableSheetMappingColumns).
		Where(sq.Eq{"sheet_mapping_id": sheetMappingID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	columns, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return columns, nil
}
