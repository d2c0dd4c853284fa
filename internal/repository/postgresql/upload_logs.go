package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

const TableUploadLogs = "upload_logs"

const messageInterrupted = "Interrupted by restart"

type UploadLogsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadLogsRepository(pool *pgxpool.Pool) *UploadLogsRepository {
	return &UploadLogsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// OpenUploadLog inserts a ledger record and returns its id.
func (r *UploadLogsRepository) OpenUploadLog(ctx context.Context, log *domain.UploadLog) (string, error) {
	db := extractDB(ctx, r.pool)

	dates := log.DistinctSourceDates
	if dates == nil {
		dates = []string{}
	}

	sql, args, err := r.qb.
		Insert(TableUploadLogs).
		Columns(
			"file_name",
			"uploader_identity",
			"sheet_mapping_id",
			"status",
			"total_value",
			"distinct_source_dates",
		).
		Values(
			log.FileName,
			log.UploaderIdentity,
			log.SheetMappingID,
			log.Status,
			log.TotalValue,
			dates,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", createQueryError(err)
	}

	var id string
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return "", scanRowError(err)
	}

	return id, nil
}

func (r *UploadLogsRepository) UpdateUploadLog(ctx context.Context, id string, patch *domain.UploadLogPatch) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploadLogs).
		SetMap(map[string]any{
			"status":              patch.Status,
			"records_processed":   patch.RecordsProcessed,
			"new_customers_count": patch.NewCustomersCount,
			"new_products_count":  patch.NewProductsCount,
			"new_brands_count":    patch.NewBrandsCount,
			"total_value":         patch.TotalValue,
			"date_range_start":    patch.DateRangeStart,
			"date_range_end":      patch.DateRangeEnd,
			"error_message":       patch.ErrorMessage,
			"finished_at":         patch.FinishedAt,
		}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUploadLogNotFound
	}

	return nil
}

func (r *UploadLogsRepository) UploadLogs(ctx context.Context, limit, offset uint64) ([]*domain.UploadLog, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploadLogs).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"id",
			"file_name",
			"uploader_identity",
			"sheet_mapping_id",
			"status",
			"records_processed",
			"new_customers_count",
			"new_products_count",
			"new_brands_count",
			"total_value",
			"date_range_start",
			"date_range_end",
			"error_message",
			"distinct_source_dates",
			"created_at",
			"finished_at",
		).
		From(TableUploadLogs).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	logs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.UploadLog])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return logs, total, nil
}

// FailInterruptedUploadLogs closes the records a previous process left in
// processing. It returns how many were closed.
func (r *UploadLogsRepository) FailInterruptedUploadLogs(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableUploadLogs).
		Set("status", domain.LogStatusFailed).
		Set("error_message", messageInterrupted).
		Set("finished_at", time.Now().UTC()).
		Where(sq.Eq{"status": domain.LogStatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}
