package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/sheet_ingest/internal/domain"
)

const (
	TableCustomers = "customers"

	customerInsertChunk = 1000
)

type CustomersRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewCustomersRepository(pool *pgxpool.Pool) *CustomersRepository {
	return &CustomersRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CustomersRepository) ExistingPhones(ctx context.Context, phones []string) ([]string, error) {
	if len(phones) == 0 {
		return nil, nil
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("phone").
		From(TableCustomers).
		Where(sq.Eq{"phone": phones}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return existing, nil
}

// InsertCustomers creates the given customers. A phone that already exists is left
// untouched.
func (r *CustomersRepository) InsertCustomers(ctx context.Context, customers ...*domain.CustomerStub) error {
	db := extractDB(ctx, r.pool)

	for start := 0; start < len(customers); start += customerInsertChunk {
		end := min(start+customerInsertChunk, len(customers))

		query := r.qb.
			Insert(TableCustomers).
			Columns("phone", "name", "creation_date", "status").
			Suffix("ON CONFLICT (phone) DO NOTHING")

		for _, c := range customers[start:end] {
			query = query.Values(c.Phone, c.Name, c.CreationDate, c.Status)
		}

		sql, args, err := query.ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return executeQueryError(err)
		}
	}

	return nil
}
