package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ViewSalesDailySummary = "sales_daily_summary"

type MaintenanceRepository struct {
	pool  *pgxpool.Pool
	views []string
}

// NewMaintenanceRepository refreshes views after every completed file. With no
// views given it refreshes the daily sales summary.
func NewMaintenanceRepository(pool *pgxpool.Pool, views ...string) *MaintenanceRepository {
	if len(views) == 0 {
		views = []string{ViewSalesDailySummary}
	}

	return &MaintenanceRepository{
		pool:  pool,
		views: views,
	}
}

func (r *MaintenanceRepository) RunPostIngestMaintenance(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	for _, view := range r.views {
		// CONCURRENTLY needs a unique index on the view.
		sql := "REFRESH MATERIALIZED VIEW CONCURRENTLY " + pgx.Identifier{view}.Sanitize()

		if _, err := db.Exec(ctx, sql); err != nil {
			return executeQueryError(err)
		}
	}

	return nil
}
