package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

// executeQueryError keeps the server message in front so that it reads well as a
// per-file error.
func executeQueryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("failed to execute query: %s (%s): %w", pgErr.Message, pgErr.Code, err)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}
