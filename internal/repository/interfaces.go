package repository

import (
	"context"
	"player-data-api/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// AccessLogRepository stores audited requests
type AccessLogRepository interface {
	// EnsureSchema creates the access log table when it does not exist
	EnsureSchema(ctx context.Context) error

	// InsertBatch writes entries in a single transaction and returns the number of rows copied
	InsertBatch(ctx context.Context, entries []model.AccessEntry) (int64, error)
}
