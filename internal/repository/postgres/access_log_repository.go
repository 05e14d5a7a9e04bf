package postgres

import (
	"context"
	"errors"
	"fmt"
	"player-data-api/internal/model"
	"player-data-api/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accessLogTable = "player_data_requests"

var accessLogColumns = []string{"request_id", "endpoint", "uid", "region", "status", "latency_ms", "created_at"}

// Ensure implementation satisfies interface at compile time
var _ repository.AccessLogRepository = (*AccessLogRepositoryImpl)(nil)

// AccessLogRepositoryImpl is the PostgreSQL implementation of AccessLogRepository
type AccessLogRepositoryImpl struct {
	*TxManager
}

func NewAccessLogRepository(pool *pgxpool.Pool) repository.AccessLogRepository {
	return &AccessLogRepositoryImpl{
		TxManager: NewTxManager(pool),
	}
}

// EnsureSchema creates the access log table and its uid index
func (r *AccessLogRepositoryImpl) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS player_data_requests (
            id          BIGSERIAL PRIMARY KEY,
            request_id  TEXT NOT NULL,
            endpoint    TEXT NOT NULL,
            uid         TEXT NOT NULL,
            region      TEXT NOT NULL,
            status      INTEGER NOT NULL,
            latency_ms  DOUBLE PRECISION NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
        CREATE INDEX IF NOT EXISTS idx_player_data_requests_uid ON player_data_requests (uid);`

	if _, err := r.executor().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure access log schema: %w", err)
	}
	return nil
}

// InsertBatch copies entries into the access log table
func (r *AccessLogRepositoryImpl) InsertBatch(ctx context.Context, entries []model.AccessEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var copied int64
	err := r.WithTransaction(ctx, func(tx pgx.Tx) error {
		n, err := r.executor(tx).CopyFrom(ctx, pgx.Identifier{accessLogTable}, accessLogColumns,
			pgx.CopyFromSlice(len(entries), func(i int) ([]any, error) {
				e := entries[i]
				return []any{
					e.RequestID,
					e.Endpoint,
					e.UID,
					e.Region,
					e.Status,
					float64(e.Latency.Microseconds()) / 1000,
					e.CreatedAt,
				}, nil
			}))
		if err != nil {
			return err
		}
		copied = n
		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable {
			return 0, model.ErrAccessLogSchemaMissing
		}
		return 0, fmt.Errorf("failed to insert access log batch: %w", err)
	}
	return copied, nil
}
