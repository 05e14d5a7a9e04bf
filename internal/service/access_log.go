package service

import (
	"context"
	"fmt"
	"player-data-api/internal/metrics"
	"player-data-api/internal/model"
	"player-data-api/internal/repository"

	"github.com/rs/zerolog"
)

type AccessLogServiceImpl struct {
	repo      repository.AccessLogRepository
	entries   chan model.AccessEntry
	batchSize int
	logger    zerolog.Logger
}

func NewAccessLogService(repo repository.AccessLogRepository, bufferSize, batchSize int, logger zerolog.Logger) AccessLogService {
	return &AccessLogServiceImpl{
		repo:      repo,
		entries:   make(chan model.AccessEntry, bufferSize),
		batchSize: batchSize,
		logger:    logger,
	}
}

func (s *AccessLogServiceImpl) Record(entry model.AccessEntry) {
	select {
	case s.entries <- entry:
	default:
		metrics.AccessLogEntriesDroppedTotal.Inc()
		s.logger.Warn().
			Str("request_id", entry.RequestID).
			Str("endpoint", entry.Endpoint).
			Msg("access log buffer full, entry dropped")
	}
}

// Flush drains at most one batch. Entries of a failed batch are not requeued.
func (s *AccessLogServiceImpl) Flush(ctx context.Context) (int, error) {
	batch := make([]model.AccessEntry, 0, s.batchSize)

drain:
	for len(batch) < s.batchSize {
		select {
		case e := <-s.entries:
			batch = append(batch, e)
		default:
			break drain
		}
	}

	if len(batch) == 0 {
		return 0, nil
	}

	written, err := s.repo.InsertBatch(ctx, batch)
	if err != nil {
		metrics.AccessLogWriteErrorsTotal.Inc()
		return 0, fmt.Errorf("insert access log batch of %d: %w", len(batch), err)
	}

	metrics.AccessLogEntriesWrittenTotal.Add(float64(written))
	s.logger.Debug().Int64("written", written).Msg("access log batch flushed")

	return int(written), nil
}

// NopAccessLog is wired when auditing is disabled.
type NopAccessLog struct{}

func (NopAccessLog) Record(model.AccessEntry) {}

func (NopAccessLog) Flush(context.Context) (int, error) { return 0, nil }
