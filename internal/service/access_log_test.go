package service

import (
	"context"
	"testing"
	"time"

	"player-data-api/internal/model"
	"player-data-api/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func accessEntry(requestID string) model.AccessEntry {
	return model.AccessEntry{
		RequestID: requestID,
		Endpoint:  "/player-data",
		UID:       "42",
		Region:    "na",
		Status:    200,
		Latency:   3 * time.Millisecond,
		CreatedAt: fixedNow,
	}
}

func TestAccessLog_FlushWritesBufferedEntries(t *testing.T) {
	ctx := context.Background()
	mockRepo := mocks.NewAccessLogRepository(t)

	mockRepo.On("InsertBatch", ctx, mock.MatchedBy(func(entries []model.AccessEntry) bool {
		return len(entries) == 2 && entries[0].RequestID == "a" && entries[1].RequestID == "b"
	})).Return(int64(2), nil)

	svc := NewAccessLogService(mockRepo, 10, 50, zerolog.Nop())
	svc.Record(accessEntry("a"))
	svc.Record(accessEntry("b"))

	written, err := svc.Flush(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, written)
}

func TestAccessLog_FlushRespectsBatchSize(t *testing.T) {
	ctx := context.Background()
	mockRepo := mocks.NewAccessLogRepository(t)

	mockRepo.On("InsertBatch", ctx, mock.MatchedBy(func(entries []model.AccessEntry) bool {
		return len(entries) == 2
	})).Return(int64(2), nil).Twice()
	mockRepo.On("InsertBatch", ctx, mock.MatchedBy(func(entries []model.AccessEntry) bool {
		return len(entries) == 1
	})).Return(int64(1), nil).Once()

	svc := NewAccessLogService(mockRepo, 10, 2, zerolog.Nop())
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		svc.Record(accessEntry(id))
	}

	total := 0
	for {
		n, err := svc.Flush(ctx)
		require.NoError(t, err)
		if n == 0 {
			break
		}
		total += n
	}

	assert.Equal(t, 5, total)
}

func TestAccessLog_FlushEmptyBufferSkipsRepository(t *testing.T) {
	mockRepo := mocks.NewAccessLogRepository(t)
	svc := NewAccessLogService(mockRepo, 10, 50, zerolog.Nop())

	written, err := svc.Flush(context.Background())

	require.NoError(t, err)
	assert.Zero(t, written)
	mockRepo.AssertNotCalled(t, "InsertBatch")
}

func TestAccessLog_RecordDropsWhenFull(t *testing.T) {
	ctx := context.Background()
	mockRepo := mocks.NewAccessLogRepository(t)

	mockRepo.On("InsertBatch", ctx, mock.MatchedBy(func(entries []model.AccessEntry) bool {
		return len(entries) == 2 && entries[0].RequestID == "a" && entries[1].RequestID == "b"
	})).Return(int64(2), nil)

	svc := NewAccessLogService(mockRepo, 2, 50, zerolog.Nop())
	svc.Record(accessEntry("a"))
	svc.Record(accessEntry("b"))
	svc.Record(accessEntry("dropped"))

	written, err := svc.Flush(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, written)
}

func TestAccessLog_FlushError(t *testing.T) {
	ctx := context.Background()
	mockRepo := mocks.NewAccessLogRepository(t)

	mockRepo.On("InsertBatch", ctx, mock.Anything).Return(int64(0), model.ErrAccessLogSchemaMissing)

	svc := NewAccessLogService(mockRepo, 10, 50, zerolog.Nop())
	svc.Record(accessEntry("a"))

	written, err := svc.Flush(ctx)

	require.Error(t, err)
	assert.Zero(t, written)
	assert.ErrorIs(t, err, model.ErrAccessLogSchemaMissing)
	assert.Contains(t, err.Error(), "batch of 1")
}

func TestNopAccessLog(t *testing.T) {
	var svc AccessLogService = NopAccessLog{}
	svc.Record(accessEntry("a"))

	written, err := svc.Flush(context.Background())

	assert.NoError(t, err)
	assert.Zero(t, written)
}
