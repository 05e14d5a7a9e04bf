package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"player-data-api/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAccessLogFlusher_FlushesOnTick(t *testing.T) {
	mockSvc := mocks.NewAccessLogService(t)

	var calls atomic.Int32
	mockSvc.On("Flush", mock.Anything).Return(func(ctx context.Context) (int, error) {
		// first call writes a batch, every later call finds the buffer empty
		if calls.Add(1) == 1 {
			return 3, nil
		}
		return 0, nil
	})

	w := NewAccessLogFlusher(mockSvc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	w.Stop()
}

func TestAccessLogFlusher_DrainsOnStop(t *testing.T) {
	mockSvc := mocks.NewAccessLogService(t)

	var calls atomic.Int32
	mockSvc.On("Flush", mock.Anything).Return(func(ctx context.Context) (int, error) {
		switch calls.Add(1) {
		case 1, 2:
			return 100, nil
		default:
			return 0, nil
		}
	})

	w := NewAccessLogFlusher(mockSvc, time.Hour, zerolog.Nop())
	w.Start(context.Background())
	w.Stop()

	assert.Equal(t, int32(3), calls.Load())
}

func TestAccessLogFlusher_StopsOnContextDone(t *testing.T) {
	mockSvc := mocks.NewAccessLogService(t)
	mockSvc.On("Flush", mock.Anything).Return(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewAccessLogFlusher(mockSvc, time.Hour, zerolog.Nop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("flusher did not stop after context cancellation")
	}
	mockSvc.AssertCalled(t, "Flush", mock.Anything)
}

func TestAccessLogFlusher_StopsFlushingAfterError(t *testing.T) {
	mockSvc := mocks.NewAccessLogService(t)
	mockSvc.On("Flush", mock.Anything).Return(0, errors.New("database unavailable")).Once()

	w := NewAccessLogFlusher(mockSvc, time.Hour, zerolog.Nop())
	w.Start(context.Background())
	w.Stop()

	mockSvc.AssertNumberOfCalls(t, "Flush", 1)
}
