package worker

import (
	"context"
	"player-data-api/internal/service"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// drainTimeout bounds the final flush performed by Stop.
const drainTimeout = 5 * time.Second

type AccessLogFlusher struct {
	service  service.AccessLogService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewAccessLogFlusher(svc service.AccessLogService, interval time.Duration, logger zerolog.Logger) *AccessLogFlusher {
	return &AccessLogFlusher{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *AccessLogFlusher) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Access log flusher started")

		for {
			select {
			case <-ticker.C:
				w.flushAll(ctx)
			case <-w.stopChan:
				w.logger.Info().Msg("Access log flusher stopping")
				w.drain()
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Access log flusher stopping (context done)")
				w.drain()
				return
			}
		}
	}()
}

// Stop ends the loop and waits for the final flush.
func (w *AccessLogFlusher) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}

func (w *AccessLogFlusher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	w.flushAll(ctx)
}

// flushAll flushes batches until the buffer is empty or a write fails.
func (w *AccessLogFlusher) flushAll(ctx context.Context) {
	for {
		n, err := w.service.Flush(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("Failed to flush access log")
			return
		}
		if n == 0 {
			return
		}
	}
}
