package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "player_api_http_requests_total",
		Help: "The total number of HTTP requests by route and status code",
	}, []string{"route", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "player_api_http_request_duration_seconds",
		Help:    "Latency of HTTP requests by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Player Metrics
	RecordsBuiltTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_api_records_built_total",
		Help: "The total number of player records synthesized",
	})
	PayloadsEncryptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_api_payloads_encrypted_total",
		Help: "The total number of encrypted payloads produced",
	})
	PayloadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "player_api_payload_bytes",
		Help:    "Size of the encoded player record before encryption",
		Buckets: prometheus.LinearBuckets(128, 32, 8),
	})

	// Access Log Metrics
	AccessLogEntriesWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_api_access_log_entries_written_total",
		Help: "The total number of access log entries written to PostgreSQL",
	})
	AccessLogEntriesDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_api_access_log_entries_dropped_total",
		Help: "The total number of access log entries dropped because the buffer was full",
	})
	AccessLogWriteErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "player_api_access_log_write_errors_total",
		Help: "The total number of failed access log batch writes",
	})
)
