package service

import (
	"context"
	"player-data-api/internal/model"
)

// PlayerService synthesizes player records and their transport encodings
type PlayerService interface {
	GetPlayerData(ctx context.Context, uid int64, region string) (*model.PlayerDataResponse, error)
	GetEncryptedData(ctx context.Context, uid int64) (*model.EncryptedDataResponse, error)
}

// AccessLogService buffers audited requests and persists them in batches
type AccessLogService interface {
	// Record enqueues an entry without blocking; entries are dropped when the buffer is full
	Record(entry model.AccessEntry)

	// Flush writes up to one batch of buffered entries and returns how many were written
	Flush(ctx context.Context) (int, error)
}

// Encrypter is the transport cipher applied to encoded records
type Encrypter interface {
	Encrypt(plaintext []byte) []byte
}
