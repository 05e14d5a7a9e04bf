package service

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"player-data-api/internal/codec"
	"player-data-api/internal/metrics"
	"player-data-api/internal/model"
	"player-data-api/internal/profile"

	"github.com/rs/zerolog"
)

type PlayerServiceImpl struct {
	cipher Encrypter
	now    func() time.Time
	logger zerolog.Logger
}

func NewPlayerService(cipher Encrypter, now func() time.Time, logger zerolog.Logger) PlayerService {
	if now == nil {
		now = time.Now
	}
	return &PlayerServiceImpl{
		cipher: cipher,
		now:    now,
		logger: logger,
	}
}

func (s *PlayerServiceImpl) GetPlayerData(ctx context.Context, uid int64, region string) (*model.PlayerDataResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := profile.Build(uid, s.now())
	metrics.RecordsBuiltTotal.Inc()

	s.logger.Debug().Int64("uid", uid).Str("region", rec.Region).Msg("player record built")

	return &model.PlayerDataResponse{
		PlayerRecord:        *rec,
		ProtoFieldsIncluded: model.ProtoFieldsIncluded,
		Timestamp:           s.now().Unix(),
		RequestRegion:       strings.ToUpper(region),
		Credit:              model.Credit,
	}, nil
}

func (s *PlayerServiceImpl) GetEncryptedData(ctx context.Context, uid int64) (*model.EncryptedDataResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := profile.Build(uid, s.now())
	metrics.RecordsBuiltTotal.Inc()

	payload := codec.Marshal(rec)
	metrics.PayloadBytes.Observe(float64(len(payload)))

	ciphertext := s.cipher.Encrypt(payload)
	metrics.PayloadsEncryptedTotal.Inc()

	s.logger.Debug().
		Int64("uid", uid).
		Int("payload_bytes", len(payload)).
		Int("ciphertext_bytes", len(ciphertext)).
		Msg("player record encrypted")

	return &model.EncryptedDataResponse{
		EncryptedData:  hex.EncodeToString(ciphertext),
		EncryptionInfo: model.NewEncryptionInfo(),
		Timestamp:      s.now().Unix(),
	}, nil
}
