package upload

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"math/big"
	"time"

	"github.com/heartmarshall/stride-backend/internal/config"
)

//go:generate moq -out object_store_mock_test.go -pkg upload . objectStore

type objectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PublicURL(key string) string
}

// Service stores user files in object storage.
type Service struct {
	store      objectStore
	maxBytes   int64
	presignTTL time.Duration
	log        *slog.Logger

	now        func() time.Time
	randSuffix func() (string, error)
}

// NewService creates a new Upload service.
func NewService(log *slog.Logger, store objectStore, cfg config.StorageConfig) *Service {
	return &Service{
		store:      store,
		maxBytes:   cfg.MaxUploadBytes,
		presignTTL: cfg.PresignTTL,
		log:        log.With("service", "upload"),
		now:        time.Now,
		randSuffix: randomSuffix,
	}
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomSuffix returns 8 random base36 characters.
func randomSuffix() (string, error) {
	buf := make([]byte, 8)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = suffixAlphabet[n.Int64()]
	}
	return string(buf), nil
}
