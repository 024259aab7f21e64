package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// File describes a stored upload.
type File struct {
	URL           string
	Key           string
	OriginalName  string
	SanitizedName string
	ContentType   string
	Size          int64
	UploadedAt    time.Time
}

// Presigned is a direct-upload grant.
type Presigned struct {
	UploadURL string
	FileURL   string
	Key       string
	ExpiresAt time.Time
}

// Upload validates and stores a file. Bodies over the size limit are rejected
// before anything is written.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*File, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(input.Body, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, domain.NewValidationError("file", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file", "file is empty")
	}

	name := sanitizeName(input.FileName)
	contentType := normalizeType(input.ContentType)
	key, err := s.newKey(name)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	f := &File{
		URL:           s.store.PublicURL(key),
		Key:           key,
		OriginalName:  input.FileName,
		SanitizedName: name,
		ContentType:   contentType,
		Size:          int64(len(data)),
		UploadedAt:    s.now().UTC(),
	}

	s.log.InfoContext(ctx, "file uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size", f.Size),
	)

	return f, nil
}

// Presign returns a presigned PUT URL for a client-side upload.
func (s *Service) Presign(ctx context.Context, input PresignInput) (*Presigned, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key, err := s.newKey(sanitizeName(input.FileName))
	if err != nil {
		return nil, err
	}

	url, err := s.store.PresignPut(ctx, key, normalizeType(input.ContentType))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &Presigned{
		UploadURL: url,
		FileURL:   s.store.PublicURL(key),
		Key:       key,
		ExpiresAt: s.now().Add(s.presignTTL).UTC(),
	}, nil
}

// newKey builds uploads/{unix-millis}-{random}-{name}.
func (s *Service) newKey(name string) (string, error) {
	suffix, err := s.randSuffix()
	if err != nil {
		return "", fmt.Errorf("random suffix: %w", err)
	}
	return fmt.Sprintf("uploads/%d-%s-%s", s.now().UnixMilli(), suffix, name), nil
}
