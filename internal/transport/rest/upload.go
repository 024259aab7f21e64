package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stride-backend/internal/service/upload"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// multipartOverhead is allowed on top of the file size limit for form framing.
const multipartOverhead = 1 << 20

type uploadService interface {
	Upload(ctx context.Context, input upload.UploadInput) (*upload.File, error)
	Presign(ctx context.Context, input upload.PresignInput) (*upload.Presigned, error)
}

// UploadHandler serves file upload endpoints. Both require an authenticated user.
type UploadHandler struct {
	svc      uploadService
	maxBytes int64
	log      *slog.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(svc uploadService, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "upload")}
}

type presignRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

type fileResponse struct {
	URL           string    `json:"url"`
	Key           string    `json:"key"`
	OriginalName  string    `json:"originalName"`
	SanitizedName string    `json:"sanitizedName"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	UploadedAt    time.Time `json:"uploadedAt"`
}

type presignResponse struct {
	PresignedURL string    `json:"presignedUrl"`
	FileURL      string    `json:"fileUrl"`
	Key          string    `json:"key"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Upload handles POST /uploads with a multipart "file" field.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	f, err := h.svc.Upload(r.Context(), upload.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, fileResponse{
		URL:           f.URL,
		Key:           f.Key,
		OriginalName:  f.OriginalName,
		SanitizedName: f.SanitizedName,
		MimeType:      f.ContentType,
		Size:          f.Size,
		UploadedAt:    f.UploadedAt,
	})
}

// Presign handles POST /uploads/presign.
func (h *UploadHandler) Presign(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req presignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Presign(r.Context(), upload.PresignInput{
		FileName:    req.FileName,
		ContentType: req.FileType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{
		PresignedURL: p.UploadURL,
		FileURL:      p.FileURL,
		Key:          p.Key,
		ExpiresAt:    p.ExpiresAt,
	})
}
