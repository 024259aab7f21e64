package upload

import (
	"io"
	"mime"
	"regexp"
	"strings"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

var allowedTypes = map[string]bool{
	"image/jpeg":               true,
	"image/jpg":                true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"image/bmp":                true,
	"image/tiff":               true,
	"application/octet-stream": true,
	"application/pdf":          true,
	"application/msword":       true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
}

var unsafeKeyChars = regexp.MustCompile(`[^\w\-.]`)

// UploadInput is a file received from a client.
type UploadInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// Validate checks the file name, body and content type.
func (i UploadInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file name is required"})
	}
	if i.Body == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	errs = validateContentType(errs, i.ContentType)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PresignInput names a file the client will upload directly.
type PresignInput struct {
	FileName    string
	ContentType string
}

// Validate checks both fields are present and the type is allowed.
func (i PresignInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "fileName", Message: "required"})
	}
	errs = validateContentType(errs, i.ContentType)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContentType(errs []domain.FieldError, ct string) []domain.FieldError {
	if strings.TrimSpace(ct) == "" {
		return append(errs, domain.FieldError{Field: "fileType", Message: "required"})
	}
	if !allowedTypes[normalizeType(ct)] {
		return append(errs, domain.FieldError{Field: "fileType", Message: "only images, PDFs, text and office documents are allowed"})
	}
	return errs
}

// normalizeType lowercases a media type and drops its parameters.
func normalizeType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

// sanitizeName keeps the base name and replaces characters unsafe for object keys.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	name = unsafeKeyChars.ReplaceAllString(strings.TrimSpace(name), "_")
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}
