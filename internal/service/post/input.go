package post

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

const (
	captionMaxLen  = 2200
	imageURLMaxLen = 2048
)

// CreateInput holds parameters for Create.
type CreateInput struct {
	Caption   string
	ImageURL  string
	Category  domain.Category
	Stats     json.RawMessage
	Community *string
}

// Validate checks the required fields and that stats, when present, is a JSON object.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	caption := strings.TrimSpace(i.Caption)
	if caption == "" {
		errs = append(errs, domain.FieldError{Field: "caption", Message: "required"})
	} else if utf8.RuneCountInString(caption) > captionMaxLen {
		errs = append(errs, domain.FieldError{Field: "caption", Message: "too long"})
	}

	imageURL := strings.TrimSpace(i.ImageURL)
	if imageURL == "" {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "required"})
	} else if len(imageURL) > imageURLMaxLen {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "too long"})
	}

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if _, err := decodeStats(i.Stats); err != nil {
		errs = append(errs, domain.FieldError{Field: "stats", Message: "must be a JSON object"})
	}

	if i.Community != nil && strings.TrimSpace(*i.Community) == "" {
		errs = append(errs, domain.FieldError{Field: "community", Message: "must not be blank"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for List.
type ListInput struct {
	Page      int
	Limit     int
	Community *string
}

func decodeStats(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("stats is null")
	}
	return out, nil
}
