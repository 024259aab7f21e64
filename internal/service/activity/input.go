package activity

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// SaveInput holds parameters for Save. Details is the raw JSON sent by the client.
type SaveInput struct {
	Category domain.Category
	Details  json.RawMessage
}

// Validate checks the category and that details is a JSON object.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if _, err := decodeDetails(i.Details); err != nil {
		errs = append(errs, domain.FieldError{Field: "details", Message: "must be a JSON object"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// decodeDetails parses raw into an object. Missing details decode to an empty object.
func decodeDetails(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("details is null")
	}
	return out, nil
}
