package community

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

const (
	nameMinLen        = 3
	nameMaxLen        = 100
	descriptionMinLen = 10
	descriptionMaxLen = 1000
	imageURLMaxLen    = 2048
	searchMaxLen      = 200
)

// CreateInput holds parameters for Create.
type CreateInput struct {
	Name            string
	Description     string
	Category        domain.CommunityCategory
	ProfileImageURL *string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, strings.TrimSpace(i.Name))
	errs = validateDescription(errs, strings.TrimSpace(i.Description))
	errs = validateCategory(errs, i.Category)
	errs = validateImageURL(errs, i.ProfileImageURL)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for Update. Nil fields are left unchanged.
type UpdateInput struct {
	Name            *string
	Description     *string
	Category        *domain.CommunityCategory
	ProfileImageURL *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Description == nil && i.Category == nil && i.ProfileImageURL == nil {
		return domain.NewValidationError("input", "at least one field must be provided")
	}
	if i.Name != nil {
		errs = validateName(errs, strings.TrimSpace(*i.Name))
	}
	if i.Description != nil {
		errs = validateDescription(errs, strings.TrimSpace(*i.Description))
	}
	if i.Category != nil {
		errs = validateCategory(errs, *i.Category)
	}
	errs = validateImageURL(errs, i.ProfileImageURL)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds parameters for List.
type ListInput struct {
	Page      int
	Limit     int
	Category  *domain.CommunityCategory
	Search    *string
	SortBy    string
	SortOrder string
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.Search != nil && utf8.RuneCountInString(*i.Search) > searchMaxLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}
	switch i.SortBy {
	case "", domain.CommunitySortCreatedAt, domain.CommunitySortName,
		domain.CommunitySortFollowerCount, domain.CommunitySortPostCount:
	default:
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "unsupported sort column"})
	}
	switch strings.ToLower(i.SortOrder) {
	case "", "asc", "desc":
	default:
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	case n < nameMinLen || n > nameMaxLen:
		return append(errs, domain.FieldError{Field: "name", Message: "must be between 3 and 100 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, desc string) []domain.FieldError {
	n := utf8.RuneCountInString(desc)
	switch {
	case n == 0:
		return append(errs, domain.FieldError{Field: "description", Message: "required"})
	case n < descriptionMinLen || n > descriptionMaxLen:
		return append(errs, domain.FieldError{Field: "description", Message: "must be between 10 and 1000 characters"})
	}
	return errs
}

func validateCategory(errs []domain.FieldError, c domain.CommunityCategory) []domain.FieldError {
	if c == "" {
		return append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if !c.IsValid() {
		return append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	return errs
}

func validateImageURL(errs []domain.FieldError, u *string) []domain.FieldError {
	if u != nil && len(*u) > imageURLMaxLen {
		return append(errs, domain.FieldError{Field: "profileImage", Message: "too long"})
	}
	return errs
}
