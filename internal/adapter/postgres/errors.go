package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// PostgreSQL error codes mapped to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeUndefinedTable      = "42P01"
)

// MapError converts pgx/pgconn errors to domain errors.
// id may be a uuid.UUID, a legacy string or nil.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != nil {
		prefix = fmt.Sprintf("%s %v", entity, id)
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case codeCheckViolation:
			if isCounterConstraint(pgErr.ConstraintName) {
				return fmt.Errorf("%s: %s: %w", prefix, pgErr.ConstraintName, domain.ErrDataIntegrity)
			}
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		case codeUndefinedTable:
			return fmt.Errorf("%s: %s: %w", prefix, pgErr.Message, domain.ErrDataIntegrity)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", prefix, err)
}

// counterConstraints are the CHECK constraints guarding denormalized counters.
var counterConstraints = map[string]struct{}{
	"communities_follower_count_check": {},
	"communities_post_count_check":     {},
	"posts_like_count_check":           {},
}

func isCounterConstraint(name string) bool {
	_, ok := counterConstraints[name]
	return ok
}
