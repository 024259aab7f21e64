// Package identity resolves external identifiers to entity records.
//
// An identifier may be a primary key (UUID) or a legacy string identifier
// carried over from the pre-migration schema. The primary key always wins:
// the legacy index is consulted only when the primary lookup misses.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

//go:generate moq -out lookup_repo_mock_test.go -pkg identity . lookupRepo

type lookupRepo interface {
	LookupByID(ctx context.Context, id uuid.UUID) (domain.EntityRecord, error)
	LookupByLegacyID(ctx context.Context, legacyID string) (domain.EntityRecord, error)
}

// Resolver maps identifiers of users, communities and posts to entity records.
type Resolver struct {
	repos map[domain.EntityClass]lookupRepo
	log   *slog.Logger
}

// NewResolver creates a Resolver over the per-class lookup repositories.
func NewResolver(log *slog.Logger, users, communities, posts lookupRepo) *Resolver {
	return &Resolver{
		repos: map[domain.EntityClass]lookupRepo{
			domain.EntityClassUser:      users,
			domain.EntityClassCommunity: communities,
			domain.EntityClassPost:      posts,
		},
		log: log.With("service", "identity"),
	}
}

// Resolve returns the entity record addressed by identifier.
// A miss is reported as found == false with a nil error; only storage faults
// return an error.
func (r *Resolver) Resolve(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, bool, error) {
	repo, ok := r.repos[class]
	if !ok {
		return domain.EntityRecord{}, false, domain.NewValidationError("class", fmt.Sprintf("unknown entity class %q", class))
	}

	if id, ok := domain.ParsePrimaryID(identifier); ok {
		rec, err := repo.LookupByID(ctx, id)
		switch {
		case err == nil:
			return rec, true, nil
		case !errors.Is(err, domain.ErrNotFound):
			return domain.EntityRecord{}, false, fmt.Errorf("resolve %s by id: %w", class, err)
		}
	}

	if !domain.LooksLegacy(identifier) {
		return domain.EntityRecord{}, false, nil
	}

	rec, err := repo.LookupByLegacyID(ctx, identifier)
	switch {
	case err == nil:
		r.log.DebugContext(ctx, "resolved legacy identifier",
			slog.String("class", class.String()),
			slog.String("legacy_id", identifier),
			slog.String("id", rec.ID.String()),
		)
		return rec, true, nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.EntityRecord{}, false, nil
	default:
		return domain.EntityRecord{}, false, fmt.Errorf("resolve %s by legacy id: %w", class, err)
	}
}

// ResolveOrNotFound is Resolve with a miss reported as domain.ErrNotFound.
func (r *Resolver) ResolveOrNotFound(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, error) {
	rec, found, err := r.Resolve(ctx, class, identifier)
	if err != nil {
		return domain.EntityRecord{}, err
	}
	if !found {
		return domain.EntityRecord{}, fmt.Errorf("%s %q: %w", class, identifier, domain.ErrNotFound)
	}
	return rec, nil
}

// ResolveActive is ResolveOrNotFound that also treats inactive entities as missing.
func (r *Resolver) ResolveActive(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, error) {
	rec, err := r.ResolveOrNotFound(ctx, class, identifier)
	if err != nil {
		return domain.EntityRecord{}, err
	}
	if !rec.Active {
		return domain.EntityRecord{}, fmt.Errorf("%s %q is inactive: %w", class, identifier, domain.ErrNotFound)
	}
	return rec, nil
}
