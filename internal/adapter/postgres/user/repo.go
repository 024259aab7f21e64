// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stride-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "legacy_id", "first_name", "last_name", "email", "password_hash",
	"is_email_verified", "profile_image_url", "bio", "is_active", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Identity lookups
// ---------------------------------------------------------------------------

// LookupByID returns the identity of a user by primary key.
func (r *Repo) LookupByID(ctx context.Context, id uuid.UUID) (domain.EntityRecord, error) {
	return postgres.LookupEntity(ctx, postgres.QuerierFromCtx(ctx, r.db),
		domain.EntityClassUser, table, "is_active", squirrel.Eq{"id": id})
}

// LookupByLegacyID returns the identity of a user by legacy identifier.
func (r *Repo) LookupByLegacyID(ctx context.Context, legacyID string) (domain.EntityRecord, error) {
	return postgres.LookupEntity(ctx, postgres.QuerierFromCtx(ctx, r.db),
		domain.EntityClassUser, table, "is_active", squirrel.Eq{"legacy_id": legacyID})
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, nil)
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "legacy_id", "first_name", "last_name", "email", "password_hash", "profile_image_url", "bio", "created_at", "updated_at").
		Values(u.ID, u.LegacyID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.ProfileImageURL, u.Bio, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// MarkEmailVerified sets is_email_verified for the given user.
func (r *Repo) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_email_verified", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user verify: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ProfileCounts returns the number of activities, followed communities and posts of a user.
func (r *Repo) ProfileCounts(ctx context.Context, id uuid.UUID) (activities, follows, posts int, err error) {
	const query = `SELECT
		(SELECT count(*) FROM activities WHERE user_id = $1),
		(SELECT count(*) FROM community_followers WHERE user_id = $1),
		(SELECT count(*) FROM posts WHERE user_id = $1)`

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, id).Scan(&activities, &follows, &posts); err != nil {
		return 0, 0, 0, postgres.MapError(err, "user", id)
	}
	return activities, follows, posts, nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, id any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.LegacyID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.IsEmailVerified, &u.ProfileImageURL, &u.Bio, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
