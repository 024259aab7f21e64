// Package post implements the Post repository using PostgreSQL.
package post

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stride-backend/internal/domain"
)

const table = "posts"

var columns = []string{
	"id", "legacy_id", "user_id", "community_id", "caption", "image_url",
	"category", "stats", "like_count", "created_at", "updated_at",
}

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          uuid.UUID      `db:"id"`
	LegacyID    *string        `db:"legacy_id"`
	UserID      uuid.UUID      `db:"user_id"`
	CommunityID *uuid.UUID     `db:"community_id"`
	Caption     string         `db:"caption"`
	ImageURL    string         `db:"image_url"`
	Category    string         `db:"category"`
	Stats       map[string]any `db:"stats"`
	LikeCount   int            `db:"like_count"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r row) toDomain() *domain.Post {
	stats := r.Stats
	if stats == nil {
		stats = map[string]any{}
	}
	return &domain.Post{
		ID:          r.ID,
		LegacyID:    r.LegacyID,
		UserID:      r.UserID,
		CommunityID: r.CommunityID,
		Caption:     r.Caption,
		ImageURL:    r.ImageURL,
		Category:    domain.Category(r.Category),
		Stats:       stats,
		LikeCount:   r.LikeCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Identity lookups
// ---------------------------------------------------------------------------

// Posts are hard-deleted, so every stored post is active.
const activeExpr = "true"

// LookupByID returns the identity of a post by primary key.
func (r *Repo) LookupByID(ctx context.Context, id uuid.UUID) (domain.EntityRecord, error) {
	return postgres.LookupEntity(ctx, postgres.QuerierFromCtx(ctx, r.db),
		domain.EntityClassPost, table, activeExpr, squirrel.Eq{"id": id})
}

// LookupByLegacyID returns the identity of a post by legacy identifier.
func (r *Repo) LookupByLegacyID(ctx context.Context, legacyID string) (domain.EntityRecord, error) {
	return postgres.LookupEntity(ctx, postgres.QuerierFromCtx(ctx, r.db),
		domain.EntityClassPost, table, activeExpr, squirrel.Eq{"legacy_id": legacyID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build post select: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return out.toDomain(), nil
}

// List returns a page of posts, newest first, and the total match count.
// filter.Page must already be normalized.
func (r *Repo) List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.Eq{}
	if filter.CommunityID != nil {
		where["community_id"] = *filter.CommunityID
	}
	if filter.UserID != nil {
		where["user_id"] = *filter.UserID
	}

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build post count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "post list", nil)
	}
	if total == 0 {
		return []domain.Post{}, 0, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Page.Limit)).
		Offset(uint64(filter.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build post list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "post list", nil)
	}

	out := make([]domain.Post, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new post and returns the persisted domain.Post.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	stats := p.Stats
	if stats == nil {
		stats = map[string]any{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "legacy_id", "user_id", "community_id", "caption", "image_url", "category", "stats", "created_at", "updated_at").
		Values(p.ID, p.LegacyID, p.UserID, p.CommunityID, p.Caption, p.ImageURL, string(p.Category), stats, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build post insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "post", p.ID)
	}
	return out.toDomain(), nil
}

// Delete removes a post. Its likes cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build post delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
