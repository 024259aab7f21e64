// Package community implements the Community repository using PostgreSQL.
package community

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

const table = "communities"

var columns = []string{
	"id", "legacy_id", "name", "description", "category", "profile_image_url",
	"creator_id", "follower_count", "post_count", "is_active", "created_at", "updated_at",
}

// sortColumns maps API sort keys to SQL columns.
var sortColumns = map[string]string{
	domain.CommunitySortCreatedAt:     "created_at",
	domain.CommunitySortName:          "name",
	domain.CommunitySortFollowerCount: "follower_count",
	domain.CommunitySortPostCount:     "post_count",
}

// Repo provides community persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new community repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID              uuid.UUID `db:"id"`
	LegacyID        *string   `db:"legacy_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	Category        string    `db:"category"`
	ProfileImageURL *string   `db:"profile_image_url"`
	CreatorID       uuid.UUID `db:"creator_id"`
	FollowerCount   int       `db:"follower_count"`
	PostCount       int       `db:"post_count"`
	IsActive        bool      `db:"is_active"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Community {
	return &domain.Community{
		ID:              r.ID,
		LegacyID:        r.LegacyID,
		Name:            r.Name,
		Description:     r.Description,
		Category:        domain.CommunityCategory(r.Category),
		ProfileImageURL: r.ProfileImageURL,
		CreatorID:       r.CreatorID,
		FollowerCount:   r.FollowerCount,
		PostCount:       r.PostCount,
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Identity lookups
// ---------------------------------------------------------------------------

// LookupByID returns the identity of a community by primary key.
func (r *Repo) LookupByID(ctx context.Context, id uuid.UUID) (domain.EntityRecord, error) {
	return postgres.LookupEntity(ctx, postgres.QuerierFromCtx(ctx, r.db),
		domain.EntityClassCommunity, table, "is_active", squirrel.Eq{"id": id})
}

// LookupByLegacyID returns the identity of a community by legacy identifier.
func (r *Repo) LookupByLegacyID(ctx context.Context, legacyID string) (domain.EntityRecord, error) {
	return postgres.LookupEntity(ctx, postgres.QuerierFromCtx(ctx, r.db),
		domain.EntityClassCommunity, table, "is_active", squirrel.Eq{"legacy_id": legacyID})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an active community by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build community select: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "community", id)
	}
	return out.toDomain(), nil
}

// List returns a page of active communities matching filter and the total match count.
// filter.Page must already be normalized.
func (r *Repo) List(ctx context.Context, filter domain.CommunityFilter) ([]domain.Community, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := filterConditions(filter)

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build community count: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "community list", nil)
	}
	if total == 0 {
		return []domain.Community{}, 0, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(orderBy(filter.SortBy, filter.SortOrder), "id ASC").
		Limit(uint64(filter.Page.Limit)).
		Offset(uint64(filter.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build community list: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "community list", nil)
	}

	out := make([]domain.Community, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, total, nil
}

func filterConditions(filter domain.CommunityFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"is_active": true}}
	if filter.Category != nil {
		where = append(where, squirrel.Eq{"category": string(*filter.Category)})
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*filter.Search)) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		})
	}
	return where
}

func orderBy(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new community and returns the persisted domain.Community.
func (r *Repo) Create(ctx context.Context, c *domain.Community) (*domain.Community, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "legacy_id", "name", "description", "category", "profile_image_url", "creator_id", "created_at", "updated_at").
		Values(c.ID, c.LegacyID, c.Name, c.Description, string(c.Category), c.ProfileImageURL, c.CreatorID, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build community insert: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "community", c.ID)
	}
	return out.toDomain(), nil
}

// Update applies the non-nil fields of params to an active community.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CommunityUpdateParams) (*domain.Community, error) {
	b := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Category != nil {
		b = b.Set("category", string(*params.Category))
	}
	if params.ProfileImageURL != nil {
		b = b.Set("profile_image_url", *params.ProfileImageURL)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build community update: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "community", id)
	}
	return out.toDomain(), nil
}

// SoftDelete marks an active community inactive.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build community delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "community", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("community %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AdjustPostCount adds delta to post_count. A decrement that would drop the
// counter below zero returns domain.ErrDataIntegrity.
func (r *Repo) AdjustPostCount(ctx context.Context, id uuid.UUID, delta int) error {
	b := postgres.Builder().
		Update(table).
		Set("post_count", squirrel.Expr("post_count + ?", delta)).
		Where(squirrel.Eq{"id": id})
	if delta < 0 {
		b = b.Where(squirrel.GtOrEq{"post_count": -delta})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build community post_count: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "community", id)
	}
	if tag.RowsAffected() == 0 {
		if delta < 0 {
			return fmt.Errorf("community %s: post_count below zero: %w", id, domain.ErrDataIntegrity)
		}
		return fmt.Errorf("community %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
