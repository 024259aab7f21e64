// Package membership implements the join-table repository shared by every
// relation: community follows and post likes.
package membership

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stride-backend/internal/domain"
)

// tables describes where a relation lives.
type tables struct {
	join         string // join table
	objectColumn string // object FK column in the join table
	object       string // object table carrying the counter
	counter      string // denormalized counter column
	legacy       string // legacy JSONB array column
}

var relationTables = map[domain.Relation]tables{
	domain.RelationCommunityFollow: {
		join:         "community_followers",
		objectColumn: "community_id",
		object:       "communities",
		counter:      "follower_count",
		legacy:       "followers",
	},
	domain.RelationPostLike: {
		join:         "post_likes",
		objectColumn: "post_id",
		object:       "posts",
		counter:      "like_count",
		legacy:       "liked_by",
	},
}

func lookupTables(rel domain.Relation) (tables, error) {
	t, ok := relationTables[rel]
	if !ok {
		return tables{}, domain.NewValidationError("relation", fmt.Sprintf("unknown relation %q", rel))
	}
	return t, nil
}

// Repo provides membership persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new membership repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Schema
// ---------------------------------------------------------------------------

// SchemaReady returns domain.ErrDataIntegrity if the relation's join table does not exist.
func (r *Repo) SchemaReady(ctx context.Context, rel domain.Relation) error {
	t, err := lookupTables(rel)
	if err != nil {
		return err
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", t.join).
		Scan(&exists); err != nil {
		return postgres.MapError(err, t.join, nil)
	}
	if !exists {
		return fmt.Errorf("join table %s is missing: %w", t.join, domain.ErrDataIntegrity)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Legacy arrays
// ---------------------------------------------------------------------------

type legacyRow struct {
	ID     uuid.UUID `db:"id"`
	Legacy []any     `db:"legacy"`
}

// ListLegacy returns every object whose legacy array is non-empty, in creation
// order. Soft-deleted objects are included.
func (r *Repo) ListLegacy(ctx context.Context, rel domain.Relation) ([]domain.LegacyRelationship, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Select("id", t.legacy+" AS legacy").
		From(t.object).
		Where(fmt.Sprintf("jsonb_typeof(%s) = 'array' AND jsonb_array_length(%s) > 0", t.legacy, t.legacy)).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s legacy select: %w", t.object, err)
	}

	var rows []legacyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, t.object+" legacy", nil)
	}

	out := make([]domain.LegacyRelationship, len(rows))
	for i, rw := range rows {
		ids := make([]domain.LegacyIdentifier, len(rw.Legacy))
		for j, v := range rw.Legacy {
			ids[j] = legacyIdentifier(v)
		}
		out[i] = domain.LegacyRelationship{ObjectID: rw.ID, SubjectIdentifiers: ids}
	}
	return out, nil
}

func legacyIdentifier(v any) domain.LegacyIdentifier {
	if s, ok := v.(string); ok {
		return domain.LegacyIdentifier{Raw: s, IsString: true}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return domain.LegacyIdentifier{Raw: fmt.Sprint(v)}
	}
	return domain.LegacyIdentifier{Raw: string(raw)}
}

// ---------------------------------------------------------------------------
// Facts
// ---------------------------------------------------------------------------

// Insert creates the (subject, object) fact. inserted is false if it already existed.
func (r *Repo) Insert(ctx context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (inserted bool, err error) {
	t, err := lookupTables(rel)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder().
		Insert(t.join).
		Columns("user_id", t.objectColumn).
		Values(subjectID, objectID).
		Suffix(fmt.Sprintf("ON CONFLICT (user_id, %s) DO NOTHING RETURNING user_id", t.objectColumn)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s insert: %w", t.join, err)
	}

	var id uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, t.join, objectID)
	}
	return true, nil
}

// Delete removes the (subject, object) fact. deleted is false if it did not exist.
func (r *Repo) Delete(ctx context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (deleted bool, err error) {
	t, err := lookupTables(rel)
	if err != nil {
		return false, err
	}

	query, args, err := postgres.Builder().
		Delete(t.join).
		Where(squirrel.Eq{"user_id": subjectID, t.objectColumn: objectID}).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s delete: %w", t.join, err)
	}

	var id uuid.UUID
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, t.join, objectID)
	}
	return true, nil
}

// Get returns the (subject, object) fact.
func (r *Repo) Get(ctx context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (*domain.Membership, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Select("created_at").
		From(t.join).
		Where(squirrel.Eq{"user_id": subjectID, t.objectColumn: objectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", t.join, err)
	}

	m := domain.Membership{SubjectID: subjectID, ObjectID: objectID}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&m.CreatedAt); err != nil {
		return nil, postgres.MapError(err, t.join, objectID)
	}
	return &m, nil
}

// CountFacts returns the number of facts referencing objectID.
func (r *Repo) CountFacts(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return 0, err
	}

	query, args, err := postgres.Builder().
		Select("count(*)").
		From(t.join).
		Where(squirrel.Eq{t.objectColumn: objectID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", t.join, err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, t.join, objectID)
	}
	return n, nil
}

// CountMembers returns the number of active subjects holding a fact on objectID.
// It matches the rows ListMembers can return.
func (r *Repo) CountMembers(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return 0, err
	}

	query, args, err := postgres.Builder().
		Select("count(*)").
		From(t.join + " j").
		Join("users u ON u.id = j.user_id").
		Where(squirrel.Eq{"j." + t.objectColumn: objectID, "u.is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s member count: %w", t.join, err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, t.join, objectID)
	}
	return n, nil
}

type memberRow struct {
	UserID          uuid.UUID `db:"user_id"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	ProfileImageURL *string   `db:"profile_image_url"`
	JoinedAt        time.Time `db:"joined_at"`
}

// ListMembers returns a page of active subjects of objectID, most recent first.
// page must already be normalized.
func (r *Repo) ListMembers(ctx context.Context, rel domain.Relation, objectID uuid.UUID, page domain.Page) ([]domain.Member, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Select("u.id AS user_id", "u.first_name", "u.last_name", "u.profile_image_url", "j.created_at AS joined_at").
		From(t.join + " j").
		Join("users u ON u.id = j.user_id").
		Where(squirrel.Eq{"j." + t.objectColumn: objectID, "u.is_active": true}).
		OrderBy("j.created_at DESC", "u.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s members: %w", t.join, err)
	}

	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, t.join, objectID)
	}

	out := make([]domain.Member, len(rows))
	for i, rw := range rows {
		out[i] = domain.Member(rw)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Counters
// ---------------------------------------------------------------------------

// Increment adds one to the object's counter and returns the new value.
func (r *Repo) Increment(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE id = $1 RETURNING %s", t.object, t.counter, t.counter, t.counter)

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, objectID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, t.object, objectID)
	}
	return n, nil
}

// Decrement subtracts one from the object's counter and returns the new value.
// A counter already at zero is a data integrity fault.
func (r *Repo) Decrement(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s - 1 WHERE id = $1 AND %s > 0 RETURNING %s", t.object, t.counter, t.counter, t.counter, t.counter)

	var n int
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, objectID).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s %s: %s would drop below zero: %w", t.object, objectID, t.counter, domain.ErrDataIntegrity)
	}
	if err != nil {
		return 0, postgres.MapError(err, t.object, objectID)
	}
	return n, nil
}

// Count returns the object's counter. The object row is share-locked until the
// surrounding transaction ends, so counter updates from toggles wait for it.
func (r *Repo) Count(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return 0, err
	}

	query, args, err := postgres.Builder().
		Select(t.counter).
		From(t.object).
		Where(squirrel.Eq{"id": objectID}).
		Suffix("FOR SHARE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s counter: %w", t.object, err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, t.object, objectID)
	}
	return n, nil
}

// RecountAll sets every object's counter to the number of facts referencing it
// and returns the number of objects written.
func (r *Repo) RecountAll(ctx context.Context, rel domain.Relation) (int64, error) {
	t, err := lookupTables(rel)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(
		"UPDATE %[1]s o SET %[2]s = (SELECT count(*) FROM %[3]s j WHERE j.%[4]s = o.id)",
		t.object, t.counter, t.join, t.objectColumn,
	)

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query)
	if err != nil {
		return 0, postgres.MapError(err, t.object, nil)
	}
	return tag.RowsAffected(), nil
}
