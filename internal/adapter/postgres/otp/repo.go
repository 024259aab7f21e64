// Package otp implements the one-time code repository using PostgreSQL.
package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/stride-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stride-backend/internal/domain"
)

const table = "otps"

var columns = []string{"id", "user_id", "code", "purpose", "expires_at", "created_at"}

// Repo provides OTP persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new OTP repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Code      string    `db:"code"`
	Purpose   string    `db:"purpose"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Otp {
	return &domain.Otp{
		ID:        r.ID,
		UserID:    r.UserID,
		Code:      r.Code,
		Purpose:   domain.OtpPurpose(r.Purpose),
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}

// Replace deletes any code the user holds for the same purpose and stores o.
// Callers run it inside a transaction.
func (r *Repo) Replace(ctx context.Context, o *domain.Otp) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	delQuery, delArgs, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": o.UserID, "purpose": string(o.Purpose)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build otp delete: %w", err)
	}
	if _, err := q.Exec(ctx, delQuery, delArgs...); err != nil {
		return postgres.MapError(err, "otp", o.UserID)
	}

	insQuery, insArgs, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(o.ID, o.UserID, o.Code, string(o.Purpose), o.ExpiresAt, o.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build otp insert: %w", err)
	}
	if _, err := q.Exec(ctx, insQuery, insArgs...); err != nil {
		return postgres.MapError(err, "otp", o.UserID)
	}
	return nil
}

// GetByUserAndCode returns the user's code for purpose matching code, expired or not.
func (r *Repo) GetByUserAndCode(ctx context.Context, userID uuid.UUID, purpose domain.OtpPurpose, code string) (*domain.Otp, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "purpose": string(purpose), "code": code}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build otp select: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "otp", userID)
	}
	return out.toDomain(), nil
}

// Delete removes a code by id. Deleting a missing code is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build otp delete: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "otp", id)
	}
	return nil
}

// DeleteExpired removes all codes that expired before now and returns how many were deleted.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build otp cleanup: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "otp", nil)
	}
	return int(tag.RowsAffected()), nil
}
