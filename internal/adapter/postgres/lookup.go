package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// LookupEntity reads the identity columns of a single row of table matching where.
// activeExpr is the SQL expression used for EntityRecord.Active.
// A missing row maps to domain.ErrNotFound.
func LookupEntity(ctx context.Context, q Querier, class domain.EntityClass, table, activeExpr string, where squirrel.Eq) (domain.EntityRecord, error) {
	query, args, err := psql.
		Select("id", "legacy_id", activeExpr).
		From(table).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return domain.EntityRecord{}, fmt.Errorf("build %s lookup: %w", class, err)
	}

	rec := domain.EntityRecord{Class: class}
	if err := q.QueryRow(ctx, query, args...).Scan(&rec.ID, &rec.LegacyID, &rec.Active); err != nil {
		return domain.EntityRecord{}, MapError(err, class.String(), firstValue(where))
	}
	return rec, nil
}

func firstValue(where squirrel.Eq) any {
	for _, v := range where {
		return v
	}
	return nil
}
