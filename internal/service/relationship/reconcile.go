package relationship

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// RecomputeCounters sets every object's counter to the number of facts
// referencing it, including objects with none. It returns the number of
// objects written.
func (s *Service) RecomputeCounters(ctx context.Context, rel domain.Relation) (int64, error) {
	if err := validateRelation(rel); err != nil {
		return 0, err
	}

	var updated int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.memberships.SchemaReady(txCtx, rel); err != nil {
			return fmt.Errorf("check schema: %w", err)
		}

		n, err := s.memberships.RecountAll(txCtx, rel)
		if err != nil {
			return fmt.Errorf("recount: %w", err)
		}
		updated = n

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeRelation,
			Action:     domain.AuditActionReconcile,
			Changes: map[string]any{
				"relation": rel.String(),
				"updated":  n,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return 0, s.fault(ctx, "reconcile", rel, err)
	}

	s.metrics.RecordReconcile(rel, updated)
	s.log.InfoContext(ctx, "counters recomputed",
		slog.String("relation", rel.String()),
		slog.Int64("updated", updated),
	)

	return updated, nil
}
