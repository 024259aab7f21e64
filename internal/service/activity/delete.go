package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// Delete removes an activity of the authenticated user.
// Returns ErrNotFound for a missing activity and ErrForbidden for another user's.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get activity: %w", err)
	}
	if a.UserID != userID {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.activities.Delete(txCtx, userID, id); err != nil {
			return fmt.Errorf("delete activity: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypeActivity,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"category": map[string]any{"old": a.Category.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "activity deleted",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", id.String()),
	)

	return nil
}
