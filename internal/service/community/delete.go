package community

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// Delete deactivates a community. Only its creator may delete it.
// Memberships and the legacy array are kept.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassCommunity, identifier)
	if err != nil {
		return fmt.Errorf("resolve community: %w", err)
	}

	c, err := s.communities.GetByID(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("get community: %w", err)
	}
	if c.CreatorID != userID {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.communities.SoftDelete(txCtx, rec.ID); err != nil {
			return fmt.Errorf("delete community: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypeCommunity,
			EntityID:   &rec.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": map[string]any{"old": c.Name},
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

	s.log.InfoContext(ctx, "community deleted",
		slog.String("user_id", userID.String()),
		slog.String("community_id", rec.ID.String()),
		slog.String("name", c.Name),
	)

	return nil
}
