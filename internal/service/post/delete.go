package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// Delete removes a post owned by the caller and decrements its community's post counter.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassPost, identifier)
	if err != nil {
		return fmt.Errorf("resolve post: %w", err)
	}

	p, err := s.posts.GetByID(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("get post: %w", err)
	}
	if p.UserID != userID {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.posts.Delete(txCtx, p.ID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}

		if p.CommunityID != nil {
			if err := s.communities.AdjustPostCount(txCtx, *p.CommunityID, -1); err != nil {
				return fmt.Errorf("decrement post count: %w", err)
			}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypePost,
			EntityID:   &p.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"like_count": map[string]any{"old": p.LikeCount},
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

	s.log.InfoContext(ctx, "post deleted",
		slog.String("user_id", userID.String()),
		slog.String("post_id", p.ID.String()),
	)

	return nil
}
