package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// Create publishes a post. When a community is given, its post counter
// is incremented in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	stats, _ := decodeStats(input.Stats)

	var communityID *uuid.UUID
	if input.Community != nil {
		rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassCommunity, strings.TrimSpace(*input.Community))
		if err != nil {
			return nil, fmt.Errorf("resolve community: %w", err)
		}
		communityID = &rec.ID
	}

	var created *domain.Post
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		p, err := s.posts.Create(txCtx, &domain.Post{
			ID:          uuid.New(),
			UserID:      userID,
			CommunityID: communityID,
			Caption:     strings.TrimSpace(input.Caption),
			ImageURL:    strings.TrimSpace(input.ImageURL),
			Category:    input.Category,
			Stats:       stats,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		if communityID != nil {
			if err := s.communities.AdjustPostCount(txCtx, *communityID, 1); err != nil {
				return fmt.Errorf("increment post count: %w", err)
			}
		}

		changes := map[string]any{
			"category": map[string]any{"new": p.Category.String()},
		}
		if communityID != nil {
			changes["community_id"] = map[string]any{"new": communityID.String()}
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypePost,
			EntityID:   &p.ID,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", created.ID.String()),
	)

	return created, nil
}
