package community

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// Update changes a community. Only its creator may update it.
func (s *Service) Update(ctx context.Context, identifier string, input UpdateInput) (*domain.Community, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CommunityUpdateParams{
		Category:        input.Category,
		ProfileImageURL: input.ProfileImageURL,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		params.Description = &trimmed
	}

	rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassCommunity, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolve community: %w", err)
	}

	var updated *domain.Community
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.communities.GetByID(txCtx, rec.ID)
		if getErr != nil {
			return fmt.Errorf("get community: %w", getErr)
		}
		if old.CreatorID != userID {
			return domain.ErrForbidden
		}

		var updateErr error
		updated, updateErr = s.communities.Update(txCtx, rec.ID, params)
		if updateErr != nil {
			return fmt.Errorf("update community: %w", updateErr)
		}

		// Skip audit if nothing actually changed.
		changes := buildChanges(old, updated)
		if len(changes) > 0 {
			if auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     &userID,
				EntityType: domain.EntityTypeCommunity,
				EntityID:   &rec.ID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "community updated",
		slog.String("user_id", userID.String()),
		slog.String("community_id", rec.ID.String()),
	)

	return updated, nil
}

// buildChanges returns only changed fields for audit.
func buildChanges(old, updated *domain.Community) map[string]any {
	changes := make(map[string]any)
	if old.Name != updated.Name {
		changes["name"] = map[string]any{"old": old.Name, "new": updated.Name}
	}
	if old.Description != updated.Description {
		changes["description"] = map[string]any{"old": old.Description, "new": updated.Description}
	}
	if old.Category != updated.Category {
		changes["category"] = map[string]any{"old": old.Category.String(), "new": updated.Category.String()}
	}
	if derefOrEmpty(old.ProfileImageURL) != derefOrEmpty(updated.ProfileImageURL) {
		changes["profile_image_url"] = map[string]any{"old": old.ProfileImageURL, "new": updated.ProfileImageURL}
	}
	return changes
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
