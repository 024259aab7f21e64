package community

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

// Create creates a community owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Community, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var community *domain.Community
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		var createErr error
		community, createErr = s.communities.Create(txCtx, &domain.Community{
			ID:              uuid.New(),
			Name:            name,
			Description:     strings.TrimSpace(input.Description),
			Category:        input.Category,
			ProfileImageURL: trimOrNil(input.ProfileImageURL),
			CreatorID:       userID,
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if createErr != nil {
			return fmt.Errorf("create community: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypeCommunity,
			EntityID:   &community.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": map[string]any{"new": name},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "community created",
		slog.String("user_id", userID.String()),
		slog.String("community_id", community.ID.String()),
		slog.String("name", name),
	)

	return community, nil
}
