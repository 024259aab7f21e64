package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// Save records a workout for the authenticated user.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	details, _ := decodeDetails(input.Details)

	var created *domain.Activity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		a, err := s.activities.Create(txCtx, &domain.Activity{
			ID:        uuid.New(),
			UserID:    userID,
			Category:  input.Category,
			Details:   details,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create activity: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &userID,
			EntityType: domain.EntityTypeActivity,
			EntityID:   &a.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"category": map[string]any{"new": a.Category.String()},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "activity saved",
		slog.String("user_id", userID.String()),
		slog.String("activity_id", created.ID.String()),
		slog.String("category", created.Category.String()),
	)

	return created, nil
}

// List returns the authenticated user's activities, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	activities, err := s.activities.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
