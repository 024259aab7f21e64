package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg activity . activityRepo auditLogger txManager

type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Activity, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides workout activity operations.
type Service struct {
	activities activityRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Activity service.
func NewService(log *slog.Logger, activities activityRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		activities: activities,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "activity"),
	}
}
