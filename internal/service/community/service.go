package community

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg community . communityRepo resolver auditLogger txManager

type communityRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Community, error)
	List(ctx context.Context, filter domain.CommunityFilter) ([]domain.Community, int, error)
	Create(ctx context.Context, c *domain.Community) (*domain.Community, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CommunityUpdateParams) (*domain.Community, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type resolver interface {
	ResolveActive(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides community management operations.
type Service struct {
	communities communityRepo
	resolver    resolver
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Community service.
func NewService(
	log *slog.Logger,
	communities communityRepo,
	resolver resolver,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		communities: communities,
		resolver:    resolver,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "community"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
