package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg post . postRepo communityCounter resolver auditLogger txManager

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter) ([]domain.Post, int, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type communityCounter interface {
	AdjustPostCount(ctx context.Context, id uuid.UUID, delta int) error
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

// Service provides post operations. Likes live in the relationship service.
type Service struct {
	posts       postRepo
	communities communityCounter
	resolver    resolver
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new Post service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	communities communityCounter,
	resolver resolver,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		posts:       posts,
		communities: communities,
		resolver:    resolver,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "post"),
	}
}
