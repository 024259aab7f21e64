// Package relationship owns many-to-many memberships between users and
// communities or posts: the one-time backfill from legacy arrays, the counter
// reconciler and the toggle operations that keep counters in step afterwards.
package relationship

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg relationship . resolver membershipRepo auditLogger txManager recorder

type resolver interface {
	Resolve(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, bool, error)
	ResolveActive(ctx context.Context, class domain.EntityClass, identifier string) (domain.EntityRecord, error)
}

type membershipRepo interface {
	SchemaReady(ctx context.Context, rel domain.Relation) error
	ListLegacy(ctx context.Context, rel domain.Relation) ([]domain.LegacyRelationship, error)

	Insert(ctx context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (bool, error)
	Delete(ctx context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (bool, error)
	Get(ctx context.Context, rel domain.Relation, subjectID, objectID uuid.UUID) (*domain.Membership, error)
	CountMembers(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error)
	ListMembers(ctx context.Context, rel domain.Relation, objectID uuid.UUID, page domain.Page) ([]domain.Member, error)

	Increment(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error)
	Decrement(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error)
	Count(ctx context.Context, rel domain.Relation, objectID uuid.UUID) (int, error)
	RecountAll(ctx context.Context, rel domain.Relation) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type recorder interface {
	RecordToggle(rel domain.Relation, res domain.ToggleResult)
	RecordMigration(report domain.MigrationReport)
	RecordReconcile(rel domain.Relation, updated int64)
	RecordIntegrityFault(operation string)
}

// Service provides relationship operations.
type Service struct {
	resolver    resolver
	memberships membershipRepo
	audit       auditLogger
	tx          txManager
	metrics     recorder
	log         *slog.Logger
}

// NewService creates a new relationship service.
func NewService(
	log *slog.Logger,
	resolver resolver,
	memberships membershipRepo,
	audit auditLogger,
	tx txManager,
	metrics recorder,
) *Service {
	return &Service{
		resolver:    resolver,
		memberships: memberships,
		audit:       audit,
		tx:          tx,
		metrics:     metrics,
		log:         log.With("service", "relationship"),
	}
}

func validateRelation(rel domain.Relation) error {
	if !rel.IsValid() {
		return domain.NewValidationError("relation", fmt.Sprintf("unknown relation %q", rel))
	}
	return nil
}

// fault logs and counts err when it is a data integrity fault, and returns it unchanged.
func (s *Service) fault(ctx context.Context, operation string, rel domain.Relation, err error) error {
	if errors.Is(err, domain.ErrDataIntegrity) {
		s.metrics.RecordIntegrityFault(operation)
		s.log.ErrorContext(ctx, "data integrity fault",
			slog.String("fault", "data_integrity"),
			slog.String("operation", operation),
			slog.String("relation", rel.String()),
			slog.String("error", err.Error()),
		)
	}
	return err
}
