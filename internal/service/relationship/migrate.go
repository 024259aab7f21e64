package relationship

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// Migrate backfills the relation's join table from the legacy arrays.
//
// The run is one transaction: a storage fault rolls back every insert, while
// an unusable reference is skipped and recorded in the report. Pairs that
// already exist count as AlreadyPresent, so repeated runs insert nothing new.
// Concurrent toggles on the same relation must be stopped while it runs.
func (s *Service) Migrate(ctx context.Context, rel domain.Relation) (domain.MigrationReport, error) {
	if err := validateRelation(rel); err != nil {
		return domain.MigrationReport{}, err
	}

	var report domain.MigrationReport
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		report = domain.MigrationReport{Relation: rel}

		if err := s.memberships.SchemaReady(txCtx, rel); err != nil {
			return fmt.Errorf("check schema: %w", err)
		}

		legacy, err := s.memberships.ListLegacy(txCtx, rel)
		if err != nil {
			return fmt.Errorf("list legacy arrays: %w", err)
		}

		for _, obj := range legacy {
			if err := s.migrateObject(txCtx, rel, obj, &report); err != nil {
				return err
			}
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			EntityType: domain.EntityTypeRelation,
			Action:     domain.AuditActionMigrate,
			Changes:    migrationChanges(report, len(legacy)),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.MigrationReport{}, s.fault(ctx, "migrate", rel, err)
	}

	s.metrics.RecordMigration(report)
	s.log.InfoContext(ctx, "relationships migrated",
		slog.String("relation", rel.String()),
		slog.Int("inserted", report.InsertedCount),
		slog.Int("skipped", report.SkippedCount),
		slog.Int("already_present", report.AlreadyPresentCount),
	)

	return report, nil
}

func (s *Service) migrateObject(ctx context.Context, rel domain.Relation, obj domain.LegacyRelationship, report *domain.MigrationReport) error {
	seen := make(map[uuid.UUID]struct{}, len(obj.SubjectIdentifiers))

	for _, ident := range obj.SubjectIdentifiers {
		if reason := precheck(ident); reason != "" {
			s.skip(ctx, rel, report, obj.ObjectID, ident.Raw, reason)
			continue
		}

		subject, found, err := s.resolver.Resolve(ctx, rel.SubjectClass(), ident.Raw)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", ident.Raw, err)
		}
		if !found {
			s.skip(ctx, rel, report, obj.ObjectID, ident.Raw, domain.SkipReasonSubjectNotFound)
			continue
		}
		if _, dup := seen[subject.ID]; dup {
			s.skip(ctx, rel, report, obj.ObjectID, ident.Raw, domain.SkipReasonDuplicate)
			continue
		}
		seen[subject.ID] = struct{}{}

		inserted, err := s.memberships.Insert(ctx, rel, subject.ID, obj.ObjectID)
		if err != nil {
			return fmt.Errorf("insert membership %s/%s: %w", subject.ID, obj.ObjectID, err)
		}
		if inserted {
			report.InsertedCount++
		} else {
			report.AlreadyPresentCount++
		}
	}
	return nil
}

// precheck returns the skip reason for a reference that needs no lookup to reject.
// Object activity is not checked: soft-deleted objects keep their memberships.
func precheck(ident domain.LegacyIdentifier) string {
	switch {
	case !ident.IsString:
		return domain.SkipReasonInvalidIdentifier
	case ident.Raw == "":
		return domain.SkipReasonEmptyIdentifier
	}
	return ""
}

func (s *Service) skip(ctx context.Context, rel domain.Relation, report *domain.MigrationReport, objectID uuid.UUID, identifier, reason string) {
	report.Skip(objectID, identifier, reason)
	s.log.WarnContext(ctx, "legacy reference skipped",
		slog.String("relation", rel.String()),
		slog.String("object_id", objectID.String()),
		slog.String("identifier", identifier),
		slog.String("reason", reason),
	)
}

func migrationChanges(report domain.MigrationReport, objects int) map[string]any {
	reasons := make(map[string]any)
	for _, sk := range report.SkippedReasons {
		n, _ := reasons[sk.Reason].(int)
		reasons[sk.Reason] = n + 1
	}
	return map[string]any{
		"relation":        report.Relation.String(),
		"objects":         objects,
		"inserted":        report.InsertedCount,
		"skipped":         report.SkippedCount,
		"already_present": report.AlreadyPresentCount,
		"skipped_reasons": reasons,
	}
}
