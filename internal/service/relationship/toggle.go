package relationship

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

type transition int

const (
	flip transition = iota
	activate
	deactivate
)

func (t transition) String() string {
	switch t {
	case activate:
		return "activate"
	case deactivate:
		return "deactivate"
	default:
		return "toggle"
	}
}

// Toggle flips the membership of subject in object: an existing fact is removed,
// a missing one is created. The counter moves by exactly one.
func (s *Service) Toggle(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error) {
	return s.transition(ctx, flip, rel, subjectIdentifier, objectIdentifier)
}

// Activate creates the membership. An existing one yields Changed == false.
func (s *Service) Activate(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error) {
	return s.transition(ctx, activate, rel, subjectIdentifier, objectIdentifier)
}

// Deactivate removes the membership. A missing one yields Changed == false.
func (s *Service) Deactivate(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error) {
	return s.transition(ctx, deactivate, rel, subjectIdentifier, objectIdentifier)
}

func (s *Service) transition(ctx context.Context, t transition, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error) {
	if err := validateRelation(rel); err != nil {
		return domain.ToggleResult{}, err
	}

	subject, err := s.resolver.ResolveActive(ctx, rel.SubjectClass(), subjectIdentifier)
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("resolve subject: %w", err)
	}
	object, err := s.resolver.ResolveActive(ctx, rel.ObjectClass(), objectIdentifier)
	if err != nil {
		return domain.ToggleResult{}, fmt.Errorf("resolve object: %w", err)
	}

	var res domain.ToggleResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if t != activate {
			deleted, err := s.memberships.Delete(txCtx, rel, subject.ID, object.ID)
			if err != nil {
				return fmt.Errorf("delete membership: %w", err)
			}
			if deleted {
				n, err := s.memberships.Decrement(txCtx, rel, object.ID)
				if err != nil {
					return fmt.Errorf("decrement counter: %w", err)
				}
				res = domain.ToggleResult{Active: false, Count: n, Changed: true}
				return nil
			}
			if t == deactivate {
				n, err := s.memberships.Count(txCtx, rel, object.ID)
				if err != nil {
					return fmt.Errorf("read counter: %w", err)
				}
				res = domain.ToggleResult{Active: false, Count: n, Changed: false}
				return nil
			}
		}

		inserted, err := s.memberships.Insert(txCtx, rel, subject.ID, object.ID)
		if err != nil {
			return fmt.Errorf("insert membership: %w", err)
		}
		if !inserted {
			// A concurrent insert won the race, or the fact already existed.
			n, err := s.memberships.Count(txCtx, rel, object.ID)
			if err != nil {
				return fmt.Errorf("read counter: %w", err)
			}
			res = domain.ToggleResult{Active: true, Count: n, Changed: false}
			return nil
		}

		n, err := s.memberships.Increment(txCtx, rel, object.ID)
		if err != nil {
			return fmt.Errorf("increment counter: %w", err)
		}
		res = domain.ToggleResult{Active: true, Count: n, Changed: true}
		return nil
	})
	if err != nil {
		return domain.ToggleResult{}, s.fault(ctx, t.String(), rel, err)
	}

	s.metrics.RecordToggle(rel, res)
	s.log.InfoContext(ctx, "membership "+t.String(),
		slog.String("relation", rel.String()),
		slog.String("subject_id", subject.ID.String()),
		slog.String("object_id", object.ID.String()),
		slog.Bool("active", res.Active),
		slog.Bool("changed", res.Changed),
		slog.Int("count", res.Count),
	)

	return res, nil
}
