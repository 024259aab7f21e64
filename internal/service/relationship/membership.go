package relationship

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// Membership reports whether subject holds a membership in object, and the object's counter.
// Both are read in one transaction with the counter row share-locked, so a
// concurrent toggle cannot commit between the two reads.
func (s *Service) Membership(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.MembershipStatus, error) {
	if err := validateRelation(rel); err != nil {
		return domain.MembershipStatus{}, err
	}

	subject, err := s.resolver.ResolveActive(ctx, rel.SubjectClass(), subjectIdentifier)
	if err != nil {
		return domain.MembershipStatus{}, fmt.Errorf("resolve subject: %w", err)
	}
	object, err := s.resolver.ResolveActive(ctx, rel.ObjectClass(), objectIdentifier)
	if err != nil {
		return domain.MembershipStatus{}, fmt.Errorf("resolve object: %w", err)
	}

	var st domain.MembershipStatus
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		count, err := s.memberships.Count(txCtx, rel, object.ID)
		if err != nil {
			return fmt.Errorf("read counter: %w", err)
		}

		m, err := s.memberships.Get(txCtx, rel, subject.ID, object.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			st = domain.MembershipStatus{Active: false, Count: count}
			return nil
		case err != nil:
			return fmt.Errorf("get membership: %w", err)
		}

		since := m.CreatedAt
		st = domain.MembershipStatus{Active: true, Since: &since, Count: count}
		return nil
	})
	if err != nil {
		return domain.MembershipStatus{}, err
	}
	return st, nil
}

// ListMembers returns a page of the subjects holding a membership in object.
func (s *Service) ListMembers(ctx context.Context, rel domain.Relation, objectIdentifier string, page domain.Page) ([]domain.Member, domain.PageInfo, error) {
	if err := validateRelation(rel); err != nil {
		return nil, domain.PageInfo{}, err
	}
	page = page.Normalize()

	object, err := s.resolver.ResolveActive(ctx, rel.ObjectClass(), objectIdentifier)
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("resolve object: %w", err)
	}

	total, err := s.memberships.CountMembers(ctx, rel, object.ID)
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("count members: %w", err)
	}

	members := []domain.Member{}
	if total > page.Offset() {
		members, err = s.memberships.ListMembers(ctx, rel, object.ID, page)
		if err != nil {
			return nil, domain.PageInfo{}, fmt.Errorf("list members: %w", err)
		}
	}

	return members, domain.NewPageInfo(page, total), nil
}
