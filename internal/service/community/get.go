package community

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// Get returns an active community addressed by a primary or legacy identifier.
func (s *Service) Get(ctx context.Context, identifier string) (*domain.Community, error) {
	rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassCommunity, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolve community: %w", err)
	}

	c, err := s.communities.GetByID(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("get community: %w", err)
	}
	return c, nil
}

// List returns a page of active communities.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Community, domain.PageInfo, error) {
	if err := input.Validate(); err != nil {
		return nil, domain.PageInfo{}, err
	}

	page := domain.Page{Page: input.Page, Limit: input.Limit}.Normalize()
	filter := domain.CommunityFilter{
		Category:  input.Category,
		Search:    trimOrNil(input.Search),
		SortBy:    input.SortBy,
		SortOrder: strings.ToLower(input.SortOrder),
		Page:      page,
	}

	communities, total, err := s.communities.List(ctx, filter)
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("list communities: %w", err)
	}

	return communities, domain.NewPageInfo(page, total), nil
}
