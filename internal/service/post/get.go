package post

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

// Get returns a post addressed by a primary or legacy identifier.
func (s *Service) Get(ctx context.Context, identifier string) (*domain.Post, error) {
	rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassPost, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolve post: %w", err)
	}

	p, err := s.posts.GetByID(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

// List returns a page of posts, newest first, optionally scoped to one community.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Post, domain.PageInfo, error) {
	page := domain.Page{Page: input.Page, Limit: input.Limit}.Normalize()
	filter := domain.PostFilter{Page: page}

	if input.Community != nil && strings.TrimSpace(*input.Community) != "" {
		rec, err := s.resolver.ResolveActive(ctx, domain.EntityClassCommunity, strings.TrimSpace(*input.Community))
		if err != nil {
			return nil, domain.PageInfo{}, fmt.Errorf("resolve community: %w", err)
		}
		filter.CommunityID = &rec.ID
	}

	posts, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, domain.PageInfo{}, fmt.Errorf("list posts: %w", err)
	}

	return posts, domain.NewPageInfo(page, total), nil
}
