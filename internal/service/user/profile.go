package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile with activity, follow and post counts.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	activities, follows, posts, err := s.users.ProfileCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile counts: %w", err)
	}

	return &domain.UserProfile{
		User:                *user,
		ActivityCount:       activities,
		FollowedCommunities: follows,
		PostCount:           posts,
	}, nil
}
