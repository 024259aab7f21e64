package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/stride-backend/internal/domain"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
}

// UserHandler serves the current user's profile.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type profileResponse struct {
	userResponse
	ActivityCount       int `json:"activityCount"`
	FollowedCommunities int `json:"followedCommunities"`
	PostCount           int `json:"postCount"`
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		userResponse:        toUserResponse(&profile.User),
		ActivityCount:       profile.ActivityCount,
		FollowedCommunities: profile.FollowedCommunities,
		PostCount:           profile.PostCount,
	})
}
