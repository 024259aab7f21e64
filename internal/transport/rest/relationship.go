package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/pkg/ctxutil"
)

// relationshipService is the membership surface shared by follows and likes.
type relationshipService interface {
	Toggle(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error)
	Activate(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error)
	Deactivate(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error)
	Membership(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.MembershipStatus, error)
	ListMembers(ctx context.Context, rel domain.Relation, objectIdentifier string, page domain.Page) ([]domain.Member, domain.PageInfo, error)
}

type toggleResponse struct {
	Active  bool `json:"active"`
	Count   int  `json:"count"`
	Changed bool `json:"changed"`
}

type membershipResponse struct {
	Active bool       `json:"active"`
	Since  *time.Time `json:"since,omitempty"`
	Count  int        `json:"count"`
}

type memberResponse struct {
	UserID          string    `json:"userId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL *string   `json:"profileImage,omitempty"`
	JoinedAt        time.Time `json:"joinedAt"`
}

type transitionFunc func(ctx context.Context, rel domain.Relation, subjectIdentifier, objectIdentifier string) (domain.ToggleResult, error)

// membershipTransition runs a relationship transition for the caller against
// the object named by the {id} path value.
func membershipTransition(log *slog.Logger, rel domain.Relation, fn transitionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		res, err := fn(r.Context(), rel, userID.String(), r.PathValue("id"))
		if err != nil {
			handleError(log, w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toggleResponse{Active: res.Active, Count: res.Count, Changed: res.Changed})
	}
}

func membershipStatus(log *slog.Logger, svc relationshipService, rel domain.Relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		st, err := svc.Membership(r.Context(), rel, userID.String(), r.PathValue("id"))
		if err != nil {
			handleError(log, w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, membershipResponse{Active: st.Active, Since: st.Since, Count: st.Count})
	}
}

func listMembers(log *slog.Logger, svc relationshipService, rel domain.Relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := pageQuery(r)
		if err != nil {
			handleError(log, w, r, err)
			return
		}

		members, info, err := svc.ListMembers(r.Context(), rel, r.PathValue("id"), page)
		if err != nil {
			handleError(log, w, r, err)
			return
		}

		out := make([]memberResponse, len(members))
		for i, m := range members {
			out[i] = memberResponse{
				UserID:          m.UserID.String(),
				FirstName:       m.FirstName,
				LastName:        m.LastName,
				ProfileImageURL: m.ProfileImageURL,
				JoinedAt:        m.JoinedAt,
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"members": out, "pagination": toPageInfo(info)})
	}
}
