package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/internal/service/community"
)

type communityService interface {
	Create(ctx context.Context, input community.CreateInput) (*domain.Community, error)
	Get(ctx context.Context, identifier string) (*domain.Community, error)
	List(ctx context.Context, input community.ListInput) ([]domain.Community, domain.PageInfo, error)
	Update(ctx context.Context, identifier string, input community.UpdateInput) (*domain.Community, error)
	Delete(ctx context.Context, identifier string) error
}

// CommunityHandler serves community endpoints, including follows.
type CommunityHandler struct {
	svc       communityService
	relations relationshipService
	log       *slog.Logger
}

// NewCommunityHandler creates a CommunityHandler.
func NewCommunityHandler(svc communityService, relations relationshipService, logger *slog.Logger) *CommunityHandler {
	return &CommunityHandler{svc: svc, relations: relations, log: logger.With("handler", "community")}
}

type createCommunityRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	ProfileImageURL *string `json:"profileImage"`
}

type updateCommunityRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Category        *string `json:"category"`
	ProfileImageURL *string `json:"profileImage"`
}

type communityResponse struct {
	ID              string    `json:"id"`
	LegacyID        *string   `json:"legacyId,omitempty"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	ProfileImageURL *string   `json:"profileImage,omitempty"`
	CreatorID       string    `json:"creatorId"`
	FollowerCount   int       `json:"followerCount"`
	PostCount       int       `json:"postCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Create handles POST /communities.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCommunityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), community.CreateInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        domain.CommunityCategory(req.Category),
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommunityResponse(c))
}

// Get handles GET /communities/{id}. The id may be primary or legacy.
func (h *CommunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommunityResponse(c))
}

// List handles GET /communities?page=&limit=&category=&search=&sortBy=&sortOrder=.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	input := community.ListInput{
		Page:      page.Page,
		Limit:     page.Limit,
		Search:    queryString(r, "search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
	}
	if c := q.Get("category"); c != "" {
		cat := domain.CommunityCategory(c)
		input.Category = &cat
	}

	items, info, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]communityResponse, len(items))
	for i := range items {
		out[i] = toCommunityResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"communities": out, "pagination": toPageInfo(info)})
}

// Update handles PUT /communities/{id}.
func (h *CommunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCommunityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := community.UpdateInput{
		Name:            req.Name,
		Description:     req.Description,
		ProfileImageURL: req.ProfileImageURL,
	}
	if req.Category != nil {
		cat := domain.CommunityCategory(*req.Category)
		input.Category = &cat
	}

	c, err := h.svc.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCommunityResponse(c))
}

// Delete handles DELETE /communities/{id}.
func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Join handles POST /communities/{id}/join.
func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	membershipTransition(h.log, domain.RelationCommunityFollow, h.relations.Activate)(w, r)
}

// Leave handles POST /communities/{id}/leave.
func (h *CommunityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	membershipTransition(h.log, domain.RelationCommunityFollow, h.relations.Deactivate)(w, r)
}

// ToggleFollow handles POST /communities/{id}/follow.
func (h *CommunityHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	membershipTransition(h.log, domain.RelationCommunityFollow, h.relations.Toggle)(w, r)
}

// Membership handles GET /communities/{id}/membership.
func (h *CommunityHandler) Membership(w http.ResponseWriter, r *http.Request) {
	membershipStatus(h.log, h.relations, domain.RelationCommunityFollow)(w, r)
}

// Members handles GET /communities/{id}/members.
func (h *CommunityHandler) Members(w http.ResponseWriter, r *http.Request) {
	listMembers(h.log, h.relations, domain.RelationCommunityFollow)(w, r)
}

func toCommunityResponse(c *domain.Community) communityResponse {
	return communityResponse{
		ID:              c.ID.String(),
		LegacyID:        c.LegacyID,
		Name:            c.Name,
		Description:     c.Description,
		Category:        c.Category.String(),
		ProfileImageURL: c.ProfileImageURL,
		CreatorID:       c.CreatorID.String(),
		FollowerCount:   c.FollowerCount,
		PostCount:       c.PostCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
