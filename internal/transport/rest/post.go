package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/internal/service/post"
)

type postService interface {
	Create(ctx context.Context, input post.CreateInput) (*domain.Post, error)
	Get(ctx context.Context, identifier string) (*domain.Post, error)
	List(ctx context.Context, input post.ListInput) ([]domain.Post, domain.PageInfo, error)
	Delete(ctx context.Context, identifier string) error
}

// PostHandler serves post endpoints, including likes.
type PostHandler struct {
	svc       postService
	relations relationshipService
	log       *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, relations relationshipService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, relations: relations, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	Caption   string          `json:"caption"`
	ImageURL  string          `json:"imageUrl"`
	Category  string          `json:"category"`
	Stats     json.RawMessage `json:"stats"`
	Community *string         `json:"community"`
}

type postResponse struct {
	ID          string         `json:"id"`
	LegacyID    *string        `json:"legacyId,omitempty"`
	UserID      string         `json:"userId"`
	CommunityID *string        `json:"communityId,omitempty"`
	Caption     string         `json:"caption"`
	ImageURL    string         `json:"imageUrl"`
	Category    string         `json:"category"`
	Stats       map[string]any `json:"stats"`
	LikeCount   int            `json:"likeCount"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), post.CreateInput{
		Caption:   req.Caption,
		ImageURL:  req.ImageURL,
		Category:  domain.Category(req.Category),
		Stats:     req.Stats,
		Community: req.Community,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(p))
}

// Get handles GET /posts/{id}. The id may be primary or legacy.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// List handles GET /posts?page=&limit=&community=.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, info, err := h.svc.List(r.Context(), post.ListInput{
		Page:      page.Page,
		Limit:     page.Limit,
		Community: queryString(r, "community"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]postResponse, len(items))
	for i := range items {
		out[i] = toPostResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": out, "pagination": toPageInfo(info)})
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleLike handles POST /posts/{id}/like.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	membershipTransition(h.log, domain.RelationPostLike, h.relations.Toggle)(w, r)
}

// Like handles PUT /posts/{id}/like.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	membershipTransition(h.log, domain.RelationPostLike, h.relations.Activate)(w, r)
}

// Unlike handles DELETE /posts/{id}/like.
func (h *PostHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	membershipTransition(h.log, domain.RelationPostLike, h.relations.Deactivate)(w, r)
}

func toPostResponse(p *domain.Post) postResponse {
	resp := postResponse{
		ID:        p.ID.String(),
		LegacyID:  p.LegacyID,
		UserID:    p.UserID.String(),
		Caption:   p.Caption,
		ImageURL:  p.ImageURL,
		Category:  p.Category.String(),
		Stats:     p.Stats,
		LikeCount: p.LikeCount,
		CreatedAt: p.CreatedAt,
	}
	if p.CommunityID != nil {
		id := p.CommunityID.String()
		resp.CommunityID = &id
	}
	return resp
}
