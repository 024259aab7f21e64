package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stride-backend/internal/domain"
	"github.com/heartmarshall/stride-backend/internal/service/activity"
)

type activityService interface {
	Save(ctx context.Context, input activity.SaveInput) (*domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityHandler serves workout log endpoints.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

type saveActivityRequest struct {
	Category string          `json:"category"`
	Details  json.RawMessage `json:"details"`
}

type activityResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Category  string         `json:"category"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Save handles POST /activities.
func (h *ActivityHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.Save(r.Context(), activity.SaveInput{
		Category: domain.Category(req.Category),
		Details:  req.Details,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActivityResponse(a))
}

// List handles GET /activities.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]activityResponse, len(items))
	for i := range items {
		out[i] = toActivityResponse(&items[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"activities": out})
}

// Delete handles DELETE /activities/{id}.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Category:  a.Category.String(),
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}
