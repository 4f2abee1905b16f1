package review

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/discoverrwanda/discover-rwanda-api/internal/lib"
)

// Handler exposes the attraction review endpoints.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/attractions/{slug}/reviews.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviews(r.Context(), r.PathValue("slug"))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, reviews)
}

// Submit handles POST /api/v1/attractions/{slug}/reviews.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var params SubmitParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		lib.WriteJSON(w, http.StatusBadRequest, lib.ErrorBody{Error: "invalid json body"})
		return
	}

	review, err := h.svc.SubmitReview(r.Context(), r.PathValue("slug"), params)
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusCreated, review)
}
