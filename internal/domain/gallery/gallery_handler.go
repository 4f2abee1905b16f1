package gallery

import (
	"log/slog"
	"net/http"

	"github.com/discoverrwanda/discover-rwanda-api/internal/lib"
)

// Handler exposes the gallery endpoints.
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

// Fetch handles GET /api/v1/gallery.
func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, err := h.svc.Fetch(r.Context(), Filters{
		Category: params.Get("category"),
		Search:   params.Get("search"),
		Page:     lib.QueryInt(r, "page", 1, 1),
		Limit:    lib.QueryInt(r, "limit", DefaultLimit, 1),
	})
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, page)
}

// Categories handles GET /api/v1/gallery/categories.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	lib.WriteJSON(w, http.StatusOK, h.svc.Categories(r.Context()))
}
