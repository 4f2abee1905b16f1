package catalog

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/discoverrwanda/discover-rwanda-api/internal/lib"
)

const (
	defaultPage     = 1
	defaultPageSize = 8
)

// Handler exposes the catalog list and detail endpoints.
type Handler struct {
	svc    Service
	logger *slog.Logger
}

// NewHandler wires a catalog handler.
func NewHandler(svc Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// queryFromRequest defensively parses the raw query string. Missing or
// malformed numbers fall back to page 1 / page size 8.
func queryFromRequest(r *http.Request) Query {
	params := r.URL.Query()
	return Query{
		Search:     params.Get("search"),
		Categories: params["category"],
		Locations:  params["location"],
		Month:      params.Get("month"),
		Page:       lib.QueryInt(r, "page", defaultPage, 1),
		PageSize:   lib.QueryInt(r, "pageSize", defaultPageSize, 1),
	}
}

// ListAttractions handles GET /api/v1/attractions.
func (h *Handler) ListAttractions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.FilterAttractions(r.Context(), queryFromRequest(r))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, page)
}

// GetAttraction handles GET /api/v1/attractions/{slug}.
func (h *Handler) GetAttraction(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetAttractionBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, a)
}

// ListDining handles GET /api/v1/dining.
func (h *Handler) ListDining(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.FilterDining(r.Context(), queryFromRequest(r))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, page)
}

// GetDining handles GET /api/v1/dining/{slug}.
func (h *Handler) GetDining(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDiningBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, d)
}

// ListEvents handles GET /api/v1/events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.FilterEvents(r.Context(), queryFromRequest(r))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, page)
}

// GetEvent handles GET /api/v1/events/{slug}.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, e)
}

// ListFeatured handles GET /api/v1/attractions/featured.
func (h *Handler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	featured, err := h.svc.FeaturedAttractions(r.Context())
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, featured)
}

// ListUpcomingEvents handles GET /api/v1/events/upcoming.
func (h *Handler) ListUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	upcoming, err := h.svc.UpcomingEvents(r.Context(), time.Now(), 6)
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, upcoming)
}
