package booking

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/discoverrwanda/discover-rwanda-api/internal/lib"
	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// Handler exposes the booking resolution and submission endpoints.
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

// ListOptions handles GET /api/v1/bookings/options?type=&id=.
func (h *Handler) ListOptions(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	itemType, slug := params.Get("type"), params.Get("id")
	if itemType == "" || slug == "" {
		lib.WriteJSON(w, http.StatusBadRequest, lib.ErrorBody{Error: "type and id are required"})
		return
	}

	options, bookable, err := h.svc.ListOptions(r.Context(), itemType, slug)
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	if options == nil {
		options = []types.BookingOption{}
	}
	lib.WriteJSON(w, http.StatusOK, map[string]any{
		"options":             options,
		"hasBookableServices": bookable,
	})
}

// Resolve handles GET /api/v1/bookings/resolve?type=&id=&option=.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	itemType, slug, optionID := params.Get("type"), params.Get("id"), params.Get("option")
	if itemType == "" || slug == "" || optionID == "" {
		// Matches the page behavior: incomplete parameters are a not-found,
		// not a validation error.
		lib.WriteError(w, types.ErrNotFound)
		return
	}

	resolved, err := h.svc.Resolve(r.Context(), itemType, slug, optionID)
	if err != nil {
		lib.WriteError(w, err)
		return
	}
	lib.WriteJSON(w, http.StatusOK, resolved)
}

type submitRequest struct {
	ItemType string                `json:"itemType"`
	ItemID   string                `json:"itemId"`
	OptionID string                `json:"bookingOptionId"`
	Form     types.BookingFormData `json:"formData"`
}

// Submit handles POST /api/v1/bookings.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lib.WriteJSON(w, http.StatusBadRequest, lib.ErrorBody{Error: "invalid json body"})
		return
	}

	booking, err := h.svc.Submit(r.Context(), SubmitParams{
		ItemType: req.ItemType,
		ItemSlug: req.ItemID,
		OptionID: req.OptionID,
		Form:     req.Form,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			lib.WriteValidationError(w, verr.Fields)
			return
		}
		lib.WriteError(w, err)
		return
	}

	lib.WriteJSON(w, http.StatusCreated, booking)
}
