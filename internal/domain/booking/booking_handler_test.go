package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/discoverrwanda/discover-rwanda-api/internal/lib"
	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

func newTestHandler(gateway Gateway) *Handler {
	catalogRepo := new(MockCatalogRepo)
	catalogRepo.On("AttractionBySlug", mock.Anything, "volcanoes-national-park").Return(testAttraction(), nil)
	catalogRepo.On("AttractionBySlug", mock.Anything, mock.Anything).Return(nil, types.ErrNotFound)
	optionRepo := NewMemoryOptionRepository(map[string][]types.BookingOption{
		"volcanoes-national-park": {trekkingOption()},
	})
	service := NewServiceImpl(catalogRepo, optionRepo, gateway, testLogger())
	return NewHandler(service, testLogger())
}

func TestResolveHandler(t *testing.T) {
	handler := newTestHandler(&stubGateway{})

	get := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/resolve"+query, nil)
		rec := httptest.NewRecorder()
		handler.Resolve(rec, req)
		return rec
	}

	t.Run("resolves a bookable attraction", func(t *testing.T) {
		rec := get("?type=attraction&id=volcanoes-national-park&option=vnp-gorilla-trekking")

		require.Equal(t, http.StatusOK, rec.Code)

		var resolved Resolved
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resolved))
		assert.Equal(t, "volcanoes-national-park", resolved.Item.Slug)
		assert.Equal(t, "vnp-gorilla-trekking", resolved.Schema.OptionID)
	})

	t.Run("missing parameters read as not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("?type=attraction").Code)
		assert.Equal(t, http.StatusNotFound, get("").Code)
	})

	t.Run("event booking is not found", func(t *testing.T) {
		rec := get("?type=event&id=kigali-peace-marathon&option=anything")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown option is not found", func(t *testing.T) {
		rec := get("?type=attraction&id=volcanoes-national-park&option=nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubmitHandler(t *testing.T) {
	post := func(handler *Handler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.Submit(rec, req)
		return rec
	}

	validBody := func() map[string]any {
		return map[string]any{
			"itemType":        "attraction",
			"itemId":          "volcanoes-national-park",
			"bookingOptionId": "vnp-gorilla-trekking",
			"formData": map[string]any{
				"bookingOptionId": "vnp-gorilla-trekking",
				"date":            "2025-10-01",
				"timeSlot":        "07:00",
				"participants":    2,
				"contactInfo": map[string]any{
					"firstName": "Alice",
					"lastName":  "Mukamana",
					"email":     "alice@example.com",
					"phone":     "+250788123456",
				},
				"tourData": map[string]any{"fitnessLevel": "moderate"},
			},
		}
	}

	marshal := func(v any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return string(b)
	}

	t.Run("confirmed booking", func(t *testing.T) {
		handler := newTestHandler(&stubGateway{
			confirmation: &types.Confirmation{
				ID:               "b-1",
				ConfirmationCode: "RW12345678",
				Status:           string(types.BookingStatusConfirmed),
				TotalAmount:      3000,
				Currency:         "USD",
				CreatedAt:        time.Now().UTC(),
			},
		})

		rec := post(handler, marshal(validBody()))

		require.Equal(t, http.StatusCreated, rec.Code)

		var booking types.Booking
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&booking))
		assert.Equal(t, "RW12345678", booking.ConfirmationCode)
		assert.Equal(t, types.BookingStatusConfirmed, booking.Status)
	})

	t.Run("validation errors return field list", func(t *testing.T) {
		handler := newTestHandler(&stubGateway{})
		body := validBody()
		body["formData"].(map[string]any)["date"] = ""

		rec := post(handler, marshal(body))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var envelope lib.ErrorBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		require.Len(t, envelope.Fields, 1)
		assert.Equal(t, "date", envelope.Fields[0].Field)
		assert.Equal(t, "Please select a date", envelope.Fields[0].Message)
	})

	t.Run("gateway failure maps to bad gateway", func(t *testing.T) {
		handler := newTestHandler(&stubGateway{err: types.ErrSubmissionFailed})

		rec := post(handler, marshal(validBody()))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := newTestHandler(&stubGateway{})

		rec := post(handler, "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListOptionsHandler(t *testing.T) {
	handler := newTestHandler(&stubGateway{})

	get := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/options"+query, nil)
		rec := httptest.NewRecorder()
		handler.ListOptions(rec, req)
		return rec
	}

	t.Run("options for a bookable attraction", func(t *testing.T) {
		rec := get("?type=attraction&id=volcanoes-national-park")

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Options             []types.BookingOption `json:"options"`
			HasBookableServices bool                  `json:"hasBookableServices"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.HasBookableServices)
		require.Len(t, body.Options, 1)
	})

	t.Run("empty list for non-bookable types", func(t *testing.T) {
		rec := get("?type=dining&id=khana-khazana")

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Options             []types.BookingOption `json:"options"`
			HasBookableServices bool                  `json:"hasBookableServices"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.HasBookableServices)
		assert.Empty(t, body.Options)
	})

	t.Run("missing parameters", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, get("").Code)
	})
}
