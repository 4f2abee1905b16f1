package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

func tourOption() *types.BookingOption {
	return &types.BookingOption{
		ID:    "trek",
		Name:  "Trekking",
		Type:  types.BookingTypeTour,
		Price: types.Price{Amount: 100, Currency: "USD", PerPerson: true},
		Availability: types.Availability{
			TimeSlots: []string{"07:00", "08:00"},
		},
		Requirements: types.BookingRequirements{
			ContactInfo:  types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
			Participants: types.ParticipantsRequirement{Required: true, MinCount: 2, MaxCount: 8},
			TourSpecific: &types.TourRequirements{FitnessLevel: "moderate"},
		},
	}
}

func validForm() types.BookingFormData {
	return types.BookingFormData{
		BookingOptionID: "trek",
		Date:            "2025-10-01",
		TimeSlot:        "07:00",
		Participants:    2,
		ContactInfo: types.BookingContact{
			FirstName: "Alice",
			LastName:  "Mukamana",
			Email:     "alice@example.com",
			Phone:     "+250788123456",
		},
		TourData: &types.TourFormData{FitnessLevel: "moderate"},
	}
}

func TestBuildSchema(t *testing.T) {
	t.Run("tour option", func(t *testing.T) {
		s := BuildSchema(tourOption())

		assert.True(t, s.RequireTimeSlot)
		assert.Equal(t, []string{"07:00", "08:00"}, s.TimeSlots)
		assert.Equal(t, 2, s.MinParticipants)
		assert.Equal(t, 8, s.MaxParticipants)
		assert.False(t, s.RequireAddress)
		require.NotNil(t, s.Tour)
		assert.True(t, s.Tour.FitnessRequired)
		assert.Nil(t, s.Accommodation)
		assert.Nil(t, s.Dining)
		assert.Nil(t, s.Event)
	})

	t.Run("defaults when counts are unset", func(t *testing.T) {
		opt := tourOption()
		opt.Requirements.Participants = types.ParticipantsRequirement{}
		opt.Availability.TimeSlots = nil

		s := BuildSchema(opt)

		assert.False(t, s.RequireTimeSlot)
		assert.Equal(t, 1, s.MinParticipants)
		assert.Equal(t, 100, s.MaxParticipants)
	})

	t.Run("fitness optional when level unset", func(t *testing.T) {
		opt := tourOption()
		opt.Requirements.TourSpecific = &types.TourRequirements{}

		s := BuildSchema(opt)

		require.NotNil(t, s.Tour)
		assert.False(t, s.Tour.FitnessRequired)
	})

	t.Run("dining option", func(t *testing.T) {
		opt := tourOption()
		opt.Type = types.BookingTypeDining

		s := BuildSchema(opt)

		require.NotNil(t, s.Dining)
		assert.Nil(t, s.Tour)
		assert.Equal(t, []string{"breakfast", "lunch", "dinner", "snack"}, s.Dining.MealTypes)
	})

	t.Run("accommodation option", func(t *testing.T) {
		opt := tourOption()
		opt.Type = types.BookingTypeAccommodation

		s := BuildSchema(opt)

		require.NotNil(t, s.Accommodation)
		assert.Nil(t, s.Tour)
	})

	t.Run("event option", func(t *testing.T) {
		opt := tourOption()
		opt.Type = types.BookingTypeEvent

		s := BuildSchema(opt)

		require.NotNil(t, s.Event)
		assert.Equal(t, []string{"general", "reserved", "vip"}, s.Event.SeatingTypes)
	})

	t.Run("address required when listed in contact fields", func(t *testing.T) {
		opt := tourOption()
		opt.Requirements.ContactInfo.Fields = []string{"name", "email", "phone", "address"}

		s := BuildSchema(opt)

		assert.True(t, s.RequireAddress)
	})
}

func TestSchemaValidate(t *testing.T) {
	schema := BuildSchema(tourOption())

	fieldsOf := func(errs []types.FieldError) []string {
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, e.Field)
		}
		return out
	}

	t.Run("valid form passes", func(t *testing.T) {
		form := validForm()
		assert.Empty(t, schema.Validate(&form))
	})

	t.Run("missing date", func(t *testing.T) {
		form := validForm()
		form.Date = ""

		errs := schema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "date", errs[0].Field)
		assert.Equal(t, "Please select a date", errs[0].Message)
	})

	t.Run("missing time slot", func(t *testing.T) {
		form := validForm()
		form.TimeSlot = ""

		assert.Contains(t, fieldsOf(schema.Validate(&form)), "timeSlot")
	})

	t.Run("participants below minimum", func(t *testing.T) {
		form := validForm()
		form.Participants = 1

		errs := schema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "participants", errs[0].Field)
		assert.Equal(t, "Minimum 2 participant required", errs[0].Message)
	})

	t.Run("participants above maximum", func(t *testing.T) {
		form := validForm()
		form.Participants = 9

		errs := schema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "Maximum 8 participants allowed", errs[0].Message)
	})

	t.Run("bad contact info", func(t *testing.T) {
		form := validForm()
		form.ContactInfo = types.BookingContact{
			FirstName: "A",
			LastName:  "B",
			Email:     "not-an-email",
			Phone:     "123",
		}

		fields := fieldsOf(schema.Validate(&form))

		assert.Contains(t, fields, "contactInfo.firstName")
		assert.Contains(t, fields, "contactInfo.lastName")
		assert.Contains(t, fields, "contactInfo.email")
		assert.Contains(t, fields, "contactInfo.phone")
	})

	t.Run("emergency contact validated only when provided", func(t *testing.T) {
		form := validForm()
		form.EmergencyContact = nil
		assert.Empty(t, schema.Validate(&form))

		form.EmergencyContact = &types.EmergencyContact{Name: "X", Phone: "123", Relationship: ""}
		fields := fieldsOf(schema.Validate(&form))
		assert.Contains(t, fields, "emergencyContact.name")
		assert.Contains(t, fields, "emergencyContact.phone")
		assert.Contains(t, fields, "emergencyContact.relationship")
	})

	t.Run("missing fitness level when required", func(t *testing.T) {
		form := validForm()
		form.TourData = nil

		errs := schema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "tourData.fitnessLevel", errs[0].Field)
		assert.Equal(t, "Please select a fitness level", errs[0].Message)
	})

	t.Run("invalid fitness level", func(t *testing.T) {
		form := validForm()
		form.TourData = &types.TourFormData{FitnessLevel: "superhuman"}

		errs := schema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "Invalid fitness level", errs[0].Message)
	})

	t.Run("dining schema requires table size", func(t *testing.T) {
		opt := tourOption()
		opt.Type = types.BookingTypeDining
		diningSchema := BuildSchema(opt)

		form := validForm()
		form.TourData = nil
		form.DiningData = &types.DiningFormData{MealType: "dinner", TableSize: 0}

		errs := diningSchema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "diningData.tableSize", errs[0].Field)
		assert.Equal(t, "Table size is required", errs[0].Message)
	})

	t.Run("accommodation schema requires stay dates", func(t *testing.T) {
		opt := tourOption()
		opt.Type = types.BookingTypeAccommodation
		accSchema := BuildSchema(opt)

		form := validForm()
		form.TourData = nil
		form.AccommodationData = &types.AccommodationFormData{RoomType: "double"}

		fields := fieldsOf(accSchema.Validate(&form))

		assert.Contains(t, fields, "accommodationData.checkInDate")
		assert.Contains(t, fields, "accommodationData.checkOutDate")
		assert.NotContains(t, fields, "accommodationData.roomType")
	})

	t.Run("event schema requires seating type", func(t *testing.T) {
		opt := tourOption()
		opt.Type = types.BookingTypeEvent
		eventSchema := BuildSchema(opt)

		form := validForm()
		form.TourData = nil
		form.EventData = &types.EventFormData{SeatingType: "backstage"}

		errs := eventSchema.Validate(&form)

		require.Len(t, errs, 1)
		assert.Equal(t, "eventData.seatingType", errs[0].Field)
	})

	t.Run("tour schema ignores other type data", func(t *testing.T) {
		form := validForm()
		form.DiningData = &types.DiningFormData{}

		assert.Empty(t, schema.Validate(&form))
	})
}

func TestTotalPrice(t *testing.T) {
	perPerson := &types.BookingOption{Price: types.Price{Amount: 100, PerPerson: true}}
	assert.Equal(t, 400.0, TotalPrice(perPerson, 4))

	flat := &types.BookingOption{Price: types.Price{Amount: 250}}
	assert.Equal(t, 250.0, TotalPrice(flat, 4))
}
