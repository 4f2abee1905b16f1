package booking

import (
	"fmt"
	"regexp"

	"github.com/discoverrwanda/discover-rwanda-api/internal/types"
)

// Schema is the validation contract derived from one booking option. The base
// rules always apply; exactly one of the type-specific rule sets is non-nil,
// selected by the option's type. Unknown types get the base rules only.
type Schema struct {
	OptionID        string   `json:"optionId"`
	RequireTimeSlot bool     `json:"requireTimeSlot"`
	TimeSlots       []string `json:"timeSlots,omitempty"`
	MinParticipants int      `json:"minParticipants"`
	MaxParticipants int      `json:"maxParticipants"`
	RequireAddress  bool     `json:"requireAddress"`

	Tour          *TourRules          `json:"tour,omitempty"`
	Accommodation *AccommodationRules `json:"accommodation,omitempty"`
	Dining        *DiningRules        `json:"dining,omitempty"`
	Event         *EventRules         `json:"event,omitempty"`
}

// TourRules covers tour and activity options.
type TourRules struct {
	FitnessRequired bool     `json:"fitnessRequired"`
	FitnessLevels   []string `json:"fitnessLevels"`
}

type AccommodationRules struct {
	RoomTypes []string `json:"roomTypes"`
}

type DiningRules struct {
	MealTypes []string `json:"mealTypes"`
}

type EventRules struct {
	SeatingTypes []string `json:"seatingTypes"`
}

var (
	fitnessLevels = []string{"easy", "moderate", "difficult"}
	roomTypes     = []string{"single", "double", "suite", "family"}
	mealTypes     = []string{"breakfast", "lunch", "dinner", "snack"}
	seatingTypes  = []string{"general", "reserved", "vip"}

	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// BuildSchema derives the validation schema for a booking option.
func BuildSchema(option *types.BookingOption) *Schema {
	req := option.Requirements

	minCount := req.Participants.MinCount
	if minCount == 0 {
		minCount = 1
	}
	maxCount := req.Participants.MaxCount
	if maxCount == 0 {
		maxCount = 100
	}

	s := &Schema{
		OptionID:        option.ID,
		RequireTimeSlot: len(option.Availability.TimeSlots) > 0,
		TimeSlots:       option.Availability.TimeSlots,
		MinParticipants: minCount,
		MaxParticipants: maxCount,
		RequireAddress:  contains(req.ContactInfo.Fields, "address"),
	}

	switch option.Type {
	case types.BookingTypeTour, types.BookingTypeActivity:
		s.Tour = &TourRules{
			FitnessRequired: req.TourSpecific != nil && req.TourSpecific.FitnessLevel != "",
			FitnessLevels:   fitnessLevels,
		}
	case types.BookingTypeAccommodation:
		s.Accommodation = &AccommodationRules{RoomTypes: roomTypes}
	case types.BookingTypeDining:
		s.Dining = &DiningRules{MealTypes: mealTypes}
	case types.BookingTypeEvent:
		s.Event = &EventRules{SeatingTypes: seatingTypes}
	}

	return s
}

// Validate checks a submitted form against the schema and returns one entry
// per failing field. An empty result means the submission may proceed.
func (s *Schema) Validate(form *types.BookingFormData) []types.FieldError {
	var errs []types.FieldError
	add := func(field, message string) {
		errs = append(errs, types.FieldError{Field: field, Message: message})
	}

	if form.Date == "" {
		add("date", "Please select a date")
	}
	if s.RequireTimeSlot && form.TimeSlot == "" {
		add("timeSlot", "Please select a time")
	}
	if form.Participants < s.MinParticipants {
		add("participants", fmt.Sprintf("Minimum %d participant required", s.MinParticipants))
	} else if form.Participants > s.MaxParticipants {
		add("participants", fmt.Sprintf("Maximum %d participants allowed", s.MaxParticipants))
	}

	if len(form.ContactInfo.FirstName) < 2 {
		add("contactInfo.firstName", "First name must be at least 2 characters")
	}
	if len(form.ContactInfo.LastName) < 2 {
		add("contactInfo.lastName", "Last name must be at least 2 characters")
	}
	if !emailPattern.MatchString(form.ContactInfo.Email) {
		add("contactInfo.email", "Please enter a valid email")
	}
	if len(form.ContactInfo.Phone) < 10 {
		add("contactInfo.phone", "Please enter a valid phone number")
	}
	if s.RequireAddress && len(form.ContactInfo.Address) < 10 {
		add("contactInfo.address", "Address is required")
	}

	// Emergency contact is optional as a whole, validated once provided.
	if ec := form.EmergencyContact; ec != nil {
		if len(ec.Name) < 2 {
			add("emergencyContact.name", "Emergency contact name is required")
		}
		if len(ec.Phone) < 10 {
			add("emergencyContact.phone", "Emergency contact phone is required")
		}
		if len(ec.Relationship) < 2 {
			add("emergencyContact.relationship", "Relationship is required")
		}
	}

	switch {
	case s.Tour != nil:
		s.validateTour(form, add)
	case s.Accommodation != nil:
		s.validateAccommodation(form, add)
	case s.Dining != nil:
		s.validateDining(form, add)
	case s.Event != nil:
		s.validateEvent(form, add)
	}

	return errs
}

func (s *Schema) validateTour(form *types.BookingFormData, add func(field, message string)) {
	if s.Tour.FitnessRequired {
		if form.TourData == nil || form.TourData.FitnessLevel == "" {
			add("tourData.fitnessLevel", "Please select a fitness level")
			return
		}
	}
	if form.TourData != nil && form.TourData.FitnessLevel != "" && !contains(fitnessLevels, form.TourData.FitnessLevel) {
		add("tourData.fitnessLevel", "Invalid fitness level")
	}
}

func (s *Schema) validateAccommodation(form *types.BookingFormData, add func(field, message string)) {
	if form.AccommodationData == nil {
		add("accommodationData.roomType", "Please select a room type")
		add("accommodationData.checkInDate", "Check-in date is required")
		add("accommodationData.checkOutDate", "Check-out date is required")
		return
	}
	if !contains(roomTypes, form.AccommodationData.RoomType) {
		add("accommodationData.roomType", "Please select a room type")
	}
	if form.AccommodationData.CheckInDate == "" {
		add("accommodationData.checkInDate", "Check-in date is required")
	}
	if form.AccommodationData.CheckOutDate == "" {
		add("accommodationData.checkOutDate", "Check-out date is required")
	}
}

func (s *Schema) validateDining(form *types.BookingFormData, add func(field, message string)) {
	if form.DiningData == nil {
		add("diningData.mealType", "Please select a meal type")
		add("diningData.tableSize", "Table size is required")
		return
	}
	if !contains(mealTypes, form.DiningData.MealType) {
		add("diningData.mealType", "Please select a meal type")
	}
	if form.DiningData.TableSize < 1 {
		add("diningData.tableSize", "Table size is required")
	}
}

func (s *Schema) validateEvent(form *types.BookingFormData, add func(field, message string)) {
	if form.EventData == nil || !contains(seatingTypes, form.EventData.SeatingType) {
		add("eventData.seatingType", "Please select a seating type")
	}
}

// TotalPrice computes the live total for the given participant count. It is
// re-derived on every call; nothing caches the result.
func TotalPrice(option *types.BookingOption, participants int) float64 {
	if option.Price.PerPerson {
		return option.Price.Amount * float64(participants)
	}
	return option.Price.Amount
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
