package types

import "time"

// BookingType tags a booking option and selects the type-specific form rules.
type BookingType string

const (
	BookingTypeTour          BookingType = "tour"
	BookingTypeActivity      BookingType = "activity"
	BookingTypeAccommodation BookingType = "accommodation"
	BookingTypeDining        BookingType = "dining"
	BookingTypeEvent         BookingType = "event"
	BookingTypeTransport     BookingType = "transport"
	BookingTypeGuide         BookingType = "guide"
)

// BookingOption is a purchasable or reservable service tied to a catalog item.
// Option IDs are unique within a single item's option list; lookup is always
// by the (item slug, option id) pair.
type BookingOption struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	Type             BookingType         `json:"type"`
	Price            Price               `json:"price"`
	Duration         string              `json:"duration,omitempty"`
	MaxGroupSize     int                 `json:"maxGroupSize,omitempty"`
	MinGroupSize     int                 `json:"minGroupSize,omitempty"`
	Availability     Availability        `json:"availability"`
	Requirements     BookingRequirements `json:"requirements"`
	IncludedServices []string            `json:"includedServices,omitempty"`
	ExcludedServices []string            `json:"excludedServices,omitempty"`
	CancellationPolicy string            `json:"cancellationPolicy"`
	Images           []string            `json:"images,omitempty"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	PerPerson bool    `json:"perPerson,omitempty"`
	PerGroup  bool    `json:"perGroup,omitempty"`
	PerHour   bool    `json:"perHour,omitempty"`
	PerDay    bool    `json:"perDay,omitempty"`
}

type Availability struct {
	Days        []string `json:"days"`
	TimeSlots   []string `json:"timeSlots,omitempty"`
	Seasonal    bool     `json:"seasonal,omitempty"`
	SeasonStart string   `json:"seasonStart,omitempty"`
	SeasonEnd   string   `json:"seasonEnd,omitempty"`
}

// BookingRequirements declares the input constraints a booking option imposes
// on the submission form. Exactly one of the type-specific sub-structs is set,
// matching the option's Type; the rest stay nil.
type BookingRequirements struct {
	ContactInfo  ContactRequirement       `json:"contactInfo"`
	Participants ParticipantsRequirement  `json:"participants"`
	Dates        DatesRequirement         `json:"dates"`

	TourSpecific          *TourRequirements          `json:"tourSpecific,omitempty"`
	AccommodationSpecific *AccommodationRequirements `json:"accommodationSpecific,omitempty"`
	DiningSpecific        *DiningRequirements        `json:"diningSpecific,omitempty"`
	EventSpecific         *EventRequirements         `json:"eventSpecific,omitempty"`
}

type ContactRequirement struct {
	Required bool     `json:"required"`
	Fields   []string `json:"fields"`
}

type ParticipantsRequirement struct {
	Required bool             `json:"required"`
	MaxCount int              `json:"maxCount,omitempty"`
	MinCount int              `json:"minCount,omitempty"`
	AgeRestrictions *AgeRange `json:"ageRestrictions,omitempty"`
}

type AgeRange struct {
	MinAge int `json:"minAge,omitempty"`
	MaxAge int `json:"maxAge,omitempty"`
}

type DatesRequirement struct {
	Required        bool `json:"required"`
	AdvanceBooking  int  `json:"advanceBooking,omitempty"`
	FlexibleDates   bool `json:"flexibleDates,omitempty"`
}

type TourRequirements struct {
	FitnessLevel        string   `json:"fitnessLevel,omitempty"`
	EquipmentProvided   bool     `json:"equipmentProvided,omitempty"`
	EquipmentRequired   []string `json:"equipmentRequired,omitempty"`
	SpecialNeeds        bool     `json:"specialNeeds,omitempty"`
	DietaryRestrictions bool     `json:"dietaryRestrictions,omitempty"`
}

type AccommodationRequirements struct {
	RoomType      string   `json:"roomType,omitempty"`
	CheckInTime   string   `json:"checkInTime,omitempty"`
	CheckOutTime  string   `json:"checkOutTime,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	SmokingPolicy string   `json:"smokingPolicy,omitempty"`
}

type DiningRequirements struct {
	MealType        string   `json:"mealType,omitempty"`
	DietaryOptions  []string `json:"dietaryOptions,omitempty"`
	TableSize       int      `json:"tableSize,omitempty"`
	SpecialOccasion bool     `json:"specialOccasion,omitempty"`
}

type EventRequirements struct {
	EventType      string `json:"eventType,omitempty"`
	SeatingType    string `json:"seatingType,omitempty"`
	AgeRestriction int    `json:"ageRestriction,omitempty"`
	DressCode      string `json:"dressCode,omitempty"`
}

// BookingFormData is the submitted form payload. Only the sub-struct matching
// the option's type is expected to be populated.
type BookingFormData struct {
	BookingOptionID string `json:"bookingOptionId"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot,omitempty"`
	Participants    int    `json:"participants"`

	ContactInfo BookingContact `json:"contactInfo"`

	TourData          *TourFormData          `json:"tourData,omitempty"`
	AccommodationData *AccommodationFormData `json:"accommodationData,omitempty"`
	DiningData        *DiningFormData        `json:"diningData,omitempty"`
	EventData         *EventFormData         `json:"eventData,omitempty"`

	SpecialRequests  string            `json:"specialRequests,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

type BookingContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type TourFormData struct {
	FitnessLevel        string   `json:"fitnessLevel,omitempty"`
	SpecialNeeds        string   `json:"specialNeeds,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	EquipmentNeeded     []string `json:"equipmentNeeded,omitempty"`
}

type AccommodationFormData struct {
	RoomType        string `json:"roomType"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type DiningFormData struct {
	MealType            string   `json:"mealType"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
	SpecialOccasion     string   `json:"specialOccasion,omitempty"`
	TableSize           int      `json:"tableSize"`
}

type EventFormData struct {
	SeatingType     string `json:"seatingType"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRefunded  BookingStatus = "refunded"
)

// PaymentStatus mirrors the payment leg of a booking.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is the ephemeral record built at submission time. It is returned to
// the caller and never written to a durable store.
type Booking struct {
	ID               string          `json:"id"`
	BookingOptionID  string          `json:"bookingOptionId"`
	ItemSlug         string          `json:"itemId"`
	ItemType         string          `json:"itemType"`
	Status           BookingStatus   `json:"status"`
	FormData         BookingFormData `json:"formData"`
	TotalAmount      float64         `json:"totalAmount"`
	Currency         string          `json:"currency"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	ConfirmationCode string          `json:"confirmationCode"`
}

// Confirmation is the gateway's answer to a successful submission.
type Confirmation struct {
	ID               string    `json:"id"`
	ConfirmationCode string    `json:"confirmationCode"`
	Status           string    `json:"status"`
	TotalAmount      float64   `json:"totalAmount"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
