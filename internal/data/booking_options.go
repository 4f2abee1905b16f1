package data

import "github.com/discoverrwanda/discover-rwanda-api/internal/types"

// BookingOptions maps a catalog item slug to its bookable services. An item
// absent from this map has no bookable services.
var BookingOptions = map[string][]types.BookingOption{
	"volcanoes-national-park": {
		{
			ID:   "vnp-gorilla-trekking",
			Name: "Gorilla Trekking Experience",
			Description: "Experience the thrill of encountering mountain gorillas in their natural " +
				"habitat. This guided trek takes you through the beautiful Virunga Mountains to " +
				"observe these magnificent creatures.",
			Type:         types.BookingTypeTour,
			Price:        types.Price{Amount: 1500, Currency: "USD", PerPerson: true},
			Duration:     "4-8 hours",
			MaxGroupSize: 8,
			MinGroupSize: 1,
			Availability: types.Availability{
				Days:        []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots:   []string{"07:00", "08:00", "09:00"},
				Seasonal:    true,
				SeasonStart: "2024-06-01",
				SeasonEnd:   "2024-09-30",
			},
			Requirements: types.BookingRequirements{
				ContactInfo: types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{
					Required: true, MaxCount: 8, MinCount: 1,
					AgeRestrictions: &types.AgeRange{MinAge: 15},
				},
				Dates: types.DatesRequirement{Required: true, AdvanceBooking: 180},
				TourSpecific: &types.TourRequirements{
					FitnessLevel:        "moderate",
					EquipmentProvided:   true,
					SpecialNeeds:        true,
					DietaryRestrictions: true,
				},
			},
			IncludedServices: []string{"Professional guide", "Park permits", "Safety briefing", "Porter service (optional)", "Water and snacks"},
			ExcludedServices: []string{"Transportation to park", "Accommodation", "Personal equipment"},
			CancellationPolicy: "Full refund if cancelled 30 days before. 50% refund if cancelled 7-30 days before. " +
				"No refund if cancelled less than 7 days before.",
		},
		{
			ID:           "vnp-golden-monkey-trekking",
			Name:         "Golden Monkey Trekking",
			Description:  "Trek through the bamboo forest to observe the playful golden monkeys in their natural habitat.",
			Type:         types.BookingTypeTour,
			Price:        types.Price{Amount: 100, Currency: "USD", PerPerson: true},
			Duration:     "2-4 hours",
			MaxGroupSize: 8,
			MinGroupSize: 1,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots: []string{"08:00", "09:00", "10:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo:  types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{Required: true, MaxCount: 8, MinCount: 1},
				Dates:        types.DatesRequirement{Required: true, AdvanceBooking: 30, FlexibleDates: true},
				TourSpecific: &types.TourRequirements{FitnessLevel: "easy", EquipmentProvided: true},
			},
			IncludedServices:   []string{"Professional guide", "Park permits", "Safety briefing"},
			ExcludedServices:   []string{"Transportation", "Accommodation"},
			CancellationPolicy: "Full refund if cancelled 7 days before. No refund if cancelled less than 7 days before.",
		},
	},

	"nyungwe-forest-national-park": {
		{
			ID:           "nyungwe-chimpanzee-trekking",
			Name:         "Chimpanzee Trekking",
			Description:  "Track and observe chimpanzees in their natural forest habitat with expert guides.",
			Type:         types.BookingTypeTour,
			Price:        types.Price{Amount: 100, Currency: "USD", PerPerson: true},
			Duration:     "3-6 hours",
			MaxGroupSize: 8,
			MinGroupSize: 1,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots: []string{"06:00", "07:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo: types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{
					Required: true, MaxCount: 8, MinCount: 1,
					AgeRestrictions: &types.AgeRange{MinAge: 12},
				},
				Dates:        types.DatesRequirement{Required: true, AdvanceBooking: 60, FlexibleDates: true},
				TourSpecific: &types.TourRequirements{FitnessLevel: "moderate", EquipmentProvided: true, SpecialNeeds: true},
			},
			IncludedServices:   []string{"Professional guide", "Park permits", "Safety briefing", "Water"},
			ExcludedServices:   []string{"Transportation", "Accommodation", "Meals"},
			CancellationPolicy: "Full refund if cancelled 14 days before. 50% refund if cancelled 7-14 days before.",
		},
		{
			ID:           "nyungwe-canopy-walk",
			Name:         "Canopy Walkway Experience",
			Description:  "Walk among the treetops on a spectacular canopy walkway 60 meters above the forest floor.",
			Type:         types.BookingTypeActivity,
			Price:        types.Price{Amount: 60, Currency: "USD", PerPerson: true},
			Duration:     "2-3 hours",
			MaxGroupSize: 12,
			MinGroupSize: 1,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo: types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{
					Required: true, MaxCount: 12, MinCount: 1,
					AgeRestrictions: &types.AgeRange{MinAge: 8},
				},
				Dates:        types.DatesRequirement{Required: true, AdvanceBooking: 7, FlexibleDates: true},
				TourSpecific: &types.TourRequirements{FitnessLevel: "easy", EquipmentProvided: true},
			},
			IncludedServices:   []string{"Professional guide", "Safety equipment", "Safety briefing"},
			ExcludedServices:   []string{"Transportation", "Accommodation"},
			CancellationPolicy: "Full refund if cancelled 24 hours before.",
		},
	},

	"lake-kivu": {
		{
			ID:           "lake-kivu-boat-tour",
			Name:         "Sunset Boat Tour",
			Description:  "Enjoy a relaxing boat tour on Lake Kivu with stunning sunset views and refreshments.",
			Type:         types.BookingTypeTour,
			Price:        types.Price{Amount: 50, Currency: "USD", PerPerson: true},
			Duration:     "2 hours",
			MaxGroupSize: 20,
			MinGroupSize: 2,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots: []string{"17:00", "18:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo:  types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{Required: true, MaxCount: 20, MinCount: 2},
				Dates:        types.DatesRequirement{Required: true, AdvanceBooking: 1, FlexibleDates: true},
			},
			IncludedServices:   []string{"Boat captain", "Life jackets", "Refreshments", "Safety briefing"},
			ExcludedServices:   []string{"Transportation to dock", "Accommodation"},
			CancellationPolicy: "Full refund if cancelled 2 hours before.",
		},
		{
			ID:           "lake-kivu-kayaking",
			Name:         "Kayaking Adventure",
			Description:  "Explore the beautiful Lake Kivu by kayak with guided tours for all skill levels.",
			Type:         types.BookingTypeActivity,
			Price:        types.Price{Amount: 30, Currency: "USD", PerPerson: true},
			Duration:     "1-3 hours",
			MaxGroupSize: 10,
			MinGroupSize: 1,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots: []string{"09:00", "10:00", "14:00", "15:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo: types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{
					Required: true, MaxCount: 10, MinCount: 1,
					AgeRestrictions: &types.AgeRange{MinAge: 12},
				},
				Dates: types.DatesRequirement{Required: true, AdvanceBooking: 1, FlexibleDates: true},
			},
			IncludedServices:   []string{"Kayak and equipment", "Professional guide", "Safety briefing", "Water"},
			ExcludedServices:   []string{"Transportation", "Accommodation"},
			CancellationPolicy: "Full refund if cancelled 2 hours before.",
		},
	},

	"heaven-restaurant-boutique-hotel": {
		{
			ID:           "heaven-dinner-reservation",
			Name:         "Dinner Reservation",
			Description:  "Reserve a table for dinner at Heaven Restaurant with stunning views and exceptional cuisine.",
			Type:         types.BookingTypeDining,
			Price:        types.Price{Amount: 0, Currency: "USD"},
			Duration:     "2-3 hours",
			MaxGroupSize: 20,
			MinGroupSize: 1,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
				TimeSlots: []string{"18:00", "19:00", "20:00", "21:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo:  types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{Required: true, MaxCount: 20, MinCount: 1},
				Dates:        types.DatesRequirement{Required: true, AdvanceBooking: 7, FlexibleDates: true},
				DiningSpecific: &types.DiningRequirements{
					MealType:        "dinner",
					DietaryOptions:  []string{"vegetarian", "vegan", "gluten-free"},
					TableSize:       4,
					SpecialOccasion: true,
				},
			},
			IncludedServices:   []string{"Table reservation", "Professional service", "Menu consultation"},
			ExcludedServices:   []string{"Food and beverages", "Transportation"},
			CancellationPolicy: "Free cancellation up to 24 hours before reservation.",
		},
	},

	"bourbon-coffee": {
		{
			ID:           "bourbon-coffee-tasting",
			Name:         "Coffee Tasting Experience",
			Description:  "Learn about Rwandan coffee production and taste different varieties with expert baristas.",
			Type:         types.BookingTypeActivity,
			Price:        types.Price{Amount: 25, Currency: "USD", PerPerson: true},
			Duration:     "1 hour",
			MaxGroupSize: 8,
			MinGroupSize: 2,
			Availability: types.Availability{
				Days:      []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
				TimeSlots: []string{"10:00", "11:00", "14:00", "15:00"},
			},
			Requirements: types.BookingRequirements{
				ContactInfo: types.ContactRequirement{Required: true, Fields: []string{"name", "email", "phone"}},
				Participants: types.ParticipantsRequirement{
					Required: true, MaxCount: 8, MinCount: 2,
					AgeRestrictions: &types.AgeRange{MinAge: 16},
				},
				Dates: types.DatesRequirement{Required: true, AdvanceBooking: 1, FlexibleDates: true},
			},
			IncludedServices:   []string{"Coffee tasting session", "Expert guide", "Coffee samples", "Educational materials"},
			ExcludedServices:   []string{"Transportation", "Additional food"},
			CancellationPolicy: "Full refund if cancelled 2 hours before.",
		},
	},
}
