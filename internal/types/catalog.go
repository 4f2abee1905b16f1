package types

// Attraction is a visitable site shown on list and detail pages. Records are
// static configuration loaded at startup and treated as read-only.
type Attraction struct {
	ID               int      `json:"id"`
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Image            string   `json:"image"`
	Images           []string `json:"images,omitempty"`
	Location         string   `json:"location"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Featured         bool     `json:"featured"`

	OpeningHours    OpeningHours `json:"openingHours"`
	BestTimeToVisit string       `json:"bestTimeToVisit,omitempty"`
	PriceRange      PriceRange   `json:"priceRange"`
	Coordinates     Coordinates  `json:"coordinates"`
	Contact         ContactInfo  `json:"contact"`

	QuickFacts []string `json:"quickFacts,omitempty"`
	TravelTips []string `json:"travelTips,omitempty"`

	Reviews []Review `json:"reviews,omitempty"`
}

type OpeningHours struct {
	MonFri   string `json:"monFri"`
	SatSun   string `json:"satSun"`
	Holidays string `json:"holidays,omitempty"`
}

type PriceRange struct {
	Foreigners string `json:"foreigners"`
	Citizens   string `json:"citizens"`
	Children   string `json:"children,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Review is owned by exactly one attraction. New reviews are appended to an
// in-memory store and are not persisted across restarts.
type Review struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Verified bool   `json:"verified"`
}

// DiningVenue is a restaurant, cafe or lounge record.
type DiningVenue struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// Event is a dated happening. Date is an ISO date string (YYYY-MM-DD).
type Event struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// Page is one page of a filtered collection. Total always reflects the full
// filtered count, not the slice length.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
