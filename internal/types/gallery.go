package types

// GalleryImage is a photo shown on the gallery page.
type GalleryImage struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	Photographer string `json:"photographer"`
}

// GalleryPage carries one page of gallery results plus navigation hints.
type GalleryPage struct {
	Images     []GalleryImage `json:"images"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	HasNext    bool           `json:"hasNext"`
	HasPrev    bool           `json:"hasPrev"`
}

// GalleryCategory is a selectable category filter on the gallery page.
type GalleryCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
