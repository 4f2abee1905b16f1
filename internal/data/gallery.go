package data

import "github.com/discoverrwanda/discover-rwanda-api/internal/types"

// GalleryImages is the gallery catalog in display order.
var GalleryImages = []types.GalleryImage{
	{
		ID:           "1",
		Title:        "Mountain Gorillas",
		Location:     "Volcanoes National Park",
		Category:     "wildlife",
		Description:  "A family of mountain gorillas in their natural habitat. Rwanda is one of only three countries where these endangered primates can be seen in the wild.",
		ImageURL:     "/images/gallery/mountain-gorillas.jpg",
		Photographer: "Wildlife Explorer",
	},
	{
		ID:           "2",
		Title:        "Kigali Cityscape",
		Location:     "Kigali",
		Category:     "urban",
		Description:  "A panoramic view of Rwanda's capital city, known for its cleanliness, safety and beautiful hillside setting.",
		ImageURL:     "/images/gallery/kigali-cityscape.jpg",
		Photographer: "Urban Photographer",
	},
	{
		ID:           "3",
		Title:        "Traditional Dance Performance",
		Location:     "Iby'Iwacu Cultural Village",
		Category:     "culture",
		Description:  "Intore dancers performing traditional Rwandan dance, showcasing the country's rich cultural heritage.",
		ImageURL:     "/images/gallery/intore-dancers.jpg",
		Photographer: "Cultural Enthusiast",
	},
	{
		ID:           "4",
		Title:        "Lake Kivu Sunset",
		Location:     "Lake Kivu",
		Category:     "landscape",
		Description:  "A breathtaking sunset over Lake Kivu, one of Africa's Great Lakes on the border with the Democratic Republic of Congo.",
		ImageURL:     "/images/gallery/lake-kivu-sunset.jpg",
		Photographer: "Nature Lover",
	},
	{
		ID:           "5",
		Title:        "Nyungwe Forest Canopy Walk",
		Location:     "Nyungwe National Park",
		Category:     "adventure",
		Description:  "The famous canopy walkway suspended above Nyungwe Forest, one of Africa's oldest rainforests.",
		ImageURL:     "/images/gallery/canopy-walk.jpg",
		Photographer: "Adventure Seeker",
	},
	{
		ID:           "6",
		Title:        "Tea Plantations",
		Location:     "Gisakura",
		Category:     "landscape",
		Description:  "Rwanda's verdant tea plantations are an important export crop and create some of the country's most beautiful landscapes.",
		ImageURL:     "/images/gallery/tea-plantations.jpg",
		Photographer: "Landscape Artist",
	},
	{
		ID:           "7",
		Title:        "Akagera Lions",
		Location:     "Akagera National Park",
		Category:     "wildlife",
		Description:  "Lions back on the savannah of Akagera after their successful reintroduction to the park.",
		ImageURL:     "/images/gallery/akagera-lions.jpg",
		Photographer: "Safari Guide",
	},
	{
		ID:           "8",
		Title:        "Genocide Memorial Gardens",
		Location:     "Kigali",
		Category:     "history",
		Description:  "The peaceful gardens of the Kigali Genocide Memorial, a place of remembrance and learning.",
		ImageURL:     "/images/gallery/memorial-gardens.jpg",
		Photographer: "Documentary Photographer",
	},
	{
		ID:           "9",
		Title:        "Handwoven Baskets",
		Location:     "Kimironko Market",
		Category:     "culture",
		Description:  "Agaseke peace baskets, Rwanda's iconic handwoven craft, stacked high at a market stall.",
		ImageURL:     "/images/gallery/agaseke-baskets.jpg",
		Photographer: "Craft Collector",
	},
	{
		ID:           "10",
		Title:        "Virunga Volcanoes at Dawn",
		Location:     "Musanze",
		Category:     "landscape",
		Description:  "The volcanic peaks of the Virunga range emerging from the morning mist.",
		ImageURL:     "/images/gallery/virunga-dawn.jpg",
		Photographer: "Nature Lover",
	},
}

// GalleryCategories is the selectable category list for the gallery page.
var GalleryCategories = []types.GalleryCategory{
	{Value: "all", Label: "All Photos"},
	{Value: "wildlife", Label: "Wildlife"},
	{Value: "landscape", Label: "Landscapes"},
	{Value: "culture", Label: "Culture"},
	{Value: "urban", Label: "Urban"},
	{Value: "adventure", Label: "Adventure"},
	{Value: "history", Label: "History"},
}
