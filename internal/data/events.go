package data

import "github.com/discoverrwanda/discover-rwanda-api/internal/types"

// Events is the event catalog in display order. Dates are ISO (YYYY-MM-DD).
var Events = []types.Event{
	{
		ID:          1,
		Slug:        "kigali-peace-marathon",
		Name:        "Kigali Peace Marathon",
		Description: "Annual marathon event promoting peace and unity in Rwanda.",
		Image:       "/images/kigali-peace-marathon.jpg",
		Location:    "Kigali",
		Date:        "2025-06-15",
		Category:    "sports",
		Tags:        []string{"marathon", "sports", "peace"},
		Featured:    true,
	},
	{
		ID:          2,
		Slug:        "gorilla-naming-ceremony-kwita-izina",
		Name:        "Gorilla Naming Ceremony (Kwita Izina)",
		Description: "A world-renowned conservation event where baby gorillas are named.",
		Image:       "/images/kwita-izina.jpg",
		Location:    "Volcanoes National Park",
		Date:        "2025-09-01",
		Category:    "culture",
		Tags:        []string{"conservation", "gorillas", "ceremony"},
		Featured:    true,
	},
	{
		ID:          3,
		Slug:        "rwanda-film-festival",
		Name:        "Rwanda Film Festival",
		Description: "Celebrating Rwandan and African cinema with screenings and workshops.",
		Image:       "/images/rwanda-film-festival.jpg",
		Location:    "Kigali",
		Date:        "2025-08-10",
		Category:    "arts",
		Tags:        []string{"film", "festival", "cinema"},
		Featured:    false,
	},
	{
		ID:          4,
		Slug:        "umuganura-festival",
		Name:        "Umuganura Festival",
		Description: "Traditional harvest festival celebrating Rwandan culture and unity.",
		Image:       "/images/umuganura-festival.jpg",
		Location:    "All Provinces",
		Date:        "2025-08-02",
		Category:    "culture",
		Tags:        []string{"harvest", "tradition", "festival"},
		Featured:    false,
	},
	{
		ID:          5,
		Slug:        "kigali-fashion-week",
		Name:        "Kigali Fashion Week",
		Description: "Showcasing Rwandan and African fashion designers.",
		Image:       "/images/kigali-fashion-week.jpg",
		Location:    "Kigali",
		Date:        "2025-11-20",
		Category:    "fashion",
		Tags:        []string{"fashion", "design", "runway"},
		Featured:    false,
	},
}
