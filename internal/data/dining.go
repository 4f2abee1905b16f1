package data

import "github.com/discoverrwanda/discover-rwanda-api/internal/types"

// Dining is the dining venue catalog in display order.
var Dining = []types.DiningVenue{
	{
		ID:          1,
		Slug:        "heaven-restaurant-boutique-hotel",
		Name:        "Heaven Restaurant & Boutique Hotel",
		Description: "A top-rated restaurant in Kigali offering international and Rwandan cuisine.",
		Image:       "/images/heaven-restaurant-boutique.jpg",
		Location:    "Kigali",
		Category:    "fine dining",
		Tags:        []string{"international", "rwandan", "fine dining"},
		Featured:    true,
	},
	{
		ID:          2,
		Slug:        "khana-khazana",
		Name:        "Khana Khazana",
		Description: "Popular Indian restaurant known for its authentic flavors and vibrant atmosphere.",
		Image:       "/images/khana-khazana.jpg",
		Location:    "Kigali",
		Category:    "indian",
		Tags:        []string{"indian", "spicy", "vegetarian"},
		Featured:    false,
	},
	{
		ID:          3,
		Slug:        "the-hut",
		Name:        "The Hut",
		Description: "A cozy spot serving a mix of African and international dishes.",
		Image:       "/images/the-hut.jpg",
		Location:    "Kigali",
		Category:    "casual",
		Tags:        []string{"african", "international", "casual"},
		Featured:    false,
	},
	{
		ID:          4,
		Slug:        "repub-lounge",
		Name:        "Repub Lounge",
		Description: "Trendy lounge with great cocktails and a menu of Rwandan favorites.",
		Image:       "/images/repub-lounge.jpg",
		Location:    "Kigali",
		Category:    "lounge",
		Tags:        []string{"cocktails", "rwandan", "lounge"},
		Featured:    false,
	},
	{
		ID:          5,
		Slug:        "bourbon-coffee",
		Name:        "Bourbon Coffee",
		Description: "Famous coffee shop chain serving Rwandan coffee and light meals.",
		Image:       "/images/bourbon-coffee.jpg",
		Location:    "Kigali",
		Category:    "cafe",
		Tags:        []string{"coffee", "cafe", "breakfast"},
		Featured:    false,
	},
}
