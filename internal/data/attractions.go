// Package data holds the static catalog loaded at process start. Records are
// read-only for the process lifetime; repositories hand out views over these
// slices and never mutate them.
package data

import "github.com/discoverrwanda/discover-rwanda-api/internal/types"

// Attractions is the full attraction catalog in display order.
var Attractions = []types.Attraction{
	{
		ID:   1,
		Slug: "volcanoes-national-park",
		Name: "Volcanoes National Park",
		Description: "Volcanoes National Park lies in northwestern Rwanda and protects the Rwandan " +
			"side of the Virunga Mountains, a chain of dormant volcanoes covered in rainforest and " +
			"bamboo. It is world famous as a sanctuary for the endangered mountain gorilla and was " +
			"the base for Dian Fossey's pioneering research. Reopened to tourists in 1999, the park " +
			"is today one of Africa's great conservation success stories.",
		ShortDescription: "Home to endangered mountain gorillas and golden monkeys, offering trekking experiences in a stunning volcanic landscape.",
		Image:            "/images/volcanoes-national-park-gorilla.jpg",
		Images: []string{
			"/images/volcanoes-national-park-gorilla.jpg",
			"/images/virunga-mountains-landscape.jpg",
		},
		Location: "Northern Province",
		Category: "natural",
		Tags:     []string{"wildlife", "hiking", "gorillas", "trekking", "conservation"},
		Featured: true,
		OpeningHours: types.OpeningHours{
			MonFri:   "8:00 AM - 6:00 PM",
			SatSun:   "9:00 AM - 5:00 PM",
			Holidays: "9:00 AM - 4:00 PM",
		},
		BestTimeToVisit: "June to September (Dry Season)",
		PriceRange: types.PriceRange{
			Foreigners: "$1,500 for gorilla trekking permit",
			Citizens:   "RWF 30,000 for park entry",
			Children:   "RWF 15,000 (under 12)",
		},
		Coordinates: types.Coordinates{Latitude: -1.4833, Longitude: 29.4833},
		Contact: types.ContactInfo{
			Phone:   "+250 788 123 456",
			Email:   "info@volcanoesnationalpark.rw",
			Website: "www.volcanoesnationalpark.rw",
		},
		QuickFacts: []string{
			"Established in 1925",
			"First National Park in Africa",
			"Home to mountain gorillas",
			"Over 178 bird species",
			"Covers 160 sq km",
		},
		TravelTips: []string{
			"Book your gorilla trekking permit well in advance (6+ months recommended)",
			"Wear sturdy hiking boots and long pants for trekking",
			"Bring a waterproof jacket even in dry season",
			"Maximum 8 people per gorilla group",
		},
		Reviews: []types.Review{
			{ID: "1", Author: "Sarah Johnson", Date: "March 15, 2024", Rating: 5, Comment: "Gorilla trekking was the most incredible wildlife experience of my life. Worth every penny.", Verified: true},
			{ID: "2", Author: "Michael Chen", Date: "February 28, 2024", Rating: 4, Comment: "Beautiful park and amazing gorilla encounter. The trek was more strenuous than I expected. Bring good hiking boots!", Verified: true},
			{ID: "3", Author: "Emma Williams", Date: "January 10, 2024", Rating: 5, Comment: "Absolutely breathtaking experience. We were fortunate to see a silverback up close.", Verified: true},
		},
	},
	{
		ID:   2,
		Slug: "nyungwe-forest-national-park",
		Name: "Nyungwe Forest National Park",
		Description: "Nyungwe is one of Africa's oldest montane rainforests, sheltering chimpanzees, " +
			"twelve other primate species and hundreds of birds. Its canopy walkway, suspended sixty " +
			"meters above the forest floor, is the only one of its kind in East Africa.",
		ShortDescription: "Ancient montane rainforest with chimpanzee trekking and a spectacular canopy walkway.",
		Image:            "/images/nyungwe-forests.jpg",
		Location:         "Southern Province",
		Category:         "natural",
		Tags:             []string{"rainforest", "chimpanzees", "canopy walk", "birding"},
		Featured:         true,
		OpeningHours:     types.OpeningHours{MonFri: "7:00 AM - 5:00 PM", SatSun: "7:00 AM - 5:00 PM"},
		BestTimeToVisit:  "June to September",
		PriceRange:       types.PriceRange{Foreigners: "$100 for chimpanzee trekking", Citizens: "RWF 25,000 for park entry"},
		Coordinates:      types.Coordinates{Latitude: -2.4919, Longitude: 29.2028},
		Contact:          types.ContactInfo{Phone: "+250 788 234 567", Email: "info@nyungwepark.rw"},
		Reviews: []types.Review{
			{ID: "1", Author: "David Brown", Date: "April 2, 2024", Rating: 5, Comment: "The canopy walk is not for the faint-hearted but the views are unforgettable.", Verified: true},
		},
	},
	{
		ID:   3,
		Slug: "lake-kivu",
		Name: "Lake Kivu",
		Description: "Lake Kivu is one of Africa's Great Lakes, stretching along the border between " +
			"Rwanda and the Democratic Republic of Congo. Rolling hills and volcanic mountains frame " +
			"its clear blue waters, and the beach towns of Gisenyi, Kibuye and Cyangugu offer swimming, " +
			"kayaking, boat tours and fishing.",
		ShortDescription: "One of Africa's Great Lakes with stunning beaches, boat tours and water activities.",
		Image:            "/images/lake-kivu.jpg",
		Location:         "Western Province",
		Category:         "natural",
		Tags:             []string{"lake", "beaches", "kayaking", "boat tours"},
		Featured:         true,
		OpeningHours:     types.OpeningHours{MonFri: "Open 24 hours", SatSun: "Open 24 hours"},
		BestTimeToVisit:  "Year-round",
		PriceRange:       types.PriceRange{Foreigners: "Free public access", Citizens: "Free public access"},
		Coordinates:      types.Coordinates{Latitude: -2.0469, Longitude: 29.1869},
		Contact:          types.ContactInfo{Phone: "+250 788 345 678", Email: "info@lakekivu.rw", Website: "www.lakekivu.rw"},
		Reviews: []types.Review{
			{ID: "1", Author: "Lisa Anderson", Date: "March 8, 2024", Rating: 5, Comment: "The water is crystal clear and the beaches are pristine. The sunset boat tour was magical.", Verified: true},
		},
	},
	{
		ID:   4,
		Slug: "kigali-genocide-memorial",
		Name: "Kigali Genocide Memorial",
		Description: "The Kigali Genocide Memorial at Gisozi is the final resting place of more than " +
			"250,000 victims of the 1994 genocide against the Tutsi. Its exhibitions document the " +
			"history of the genocide and Rwanda's journey of reconciliation.",
		ShortDescription: "A solemn memorial and museum honouring the victims of the 1994 genocide.",
		Image:            "/images/kigali-genocide-memorial.jpg",
		Location:         "Kigali",
		Category:         "cultural",
		Tags:             []string{"history", "memorial", "museum"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 5:00 PM", SatSun: "8:00 AM - 5:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "Free (donations welcome)", Citizens: "Free"},
		Coordinates:      types.Coordinates{Latitude: -1.9306, Longitude: 30.0606},
		Contact:          types.ContactInfo{Phone: "+250 788 456 789", Website: "www.kgm.rw"},
	},
	{
		ID:   5,
		Slug: "ethnographic-museum",
		Name: "Ethnographic Museum",
		Description: "Located in Huye, the Ethnographic Museum houses one of Africa's finest " +
			"collections of traditional artifacts, from basketry and pottery to royal regalia, " +
			"across seven galleries tracing Rwandan life and craft.",
		ShortDescription: "One of Africa's finest ethnographic collections, tracing Rwandan culture and craft.",
		Image:            "/images/ethnographic-museum.jpg",
		Location:         "Huye",
		Category:         "cultural",
		Tags:             []string{"museum", "culture", "history"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 6:00 PM", SatSun: "8:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "RWF 6,000", Citizens: "RWF 1,500"},
		Coordinates:      types.Coordinates{Latitude: -2.6078, Longitude: 29.7442},
		Contact:          types.ContactInfo{Phone: "+250 788 567 890"},
	},
	{
		ID:   6,
		Slug: "akagera-national-park",
		Name: "Akagera National Park",
		Description: "Akagera is Rwanda's only savannah park, a mosaic of grassland, woodland, lakes " +
			"and papyrus swamp along the Tanzanian border. Reintroductions of lions and rhinos have " +
			"restored it to Big Five status, and game drives and boat safaris run year-round.",
		ShortDescription: "Rwanda's Big Five savannah park with game drives and boat safaris.",
		Image:            "/images/akagera-national-park.jpg",
		Location:         "Eastern Province",
		Category:         "natural",
		Tags:             []string{"safari", "big five", "game drives", "wildlife"},
		Featured:         true,
		OpeningHours:     types.OpeningHours{MonFri: "6:00 AM - 6:00 PM", SatSun: "6:00 AM - 6:00 PM"},
		BestTimeToVisit:  "June to September",
		PriceRange:       types.PriceRange{Foreigners: "$50 park entry", Citizens: "RWF 16,000"},
		Coordinates:      types.Coordinates{Latitude: -1.8794, Longitude: 30.7967},
		Contact:          types.ContactInfo{Phone: "+250 788 678 901", Website: "www.akagera.org"},
	},
	{
		ID:   7,
		Slug: "kimironko-market",
		Name: "Kimironko Market",
		Description: "Kigali's largest market is a maze of stalls selling fresh produce, fabrics, " +
			"crafts and housewares. It is the best place in the capital to haggle for kitenge cloth " +
			"and handwoven baskets alongside everyday shoppers.",
		ShortDescription: "Kigali's largest and liveliest market for produce, fabrics and crafts.",
		Image:            "/images/kimironko-market.jpg",
		Location:         "Kigali",
		Category:         "urban",
		Tags:             []string{"market", "shopping", "crafts"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "6:00 AM - 7:00 PM", SatSun: "6:00 AM - 7:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "Free entry", Citizens: "Free entry"},
		Coordinates:      types.Coordinates{Latitude: -1.9397, Longitude: 30.1264},
		Contact:          types.ContactInfo{Phone: "+250 788 789 012"},
	},
	{
		ID:   8,
		Slug: "kings-palace-museum",
		Name: "King's Palace Museum",
		Description: "The reconstructed royal residence at Nyanza shows the traditional seat of the " +
			"Rwandan monarchy, complete with a thatched palace and the famous long-horned inyambo " +
			"cattle tended by singing herders.",
		ShortDescription: "Reconstructed royal residence with the famous long-horned inyambo cattle.",
		Image:            "/images/kings-palace-museum.jpg",
		Location:         "Southern Province",
		Category:         "cultural",
		Tags:             []string{"royalty", "history", "museum"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 6:00 PM", SatSun: "8:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "RWF 8,000", Citizens: "RWF 2,000"},
		Coordinates:      types.Coordinates{Latitude: -2.3508, Longitude: 29.7406},
		Contact:          types.ContactInfo{Phone: "+250 788 890 123"},
	},
	{
		ID:   9,
		Slug: "congo-nile-trail",
		Name: "Congo Nile Trail",
		Description: "A 227-kilometre hiking and biking route along the western lakeshore, passing " +
			"through fishing villages, tea plantations and terraced hills. Sections suit every " +
			"fitness level, from day walks to a ten-day end-to-end trek.",
		ShortDescription: "Scenic 227 km hiking and biking route through lakeside villages and tea country.",
		Image:            "/images/congo-nile-trail.jpg",
		Location:         "Western Province",
		Category:         "natural",
		Tags:             []string{"hiking", "biking", "trail", "villages"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "Open 24 hours", SatSun: "Open 24 hours"},
		BestTimeToVisit:  "June to September",
		PriceRange:       types.PriceRange{Foreigners: "Free (guides optional)", Citizens: "Free"},
		Coordinates:      types.Coordinates{Latitude: -2.2333, Longitude: 29.1500},
		Contact:          types.ContactInfo{Phone: "+250 788 901 234"},
	},
	{
		ID:   10,
		Slug: "gisenyi-beach",
		Name: "Gisenyi Beach",
		Description: "Gisenyi's sandy public beach is the most popular lakeside escape in the " +
			"country, with swimming, beach volleyball and water sports against a backdrop of " +
			"volcanic peaks.",
		ShortDescription: "Popular sandy beach destination with swimming and water sports.",
		Image:            "/images/gisenyi-beach.jpg",
		Location:         "Gisenyi",
		Category:         "natural",
		Tags:             []string{"beach", "swimming", "water sports"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "Open 24 hours", SatSun: "Open 24 hours"},
		PriceRange:       types.PriceRange{Foreigners: "Free public access", Citizens: "Free public access"},
		Coordinates:      types.Coordinates{Latitude: -1.7028, Longitude: 29.2564},
		Contact:          types.ContactInfo{Phone: "+250 788 012 345"},
	},
	{
		ID:   11,
		Slug: "inema-arts-center",
		Name: "Inema Arts Center",
		Description: "Founded by two brothers in 2012, Inema is Kigali's leading contemporary art " +
			"space, hosting resident painters, dance workshops and a lively open-studio evening.",
		ShortDescription: "Kigali's leading contemporary art space with resident artists and workshops.",
		Image:            "/images/inema-arts-center.jpg",
		Location:         "Kigali",
		Category:         "urban",
		Tags:             []string{"art", "gallery", "workshops"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 8:00 PM", SatSun: "10:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "Free entry", Citizens: "Free entry"},
		Coordinates:      types.Coordinates{Latitude: -1.9536, Longitude: 30.0928},
		Contact:          types.ContactInfo{Phone: "+250 788 123 450", Website: "www.inemaartcenter.com"},
	},
	{
		ID:   12,
		Slug: "rusumo-falls",
		Name: "Rusumo Falls",
		Description: "On the Tanzanian border, the Akagera River squeezes through a narrow gorge at " +
			"Rusumo, a modest but historically significant waterfall beside the old border bridge.",
		ShortDescription: "Historic waterfall on the Akagera River at the Tanzanian border.",
		Image:            "/images/rusumo-falls.jpg",
		Location:         "Eastern Province",
		Category:         "natural",
		Tags:             []string{"waterfall", "river", "history"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "6:00 AM - 6:00 PM", SatSun: "6:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "Free", Citizens: "Free"},
		Coordinates:      types.Coordinates{Latitude: -2.3833, Longitude: 30.7833},
		Contact:          types.ContactInfo{Phone: "+250 788 234 560"},
	},
	{
		ID:   13,
		Slug: "nyanza-royal-palace",
		Name: "Nyanza Royal Palace",
		Description: "The hilltop palace complex at Nyanza was the heart of the Rwandan kingdom in " +
			"the early twentieth century, pairing the traditional thatched residence with the " +
			"colonial-era palace of King Mutara III.",
		ShortDescription: "Hilltop palace complex at the historic heart of the Rwandan kingdom.",
		Image:            "/images/nyanza-royal-palace.jpg",
		Location:         "Nyanza",
		Category:         "cultural",
		Tags:             []string{"royalty", "palace", "history"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 6:00 PM", SatSun: "8:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "RWF 8,000", Citizens: "RWF 2,000"},
		Coordinates:      types.Coordinates{Latitude: -2.3517, Longitude: 29.7500},
		Contact:          types.ContactInfo{Phone: "+250 788 345 670"},
	},
	{
		ID:   14,
		Slug: "kibuye-peace-island",
		Name: "Kibuye Peace Island",
		Description: "A short boat ride from Kibuye town, Peace Island (Napoleon Island's quieter " +
			"neighbour) offers picnic spots, swimming coves and walking paths with wide water views.",
		ShortDescription: "Tranquil island near Kibuye with swimming coves and picnic spots.",
		Image:            "/images/kibuye-peace-island.jpg",
		Location:         "Kibuye",
		Category:         "natural",
		Tags:             []string{"island", "swimming", "picnic"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "7:00 AM - 6:00 PM", SatSun: "7:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "Boat transfer ~RWF 10,000", Citizens: "Boat transfer ~RWF 5,000"},
		Coordinates:      types.Coordinates{Latitude: -2.0603, Longitude: 29.3478},
		Contact:          types.ContactInfo{Phone: "+250 788 456 780"},
	},
	{
		ID:   15,
		Slug: "camp-kigali-memorial",
		Name: "Camp Kigali Memorial",
		Description: "Ten stone columns mark the site where ten Belgian UN peacekeepers were killed " +
			"on 7 April 1994. The small museum in the former barracks documents the events of that day.",
		ShortDescription: "Memorial to the ten Belgian peacekeepers killed at the start of the genocide.",
		Image:            "/images/camp-kigali-memorial.jpg",
		Location:         "Kigali",
		Category:         "cultural",
		Tags:             []string{"memorial", "history"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 5:00 PM", SatSun: "9:00 AM - 4:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "Free (donations welcome)", Citizens: "Free"},
		Coordinates:      types.Coordinates{Latitude: -1.9500, Longitude: 30.0583},
		Contact:          types.ContactInfo{Phone: "+250 788 567 801"},
	},
	{
		ID:   16,
		Slug: "gorilla-guardians-village",
		Name: "Gorilla Guardians Village",
		Description: "A community cultural village near Musanze where reformed poachers share " +
			"traditional dance, archery, brewing and craft demonstrations, with proceeds supporting " +
			"conservation-friendly livelihoods.",
		ShortDescription: "Community cultural village with dance, craft and archery demonstrations.",
		Image:            "/images/gorilla-guardians-village.jpg",
		Location:         "Musanze",
		Category:         "cultural",
		Tags:             []string{"culture", "community", "dance"},
		Featured:         false,
		OpeningHours:     types.OpeningHours{MonFri: "8:00 AM - 6:00 PM", SatSun: "8:00 AM - 6:00 PM"},
		PriceRange:       types.PriceRange{Foreigners: "$20 per visit", Citizens: "RWF 5,000"},
		Coordinates:      types.Coordinates{Latitude: -1.4667, Longitude: 29.5500},
		Contact:          types.ContactInfo{Phone: "+250 788 678 012", Website: "www.gorillaguardians.rw"},
	},
}
