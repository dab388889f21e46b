package configdoc

// Defaults returns the built-in configuration document used when nothing has
// been persisted yet. A fresh value is returned on every call so callers can
// never share mutable state.
func Defaults() Document {
	return Document{
		ClientInfo: ClientInfo{
			Name:  "Sarah & James",
			Phone: "555-0123",
			Email: "sarah.james@example.com",
		},
		WeddingDetails: WeddingDetails{
			Date:    "2026-06-20",
			Time:    "14:00",
			Package: PackageProPlus,
		},
		Venues: Venues{
			Ceremony: Venue{
				Name:    "St. Mary's Church",
				Address: "12 Chapel Lane",
			},
			Reception: Venue{
				Name:    "The Grand Ballroom",
				Address: "48 Riverside Drive",
			},
		},
		PhotographyPreferences: PhotographyPreferences{
			Style:          "Candid and documentary with a few classic posed portraits",
			PostProcessing: "Natural tones, light retouching only",
		},
		GroupShots: []GroupShot{
			{ID: 1, Description: "Couple with both sets of parents"},
			{ID: 2, Description: "Bridal party full group"},
			{ID: 3, Description: "Extended family on the ceremony steps"},
		},
	}
}
