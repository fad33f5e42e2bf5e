package catalog

import (
	"listbase/internal/domain"
)

// fixtureItems is a small mixed collection used across the engine tests.
func fixtureItems() []domain.Item {
	return []domain.Item{
		{ID: "s1", Title: "CoolAir Experts", Tagline: "Same-day AC repair", Category: "ac", CategoryLabel: "AC & Cooling",
			Tags: []string{"Repair", "Installation"}, Provider: "Rahim Uddin", Rating: 4.8, ReviewCount: 320, PriceValue: 500, IsFeatured: true},
		{ID: "s2", Title: "Sparkle Home", Tagline: "Deep cleaning for busy families", Category: "cleaning", CategoryLabel: "Cleaning",
			Tags: []string{"Deep Clean"}, Provider: "Nadia Islam", Rating: 4.6, ReviewCount: 210, PriceValue: 1200, IsTrending: true},
		{ID: "s3", Title: "VoltFix", Description: "Wiring, fuse boxes and lighting", Category: "electrical", CategoryLabel: "Electrical",
			Tags: []string{"Wiring"}, Provider: "Karim Hossain", Rating: 4.9, ReviewCount: 95, PriceValue: 300},
		{ID: "s4", Title: "PipeMasters", Tagline: "Leaks fixed fast", Category: "plumbing", CategoryLabel: "Plumbing",
			Tags: []string{"Emergency"}, Provider: "Sumon Das", Rating: 4.6, ReviewCount: 410, PriceValue: 450, IsFeatured: true, IsTrending: true},
	}
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
