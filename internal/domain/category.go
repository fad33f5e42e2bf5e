package domain

import "strings"

// CategoryAll is the wildcard category id: filtering by it keeps every item.
const CategoryAll = "all"

// Category is one entry of a variant's fixed category table.
type Category struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Color      string `json:"color,omitempty"`
	Background string `json:"bg,omitempty"`
}

var serviceCategories = []Category{
	{ID: "ac", Label: "AC & Cooling", Color: "#0EA5E9", Background: "#F0F9FF"},
	{ID: "cleaning", Label: "Cleaning", Color: "#3B82F6", Background: "#EFF6FF"},
	{ID: "electrical", Label: "Electrical", Color: "#EAB308", Background: "#FEFCE8"},
	{ID: "plumbing", Label: "Plumbing", Color: "#6366F1", Background: "#EEF2FF"},
	{ID: "automotive", Label: "Car Services", Color: "#F97316", Background: "#FFF7ED"},
	{ID: "beauty", Label: "Beauty", Color: "#EC4899", Background: "#FDF2F8"},
	{ID: "moving", Label: "Moving", Color: "#8B5CF6", Background: "#F5F3FF"},
	{ID: "security", Label: "Security", Color: "#475569", Background: "#F8FAFC"},
	{ID: "gardening", Label: "Gardening", Color: "#22C55E", Background: "#F0FDF4"},
	{ID: "handyman", Label: "Handyman", Color: "#D97706", Background: "#FFFBEB"},
	{ID: "wellness", Label: "Wellness", Color: "#14B8A6", Background: "#F0FDFA"},
	{ID: "laundry", Label: "Laundry", Color: "#64748B", Background: "#F8FAFC"},
}

// Startup-variant "categories" are listing types; the free-text category
// field on startup items is matched by search only.
var startupCategories = []Category{
	{ID: "startup", Label: "Startups", Color: "#5B6CF6", Background: "#EEF0FE"},
	{ID: "service", Label: "Services", Color: "#047857", Background: "#ECFDF5"},
	{ID: "resource", Label: "Resources", Color: "#B45309", Background: "#FFFBEB"},
}

// Categories returns a copy of the category table for a variant.
func Categories(v Variant) []Category {
	src := startupCategories
	if v == VariantService {
		src = serviceCategories
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// LookupCategory resolves a category id to its table entry.
func LookupCategory(v Variant, id string) (Category, bool) {
	for _, c := range Categories(v) {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// FindCategory matches s against category ids and labels, ignoring case.
func FindCategory(v Variant, s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories(v) {
		if strings.EqualFold(c.ID, s) || strings.EqualFold(c.Label, s) {
			return c, true
		}
	}
	return Category{}, false
}
