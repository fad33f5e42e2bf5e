// Package catalog provides pure functions over item collections.
// All functions are []Item in, []Item out: inputs are never modified.
package catalog

import (
	"strings"

	"listbase/internal/domain"
)

// Criteria narrows a collection. The zero value keeps everything.
type Criteria struct {
	// Category is a category id. "" and domain.CategoryAll disable category filtering.
	Category string
	// Search is matched as a case-insensitive substring. A blank (all
	// whitespace) search disables text filtering.
	Search string
	// FeaturedOnly drops every item that is not featured.
	FeaturedOnly bool
}

// Filter returns the items that satisfy every criterion, in input order.
// An unknown category is a valid filter that matches nothing.
func Filter(items []domain.Item, c Criteria) []domain.Item {
	result := make([]domain.Item, 0, len(items))
	if len(items) == 0 {
		return result
	}

	query := strings.ToLower(c.Search)
	if strings.TrimSpace(query) == "" {
		query = ""
	}
	for _, item := range items {
		if c.Category != "" && c.Category != domain.CategoryAll && item.Category != c.Category {
			continue
		}
		if c.FeaturedOnly && !item.IsFeatured {
			continue
		}
		if query != "" && !Matches(item, query) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Matches reports whether any searchable field of item contains query.
// query must already be lower-cased. Fields are checked title, tagline
// (description when there is no tagline), category label, tags, then
// provider; any hit is a match.
func Matches(item domain.Item, query string) bool {
	if containsFold(item.Title, query) ||
		containsFold(blurb(item), query) ||
		containsFold(item.CategoryLabel, query) {
		return true
	}
	for _, tag := range item.Tags {
		if containsFold(tag, query) {
			return true
		}
	}
	return containsFold(item.Provider, query)
}

func containsFold(field, lowerQuery string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerQuery)
}

// blurb is the one-line summary: the tagline, or the description for
// records that have none.
func blurb(item domain.Item) string {
	if item.Tagline != "" {
		return item.Tagline
	}
	return item.Description
}
