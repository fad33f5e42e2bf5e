package catalog

import (
	"strings"

	"listbase/internal/domain"
)

// DefaultSuggestLimit is the number of suggestions shown while typing.
const DefaultSuggestLimit = 3

// Suggest returns the first limit items whose title, tagline or a tag
// contains query as typed, case-insensitively, in input order. A blank query
// yields nothing. limit <= 0 means DefaultSuggestLimit.
func Suggest(items []domain.Item, query string, limit int) []domain.Item {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	q := strings.ToLower(query)
	out := make([]domain.Item, 0, limit)
	for _, item := range items {
		if suggestible(item, q) {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func suggestible(item domain.Item, q string) bool {
	if containsFold(item.Title, q) || containsFold(item.Tagline, q) {
		return true
	}
	for _, tag := range item.Tags {
		if containsFold(tag, q) {
			return true
		}
	}
	return false
}
