package catalog

import (
	"cmp"
	"slices"
	"strings"

	"listbase/internal/domain"
)

// SortKey selects an ordering for Sort.
type SortKey string

const (
	SortDefault  SortKey = "default"
	SortRating   SortKey = "rating"
	SortPrice    SortKey = "price"
	SortReviews  SortKey = "reviews"
	SortUpvotes  SortKey = "upvotes"
	SortNewest   SortKey = "newest"
	SortName     SortKey = "name"
	SortCategory SortKey = "category"
)

// SortKeys lists every recognized key, default first.
var SortKeys = []SortKey{SortDefault, SortRating, SortPrice, SortReviews, SortUpvotes, SortNewest, SortName, SortCategory}

// ParseSortKey maps s to a recognized key; anything else is SortDefault.
func ParseSortKey(s string) SortKey {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys, key) {
		return key
	}
	return SortDefault
}

// Sort returns a new slice ordered by key. The sort is stable: items that
// compare equal keep their input order. Unknown keys use the default order,
// featured before non-featured and, within each tier, trending before the
// rest. The default order has no further tie-break.
func Sort(items []domain.Item, key SortKey) []domain.Item {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []domain.Item{}
	}
	slices.SortStableFunc(sorted, comparator(key))
	return sorted
}

func comparator(key SortKey) func(a, b domain.Item) int {
	switch key {
	case SortRating:
		return func(a, b domain.Item) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortPrice:
		return func(a, b domain.Item) int { return cmp.Compare(a.PriceValue, b.PriceValue) }
	case SortReviews:
		return func(a, b domain.Item) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	case SortUpvotes:
		return func(a, b domain.Item) int { return cmp.Compare(b.Upvotes, a.Upvotes) }
	case SortNewest:
		return func(a, b domain.Item) int { return cmp.Compare(b.FoundedYear(), a.FoundedYear()) }
	case SortName:
		return func(a, b domain.Item) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortCategory:
		return func(a, b domain.Item) int {
			return cmp.Compare(strings.ToLower(categoryName(a)), strings.ToLower(categoryName(b)))
		}
	default:
		return func(a, b domain.Item) int {
			if c := tier(b.IsFeatured) - tier(a.IsFeatured); c != 0 {
				return c
			}
			return tier(b.IsTrending) - tier(a.IsTrending)
		}
	}
}

func tier(flag bool) int {
	if flag {
		return 1
	}
	return 0
}

func categoryName(item domain.Item) string {
	if item.CategoryLabel != "" {
		return item.CategoryLabel
	}
	return item.Category
}
