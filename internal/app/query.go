package app

import (
	"listbase/internal/catalog"
	"listbase/internal/domain"
)

// Query is the ephemeral browse state of one session. It is never persisted.
type Query struct {
	Search       string
	Category     string
	Sort         catalog.SortKey
	FeaturedOnly bool
}

// NewQuery returns the state a freshly opened listing page starts with.
func NewQuery() Query {
	return Query{Category: domain.CategoryAll, Sort: catalog.SortDefault}
}

// Reset restores the defaults, as navigating away from the page does.
func (q *Query) Reset() {
	*q = NewQuery()
}

// Criteria converts the query to filter criteria.
func (q Query) Criteria() catalog.Criteria {
	return catalog.Criteria{
		Category:     q.Category,
		Search:       q.Search,
		FeaturedOnly: q.FeaturedOnly,
	}
}
