package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrItemNotFound is returned when an item id is not present in the loaded collection.
var ErrItemNotFound = errors.New("item not found")

// Item is the canonical listing record shared by both catalog variants.
// Raw dataset records are normalized into this shape at load time, so the
// filter, sort and suggestion engines never branch on which variant produced it.
type Item struct {
	// ID is unique and stable across reloads.
	ID      string  `json:"id" yaml:"id"`
	Variant Variant `json:"variant" yaml:"variant"`

	// Type is the startup-variant listing kind (startup, service, resource).
	// Service-variant items leave it empty.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Title is the display name ("title" in service data, "name" in startup data).
	Title       string `json:"title" yaml:"title"`
	Tagline     string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Category      string   `json:"category" yaml:"category"`
	CategoryLabel string   `json:"category_label,omitempty" yaml:"category_label,omitempty"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Provider is the service provider or startup maker name.
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`

	Rating      float64 `json:"rating" yaml:"rating"`
	ReviewCount int     `json:"review_count,omitempty" yaml:"review_count,omitempty"`
	Upvotes     int     `json:"upvotes,omitempty" yaml:"upvotes,omitempty"`

	// Price is the display string; PriceValue is the sortable amount.
	Price      string  `json:"price,omitempty" yaml:"price,omitempty"`
	PriceValue float64 `json:"price_value,omitempty" yaml:"price_value,omitempty"`

	// Founded is the founding year as it appears in the data ("2021").
	Founded  string `json:"founded,omitempty" yaml:"founded,omitempty"`
	Stage    string `json:"stage,omitempty" yaml:"stage,omitempty"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
	Contact  string `json:"contact,omitempty" yaml:"contact,omitempty"`

	IsFeatured      bool `json:"is_featured" yaml:"is_featured"`
	IsAvailable     bool `json:"is_available" yaml:"is_available"`
	IsTrending      bool `json:"is_trending" yaml:"is_trending"`
	IsNew           bool `json:"is_new" yaml:"is_new"`
	IsUserSubmitted bool `json:"is_user_submitted" yaml:"is_user_submitted"`

	SubmittedAt time.Time `json:"submitted_at,omitempty" yaml:"submitted_at,omitempty"`
}

// FoundedYear parses the leading integer of Founded. Unparseable values yield 0,
// which sorts them after every dated item under the newest-first order.
func (i Item) FoundedYear() int {
	s := strings.TrimSpace(i.Founded)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return year
}
