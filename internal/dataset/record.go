package dataset

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"listbase/internal/domain"
)

// person is the nested provider (service data) or maker (startup data).
type person struct {
	Name string `json:"name" yaml:"name"`
}

// record is the union of the two raw dataset shapes. Service data uses
// title/provider/reviewCount/priceValue; startup data uses
// name/maker/upvotes/founded/type.
type record struct {
	ID            string     `json:"id" yaml:"id"`
	Type          string     `json:"type" yaml:"type"`
	Title         string     `json:"title" yaml:"title"`
	Name          string     `json:"name" yaml:"name"`
	Tagline       string     `json:"tagline" yaml:"tagline"`
	Description   string     `json:"description" yaml:"description"`
	Category      string     `json:"category" yaml:"category"`
	CategoryLabel string     `json:"categoryLabel" yaml:"categoryLabel"`
	Tags          []string   `json:"tags" yaml:"tags"`
	Provider      *person    `json:"provider" yaml:"provider"`
	Maker         *person    `json:"maker" yaml:"maker"`
	Rating        float64    `json:"rating" yaml:"rating"`
	ReviewCount   int        `json:"reviewCount" yaml:"reviewCount"`
	Upvotes       int        `json:"upvotes" yaml:"upvotes"`
	Price         flexString `json:"price" yaml:"price"`
	PriceValue    float64    `json:"priceValue" yaml:"priceValue"`
	Founded       flexString `json:"founded" yaml:"founded"`
	Stage         string     `json:"stage" yaml:"stage"`
	Location      string     `json:"location" yaml:"location"`
	Website       string     `json:"website" yaml:"website"`
	Contact       string     `json:"contact" yaml:"contact"`
	IsFeatured    bool       `json:"isFeatured" yaml:"isFeatured"`
	IsAvailable   bool       `json:"isAvailable" yaml:"isAvailable"`
	IsTrending    bool       `json:"isTrending" yaml:"isTrending"`
	IsNew         bool       `json:"isNew" yaml:"isNew"`
	IsUser        bool       `json:"isUserSubmitted" yaml:"isUserSubmitted"`
}

// flexString accepts either a JSON/YAML string or number ("2021" or 2021).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f *flexString) UnmarshalYAML(node *yaml.Node) error {
	*f = flexString(node.Value)
	return nil
}

// normalize maps a raw record onto the canonical item shape for variant v.
func (r record) normalize(v domain.Variant) domain.Item {
	item := domain.Item{
		ID:              r.ID,
		Variant:         v,
		Type:            r.Type,
		Title:           firstNonEmpty(r.Title, r.Name),
		Tagline:         r.Tagline,
		Description:     r.Description,
		Tags:            r.Tags,
		Rating:          r.Rating,
		ReviewCount:     r.ReviewCount,
		Upvotes:         r.Upvotes,
		Price:           string(r.Price),
		PriceValue:      r.PriceValue,
		Founded:         string(r.Founded),
		Stage:           r.Stage,
		Location:        r.Location,
		Website:         r.Website,
		Contact:         r.Contact,
		IsFeatured:      r.IsFeatured,
		IsAvailable:     r.IsAvailable,
		IsTrending:      r.IsTrending,
		IsNew:           r.IsNew,
		IsUserSubmitted: r.IsUser,
	}
	switch {
	case r.Provider != nil:
		item.Provider = r.Provider.Name
	case r.Maker != nil:
		item.Provider = r.Maker.Name
	}

	if v == domain.VariantStartup {
		// Startup listings are grouped by type; their free-text category
		// is only a label.
		if item.Type == "" {
			item.Type = "startup"
		}
		item.Category = item.Type
		item.CategoryLabel = firstNonEmpty(r.CategoryLabel, r.Category)
		return item
	}

	item.Category = r.Category
	item.CategoryLabel = r.CategoryLabel
	if item.CategoryLabel == "" {
		if c, ok := domain.LookupCategory(v, r.Category); ok {
			item.CategoryLabel = c.Label
		}
	}
	if item.PriceValue == 0 && item.Price != "" {
		item.PriceValue = parsePrice(item.Price)
	}
	return item
}

// parsePrice pulls the first number out of a display price such as "৳1,200/hr".
func parsePrice(s string) float64 {
	var b strings.Builder
	started := false
scan:
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
			started = true
		case r == ',' && started:
		case started:
			break scan
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
