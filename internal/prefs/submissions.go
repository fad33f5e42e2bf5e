package prefs

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"listbase/internal/domain"
)

// ErrInvalidSubmission is returned when a required submission field is blank.
var ErrInvalidSubmission = errors.New("invalid submission")

// Listing types a user can submit.
const (
	TypeStartup  = "startup"
	TypeService  = "service"
	TypeResource = "resource"
)

// defaultCategory is used when a submission leaves the category blank.
const defaultCategory = "General"

// Submission is the user-entered form for a new listing.
type Submission struct {
	Type        string
	Name        string
	Tagline     string
	Description string
	Category    string
	Stage       string
	Location    string
	Website     string
	Contact     string
}

// Validate reports the first required field that is blank.
func (s Submission) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidSubmission)
	case strings.TrimSpace(s.Tagline) == "":
		return fmt.Errorf("%w: tagline is required", ErrInvalidSubmission)
	case strings.TrimSpace(s.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidSubmission)
	}
	return nil
}

// Submissions stores listings added by the user, newest first.
type Submissions struct {
	mu      sync.RWMutex
	store   Persister
	key     string
	variant domain.Variant
	items   []domain.Item
	now     func() time.Time
}

func NewSubmissions(store Persister, key string, variant domain.Variant, now func() time.Time) *Submissions {
	if now == nil {
		now = time.Now
	}
	s := &Submissions{store: store, key: key, variant: variant, now: now}
	var items []domain.Item
	if store.ReadJSON(key, &items) {
		s.items = items
	}
	return s
}

// Add validates sub, turns it into an item, prepends it and persists the list.
func (s *Submissions) Add(sub Submission) (domain.Item, error) {
	if err := sub.Validate(); err != nil {
		return domain.Item{}, err
	}

	now := s.now()
	kind := strings.TrimSpace(sub.Type)
	if !slices.Contains([]string{TypeStartup, TypeService, TypeResource}, kind) {
		kind = TypeStartup
	}
	label := strings.TrimSpace(sub.Category)
	if label == "" {
		label = defaultCategory
	}

	item := domain.Item{
		ID:              "u-" + uuid.New().String(),
		Variant:         s.variant,
		Type:            kind,
		Title:           strings.TrimSpace(sub.Name),
		Tagline:         strings.TrimSpace(sub.Tagline),
		Description:     strings.TrimSpace(sub.Description),
		Category:        kind,
		CategoryLabel:   label,
		Stage:           strings.TrimSpace(sub.Stage),
		Location:        strings.TrimSpace(sub.Location),
		Website:         strings.TrimSpace(sub.Website),
		Contact:         strings.TrimSpace(sub.Contact),
		Founded:         strconv.Itoa(now.Year()),
		IsUserSubmitted: true,
		SubmittedAt:     now.UTC(),
	}
	if s.variant == domain.VariantService {
		// Service listings are grouped by the category table, not by type.
		item.Type = ""
		item.Category = strings.ToLower(label)
		if c, ok := domain.FindCategory(domain.VariantService, label); ok {
			item.Category = c.ID
			item.CategoryLabel = c.Label
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Item{item}, s.items...)
	s.store.WriteJSON(s.key, s.items)
	return item, nil
}

// List returns the submitted items, newest first.
func (s *Submissions) List() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}
