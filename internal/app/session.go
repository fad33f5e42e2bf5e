// Package app wires the catalog engines and preference stores into
// per-user sessions that the CLI and chat front ends drive.
package app

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"listbase/internal/catalog"
	"listbase/internal/dataset"
	"listbase/internal/domain"
	"listbase/internal/prefs"
	"listbase/internal/scraper"
)

// Options configures a Session.
type Options struct {
	Variant domain.Variant
	// Items is the static collection; it is shared read-only between sessions.
	Items []domain.Item
	Store prefs.Persister
	Keys  domain.Keys
	// Scraper fills in blank submission fields from the listing website. Optional.
	Scraper scraper.Scraper
	Now     func() time.Time
}

// NotificationView pairs a catalog notification with its read state.
type NotificationView struct {
	domain.Notification
	Read bool
}

// Session is one user's view of the catalog: their stores plus the
// current query state.
type Session struct {
	variant     domain.Variant
	items       []domain.Item
	favorites   *prefs.Favorites
	recent      *prefs.Recent
	read        *prefs.ReadState
	submissions *prefs.Submissions
	scraper     scraper.Scraper
	log         logrus.FieldLogger

	mu    sync.Mutex
	query Query
}

// NewSession loads every store from opts.Store.
func NewSession(opts Options, logger logrus.FieldLogger) *Session {
	return &Session{
		variant:     opts.Variant,
		items:       opts.Items,
		favorites:   prefs.NewFavorites(opts.Store, opts.Keys.Favorites),
		recent:      prefs.NewRecent(opts.Store, opts.Keys.Recent),
		read:        prefs.NewReadState(opts.Store, opts.Keys.Read, domain.Notifications()),
		submissions: prefs.NewSubmissions(opts.Store, opts.Keys.Submissions, opts.Variant, opts.Now),
		scraper:     opts.Scraper,
		log:         logger.WithField("component", "session"),
		query:       NewQuery(),
	}
}

func (s *Session) Variant() domain.Variant { return s.variant }

// Query returns a copy of the current query state.
func (s *Session) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// UpdateQuery applies fn to the query state and returns the result.
func (s *Session) UpdateQuery(fn func(q *Query)) Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.query)
	return s.query
}

// ResetQuery restores the default query state.
func (s *Session) ResetQuery() {
	s.UpdateQuery(func(q *Query) { q.Reset() })
}

// Listings returns user submissions followed by the static items.
func (s *Session) Listings() []domain.Item {
	subs := s.submissions.List()
	all := make([]domain.Item, 0, len(subs)+len(s.items))
	all = append(all, subs...)
	return append(all, s.items...)
}

// Results applies the current query: filter, then sort.
func (s *Session) Results() []domain.Item {
	q := s.Query()
	return catalog.Sort(catalog.Filter(s.Listings(), q.Criteria()), q.Sort)
}

// Suggestions returns the live search-as-you-type matches for text.
func (s *Session) Suggestions(text string) []domain.Item {
	return catalog.Suggest(s.Listings(), text, catalog.DefaultSuggestLimit)
}

// Lookup finds a listing by id without recording a view.
func (s *Session) Lookup(id string) (domain.Item, error) {
	return dataset.ByID(s.Listings(), id)
}

// Open returns the listing and records it as recently viewed.
func (s *Session) Open(id string) (domain.Item, error) {
	item, err := s.Lookup(id)
	if err != nil {
		return domain.Item{}, err
	}
	s.recent.Track(item.ID)
	return item, nil
}

// ToggleFavorite flips the saved state of a known listing and returns it.
func (s *Session) ToggleFavorite(id string) (bool, error) {
	if _, err := s.Lookup(id); err != nil {
		return false, err
	}
	saved := s.favorites.Toggle(id)
	s.log.WithFields(logrus.Fields{"item_id": id, "saved": saved}).Debug("Favorite toggled")
	return saved, nil
}

func (s *Session) IsFavorite(id string) bool {
	return s.favorites.IsFavorite(id)
}

// Saved returns favorited listings in catalog order.
func (s *Session) Saved() []domain.Item {
	out := make([]domain.Item, 0)
	for _, item := range s.Listings() {
		if s.favorites.IsFavorite(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

// RecentItems resolves the recently-viewed ids, skipping ids that no
// longer exist in the catalog.
func (s *Session) RecentItems() []domain.Item {
	all := s.Listings()
	out := make([]domain.Item, 0, len(all))
	for _, id := range s.recent.IDs() {
		i := slices.IndexFunc(all, func(item domain.Item) bool { return item.ID == id })
		if i >= 0 {
			out = append(out, all[i])
		}
	}
	return out
}

// Featured returns the featured listings in catalog order.
func (s *Session) Featured() []domain.Item {
	return catalog.Filter(s.Listings(), catalog.Criteria{FeaturedOnly: true})
}

// Available returns up to limit listings that are currently bookable.
// limit <= 0 returns all of them.
func (s *Session) Available(limit int) []domain.Item {
	out := make([]domain.Item, 0)
	for _, item := range s.Listings() {
		if limit > 0 && len(out) == limit {
			break
		}
		if item.IsAvailable {
			out = append(out, item)
		}
	}
	return out
}

func (s *Session) Notifications() []NotificationView {
	list := s.read.Catalog()
	out := make([]NotificationView, len(list))
	for i, n := range list {
		out[i] = NotificationView{Notification: n, Read: s.read.IsRead(n.ID)}
	}
	return out
}

func (s *Session) MarkRead(id string) { s.read.MarkRead(id) }

func (s *Session) MarkAllRead() { s.read.MarkAllRead() }

func (s *Session) UnreadCount() int { return s.read.UnreadCount() }

// Submit adds a user listing. When the tagline or description is blank and
// a website is given, the blanks are filled from the site's metadata first.
func (s *Session) Submit(ctx context.Context, sub prefs.Submission) (domain.Item, error) {
	if s.scraper != nil && strings.TrimSpace(sub.Website) != "" &&
		(strings.TrimSpace(sub.Tagline) == "" || strings.TrimSpace(sub.Description) == "") {
		sub = s.enrich(ctx, sub)
	}

	item, err := s.submissions.Add(sub)
	if err != nil {
		return domain.Item{}, err
	}
	s.log.WithFields(logrus.Fields{"item_id": item.ID, "name": item.Title}).Info("Listing submitted")
	return item, nil
}

func (s *Session) enrich(ctx context.Context, sub prefs.Submission) prefs.Submission {
	log := s.log.WithField("website", sub.Website)

	title, description, err := s.scraper.ScrapeMetadata(ctx, sub.Website)
	if err != nil {
		log.WithError(err).Warn("Could not enrich submission from website")
		return sub
	}
	if strings.TrimSpace(sub.Tagline) == "" {
		sub.Tagline = title
	}
	if strings.TrimSpace(sub.Description) == "" {
		sub.Description = description
	}
	return sub
}
