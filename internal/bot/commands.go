package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"listbase/internal/app"
	"listbase/internal/catalog"
	"listbase/internal/domain"
	"listbase/internal/prefs"
)

const helpText = `Browse listings:
/search <text> - filter by text
/category <id> - filter by category (/categories to list, "all" to clear)
/sort <key> - default, rating, price, reviews, upvotes, newest, name, category
/featured - toggle featured-only
/results - show the current results
/reset - clear search, category and sort
/item <id> - show a listing
/fav <id> - save or unsave a listing
/saved - your saved listings
/recent - recently viewed
/notifications, /read <id>, /readall
/submit name | tagline | description | website
Any other text shows quick suggestions.`

// reply is what a command produces: text plus an optional favorite button.
type reply struct {
	Text string
	// FavoriteID, when set, attaches a save/unsave button for that listing.
	FavoriteID string
	Saved      bool
}

// splitCommand separates "/cmd@botname args" into ("cmd", "args").
func splitCommand(text string) (cmd, args string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	head, rest, _ := strings.Cut(text, " ")
	head = strings.TrimPrefix(head, "/")
	if at := strings.IndexByte(head, '@'); at >= 0 {
		head = head[:at]
	}
	return strings.ToLower(head), strings.TrimSpace(rest)
}

// respond runs one chat message against a session.
func respond(ctx context.Context, s *app.Session, text string) reply {
	cmd, args := splitCommand(text)
	switch cmd {
	case "start", "help":
		return reply{Text: "Welcome! " + helpText}
	case "":
		if args == "" {
			return reply{Text: helpText}
		}
		return reply{Text: renderList("Suggestions for \""+args+"\"", s.Suggestions(args), s.IsFavorite)}
	case "search":
		s.UpdateQuery(func(q *app.Query) { q.Search = args })
		return results(s)
	case "category":
		if args == "" {
			args = domain.CategoryAll
		}
		s.UpdateQuery(func(q *app.Query) { q.Category = strings.ToLower(args) })
		return results(s)
	case "categories":
		return reply{Text: renderCategories(s.Variant())}
	case "sort":
		s.UpdateQuery(func(q *app.Query) { q.Sort = catalog.ParseSortKey(args) })
		return results(s)
	case "featured":
		s.UpdateQuery(func(q *app.Query) { q.FeaturedOnly = !q.FeaturedOnly })
		return results(s)
	case "results":
		return results(s)
	case "reset":
		s.ResetQuery()
		return results(s)
	case "item":
		item, err := s.Open(args)
		if err != nil {
			return notFound(args, err)
		}
		saved := s.IsFavorite(item.ID)
		return reply{Text: renderDetail(item, saved), FavoriteID: item.ID, Saved: saved}
	case "fav":
		return toggleFavorite(s, args)
	case "saved":
		return reply{Text: renderList("Saved", s.Saved(), s.IsFavorite)}
	case "recent":
		return reply{Text: renderList("Recently viewed", s.RecentItems(), s.IsFavorite)}
	case "notifications":
		return reply{Text: renderNotifications(s.Notifications(), s.UnreadCount())}
	case "read":
		if args == "" {
			return reply{Text: "Usage: /read <id>"}
		}
		s.MarkRead(args)
		return reply{Text: renderNotifications(s.Notifications(), s.UnreadCount())}
	case "readall":
		s.MarkAllRead()
		return reply{Text: renderNotifications(s.Notifications(), s.UnreadCount())}
	case "submit":
		return submit(ctx, s, args)
	default:
		return reply{Text: fmt.Sprintf("Unknown command /%s.\n\n%s", cmd, helpText)}
	}
}

func results(s *app.Session) reply {
	return reply{Text: renderQuery(s.Query()) + "\n\n" + renderList("Results", s.Results(), s.IsFavorite)}
}

func toggleFavorite(s *app.Session, id string) reply {
	saved, err := s.ToggleFavorite(id)
	if err != nil {
		return notFound(id, err)
	}
	if saved {
		return reply{Text: "Saved " + id + ".", FavoriteID: id, Saved: true}
	}
	return reply{Text: "Removed " + id + " from saved.", FavoriteID: id}
}

func notFound(id string, err error) reply {
	if errors.Is(err, domain.ErrItemNotFound) {
		if id == "" {
			return reply{Text: "Please give a listing id."}
		}
		return reply{Text: "No listing with id " + id + "."}
	}
	return reply{Text: "Something went wrong: " + err.Error()}
}

// parseSubmission reads "name | tagline | description | website | category".
// Trailing fields may be omitted.
func parseSubmission(args string) prefs.Submission {
	parts := strings.Split(args, "|")
	field := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}
	return prefs.Submission{
		Name:        field(0),
		Tagline:     field(1),
		Description: field(2),
		Website:     field(3),
		Category:    field(4),
	}
}

func submit(ctx context.Context, s *app.Session, args string) reply {
	item, err := s.Submit(ctx, parseSubmission(args))
	if err != nil {
		if errors.Is(err, prefs.ErrInvalidSubmission) {
			return reply{Text: "Could not add listing: " + err.Error() + "\nUsage: /submit name | tagline | description | website"}
		}
		return reply{Text: "Something went wrong: " + err.Error()}
	}
	return reply{Text: "Added!\n\n" + renderDetail(item, false), FavoriteID: item.ID}
}
