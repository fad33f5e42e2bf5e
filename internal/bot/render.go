package bot

import (
	"fmt"
	"strconv"
	"strings"

	"listbase/internal/app"
	"listbase/internal/domain"
)

// maxListed caps how many items one chat message lists.
const maxListed = 10

func itemLine(item domain.Item, saved bool) string {
	var b strings.Builder
	if saved {
		b.WriteString("★ ")
	} else {
		b.WriteString("• ")
	}
	b.WriteString(item.Title)
	if item.Tagline != "" {
		b.WriteString(": ")
		b.WriteString(item.Tagline)
	}
	fmt.Fprintf(&b, " [%s]", item.ID)
	return b.String()
}

func renderList(title string, items []domain.Item, isSaved func(string) bool) string {
	if len(items) == 0 {
		return title + "\nNo results found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n", title, len(items))
	for i, item := range items {
		if i == maxListed {
			fmt.Fprintf(&b, "…and %d more\n", len(items)-maxListed)
			break
		}
		b.WriteString(itemLine(item, isSaved(item.ID)))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderDetail(item domain.Item, saved bool) string {
	var b strings.Builder
	b.WriteString(item.Title)
	if item.IsUserSubmitted {
		b.WriteString(" (community)")
	}
	b.WriteByte('\n')
	if item.Tagline != "" {
		b.WriteString(item.Tagline + "\n")
	}
	if item.CategoryLabel != "" {
		b.WriteString("Category: " + item.CategoryLabel + "\n")
	}
	if item.Provider != "" {
		b.WriteString("By: " + item.Provider + "\n")
	}
	if item.Rating > 0 {
		fmt.Fprintf(&b, "Rating: %.1f", item.Rating)
		if item.ReviewCount > 0 {
			fmt.Fprintf(&b, " (%s reviews)", formatCount(item.ReviewCount))
		}
		b.WriteByte('\n')
	}
	if item.Upvotes > 0 {
		fmt.Fprintf(&b, "Upvotes: %s\n", formatCount(item.Upvotes))
	}
	if item.Price != "" {
		b.WriteString("Price: " + item.Price + "\n")
	}
	for _, field := range []struct{ label, value string }{
		{"Stage", item.Stage},
		{"Founded", item.Founded},
		{"Location", item.Location},
		{"Website", item.Website},
		{"Contact", item.Contact},
	} {
		if field.value != "" {
			b.WriteString(field.label + ": " + field.value + "\n")
		}
	}
	if len(item.Tags) > 0 {
		b.WriteString("Tags: " + strings.Join(item.Tags, ", ") + "\n")
	}
	if item.Description != "" {
		b.WriteString("\n" + item.Description + "\n")
	}
	if saved {
		b.WriteString("\n★ Saved")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNotifications(views []app.NotificationView, unread int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Notifications (%d unread)\n", unread)
	for _, n := range views {
		mark := " "
		if !n.Read {
			mark = "●"
		}
		fmt.Fprintf(&b, "%s %s %s · %s [%s]\n", mark, n.Icon, n.Title, n.Time, n.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCategories(v domain.Variant) string {
	var b strings.Builder
	b.WriteString("Categories\n• all: All")
	for _, c := range domain.Categories(v) {
		fmt.Fprintf(&b, "\n• %s: %s", c.ID, c.Label)
	}
	return b.String()
}

func renderQuery(q app.Query) string {
	search := q.Search
	if search == "" {
		search = "-"
	}
	return fmt.Sprintf("Search: %s · Category: %s · Sort: %s · Featured only: %t",
		search, q.Category, q.Sort, q.FeaturedOnly)
}

// formatCount abbreviates thousands the way listing cards do ("1.2k").
func formatCount(n int) string {
	if n >= 1000 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
	}
	return strconv.Itoa(n)
}
