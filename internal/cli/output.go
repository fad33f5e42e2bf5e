package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"listbase/internal/app"
	"listbase/internal/domain"
)

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printItems(cmd *cobra.Command, title string, items []domain.Item, isSaved func(string) bool) {
	w := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintf(w, "%s\n  No results found.\n", title)
		return
	}
	fmt.Fprintf(w, "%s (%d)\n", title, len(items))
	for _, item := range items {
		mark := " "
		if isSaved(item.ID) {
			mark = "★"
		}
		fmt.Fprintf(w, "%s %-14s %s", mark, item.ID, item.Title)
		if item.Tagline != "" {
			fmt.Fprintf(w, ": %s", item.Tagline)
		}
		if m := metric(item); m != "" {
			fmt.Fprintf(w, " (%s)", m)
		}
		fmt.Fprintln(w)
	}
}

// metric is the one number a listing card leads with.
func metric(item domain.Item) string {
	switch {
	case item.Variant == domain.VariantService && item.Rating > 0:
		return strconv.FormatFloat(item.Rating, 'f', 1, 64) + "★"
	case item.Upvotes > 0:
		return strconv.Itoa(item.Upvotes) + " upvotes"
	}
	return ""
}

func printDetail(cmd *cobra.Command, item domain.Item, saved bool) {
	w := cmd.OutOrStdout()
	title := item.Title
	if item.IsUserSubmitted {
		title += " (community)"
	}
	if saved {
		title += " ★"
	}
	fmt.Fprintln(w, title)
	if item.Tagline != "" {
		fmt.Fprintln(w, item.Tagline)
	}

	fields := []struct{ label, value string }{
		{"Category", item.CategoryLabel},
		{"By", item.Provider},
		{"Price", item.Price},
		{"Stage", item.Stage},
		{"Founded", item.Founded},
		{"Location", item.Location},
		{"Website", item.Website},
		{"Contact", item.Contact},
	}
	if item.Rating > 0 {
		fields = append(fields, struct{ label, value string }{"Rating",
			fmt.Sprintf("%.1f (%d reviews)", item.Rating, item.ReviewCount)})
	}
	if item.Upvotes > 0 {
		fields = append(fields, struct{ label, value string }{"Upvotes", strconv.Itoa(item.Upvotes)})
	}
	if len(item.Tags) > 0 {
		fields = append(fields, struct{ label, value string }{"Tags", strings.Join(item.Tags, ", ")})
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(w, "  %-9s %s\n", f.label+":", f.value)
		}
	}
	if item.Description != "" {
		fmt.Fprintf(w, "\n%s\n", item.Description)
	}
}

func printNotifications(cmd *cobra.Command, views []app.NotificationView, unread int) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Notifications (%d unread)\n", unread)
	for _, n := range views {
		mark := " "
		if !n.Read {
			mark = "●"
		}
		fmt.Fprintf(w, "%s %-3s %s %s (%s)\n", mark, n.ID, n.Icon, n.Title, n.Time)
		if n.Body != "" {
			fmt.Fprintf(w, "        %s\n", n.Body)
		}
	}
}
