package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"listbase/internal/app"
	"listbase/internal/catalog"
	"listbase/internal/domain"
)

// SearchOptions holds options for the search command.
type SearchOptions struct {
	Category string
	Sort     string
	Featured bool
}

func newHomeCommand(rt *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show featured and available listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rt.session()
			if rt.jsonOutput {
				return outputJSON(cmd, map[string]any{
					"featured":  s.Featured(),
					"available": s.Available(limit),
					"unread":    s.UnreadCount(),
				})
			}
			printItems(cmd, "Featured", s.Featured(), s.IsFavorite)
			fmt.Fprintln(cmd.OutOrStdout())
			printItems(cmd, "Available now", s.Available(limit), s.IsFavorite)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d unread notifications\n", s.UnreadCount())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 4, "Maximum available listings to show (0 for all)")
	return cmd
}

func newSearchCommand(rt *runtime) *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search [TEXT...]",
		Short: "Filter and sort listings",
		Long:  "Filter listings by free text, category and featured flag, then sort them. With no arguments every listing is shown in the default order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rt.session()
			sortKey := catalog.ParseSortKey(opts.Sort)
			if opts.Sort != "" && string(sortKey) != strings.ToLower(strings.TrimSpace(opts.Sort)) {
				return fmt.Errorf("unknown sort key %q (want one of %s)", opts.Sort, sortKeyList())
			}
			s.UpdateQuery(func(q *app.Query) {
				q.Search = strings.Join(args, " ")
				q.Category = strings.ToLower(opts.Category)
				q.Sort = sortKey
				q.FeaturedOnly = opts.Featured
			})
			return rt.printResults(cmd, "Results", s.Results())
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", domain.CategoryAll, "Category id (see the categories command)")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", string(catalog.SortDefault), "Sort key: "+sortKeyList())
	cmd.Flags().BoolVarP(&opts.Featured, "featured", "f", false, "Only featured listings")
	return cmd
}

func newSuggestCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest TEXT...",
		Short: "Show quick search suggestions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rt.session()
			return rt.printResults(cmd, "Suggestions", s.Suggestions(strings.Join(args, " ")))
		},
	}
}

func newShowCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a listing and record it as recently viewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rt.session()
			item, err := s.Open(args[0])
			if err != nil {
				return err
			}
			if rt.jsonOutput {
				return outputJSON(cmd, item)
			}
			printDetail(cmd, item, s.IsFavorite(item.ID))
			return nil
		},
	}
}

func newCategoriesCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category ids for the configured variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cats := domain.Categories(rt.session().Variant())
			if rt.jsonOutput {
				return outputJSON(cmd, cats)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-12s %s\n", domain.CategoryAll, "All")
			for _, c := range cats {
				fmt.Fprintf(w, "%-12s %s\n", c.ID, c.Label)
			}
			return nil
		},
	}
}

func newFavCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "fav ID",
		Short: "Save or unsave a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := rt.session().ToggleFavorite(args[0])
			if err != nil {
				return err
			}
			if rt.jsonOutput {
				return outputJSON(cmd, map[string]any{"id": args[0], "saved": saved})
			}
			if saved {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from saved\n", args[0])
			}
			return nil
		},
	}
}

func newSavedCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.printResults(cmd, "Saved", rt.session().Saved())
		},
	}
}

func newRecentCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently viewed listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.printResults(cmd, "Recently viewed", rt.session().RecentItems())
		},
	}
}

func newNotificationsCommand(rt *runtime) *cobra.Command {
	var (
		readID  string
		readAll bool
	)

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications and mark them read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := rt.session()
			if readAll {
				s.MarkAllRead()
			} else if readID != "" {
				s.MarkRead(readID)
			}
			views := s.Notifications()
			if rt.jsonOutput {
				return outputJSON(cmd, map[string]any{"unread": s.UnreadCount(), "notifications": views})
			}
			printNotifications(cmd, views, s.UnreadCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&readID, "read", "", "Mark one notification read")
	cmd.Flags().BoolVar(&readAll, "all", false, "Mark every notification read")
	cmd.MarkFlagsMutuallyExclusive("read", "all")
	return cmd
}

func (rt *runtime) printResults(cmd *cobra.Command, title string, items []domain.Item) error {
	if rt.jsonOutput {
		if items == nil {
			items = []domain.Item{}
		}
		return outputJSON(cmd, items)
	}
	printItems(cmd, title, items, rt.session().IsFavorite)
	return nil
}

func sortKeyList() string {
	keys := make([]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}
