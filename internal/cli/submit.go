package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"listbase/internal/prefs"
)

func newSubmitCommand(rt *runtime) *cobra.Command {
	sub := prefs.Submission{}

	cmd := &cobra.Command{
		Use:   "submit NAME",
		Short: "Add your own listing",
		Long: "Add a listing that is stored locally and shown before the catalog. " +
			"If --website is given and the tagline or description is left blank, they are read from the site.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub.Name = args[0]
			item, err := rt.session().Submit(cmd.Context(), sub)
			if err != nil {
				return err
			}
			if rt.jsonOutput {
				return outputJSON(cmd, item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n\n", item.ID)
			printDetail(cmd, item, false)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sub.Type, "type", prefs.TypeStartup, "Listing type: startup, service or resource")
	f.StringVarP(&sub.Tagline, "tagline", "t", "", "One-line pitch")
	f.StringVarP(&sub.Description, "description", "d", "", "Longer description")
	f.StringVarP(&sub.Category, "category", "c", "", "Category (defaults to General)")
	f.StringVar(&sub.Stage, "stage", "", "Stage, e.g. Seed")
	f.StringVar(&sub.Location, "location", "", "Location")
	f.StringVarP(&sub.Website, "website", "w", "", "Website URL")
	f.StringVar(&sub.Contact, "contact", "", "Contact email or handle")
	return cmd
}
