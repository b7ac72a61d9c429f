package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"medcalc/internal/score"
)

func newListCmd(registry *score.Registry) *cobra.Command {
	var (
		category string
		search   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered scores",
		Example: `  # All scores
  medcalcctl list

  # Cardiology scores mentioning stroke
  medcalcctl list --category cardiology --search stroke`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := registry.List(category, search)
			if asJSON {
				return printJSON(cmd, infos)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tTITLE")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, info.Category, info.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive search over id, title, and description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newDescribeCmd(registry *score.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <score_id>",
		Short: "Show a score's parameters, constraints, and example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := registry.Metadata(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, md)
		},
	}
}
