package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all recognized compound names",
	Long:  `Display every compound name the planner can resolve, sorted alphabetically.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		names := eng.Config().Catalog.Names()
		out := cmd.OutOrStdout()

		if jsonOutput {
			return outputJSON(out, names)
		}

		fmt.Fprintf(out, "Recognized compounds (%d):\n", len(names))
		for _, name := range names {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}
