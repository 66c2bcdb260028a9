package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
)

// rootCmd is the root command for synthroute. A bare target argument is a
// shorthand for the plan command.
var rootCmd = &cobra.Command{
	Use:     "synthroute [target]",
	Version: "dev",
	Short:   "Organic synthesis route planner",
	Long: `synthroute plans shortest synthesis routes over a fixed catalog of
starting materials and a curriculum reaction rule set.

Given a target compound name it searches the rule set breadth-first from the
starting materials and prints the step-by-step route, or reports that the
target is unknown or unreachable.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runPlan(cmd, args[0])
	},
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the synthroute CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
