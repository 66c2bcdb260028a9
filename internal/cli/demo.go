package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyunjikim/synthroute/internal/report"
)

var (
	demoCount  int
	demoOutput string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a Markdown gallery of planned routes",
	Long: `Demo plans routes for a batch of reachable target compounds, shortest
routes first, and writes them as a Markdown document. Without --output the
document is written to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		if demoCount <= 0 {
			return fmt.Errorf("--count must be positive (got %d)", demoCount)
		}

		if demoOutput == "" {
			return report.WriteDemo(cmd.OutOrStdout(), eng, demoCount)
		}
		if err := report.WriteDemoFile(demoOutput, eng, demoCount); err != nil {
			return err
		}
		PrintSuccess(fmt.Sprintf("Wrote demo gallery to %s", demoOutput))
		return nil
	},
}

func init() {
	demoCmd.Flags().IntVar(&demoCount, "count", report.DefaultDemoCount, "Number of demo targets")
	demoCmd.Flags().StringVar(&demoOutput, "output", "", "Output file path (default: stdout)")
}
