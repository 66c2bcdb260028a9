package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyunjikim/synthroute/internal/chem"
	"github.com/hyunjikim/synthroute/internal/report"
	"github.com/hyunjikim/synthroute/internal/route"
)

var planCmd = &cobra.Command{
	Use:   "plan <target>",
	Short: "Plan a shortest synthesis route to a target compound",
	Long: `Plan searches the reaction rule set breadth-first from the available
starting materials and prints the shortest route to the target compound.

An unknown compound name or an unreachable target is reported as a normal
outcome, not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlan(cmd, args[0])
	},
}

// runPlan plans a single target and renders the outcome. Unknown compounds
// and missing routes are reportable results, so they never fail the command.
func runPlan(cmd *cobra.Command, target string) error {
	eng, err := newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r, err := eng.Plan(target)
	switch {
	case errors.Is(err, chem.ErrUnknownCompound):
		if jsonOutput {
			return outputJSON(out, planPayload{Target: target, Status: "unknown-compound"})
		}
		fmt.Fprint(out, report.RenderUnknown(target))
		return nil
	case errors.Is(err, route.ErrNoRoute):
		if jsonOutput {
			return outputJSON(out, planPayload{Target: target, Status: "no-route"})
		}
		fmt.Fprint(out, report.RenderNoRoute(target))
		return nil
	case err != nil:
		return err
	}

	if jsonOutput {
		return outputJSON(out, routePayload(r))
	}
	fmt.Fprint(out, report.Render(r))
	return nil
}
