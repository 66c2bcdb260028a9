// Package report renders planning results as human-readable text and
// generates the bulk demo corpus. It is a pure consumer of the engine's
// route contract.
package report

import (
	"fmt"
	"strings"

	"github.com/hyunjikim/synthroute/internal/route"
)

// Render formats a route as ordered, numbered synthesis steps.
func Render(r *route.Route) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target product: %s\n", r.Target.Name)
	if r.Len() == 0 {
		fmt.Fprintf(&b, "%s is an available starting material; no synthesis is required.\n", r.Target.Name)
		return b.String()
	}
	noun := "steps"
	if r.Len() == 1 {
		noun = "step"
	}
	fmt.Fprintf(&b, "Suggested route (%d %s):\n", r.Len(), noun)
	for i, step := range r.Steps {
		b.WriteString(renderStep(i+1, step))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderStep formats one step as "01. a + b → c  [type; condition]".
func renderStep(n int, s route.Step) string {
	input := s.Input.Name
	if s.CoReagent != nil {
		input += " + " + s.CoReagent.Name
	}
	return fmt.Sprintf("%02d. %s → %s  [%s; %s]", n, input, s.Output.Name, s.Type, s.Condition)
}

// RenderNoRoute formats the reportable "no route" outcome.
func RenderNoRoute(target string) string {
	return fmt.Sprintf("No route to %s from the available starting materials.\n", target)
}

// RenderUnknown formats the reportable unknown-compound outcome.
func RenderUnknown(target string) string {
	return fmt.Sprintf("Unknown compound %q. Use the list command for the recognized names.\n", target)
}
