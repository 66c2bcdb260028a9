package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/hyunjikim/synthroute/internal/route"
)

var (
	engineOnce sync.Once
	engineInst *route.Engine
	engineErr  error
)

// newEngine returns the process-wide planning engine over the default
// catalog, rules, and depth bound. The configuration is immutable, so one
// engine serves every command invocation.
func newEngine() (*route.Engine, error) {
	engineOnce.Do(func() {
		eng, err := route.NewEngine(route.DefaultConfig())
		if err != nil {
			engineErr = fmt.Errorf("failed to build planning engine: %w", err)
			return
		}
		engineInst = eng
	})
	return engineInst, engineErr
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// stepPayload is the JSON shape of a single route step.
type stepPayload struct {
	Rule      string `json:"rule"`
	Type      string `json:"type"`
	Condition string `json:"condition"`
	Input     string `json:"input"`
	CoReagent string `json:"co_reagent,omitempty"`
	Output    string `json:"output"`
}

// planPayload is the JSON shape of a planning outcome. Status is "ok",
// "no-route", or "unknown-compound".
type planPayload struct {
	Target string        `json:"target"`
	Status string        `json:"status"`
	Steps  []stepPayload `json:"steps,omitempty"`
}

// routePayload converts a route into its JSON shape.
func routePayload(r *route.Route) planPayload {
	p := planPayload{Target: r.Target.Name, Status: "ok"}
	for _, s := range r.Steps {
		sp := stepPayload{
			Rule:      s.RuleID,
			Type:      s.Type.String(),
			Condition: s.Condition,
			Input:     s.Input.Name,
			Output:    s.Output.Name,
		}
		if s.CoReagent != nil {
			sp.CoReagent = s.CoReagent.Name
		}
		p.Steps = append(p.Steps, sp)
	}
	return p
}
