// Package route implements the synthesis route search engine: a breadth-first
// forward closure from the catalog starting materials toward a requested
// target, returning the shortest rule-application sequence that produces it.
package route

import (
	"errors"
	"fmt"

	"github.com/hyunjikim/synthroute/internal/chem"
)

// Sentinel errors for planning outcomes and configuration.
var (
	// ErrNoRoute indicates the search space was exhausted within the depth
	// bound without reaching the target. A normal, reportable outcome.
	ErrNoRoute = errors.New("no route found")

	// ErrBadConfig indicates the engine was constructed from an invalid or
	// incomplete configuration.
	ErrBadConfig = errors.New("invalid engine configuration")
)

// Step is a single rule application within a route.
type Step struct {
	// RuleID identifies the applied rule.
	RuleID string

	// Type is the rule's reaction archetype.
	Type chem.ReactionType

	// Condition describes reagents and conditions, for reporting.
	Condition string

	// Input is the substance the rule was applied to.
	Input chem.Compound

	// CoReagent is the second substance consumed, nil for unary rules.
	CoReagent *chem.Compound

	// Output is the substance produced.
	Output chem.Compound
}

// Route is an ordered sequence of steps carrying a catalog starting material
// to the target. A zero-step route means the target is itself a starting
// material.
type Route struct {
	// Target is the resolved target compound.
	Target chem.Compound

	// Steps are the rule applications in synthesis order.
	Steps []Step
}

// Len returns the number of steps, the optimization objective.
func (r *Route) Len() int { return len(r.Steps) }

// Validate checks the route invariants against cat: consecutive steps chain
// output to input, the first input is a starting material, and the final
// output is the target. Zero-step routes require the target itself to be a
// starting material.
func (r *Route) Validate(cat *chem.Catalog) error {
	if len(r.Steps) == 0 {
		if !cat.IsStartingMaterial(r.Target) {
			return fmt.Errorf("route: empty route but %s is not a starting material", r.Target.Name)
		}
		return nil
	}
	if !cat.IsStartingMaterial(r.Steps[0].Input) {
		return fmt.Errorf("route: first input %s is not a starting material", r.Steps[0].Input.Name)
	}
	for i := 0; i+1 < len(r.Steps); i++ {
		if !r.Steps[i].Output.Same(r.Steps[i+1].Input) {
			return fmt.Errorf("route: step %d output %s does not feed step %d input %s",
				i+1, r.Steps[i].Output.Name, i+2, r.Steps[i+1].Input.Name)
		}
	}
	if last := r.Steps[len(r.Steps)-1].Output; !last.Same(r.Target) {
		return fmt.Errorf("route: final output %s is not the target %s", last.Name, r.Target.Name)
	}
	return nil
}

// Config is the immutable engine configuration: the substance catalog, the
// rule set bound to it, and the search depth bound. Build one at startup and
// share it; nothing in it is mutated by searches.
type Config struct {
	Catalog *chem.Catalog
	Rules   *chem.RuleSet

	// MaxDepth bounds the route length the search will explore. It is the
	// termination guarantee for rule sets that can cycle through
	// functional-group states.
	MaxDepth int
}

// DefaultMaxDepth is set comfortably above the longest curriculum route.
const DefaultMaxDepth = 10

// DefaultConfig returns the curriculum catalog and rules with the default
// depth bound.
func DefaultConfig() Config {
	cat := chem.DefaultCatalog()
	return Config{
		Catalog:  cat,
		Rules:    chem.DefaultRules(cat),
		MaxDepth: DefaultMaxDepth,
	}
}
