package route

import (
	"fmt"

	"github.com/hyunjikim/synthroute/internal/chem"
)

// Engine plans synthesis routes over a fixed configuration. It holds no
// mutable state; concurrent Plan calls each carry their own frontier and
// visited map.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an engine over it. A rule set whose
// productions do not close over the catalog is a configuration fault and is
// rejected here, before any search can run.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrBadConfig)
	}
	if cfg.Rules == nil {
		return nil, fmt.Errorf("%w: nil rule set", ErrBadConfig)
	}
	if cfg.Rules.Catalog() != cfg.Catalog {
		return nil, fmt.Errorf("%w: rule set is bound to a different catalog", ErrBadConfig)
	}
	if cfg.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrBadConfig, cfg.MaxDepth)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// queueItem pairs a discovered compound with its search depth.
type queueItem struct {
	compound chem.Compound
	depth    int
}

// edge records the first discovery of a compound: its depth and the step
// that produced it. Starting materials have a nil step.
type edge struct {
	depth int
	step  *Step
}

// walker holds the per-call BFS state.
type walker struct {
	engine *Engine
	queue  []queueItem
	// visited maps canonical key to first discovery; first discovery wins,
	// which is what makes the BFS result minimal and cycle-free.
	visited map[string]edge
	// order lists discovered compounds in discovery order. It doubles as
	// the co-reagent pool for binary rules, keeping their expansion
	// deterministic.
	order []chem.Compound
}

// Plan finds a minimum-step route from the catalog starting materials to the
// named target. The returned error wraps chem.ErrUnknownCompound when the
// name does not resolve, and ErrNoRoute when the closure is exhausted within
// the depth bound. Both are expected outcomes, not faults.
func (e *Engine) Plan(target string) (*Route, error) {
	goal, err := e.cfg.Catalog.Resolve(target)
	if err != nil {
		return nil, err
	}

	// A starting material needs no synthesis.
	if e.cfg.Catalog.IsStartingMaterial(goal) {
		return &Route{Target: goal}, nil
	}

	w := &walker{
		engine:  e,
		visited: make(map[string]edge, e.cfg.Catalog.Len()),
	}
	for _, s := range e.cfg.Catalog.StartingMaterials() {
		w.enqueue(s, 0, nil)
	}

	goalKey := goal.Key()
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if item.compound.Key() == goalKey {
			return w.reconstruct(goal), nil
		}
		w.expand(item)
	}
	return nil, fmt.Errorf("%w: %s (searched %d substances to depth %d)",
		ErrNoRoute, goal.Name, len(w.visited), e.cfg.MaxDepth)
}

// enqueue records the first discovery of c and adds it to the frontier.
func (w *walker) enqueue(c chem.Compound, depth int, step *Step) {
	w.visited[c.Key()] = edge{depth: depth, step: step}
	w.order = append(w.order, c)
	w.queue = append(w.queue, queueItem{compound: c, depth: depth})
}

// expand applies every matching rule to the dequeued compound, enqueueing
// each first-seen product one level deeper. Binary rules draw co-reagents
// from the substances discovered so far, in discovery order.
func (w *walker) expand(item queueItem) {
	nextDepth := item.depth + 1
	if nextDepth > w.engine.cfg.MaxDepth {
		return
	}
	for _, app := range w.engine.cfg.Rules.Applicable(item.compound, w.order) {
		if _, seen := w.visited[app.Output.Key()]; seen {
			continue
		}
		step := &Step{
			RuleID:    app.Rule.ID,
			Type:      app.Rule.Type,
			Condition: app.Rule.Condition,
			Input:     item.compound,
			CoReagent: app.CoReagent,
			Output:    app.Output,
		}
		w.enqueue(app.Output, nextDepth, step)
	}
}

// reconstruct walks predecessor steps from the goal back to a starting
// material and reverses them into synthesis order.
func (w *walker) reconstruct(goal chem.Compound) *Route {
	var steps []Step
	for cur := goal.Key(); ; {
		e := w.visited[cur]
		if e.step == nil {
			break
		}
		steps = append(steps, *e.step)
		cur = e.step.Input.Key()
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &Route{Target: goal, Steps: steps}
}
