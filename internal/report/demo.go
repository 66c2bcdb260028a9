package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/hyunjikim/synthroute/internal/route"
)

// DefaultDemoCount is the demo corpus size when the caller does not choose one.
const DefaultDemoCount = 120

// DemoTargets picks up to count reachable, non-starting compounds as demo
// targets, ordered by route length and then by name so short showcase routes
// come first and the selection is reproducible.
func DemoTargets(eng *route.Engine, count int) ([]string, error) {
	type candidate struct {
		steps int
		name  string
	}
	cat := eng.Config().Catalog

	var candidates []candidate
	for _, c := range cat.Compounds() {
		if cat.IsStartingMaterial(c) {
			continue
		}
		r, err := eng.Plan(c.Name)
		if errors.Is(err, route.ErrNoRoute) {
			continue
		}
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{steps: r.Len(), name: c.Name})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].steps != candidates[j].steps {
			return candidates[i].steps < candidates[j].steps
		}
		return candidates[i].name < candidates[j].name
	})
	if count < len(candidates) {
		candidates = candidates[:count]
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names, nil
}

// WriteDemo plans every demo target and writes the rendered routes to w as a
// Markdown document.
func WriteDemo(w io.Writer, eng *route.Engine, count int) error {
	targets, err := DemoTargets(eng, count)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("# Synthesis route gallery\n\n")
	fmt.Fprintf(&b, "Automatically planned routes for %d target products.\n\n", len(targets))
	for i, target := range targets {
		r, err := eng.Plan(target)
		if err != nil {
			return fmt.Errorf("demo: planning %s: %w", target, err)
		}
		fmt.Fprintf(&b, "## Example %d: %s\n\n", i+1, target)
		b.WriteString("```\n")
		b.WriteString(Render(r))
		b.WriteString("```\n\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}

// WriteDemoFile writes the demo corpus to path, creating or truncating it.
func WriteDemoFile(path string, eng *route.Engine, count int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	if err := WriteDemo(f, eng, count); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
