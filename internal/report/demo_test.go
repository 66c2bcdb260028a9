package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunjikim/synthroute/internal/report"
)

func TestDemoTargets_OrderedByRouteLength(t *testing.T) {
	eng := newEngine(t)

	targets, err := report.DemoTargets(eng, 25)
	require.NoError(t, err)
	require.Len(t, targets, 25)

	prev := -1
	for _, target := range targets {
		r, err := eng.Plan(target)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Len(), prev, "targets must come shortest-route first")
		assert.Positive(t, r.Len(), "starting materials are not demo targets")
		prev = r.Len()
	}
}

func TestDemoTargets_CountClamped(t *testing.T) {
	eng := newEngine(t)
	reachable := eng.Config().Catalog.Len() - len(eng.Config().Catalog.StartingMaterials())

	targets, err := report.DemoTargets(eng, 100000)
	require.NoError(t, err)
	assert.Len(t, targets, reachable)
}

func TestWriteDemo(t *testing.T) {
	eng := newEngine(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteDemo(&buf, eng, 5))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Synthesis route gallery"))
	assert.Contains(t, out, "## Example 1:")
	assert.Contains(t, out, "## Example 5:")
	assert.NotContains(t, out, "## Example 6:")
	assert.Contains(t, out, "Suggested route (1 step):")
}

func TestWriteDemoFile(t *testing.T) {
	eng := newEngine(t)
	path := filepath.Join(t.TempDir(), "gallery.md")

	require.NoError(t, report.WriteDemoFile(path, eng, 3))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Synthesis route gallery")
	assert.Contains(t, string(data), "## Example 3:")
}
