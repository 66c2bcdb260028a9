package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunjikim/synthroute/internal/chem"
	"github.com/hyunjikim/synthroute/internal/route"
)

func newDefaultEngine(t *testing.T) *route.Engine {
	t.Helper()
	eng, err := route.NewEngine(route.DefaultConfig())
	require.NoError(t, err)
	return eng
}

func TestNewEngine_Rejections(t *testing.T) {
	cat := chem.DefaultCatalog()
	rules := chem.DefaultRules(cat)

	tests := []struct {
		name string
		cfg  route.Config
	}{
		{"nil catalog", route.Config{Rules: rules, MaxDepth: 5}},
		{"nil rules", route.Config{Catalog: cat, MaxDepth: 5}},
		{"zero depth", route.Config{Catalog: cat, Rules: rules}},
		{"negative depth", route.Config{Catalog: cat, Rules: rules, MaxDepth: -1}},
		{"foreign catalog", route.Config{Catalog: chem.DefaultCatalog(), Rules: rules, MaxDepth: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := route.NewEngine(tt.cfg)
			assert.ErrorIs(t, err, route.ErrBadConfig)
		})
	}
}

func TestPlan_TwoStepOxidation(t *testing.T) {
	eng := newDefaultEngine(t)

	r, err := eng.Plan("acetic acid")
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	assert.Equal(t, "ethanol", r.Steps[0].Input.Name)
	assert.Equal(t, "acetaldehyde", r.Steps[0].Output.Name)
	assert.Equal(t, chem.Oxidation, r.Steps[0].Type)

	assert.Equal(t, "acetaldehyde", r.Steps[1].Input.Name)
	assert.Equal(t, "acetic acid", r.Steps[1].Output.Name)
	assert.Equal(t, chem.Oxidation, r.Steps[1].Type)
}

func TestPlan_ZeroStepForStartingMaterial(t *testing.T) {
	eng := newDefaultEngine(t)

	for _, name := range []string{"benzene", "methane", "ethanol", "propene"} {
		r, err := eng.Plan(name)
		require.NoError(t, err, name)
		assert.Equal(t, 0, r.Len(), name)
		assert.Equal(t, name, r.Target.Name)
	}
}

func TestPlan_UnknownCompound(t *testing.T) {
	eng := newDefaultEngine(t)

	r, err := eng.Plan("philosopher's stone")
	assert.Nil(t, r)
	require.Error(t, err)
	assert.ErrorIs(t, err, chem.ErrUnknownCompound)
	assert.NotErrorIs(t, err, route.ErrNoRoute)
}

func TestPlan_EsterRoute(t *testing.T) {
	eng := newDefaultEngine(t)

	r, err := eng.Plan("ethyl acetate")
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())

	last := r.Steps[2]
	assert.Equal(t, chem.Esterification, last.Type)
	assert.Equal(t, "acetic acid", last.Input.Name)
	require.NotNil(t, last.CoReagent)
	assert.Equal(t, "ethanol", last.CoReagent.Name)
	assert.Equal(t, "ethyl acetate", last.Output.Name)
}

func TestPlan_AromaticRoutes(t *testing.T) {
	eng := newDefaultEngine(t)

	tests := []struct {
		target string
		steps  int
		via    string
	}{
		{"nitrobenzene", 1, "benzene"},
		{"aniline", 2, "nitrobenzene"},
		{"phenol", 2, "chlorobenzene"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			r, err := eng.Plan(tt.target)
			require.NoError(t, err)
			require.Equal(t, tt.steps, r.Len())
			assert.Equal(t, tt.via, r.Steps[r.Len()-1].Input.Name)
			assert.Equal(t, "benzene", r.Steps[0].Input.Name)
		})
	}
}

// Minimality spot checks against hand-composed routes.
func TestPlan_MinimalStepCounts(t *testing.T) {
	eng := newDefaultEngine(t)

	tests := []struct {
		target string
		steps  int
	}{
		{"chloromethane", 1}, // methane + Cl2
		{"propanol", 1},      // propene hydration beats propane -> chloropropane -> propanol
		{"pentanol", 2},      // pentane -> chloropentane -> pentanol
		{"propanoic acid", 3},
		{"methyl formate", 3}, // methanol -> formaldehyde -> formic acid -> ester
		{"ethyl acetate", 3},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			r, err := eng.Plan(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.steps, r.Len())
		})
	}
}

// Every reachable compound yields a route satisfying the chain invariants.
func TestPlan_AllRoutesValid(t *testing.T) {
	eng := newDefaultEngine(t)
	cat := eng.Config().Catalog

	reached := 0
	for _, c := range cat.Compounds() {
		r, err := eng.Plan(c.Name)
		if err != nil {
			assert.ErrorIs(t, err, route.ErrNoRoute)
			continue
		}
		require.NoError(t, r.Validate(cat), "route to %s", c.Name)
		reached++
	}
	// The default rule set reaches the whole catalog.
	assert.Equal(t, cat.Len(), reached)
}

func TestPlan_Deterministic(t *testing.T) {
	eng := newDefaultEngine(t)
	other := newDefaultEngine(t)

	for _, target := range []string{"acetic acid", "ethyl acetate", "decyl decanoate", "phenol"} {
		first, err := eng.Plan(target)
		require.NoError(t, err)
		repeat, err := eng.Plan(target)
		require.NoError(t, err)
		fresh, err := other.Plan(target)
		require.NoError(t, err)

		require.Equal(t, first.Len(), repeat.Len())
		require.Equal(t, first.Len(), fresh.Len())
		for i := range first.Steps {
			assert.Equal(t, first.Steps[i].RuleID, repeat.Steps[i].RuleID)
			assert.Equal(t, first.Steps[i].Output.Key(), repeat.Steps[i].Output.Key())
			assert.Equal(t, first.Steps[i].RuleID, fresh.Steps[i].RuleID)
			assert.Equal(t, first.Steps[i].Output.Key(), fresh.Steps[i].Output.Key())
		}
	}
}

func TestPlan_DepthBound(t *testing.T) {
	cfg := route.DefaultConfig()
	cfg.MaxDepth = 1
	eng, err := route.NewEngine(cfg)
	require.NoError(t, err)

	// Reachable within the bound.
	r, err := eng.Plan("chloromethane")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	// Needs two steps, so the bounded search must give up cleanly.
	_, err = eng.Plan("acetic acid")
	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrNoRoute)
}

func TestPlan_NoRouteForIsolatedCompound(t *testing.T) {
	methane := chem.Compound{Name: "methane", Class: chem.ClassChain, Carbons: 1}
	phenol := chem.Compound{Name: "phenol", Class: chem.ClassRing, Groups: chem.GroupSet(chem.GroupHydroxyl)}

	cat, err := chem.NewCatalog([]chem.Compound{methane, phenol}, []chem.Compound{methane})
	require.NoError(t, err)

	eng, err := route.NewEngine(route.Config{
		Catalog:  cat,
		Rules:    chem.NewRuleSet(cat, nil),
		MaxDepth: route.DefaultMaxDepth,
	})
	require.NoError(t, err)

	_, err = eng.Plan("phenol")
	require.Error(t, err)
	assert.ErrorIs(t, err, route.ErrNoRoute)
	assert.Contains(t, err.Error(), "phenol")
}

// Concurrent planning over one shared engine must not interfere; each call
// owns its search state.
func TestPlan_ConcurrentCalls(t *testing.T) {
	eng := newDefaultEngine(t)
	targets := []string{"acetic acid", "ethyl acetate", "aniline", "phenol", "hexanol"}

	done := make(chan error, len(targets)*4)
	for i := 0; i < 4; i++ {
		for _, target := range targets {
			go func(name string) {
				r, err := eng.Plan(name)
				if err != nil {
					done <- err
					return
				}
				done <- r.Validate(eng.Config().Catalog)
			}(target)
		}
	}
	for i := 0; i < len(targets)*4; i++ {
		assert.NoError(t, <-done)
	}
}
