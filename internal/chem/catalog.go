package chem

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCompound is returned when a name cannot be resolved to any
// compound known to the catalog.
var ErrUnknownCompound = errors.New("unknown compound")

// Catalog is the finite set of compounds the planner can reason about: the
// starting materials plus every product any rule can produce. It is built
// once at startup and never mutated, so it is safe to share across
// concurrent planning calls.
type Catalog struct {
	byKey    map[string]Compound
	byName   map[string]Compound
	order    []Compound
	starts   []Compound
	startKey map[string]bool
}

// NewCatalog builds a catalog from a declaration-ordered compound list and
// the subset usable as search roots. Every starting material must be a
// registered compound.
func NewCatalog(compounds, startingMaterials []Compound) (*Catalog, error) {
	c := &Catalog{
		byKey:    make(map[string]Compound, len(compounds)),
		byName:   make(map[string]Compound, len(compounds)),
		startKey: make(map[string]bool, len(startingMaterials)),
	}
	for _, cp := range compounds {
		key := cp.Key()
		if cp.Name == "" {
			return nil, fmt.Errorf("catalog: compound %s has no name", key)
		}
		if prev, ok := c.byKey[key]; ok {
			return nil, fmt.Errorf("catalog: duplicate key %s (%s, %s)", key, prev.Name, cp.Name)
		}
		if _, ok := c.byName[cp.Name]; ok {
			return nil, fmt.Errorf("catalog: duplicate name %q", cp.Name)
		}
		c.byKey[key] = cp
		c.byName[cp.Name] = cp
		c.order = append(c.order, cp)
	}
	for _, s := range startingMaterials {
		key := s.Key()
		if _, ok := c.byKey[key]; !ok {
			return nil, fmt.Errorf("catalog: starting material %q is not registered", s.Name)
		}
		if c.startKey[key] {
			return nil, fmt.Errorf("catalog: duplicate starting material %q", s.Name)
		}
		c.startKey[key] = true
		c.starts = append(c.starts, c.byKey[key])
	}
	return c, nil
}

// Resolve maps a user-supplied compound name to its canonical compound.
// The returned error wraps ErrUnknownCompound when the name is not known.
func (c *Catalog) Resolve(name string) (Compound, error) {
	cp, ok := c.byName[name]
	if !ok {
		return Compound{}, fmt.Errorf("%w: %q", ErrUnknownCompound, name)
	}
	return cp, nil
}

// Lookup returns the registered compound with the given canonical key.
func (c *Catalog) Lookup(key string) (Compound, bool) {
	cp, ok := c.byKey[key]
	return cp, ok
}

// StartingMaterials returns the legal search roots in declaration order.
// The returned slice must not be modified.
func (c *Catalog) StartingMaterials() []Compound {
	return c.starts
}

// IsStartingMaterial reports whether cp is a legal search root.
func (c *Catalog) IsStartingMaterial(cp Compound) bool {
	return c.startKey[cp.Key()]
}

// Compounds returns every registered compound in declaration order.
// The returned slice must not be modified.
func (c *Catalog) Compounds() []Compound {
	return c.order
}

// Names returns every resolvable compound name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered compounds.
func (c *Catalog) Len() int { return len(c.order) }

// DefaultCatalog builds the curriculum catalog: C1..C10 chains in five
// oxidation/substitution families, alkenes from C2, all acid x alcohol
// esters, and the benzene-ring family. Starting materials mirror the common
// industrial feedstocks: the alkanes, light alkenes, benzene, methanol and
// ethanol.
func DefaultCatalog() *Catalog {
	var compounds []Compound
	chain := func(n int, groups GroupSet, name string) Compound {
		return Compound{Name: name, Class: ClassChain, Carbons: n, Groups: groups}
	}
	ring := func(groups GroupSet, name string) Compound {
		return Compound{Name: name, Class: ClassRing, Groups: groups}
	}

	for n := 1; n <= maxChain; n++ {
		compounds = append(compounds,
			chain(n, 0, alkaneName(n)),
			chain(n, GroupSet(GroupChloro), chloroalkaneName(n)),
			chain(n, GroupSet(GroupHydroxyl), alcoholName(n)),
			chain(n, GroupSet(GroupCarbonyl), aldehydeName(n)),
			chain(n, GroupSet(GroupCarboxyl), acidName(n)),
		)
		if n >= 2 {
			compounds = append(compounds, chain(n, GroupSet(GroupEne), alkeneName(n)))
		}
	}

	for a := 1; a <= maxChain; a++ {
		for b := 1; b <= maxChain; b++ {
			compounds = append(compounds, Compound{
				Name:    esterName(a, b),
				Class:   ClassEster,
				Carbons: a,
				Alkyl:   b,
			})
		}
	}

	compounds = append(compounds,
		ring(0, "benzene"),
		ring(GroupSet(GroupChloro), "chlorobenzene"),
		ring(GroupSet(GroupBromo), "bromobenzene"),
		ring(GroupSet(GroupNitro), "nitrobenzene"),
		ring(GroupSet(GroupAmino), "aniline"),
		ring(GroupSet(GroupHydroxyl), "phenol"),
	)

	var starts []Compound
	for n := 1; n <= maxChain; n++ {
		starts = append(starts, chain(n, 0, alkaneName(n)))
	}
	for n := 2; n <= 4; n++ {
		starts = append(starts, chain(n, GroupSet(GroupEne), alkeneName(n)))
	}
	starts = append(starts,
		ring(0, "benzene"),
		chain(1, GroupSet(GroupHydroxyl), alcoholName(1)),
		chain(2, GroupSet(GroupHydroxyl), alcoholName(2)),
	)

	cat, err := NewCatalog(compounds, starts)
	if err != nil {
		// Static definitions are wrong; nothing can run.
		panic(err)
	}
	return cat
}
