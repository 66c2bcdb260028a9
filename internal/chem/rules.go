package chem

import "fmt"

// ReactionType is the closed set of reaction archetypes. Adding a category
// means adding a constant here and covering it in String; the compiler and
// the exhaustiveness test keep the two in sync.
type ReactionType uint8

const (
	Substitution ReactionType = iota
	Elimination
	Addition
	Oxidation
	Esterification
	Aromatic

	numReactionTypes
)

// String returns the reporting label for the reaction type.
func (t ReactionType) String() string {
	switch t {
	case Substitution:
		return "substitution"
	case Elimination:
		return "elimination"
	case Addition:
		return "addition"
	case Oxidation:
		return "oxidation"
	case Esterification:
		return "esterification"
	case Aromatic:
		return "aromatic"
	default:
		return "unknown"
	}
}

// Rule is one reaction archetype: a precondition over a compound descriptor
// and a production function. Rules are pure; the same input always yields
// the same output descriptor. Esterification is the one binary rule and
// additionally needs a co-reagent satisfying its co-precondition.
type Rule struct {
	// ID identifies the rule in routes and reports.
	ID string

	// Type is the reaction archetype.
	Type ReactionType

	// Condition describes reagents and conditions, for reporting only.
	Condition string

	matches     func(Compound) bool
	produce     func(Compound) Compound
	coMatches   func(Compound) bool
	produceWith func(in, co Compound) Compound
}

// NeedsCoReagent reports whether the rule consumes a second compound.
func (r Rule) NeedsCoReagent() bool { return r.coMatches != nil }

// Matches reports whether the rule's precondition holds for c.
func (r Rule) Matches(c Compound) bool { return r.matches(c) }

// Application pairs a matched rule with the concrete catalog compound it
// produces, and the co-reagent consumed if the rule is binary.
type Application struct {
	Rule      Rule
	CoReagent *Compound
	Output    Compound
}

// RuleSet is a declaration-ordered, immutable collection of rules bound to
// the catalog their products are resolved against. Iteration order is fixed,
// so repeated searches over the same configuration are reproducible.
type RuleSet struct {
	cat   *Catalog
	rules []Rule
}

// NewRuleSet binds rules, in the given order, to the catalog cat.
func NewRuleSet(cat *Catalog, rules []Rule) *RuleSet {
	return &RuleSet{cat: cat, rules: rules}
}

// Rules returns the rules in declaration order. The returned slice must not
// be modified.
func (s *RuleSet) Rules() []Rule { return s.rules }

// Catalog returns the catalog the rule products resolve against.
func (s *RuleSet) Catalog() *Catalog { return s.cat }

// Applicable returns every rule application available from c, in rule
// declaration order. Binary rules are expanded against available (the
// substances already reached by the caller) in the order given, so the
// result is deterministic for a deterministic caller. Productions that do
// not resolve to a registered compound are skipped; Validate rejects such
// configurations before any search runs.
func (s *RuleSet) Applicable(c Compound, available []Compound) []Application {
	var apps []Application
	for _, r := range s.rules {
		if !r.matches(c) {
			continue
		}
		if !r.NeedsCoReagent() {
			if out, ok := s.cat.Lookup(r.produce(c).Key()); ok {
				apps = append(apps, Application{Rule: r, Output: out})
			}
			continue
		}
		for _, co := range available {
			if !r.coMatches(co) {
				continue
			}
			out, ok := s.cat.Lookup(r.produceWith(c, co).Key())
			if !ok {
				continue
			}
			apps = append(apps, Application{Rule: r, CoReagent: &co, Output: out})
		}
	}
	return apps
}

// Validate checks that every production reachable from the catalog resolves
// to a registered compound. A failure means the static rule or catalog
// definitions are malformed; callers treat it as fatal at startup.
func (s *RuleSet) Validate() error {
	all := s.cat.Compounds()
	for _, c := range all {
		for _, r := range s.rules {
			if !r.matches(c) {
				continue
			}
			if !r.NeedsCoReagent() {
				if err := s.checkProduct(r, c, nil, r.produce(c)); err != nil {
					return err
				}
				continue
			}
			for _, co := range all {
				if !r.coMatches(co) {
					continue
				}
				if err := s.checkProduct(r, c, &co, r.produceWith(c, co)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *RuleSet) checkProduct(r Rule, in Compound, co *Compound, out Compound) error {
	if _, ok := s.cat.Lookup(out.Key()); ok {
		return nil
	}
	if co != nil {
		return fmt.Errorf("rules: %s(%s, %s) produces unregistered compound %s", r.ID, in.Name, co.Name, out.Key())
	}
	return fmt.Errorf("rules: %s(%s) produces unregistered compound %s", r.ID, in.Name, out.Key())
}

// only reports whether c has exactly the given group set.
func only(c Compound, groups GroupSet) bool { return c.Groups == groups }

// swapGroups returns c's descriptor with its group set replaced. The name is
// cleared; the caller resolves the descriptor through the catalog.
func swapGroups(c Compound, groups GroupSet) Compound {
	return Compound{Class: c.Class, Carbons: c.Carbons, Alkyl: c.Alkyl, Groups: groups}
}

// DefaultRules builds the curriculum rule set against cat. Declaration order
// is part of the contract: when several shortest routes exist, the earliest
// declared rule wins.
func DefaultRules(cat *Catalog) *RuleSet {
	chainWith := func(groups GroupSet) func(Compound) bool {
		return func(c Compound) bool { return c.Class == ClassChain && only(c, groups) }
	}
	longChainWith := func(groups GroupSet) func(Compound) bool {
		return func(c Compound) bool {
			return c.Class == ClassChain && c.Carbons >= 2 && only(c, groups)
		}
	}
	ringWith := func(groups GroupSet) func(Compound) bool {
		return func(c Compound) bool { return c.Class == ClassRing && only(c, groups) }
	}
	to := func(groups GroupSet) func(Compound) Compound {
		return func(c Compound) Compound { return swapGroups(c, groups) }
	}

	rules := []Rule{
		{
			ID:        "sub-halogenation",
			Type:      Substitution,
			Condition: "Cl₂, UV light",
			matches:   chainWith(0),
			produce:   to(GroupSet(GroupChloro)),
		},
		{
			ID:        "sub-hydrolysis",
			Type:      Substitution,
			Condition: "NaOH(aq), heat",
			matches:   chainWith(GroupSet(GroupChloro)),
			produce:   to(GroupSet(GroupHydroxyl)),
		},
		{
			ID:        "sub-chlorination",
			Type:      Substitution,
			Condition: "HCl with ZnCl₂, or SOCl₂",
			matches:   chainWith(GroupSet(GroupHydroxyl)),
			produce:   to(GroupSet(GroupChloro)),
		},
		{
			ID:        "elim-dehydrohalogenation",
			Type:      Elimination,
			Condition: "NaOH in ethanol, heat",
			matches:   longChainWith(GroupSet(GroupChloro)),
			produce:   to(GroupSet(GroupEne)),
		},
		{
			ID:        "elim-dehydration",
			Type:      Elimination,
			Condition: "conc. H₂SO₄, 170 °C",
			matches:   longChainWith(GroupSet(GroupHydroxyl)),
			produce:   to(GroupSet(GroupEne)),
		},
		{
			ID:        "add-hydration",
			Type:      Addition,
			Condition: "H₂O, H⁺ catalyst",
			matches:   chainWith(GroupSet(GroupEne)),
			produce:   to(GroupSet(GroupHydroxyl)),
		},
		{
			ID:        "ox-alcohol",
			Type:      Oxidation,
			Condition: "Cu catalyst, heat",
			matches:   chainWith(GroupSet(GroupHydroxyl)),
			produce:   to(GroupSet(GroupCarbonyl)),
		},
		{
			ID:        "ox-aldehyde",
			Type:      Oxidation,
			Condition: "acidified KMnO₄",
			matches:   chainWith(GroupSet(GroupCarbonyl)),
			produce:   to(GroupSet(GroupCarboxyl)),
		},
		{
			ID:        "ester-condensation",
			Type:      Esterification,
			Condition: "conc. H₂SO₄, heat",
			matches:   chainWith(GroupSet(GroupCarboxyl)),
			coMatches: func(c Compound) bool {
				return c.Class == ClassChain && only(c, GroupSet(GroupHydroxyl))
			},
			produceWith: func(in, co Compound) Compound {
				return Compound{Class: ClassEster, Carbons: in.Carbons, Alkyl: co.Carbons}
			},
		},
		{
			ID:        "arom-chlorination",
			Type:      Aromatic,
			Condition: "Cl₂, FeCl₃",
			matches:   ringWith(0),
			produce:   to(GroupSet(GroupChloro)),
		},
		{
			ID:        "arom-bromination",
			Type:      Aromatic,
			Condition: "Br₂, FeBr₃",
			matches:   ringWith(0),
			produce:   to(GroupSet(GroupBromo)),
		},
		{
			ID:        "arom-nitration",
			Type:      Aromatic,
			Condition: "conc. HNO₃ + conc. H₂SO₄, 55 °C",
			matches:   ringWith(0),
			produce:   to(GroupSet(GroupNitro)),
		},
		{
			ID:        "arom-nitro-reduction",
			Type:      Aromatic,
			Condition: "Fe, HCl",
			matches:   ringWith(GroupSet(GroupNitro)),
			produce:   to(GroupSet(GroupAmino)),
		},
		{
			ID:        "arom-halide-hydrolysis",
			Type:      Aromatic,
			Condition: "NaOH at high T and P, then acidify",
			matches:   ringWith(GroupSet(GroupChloro)),
			produce:   to(GroupSet(GroupHydroxyl)),
		},
	}

	return NewRuleSet(cat, rules)
}
