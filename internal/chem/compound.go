// Package chem defines the substance catalog and the transformation rule set
// used by the route planner.
//
// A Compound is an abstract chemical entity described by a carbon skeleton
// class plus a set of functional-group tags. Equality is structural: two
// compounds with the same canonical key are the same substance, regardless of
// how they were derived. The default catalog and rules cover the standard
// secondary-school organic chemistry curriculum: C1-C10 chains (alkane,
// chloroalkane, alcohol, aldehyde, carboxylic acid, alkene), their esters,
// and a small family of benzene-ring compounds.
package chem

import (
	"fmt"
	"strings"
)

// Class is the carbon-skeleton class of a compound.
type Class uint8

const (
	// ClassChain is a saturated or unsaturated carbon chain (C1..C10).
	ClassChain Class = iota

	// ClassRing is the benzene ring.
	ClassRing

	// ClassEster is an acid/alcohol condensation product; it carries two
	// chain lengths (acyl side and alkyl side).
	ClassEster
)

// Group is a single functional-group tag. Groups are declared in canonical
// order; descriptor serialization always walks them in this order.
type Group uint16

const (
	GroupChloro Group = 1 << iota
	GroupBromo
	GroupHydroxyl
	GroupCarbonyl
	GroupCarboxyl
	GroupEne
	GroupNitro
	GroupAmino
)

// groupTags maps each group to its descriptor tag, in canonical order.
var groupTags = []struct {
	g   Group
	tag string
}{
	{GroupChloro, "chloro"},
	{GroupBromo, "bromo"},
	{GroupHydroxyl, "hydroxyl"},
	{GroupCarbonyl, "carbonyl"},
	{GroupCarboxyl, "carboxyl"},
	{GroupEne, "ene"},
	{GroupNitro, "nitro"},
	{GroupAmino, "amino"},
}

// String returns the descriptor tag for a single group.
func (g Group) String() string {
	for _, t := range groupTags {
		if t.g == g {
			return t.tag
		}
	}
	return fmt.Sprintf("group(%d)", uint16(g))
}

// GroupSet is a set of functional-group tags.
type GroupSet uint16

// Has reports whether the set contains g.
func (s GroupSet) Has(g Group) bool { return s&GroupSet(g) != 0 }

// With returns a copy of the set with g added.
func (s GroupSet) With(g Group) GroupSet { return s | GroupSet(g) }

// Without returns a copy of the set with g removed.
func (s GroupSet) Without(g Group) GroupSet { return s &^ GroupSet(g) }

// Empty reports whether the set contains no tags.
func (s GroupSet) Empty() bool { return s == 0 }

// Tags returns the contained tags in canonical order.
func (s GroupSet) Tags() []string {
	var tags []string
	for _, t := range groupTags {
		if s.Has(t.g) {
			tags = append(tags, t.tag)
		}
	}
	return tags
}

// Compound is an immutable substance value. Two compounds are the same
// substance iff their canonical keys are equal.
type Compound struct {
	// Name is the human-readable compound name (e.g. "ethanol").
	Name string

	// Class is the carbon-skeleton class.
	Class Class

	// Carbons is the chain length for ClassChain, and the acyl-side chain
	// length for ClassEster. Zero for ClassRing.
	Carbons int

	// Alkyl is the alkyl-side chain length for ClassEster, zero otherwise.
	Alkyl int

	// Groups is the set of functional-group tags on the skeleton.
	Groups GroupSet
}

// Key returns the canonical structural key: skeleton class followed by the
// functional-group tags in canonical order. The key is deterministic and is
// the sole basis for substance equality and visited-set deduplication.
func (c Compound) Key() string {
	var b strings.Builder
	switch c.Class {
	case ClassRing:
		b.WriteString("ring")
	case ClassEster:
		fmt.Fprintf(&b, "ester:C%d:C%d", c.Carbons, c.Alkyl)
	default:
		fmt.Fprintf(&b, "C%d", c.Carbons)
	}
	for _, tag := range c.Groups.Tags() {
		b.WriteByte('|')
		b.WriteString(tag)
	}
	return b.String()
}

// Same reports structural equality with other.
func (c Compound) Same(other Compound) bool {
	return c.Key() == other.Key()
}

// String returns the compound name, falling back to the key for unnamed
// descriptor values.
func (c Compound) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Key()
}
