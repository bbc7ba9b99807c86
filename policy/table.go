package policy

import (
	"context"
	"slices"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/mediacreation/mediacreation/traits/managementpolicy"
	"github.com/agentic-research/mediacreation/trait"
)

// Rule is one line of a manager's policy table.
type Rule struct {
	// Access lists the access kinds the rule answers. Empty matches none.
	Access []Access
	// Requires must be a subset of a queried trait set for the rule to
	// apply.
	Requires trait.Set
	// Imbue lists the policy traits added to the response.
	Imbue trait.Set
	// Properties are set on the response, keyed by trait id then
	// property key. Setting a property also imbues its trait.
	Properties map[string]map[string]trait.Value
}

// ManagedRule returns a rule that marks sets containing requires as
// managed for the given access kinds.
func ManagedRule(requires trait.Set, exclusive bool, access ...Access) Rule {
	managed := managementpolicy.ManagedTrait_v1{}.ID()
	return Rule{
		Access:   access,
		Requires: requires,
		Imbue:    trait.NewSet(managed),
		Properties: map[string]map[string]trait.Value{
			managed: {"exclusive": trait.BoolValue(exclusive)},
		},
	}
}

// Table is a Manager backed by an ordered list of rules. For each queried
// set the first rule that accepts the access kind and whose requirements
// the set satisfies produces the response. Table is immutable and safe
// for concurrent use.
type Table struct {
	rules    []Rule
	requires []*roaring.Bitmap
	traitIdx map[string]uint32
}

// NewTable indexes rules. Trait ids are numbered in first-seen order.
func NewTable(rules ...Rule) *Table {
	t := &Table{
		rules:    slices.Clone(rules),
		requires: make([]*roaring.Bitmap, len(rules)),
		traitIdx: make(map[string]uint32),
	}
	for i, r := range t.rules {
		bm := roaring.New()
		for _, id := range r.Requires.IDs() {
			j, ok := t.traitIdx[id]
			if !ok {
				j = uint32(len(t.traitIdx))
				t.traitIdx[id] = j
			}
			bm.Add(j)
		}
		t.requires[i] = bm
	}
	return t
}

// ManagementPolicy implements Manager.
func (t *Table) ManagementPolicy(ctx context.Context, traitSets []trait.Set, access Access) ([]*trait.TraitsData, error) {
	out := make([]*trait.TraitsData, len(traitSets))
	for i, set := range traitSets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = trait.NewTraitsData()
		if r := t.match(set, access); r != nil {
			apply(out[i], r)
		}
	}
	return out, nil
}

// match returns the first applicable rule, or nil.
func (t *Table) match(set trait.Set, access Access) *Rule {
	queried := roaring.New()
	for _, id := range set.IDs() {
		if j, ok := t.traitIdx[id]; ok {
			queried.Add(j)
		}
	}
	for i := range t.rules {
		if !slices.Contains(t.rules[i].Access, access) {
			continue
		}
		req := t.requires[i]
		if req.AndCardinality(queried) == req.GetCardinality() {
			return &t.rules[i]
		}
	}
	return nil
}

func apply(data *trait.TraitsData, r *Rule) {
	for _, id := range r.Imbue.IDs() {
		data.AddTrait(id)
	}
	for id, props := range r.Properties {
		data.AddTrait(id)
		for key, v := range props {
			data.SetTraitProperty(id, key, v)
		}
	}
}
