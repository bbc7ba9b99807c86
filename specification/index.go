package specification

import (
	"cmp"
	"slices"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/mediacreation/trait"
)

// Index answers "which specifications does this trait set satisfy?".
// It is an incidence table between classes and trait ids stored as
// bitmaps, immutable after construction and safe for concurrent reads.
type Index struct {
	classes   []Class
	intents   []*roaring.Bitmap // intents[i] = trait indices of class i
	columns   []*roaring.Bitmap // columns[j] = classes containing trait j
	traitIdx  map[string]uint32 // trait id → column
	allRows   *roaring.Bitmap
	traitKeys []string
}

// NewIndex builds an index over classes. Trait ids are numbered in sorted
// order so the layout is deterministic.
func NewIndex(classes ...Class) *Index {
	x := &Index{
		classes:  slices.Clone(classes),
		traitIdx: make(map[string]uint32),
		allRows:  roaring.New(),
	}

	var all trait.Set
	for _, c := range x.classes {
		all = all.Union(c.TraitSet)
	}
	x.traitKeys = all.IDs()
	x.columns = make([]*roaring.Bitmap, len(x.traitKeys))
	for j, id := range x.traitKeys {
		x.traitIdx[id] = uint32(j)
		x.columns[j] = roaring.New()
	}

	x.intents = make([]*roaring.Bitmap, len(x.classes))
	for i, c := range x.classes {
		row := roaring.New()
		for _, id := range c.TraitSet.IDs() {
			j := x.traitIdx[id]
			row.Add(j)
			x.columns[j].Add(uint32(i))
		}
		x.intents[i] = row
		x.allRows.Add(uint32(i))
	}
	return x
}

// Len returns the number of indexed classes.
func (x *Index) Len() int { return len(x.classes) }

// Match returns every class whose trait set is a subset of set, most
// specific (largest trait set) first, then by name.
func (x *Index) Match(set trait.Set) []Class {
	return x.collect(x.matching(set))
}

// Exact returns the classes whose trait set equals set.
func (x *Index) Exact(set trait.Set) []Class {
	rows := x.matching(set)
	exact := roaring.New()
	it := rows.Iterator()
	for it.HasNext() {
		i := it.Next()
		if x.classes[i].TraitSet.Equal(set) {
			exact.Add(i)
		}
	}
	return x.collect(exact)
}

// Refines returns the classes, other than c itself, whose trait set is a
// proper subset of c's. A container shaped like c also satisfies every
// class returned.
func (x *Index) Refines(c Class) []Class {
	var out []Class
	for _, m := range x.Match(c.TraitSet) {
		if m.Name == c.Name || m.TraitSet.Equal(c.TraitSet) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matching returns the rows whose intent is contained in set: every class
// minus those holding a trait set lacks.
func (x *Index) matching(set trait.Set) *roaring.Bitmap {
	var absent []*roaring.Bitmap
	for j, id := range x.traitKeys {
		if !set.Has(id) {
			absent = append(absent, x.columns[j])
		}
	}
	rows := x.allRows.Clone()
	if len(absent) > 0 {
		rows.AndNot(roaring.FastOr(absent...))
	}
	return rows
}

func (x *Index) collect(rows *roaring.Bitmap) []Class {
	out := make([]Class, 0, rows.GetCardinality())
	it := rows.Iterator()
	for it.HasNext() {
		out = append(out, x.classes[it.Next()])
	}
	slices.SortStableFunc(out, func(a, b Class) int {
		if c := cmp.Compare(b.TraitSet.Len(), a.TraitSet.Len()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
