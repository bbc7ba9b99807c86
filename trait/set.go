package trait

import (
	"slices"
	"strings"
)

// Set is an immutable, sorted set of trait identifiers. The zero Set is
// empty and ready to use.
type Set struct {
	ids []string
}

// NewSet builds a Set from ids, dropping duplicates.
func NewSet(ids ...string) Set {
	if len(ids) == 0 {
		return Set{}
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return Set{ids: slices.Compact(sorted)}
}

// Has reports whether id is a member.
func (s Set) Has(id string) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

func (s Set) Len() int { return len(s.ids) }

// IDs returns the members in sorted order. The slice is a copy.
func (s Set) IDs() []string {
	return slices.Clone(s.ids)
}

// Union returns the members of s and o.
func (s Set) Union(o Set) Set {
	all := make([]string, 0, len(s.ids)+len(o.ids))
	all = append(all, s.ids...)
	all = append(all, o.ids...)
	return NewSet(all...)
}

// IsSubsetOf reports whether every member of s is in o.
func (s Set) IsSubsetOf(o Set) bool {
	for _, id := range s.ids {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

func (s Set) Equal(o Set) bool {
	return slices.Equal(s.ids, o.ids)
}

func (s Set) String() string {
	return "{" + strings.Join(s.ids, ", ") + "}"
}
