package schema

import (
	"github.com/agentic-research/mediacreation/internal/naming"
	"github.com/agentic-research/mediacreation/trait"
)

// Catalog is a validated, fully resolved definition. Every slice is sorted
// so walking a Catalog is deterministic.
type Catalog struct {
	Package                 string
	Description             string
	TraitNamespaces         []*TraitNamespace
	SpecificationNamespaces []*SpecificationNamespace
}

// TraitNamespace holds the trait families of one namespace.
type TraitNamespace struct {
	Name        string
	Description string
	Families    []*TraitFamily
}

// Package returns the Go package name of the namespace.
func (n *TraitNamespace) Package() string { return naming.PackageName(n.Name) }

// TraitFamily is every revision of one trait short name.
type TraitFamily struct {
	Namespace   string
	Member      string
	Description string
	BaseID      string
	Versions    []*TraitClass // ascending, contiguous from 1
}

// ShortName returns the unversioned class name, e.g. LocatableContentTrait.
func (f *TraitFamily) ShortName() string { return naming.TraitName(f.Member) }

// Latest returns the highest revision, which the short name aliases.
func (f *TraitFamily) Latest() *TraitClass { return f.Versions[len(f.Versions)-1] }

// TraitClass is one immutable revision of a trait.
type TraitClass struct {
	Family      *TraitFamily
	Version     int
	ID          string
	Description string
	Properties  []Property // sorted by key
}

// Name returns the versioned class name, e.g. LocatableContentTrait_v1.
func (c *TraitClass) Name() string { return naming.Versioned(c.Family.ShortName(), c.Version) }

// Property is a resolved trait property.
type Property struct {
	Key         string
	Kind        trait.Kind
	Description string
}

// SpecificationNamespace holds the specification families of one namespace.
type SpecificationNamespace struct {
	Name        string
	Description string
	Families    []*SpecificationFamily
}

// Package returns the Go package name of the namespace.
func (n *SpecificationNamespace) Package() string { return naming.PackageName(n.Name) }

// SpecificationFamily is every revision of one specification short name.
type SpecificationFamily struct {
	Namespace   string
	Member      string
	Description string
	Versions    []*SpecificationClass
}

func (f *SpecificationFamily) ShortName() string { return naming.SpecificationName(f.Member) }

func (f *SpecificationFamily) Latest() *SpecificationClass { return f.Versions[len(f.Versions)-1] }

// SpecificationClass is one immutable revision of a specification.
type SpecificationClass struct {
	Family       *SpecificationFamily
	Version      int
	Description  string
	Relationship bool
	// Locale classes describe a calling context rather than an entity and
	// carry neither usage trait.
	Locale  bool
	Members []*Member // sorted by accessor name
}

// Kind returns "entity", "relationship" or "locale".
func (c *SpecificationClass) Kind() string {
	switch {
	case c.Locale:
		return "locale"
	case c.Relationship:
		return "relationship"
	default:
		return "entity"
	}
}

func (c *SpecificationClass) Name() string {
	return naming.Versioned(c.Family.ShortName(), c.Version)
}

// TraitSet returns the ids of every member trait.
func (c *SpecificationClass) TraitSet() trait.Set {
	ids := make([]string, len(c.Members))
	for i, m := range c.Members {
		ids[i] = m.Trait.ID
	}
	return trait.NewSet(ids...)
}

// Declarations returns the top-level Go identifiers generated for the
// family in its namespace package.
func (f *TraitFamily) Declarations() []string {
	short := f.ShortName()
	decls := []string{short, "New" + short}
	for _, c := range f.Versions {
		decls = append(decls, c.Name(), "New"+c.Name())
	}
	return decls
}

// Declarations returns the top-level Go identifiers generated for the
// family in its namespace package.
func (f *SpecificationFamily) Declarations() []string {
	short := f.ShortName()
	decls := []string{short, "Create" + short, "New" + short}
	for _, c := range f.Versions {
		name := c.Name()
		decls = append(decls, name, "Create"+name, "New"+name, naming.TraitSetVar(name))
	}
	return decls
}

// Member binds a trait revision to the accessor that returns it.
type Member struct {
	Trait    *TraitClass
	Accessor string
}

// TraitClasses returns every trait class in namespace then family then
// version order.
func (c *Catalog) TraitClasses() []*TraitClass {
	var out []*TraitClass
	for _, ns := range c.TraitNamespaces {
		for _, f := range ns.Families {
			out = append(out, f.Versions...)
		}
	}
	return out
}

// SpecificationClasses returns every specification class in namespace then
// family then version order.
func (c *Catalog) SpecificationClasses() []*SpecificationClass {
	var out []*SpecificationClass
	for _, ns := range c.SpecificationNamespaces {
		for _, f := range ns.Families {
			out = append(out, f.Versions...)
		}
	}
	return out
}

// TraitFamily looks up a family by namespace and member name.
func (c *Catalog) TraitFamily(namespace, member string) *TraitFamily {
	for _, ns := range c.TraitNamespaces {
		if ns.Name != namespace {
			continue
		}
		for _, f := range ns.Families {
			if f.Member == member {
				return f
			}
		}
	}
	return nil
}

// SpecificationFamily looks up a family by namespace and member name.
func (c *Catalog) SpecificationFamily(namespace, member string) *SpecificationFamily {
	for _, ns := range c.SpecificationNamespaces {
		if ns.Name != namespace {
			continue
		}
		for _, f := range ns.Families {
			if f.Member == member {
				return f
			}
		}
	}
	return nil
}
