package schema

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/agentic-research/mediacreation/api"
	"github.com/agentic-research/mediacreation/internal/naming"
	"github.com/agentic-research/mediacreation/trait"
)

// ErrInvalid is the sentinel behind every *Error.
var ErrInvalid = errors.New("invalid definition")

// Error is one definition-time failure, located by a dotted path into the
// definition, e.g. traits.content.LocatableContent.versions.1.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }

// FamilyRef names a trait family independent of version.
type FamilyRef struct {
	Namespace string
	Member    string
}

func (r FamilyRef) String() string { return r.Namespace + "." + r.Member }

// ParseFamilyRef parses "namespace.Member".
func ParseFamilyRef(s string) (FamilyRef, error) {
	ns, member, ok := strings.Cut(s, ".")
	if !ok || !naming.IsNamespace(ns) || !naming.IsMemberName(member) {
		return FamilyRef{}, fmt.Errorf("invalid trait reference %q, want namespace.Member", s)
	}
	return FamilyRef{Namespace: ns, Member: member}, nil
}

// Options tune the validation pass.
type Options struct {
	// EntityTrait and RelationshipTrait are the usage traits exactly one
	// of which every specification must contain.
	EntityTrait       FamilyRef
	RelationshipTrait FamilyRef
	// LocaleNamespaces are specification namespaces describing a calling
	// context. Their specifications carry neither usage trait and are
	// named with a "Locale" suffix.
	LocaleNamespaces []string
}

// DefaultOptions uses usage.Entity and usage.Relationship, with locale
// specifications in the locale namespace.
func DefaultOptions() Options {
	return Options{
		EntityTrait:       FamilyRef{Namespace: "usage", Member: "Entity"},
		RelationshipTrait: FamilyRef{Namespace: "usage", Member: "Relationship"},
		LocaleNamespaces:  []string{"locale"},
	}
}

type builder struct {
	opts     Options
	errs     []*Error
	ids      map[string]string // trait id → declaring path
	packages map[string]string // "traits/pkg" → namespace
	cat      *Catalog
}

func (b *builder) errorf(path, format string, args ...any) {
	b.errs = append(b.errs, &Error{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Build validates def and resolves it into a Catalog. All failures are
// reported together, sorted by path. No code should be generated from a
// definition Build rejects.
func Build(def *api.Definition, opts Options) (*Catalog, error) {
	b := &builder{
		opts:     opts,
		ids:      make(map[string]string),
		packages: make(map[string]string),
		cat:      &Catalog{Package: def.Package, Description: def.Description},
	}

	if def.Package != "" && !naming.IsNamespace(def.Package) {
		b.errorf("package", "invalid package name %q", def.Package)
	}
	if len(def.Traits) == 0 {
		b.errorf("traits", "no trait namespaces declared")
	}

	for _, name := range slices.Sorted(maps.Keys(def.Traits)) {
		if ns := b.traitNamespace(name, def.Traits[name]); ns != nil {
			b.cat.TraitNamespaces = append(b.cat.TraitNamespaces, ns)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(def.Specifications)) {
		if ns := b.specificationNamespace(name, def.Specifications[name]); ns != nil {
			b.cat.SpecificationNamespaces = append(b.cat.SpecificationNamespaces, ns)
		}
	}
	b.checkDeclarations()

	if len(b.errs) > 0 {
		slices.SortStableFunc(b.errs, func(x, y *Error) int { return cmp.Compare(x.Path, y.Path) })
		errs := make([]error, len(b.errs))
		for i, e := range b.errs {
			errs[i] = e
		}
		return nil, errors.Join(errs...)
	}
	return b.cat, nil
}

func (b *builder) claimPackage(kind, namespace, path string) bool {
	key := kind + "/" + naming.PackageName(namespace)
	if other, ok := b.packages[key]; ok {
		b.errorf(path, "namespace %q maps to the same package as %q", namespace, other)
		return false
	}
	b.packages[key] = namespace
	return true
}

func (b *builder) traitNamespace(name string, def api.TraitNamespace) *TraitNamespace {
	path := "traits." + name
	if !naming.IsNamespace(name) {
		b.errorf(path, "invalid namespace name %q", name)
		return nil
	}
	if !b.claimPackage("traits", name, path) {
		return nil
	}
	if len(def.Members) == 0 {
		b.errorf(path, "namespace has no members")
	}

	ns := &TraitNamespace{Name: name, Description: def.Description}
	for _, member := range slices.Sorted(maps.Keys(def.Members)) {
		if f := b.traitFamily(name, member, def.Members[member]); f != nil {
			ns.Families = append(ns.Families, f)
		}
	}
	return ns
}

func (b *builder) traitFamily(namespace, member string, def api.TraitMember) *TraitFamily {
	path := fmt.Sprintf("traits.%s.%s", namespace, member)
	if !naming.IsMemberName(member) {
		b.errorf(path, "invalid member name %q", member)
		return nil
	}
	f := &TraitFamily{
		Namespace:   namespace,
		Member:      member,
		Description: def.Description,
		BaseID:      def.ID,
	}
	if f.BaseID == "" {
		f.BaseID = naming.DefaultID(member)
	}
	if !naming.IsTraitID(f.BaseID) {
		b.errorf(path+".id", "invalid trait id %q", f.BaseID)
		return nil
	}
	if !b.checkVersions(path, slices.Collect(maps.Keys(def.Versions))) {
		return nil
	}

	for _, v := range slices.Sorted(maps.Keys(def.Versions)) {
		vpath := fmt.Sprintf("%s.versions.%d", path, v)
		c := &TraitClass{
			Family:      f,
			Version:     v,
			ID:          naming.VersionedID(f.BaseID, v),
			Description: def.Versions[v].Description,
		}
		if other, ok := b.ids[c.ID]; ok {
			b.errorf(vpath, "duplicate trait id %q (also declared by %s)", c.ID, other)
		} else {
			b.ids[c.ID] = vpath
		}
		c.Properties = b.properties(vpath, def.Versions[v].Properties)
		f.Versions = append(f.Versions, c)
	}
	return f
}

// checkVersions requires revisions 1..N with no gaps. A missing revision
// means a versioned class was removed, which would break its consumers.
func (b *builder) checkVersions(path string, versions []int) bool {
	if len(versions) == 0 {
		b.errorf(path+".versions", "no versions declared")
		return false
	}
	slices.Sort(versions)
	for i, v := range versions {
		if v != i+1 {
			b.errorf(path+".versions", "versions must be contiguous from 1, found %v", versions)
			return false
		}
	}
	return true
}

func (b *builder) properties(path string, defs map[string]api.Property) []Property {
	var props []Property
	methods := make(map[string]string)
	for _, key := range slices.Sorted(maps.Keys(defs)) {
		ppath := path + ".properties." + key
		if !naming.IsPropertyKey(key) {
			b.errorf(ppath, "invalid property key %q", key)
			continue
		}
		kind, err := trait.ParseKind(defs[key].Type)
		if err != nil {
			b.errorf(ppath+".type", "%v", err)
			continue
		}
		for _, m := range []string{naming.Getter(key), naming.GetterOr(key), naming.Setter(key)} {
			if other, ok := methods[m]; ok {
				b.errorf(ppath, "accessor %s clashes with property %q", m, other)
			}
			methods[m] = key
		}
		props = append(props, Property{Key: key, Kind: kind, Description: defs[key].Description})
	}
	return props
}

func (b *builder) specificationNamespace(name string, def api.SpecificationNamespace) *SpecificationNamespace {
	path := "specifications." + name
	if !naming.IsNamespace(name) {
		b.errorf(path, "invalid namespace name %q", name)
		return nil
	}
	if !b.claimPackage("specifications", name, path) {
		return nil
	}
	if len(def.Members) == 0 {
		b.errorf(path, "namespace has no members")
	}

	ns := &SpecificationNamespace{Name: name, Description: def.Description}
	for _, member := range slices.Sorted(maps.Keys(def.Members)) {
		if f := b.specificationFamily(name, member, def.Members[member]); f != nil {
			ns.Families = append(ns.Families, f)
		}
	}
	return ns
}

func (b *builder) specificationFamily(namespace, member string, def api.SpecificationMember) *SpecificationFamily {
	path := fmt.Sprintf("specifications.%s.%s", namespace, member)
	if !naming.IsMemberName(member) {
		b.errorf(path, "invalid member name %q", member)
		return nil
	}
	if !b.checkVersions(path, slices.Collect(maps.Keys(def.Versions))) {
		return nil
	}

	f := &SpecificationFamily{Namespace: namespace, Member: member, Description: def.Description}
	for _, v := range slices.Sorted(maps.Keys(def.Versions)) {
		vpath := fmt.Sprintf("%s.versions.%d", path, v)
		c := &SpecificationClass{Family: f, Version: v, Description: def.Versions[v].Description}
		b.resolveTraits(vpath, c, def.Versions[v].Traits)
		f.Versions = append(f.Versions, c)
	}
	return f
}

func (b *builder) resolveTraits(path string, c *SpecificationClass, refs []api.TraitRef) {
	if len(refs) == 0 {
		b.errorf(path+".traits", "empty trait set")
		return
	}

	seen := make(map[FamilyRef]bool)
	var entity, relationship bool
	for i, ref := range refs {
		rpath := fmt.Sprintf("%s.traits.%d", path, i)
		version := ref.Version
		if version == 0 {
			version = 1
		}
		fam := FamilyRef{Namespace: ref.Namespace, Member: ref.Name}
		f := b.cat.TraitFamily(ref.Namespace, ref.Name)
		if f == nil || version < 1 || version > len(f.Versions) {
			b.errorf(rpath, "unresolved trait reference %s v%d", fam, version)
			continue
		}
		if seen[fam] {
			b.errorf(rpath, "trait %s appears more than once", fam)
			continue
		}
		seen[fam] = true
		entity = entity || fam == b.opts.EntityTrait
		relationship = relationship || fam == b.opts.RelationshipTrait
		c.Members = append(c.Members, &Member{Trait: f.Versions[version-1]})
	}

	member := c.Family.Member
	if slices.Contains(b.opts.LocaleNamespaces, c.Family.Namespace) {
		c.Locale = true
		if entity || relationship {
			b.errorf(path+".traits", "locale specification must not contain %s or %s",
				b.opts.EntityTrait, b.opts.RelationshipTrait)
		}
		if !strings.HasSuffix(member, naming.LocaleSuffix) {
			b.errorf(path, "locale specification %q must be named with a %q suffix", member, naming.LocaleSuffix)
		}
		b.assignAccessors(path, c)
		return
	}

	if entity == relationship {
		b.errorf(path+".traits", "specification must contain exactly one of %s, %s",
			b.opts.EntityTrait, b.opts.RelationshipTrait)
	}
	c.Relationship = relationship
	if relationship && !strings.HasSuffix(member, naming.RelationshipSuffix) {
		b.errorf(path, "relationship specification %q must be named with a %q suffix",
			member, naming.RelationshipSuffix)
	}
	b.assignAccessors(path, c)
}

// assignAccessors names each member accessor after its trait member,
// qualifying with the namespace where two members share a name.
func (b *builder) assignAccessors(path string, c *SpecificationClass) {
	count := make(map[string]int)
	for _, m := range c.Members {
		count[m.Trait.Family.Member]++
	}
	used := make(map[string]bool)
	for _, m := range c.Members {
		f := m.Trait.Family
		m.Accessor = naming.AccessorName(f.Namespace, f.Member, count[f.Member] > 1)
		if used[m.Accessor] {
			b.errorf(path, "accessor %s is ambiguous", m.Accessor)
		}
		used[m.Accessor] = true
	}
	slices.SortFunc(c.Members, func(x, y *Member) int { return cmp.Compare(x.Accessor, y.Accessor) })
}

// Identifiers every generated package declares besides its families.
var (
	traitPackageDecls         = []string{"Traits"}
	specificationPackageDecls = []string{"Classes"}
	rootPackageDecls          = []string{"Specifications", "Traits"}
)

// checkDeclarations rejects definitions whose generated packages would
// declare one identifier twice. Distinct member names can still collide:
// Foo and NewFoo both yield NewFooTrait, and AB and Ab share a trait set
// variable.
func (b *builder) checkDeclarations() {
	for _, ns := range b.cat.TraitNamespaces {
		sc := newScope("traits/"+ns.Package(), traitPackageDecls)
		for _, f := range ns.Families {
			b.declare(sc, fmt.Sprintf("traits.%s.%s", ns.Name, f.Member), f.Declarations()...)
		}
	}
	for _, ns := range b.cat.SpecificationNamespaces {
		sc := newScope("specifications/"+ns.Package(), specificationPackageDecls)
		for _, f := range ns.Families {
			b.declare(sc, fmt.Sprintf("specifications.%s.%s", ns.Name, f.Member), f.Declarations()...)
		}
	}

	// doc.go imports every namespace package by name.
	root := newScope("root", rootPackageDecls)
	for _, ns := range b.cat.TraitNamespaces {
		b.declare(root, "traits."+ns.Name, naming.TraitPackageAlias(ns.Name))
	}
	for _, ns := range b.cat.SpecificationNamespaces {
		b.declare(root, "specifications."+ns.Name, ns.Package())
	}
}

type scope struct {
	pkg   string
	names map[string]string // identifier → declaring path
}

func newScope(pkg string, predeclared []string) *scope {
	sc := &scope{pkg: pkg, names: make(map[string]string)}
	for _, name := range predeclared {
		sc.names[name] = pkg
	}
	return sc
}

func (b *builder) declare(sc *scope, path string, idents ...string) {
	for _, id := range idents {
		if other, ok := sc.names[id]; ok {
			b.errorf(path, "generated identifier %s in package %s is also declared by %s", id, sc.pkg, other)
			continue
		}
		sc.names[id] = path
	}
}
