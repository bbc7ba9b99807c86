package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mediacreation/trait"
)

const baseDefinition = `
package: example
traits:
  usage:
    members:
      Entity:
        id: entity
        versions:
          1: {}
      Relationship:
        id: relationship
        versions:
          1: {}
  test:
    members:
      Foo:
        versions:
          1:
            properties:
              name: {type: string}
          2:
            properties:
              name: {type: string}
              count: {type: integer}
      Proxy:
        versions:
          1: {}
  other:
    members:
      Foo:
        id: otherFoo
        versions:
          1:
            properties:
              enabled: {type: boolean}
specifications:
  test:
    members:
      Thing:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: test, name: Foo}
          2:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: test, name: Foo, version: 2}
              - {namespace: other, name: Foo}
      ProxyRelationship:
        versions:
          1:
            traits:
              - {namespace: usage, name: Relationship}
              - {namespace: test, name: Proxy}
`

func mustBuild(t *testing.T, src string) *Catalog {
	t.Helper()
	def, err := Parse([]byte(src), "yaml")
	require.NoError(t, err)
	cat, err := Build(def, DefaultOptions())
	require.NoError(t, err)
	return cat
}

func buildErr(t *testing.T, src string) error {
	t.Helper()
	def, err := Parse([]byte(src), "yaml")
	require.NoError(t, err)
	_, err = Build(def, DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	return err
}

func TestBuild_VersionedFamilies(t *testing.T) {
	cat := mustBuild(t, baseDefinition)

	f := cat.TraitFamily("test", "Foo")
	require.NotNil(t, f)
	require.Len(t, f.Versions, 2)
	assert.Equal(t, "FooTrait", f.ShortName())
	assert.Equal(t, "FooTrait_v1", f.Versions[0].Name())
	assert.Equal(t, "FooTrait_v2", f.Versions[1].Name())
	assert.Same(t, f.Versions[1], f.Latest())

	assert.Equal(t, "foo", f.Versions[0].ID)
	assert.Equal(t, "foo.v2", f.Versions[1].ID)

	require.Len(t, f.Versions[0].Properties, 1)
	assert.Equal(t, Property{Key: "name", Kind: trait.String}, f.Versions[0].Properties[0])
	require.Len(t, f.Versions[1].Properties, 2)
	assert.Equal(t, "count", f.Versions[1].Properties[0].Key, "properties sorted by key")
}

func TestBuild_NamespacesSorted(t *testing.T) {
	cat := mustBuild(t, baseDefinition)
	var names []string
	for _, ns := range cat.TraitNamespaces {
		names = append(names, ns.Name)
	}
	assert.Equal(t, []string{"other", "test", "usage"}, names)
	assert.Len(t, cat.TraitClasses(), 6)
	assert.Len(t, cat.SpecificationClasses(), 3)
}

func TestBuild_SpecificationMembers(t *testing.T) {
	cat := mustBuild(t, baseDefinition)
	f := cat.SpecificationFamily("test", "Thing")
	require.NotNil(t, f)

	v1 := f.Versions[0]
	assert.Equal(t, "ThingSpecification_v1", v1.Name())
	assert.False(t, v1.Relationship)
	assert.True(t, v1.TraitSet().Equal(trait.NewSet("entity", "foo")))
	require.Len(t, v1.Members, 2)
	assert.Equal(t, "EntityTrait", v1.Members[0].Accessor)
	assert.Equal(t, "FooTrait", v1.Members[1].Accessor)

	v2 := f.Versions[1]
	assert.True(t, v2.TraitSet().Equal(trait.NewSet("entity", "foo.v2", "otherFoo")))
	var accessors []string
	for _, m := range v2.Members {
		accessors = append(accessors, m.Accessor)
		assert.True(t, v2.TraitSet().Has(m.Trait.ID), "accessor %s outside trait set", m.Accessor)
	}
	assert.Equal(t, []string{"EntityTrait", "OtherFooTrait", "TestFooTrait"}, accessors)

	rel := cat.SpecificationFamily("test", "ProxyRelationship").Latest()
	assert.True(t, rel.Relationship)
	assert.Equal(t, "ProxyRelationshipSpecification_v1", rel.Name())
}

func TestBuild_DefaultsVersionToOne(t *testing.T) {
	cat := mustBuild(t, baseDefinition)
	v1 := cat.SpecificationFamily("test", "Thing").Versions[0]
	for _, m := range v1.Members {
		assert.Equal(t, 1, m.Trait.Version)
	}
}

func TestBuild_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "duplicate id",
			src: `
traits:
  a:
    members:
      One: {id: same, versions: {1: {}}}
      Two: {id: same, versions: {1: {}}}
`,
			want: `duplicate trait id "same"`,
		},
		{
			name: "versioned id collides",
			src: `
traits:
  a:
    members:
      One: {id: x, versions: {1: {}, 2: {}}}
      Two: {id: x.v2, versions: {1: {}}}
`,
			want: `duplicate trait id "x.v2"`,
		},
		{
			name: "unknown type",
			src: `
traits:
  a:
    members:
      One:
        versions:
          1:
            properties:
              tags: {type: list}
`,
			want: `unknown property type "list"`,
		},
		{
			name: "version gap",
			src: `
traits:
  a:
    members:
      One: {versions: {1: {}, 3: {}}}
`,
			want: "versions must be contiguous from 1",
		},
		{
			name: "no versions",
			src: `
traits:
  a:
    members:
      One: {}
`,
			want: "no versions declared",
		},
		{
			name: "bad member name",
			src: `
traits:
  a:
    members:
      lower: {versions: {1: {}}}
`,
			want: `invalid member name "lower"`,
		},
		{
			name: "bad property key",
			src: `
traits:
  a:
    members:
      One:
        versions:
          1:
            properties:
              Bad_Key: {type: string}
`,
			want: `invalid property key "Bad_Key"`,
		},
		{
			name: "accessor clash",
			src: `
traits:
  a:
    members:
      One:
        versions:
          1:
            properties:
              name: {type: string}
              nameOr: {type: string}
`,
			want: "accessor GetNameOr clashes",
		},
		{
			name: "package clash",
			src: `
traits:
  twoDimensional:
    members:
      One: {versions: {1: {}}}
  twodimensional:
    members:
      Two: {versions: {1: {}}}
`,
			want: "maps to the same package",
		},
		{
			name: "keyword namespace",
			src: `
traits:
  func:
    members:
      One: {versions: {1: {}}}
`,
			want: `invalid namespace name "func"`,
		},
		{
			name: "unresolved reference",
			src: baseDefinition + `
  broken:
    members:
      Thing:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: test, name: Foo, version: 3}
`,
			want: "unresolved trait reference test.Foo v3",
		},
		{
			name: "neither usage trait",
			src: baseDefinition + `
  broken:
    members:
      Thing:
        versions:
          1:
            traits:
              - {namespace: test, name: Foo}
`,
			want: "exactly one of usage.Entity, usage.Relationship",
		},
		{
			name: "both usage traits",
			src: baseDefinition + `
  broken:
    members:
      ThingRelationship:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: usage, name: Relationship}
`,
			want: "exactly one of usage.Entity, usage.Relationship",
		},
		{
			name: "relationship suffix",
			src: baseDefinition + `
  broken:
    members:
      Proxy:
        versions:
          1:
            traits:
              - {namespace: usage, name: Relationship}
`,
			want: `must be named with a "Relationship" suffix`,
		},
		{
			name: "trait twice",
			src: baseDefinition + `
  broken:
    members:
      Thing:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: test, name: Foo}
              - {namespace: test, name: Foo, version: 2}
`,
			want: "trait test.Foo appears more than once",
		},
		{
			name: "generated trait identifiers collide",
			src: `
traits:
  a:
    members:
      Foo: {versions: {1: {}}}
      NewFoo: {versions: {1: {}}}
`,
			want: "traits.a.NewFoo: generated identifier NewFooTrait in package traits/a is also declared by traits.a.Foo",
		},
		{
			name: "trait set variables collide",
			src: baseDefinition + `
      AB:
        versions:
          1: {traits: [{namespace: usage, name: Entity}]}
      Ab:
        versions:
          1: {traits: [{namespace: usage, name: Entity}]}
`,
			want: "generated identifier abSpecification_v1TraitSet in package specifications/test is also declared by specifications.test.AB",
		},
		{
			name: "locale with usage trait",
			src: baseDefinition + `
  locale:
    members:
      TestLocale:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: test, name: Proxy}
`,
			want: "locale specification must not contain usage.Entity or usage.Relationship",
		},
		{
			name: "locale without suffix",
			src: baseDefinition + `
  locale:
    members:
      Test:
        versions:
          1: {traits: [{namespace: test, name: Proxy}]}
`,
			want: `locale specification "Test" must be named with a "Locale" suffix`,
		},
		{
			name: "empty trait set",
			src: baseDefinition + `
  broken:
    members:
      Thing:
        versions:
          1: {traits: []}
`,
			want: "empty trait set",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildErr(t, tt.src)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBuild_LocaleSpecifications(t *testing.T) {
	cat := mustBuild(t, baseDefinition+`
  locale:
    members:
      TestLocale:
        versions:
          1: {traits: [{namespace: test, name: Proxy}]}
`)
	f := cat.SpecificationFamily("locale", "TestLocale")
	require.NotNil(t, f)
	c := f.Latest()
	assert.True(t, c.Locale)
	assert.False(t, c.Relationship)
	assert.Equal(t, "locale", c.Kind())
	assert.Equal(t, "TestLocaleSpecification_v1", c.Name())
	assert.True(t, c.TraitSet().Equal(trait.NewSet("proxy")))

	assert.Equal(t, "entity", cat.SpecificationFamily("test", "Thing").Latest().Kind())
	assert.Equal(t, "relationship", cat.SpecificationFamily("test", "ProxyRelationship").Latest().Kind())
}

func TestBuild_CollectsAllErrors(t *testing.T) {
	err := buildErr(t, `
traits:
  a:
    members:
      One: {id: dup, versions: {1: {}}}
      Two: {id: dup, versions: {2: {}}}
      three: {versions: {1: {}}}
`)
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "versions must be contiguous")
	assert.Contains(t, err.Error(), `invalid member name "three"`)
	assert.Equal(t, "traits.a.Two.versions", se.Path, "errors sorted by path")
}

func TestParseFamilyRef(t *testing.T) {
	ref, err := ParseFamilyRef("usage.Entity")
	require.NoError(t, err)
	assert.Equal(t, FamilyRef{Namespace: "usage", Member: "Entity"}, ref)
	assert.Equal(t, "usage.Entity", ref.String())

	for _, bad := range []string{"usage", "Usage.Entity", "usage.entity", ""} {
		_, err := ParseFamilyRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuild_CustomUsageTraits(t *testing.T) {
	def, err := Parse([]byte(`
traits:
  kinds:
    members:
      Asset: {versions: {1: {}}}
      Link: {versions: {1: {}}}
specifications:
  things:
    members:
      Shot:
        versions:
          1:
            traits:
              - {namespace: kinds, name: Asset}
`), "yaml")
	require.NoError(t, err)

	_, err = Build(def, DefaultOptions())
	require.Error(t, err)

	opts := Options{
		EntityTrait:       FamilyRef{Namespace: "kinds", Member: "Asset"},
		RelationshipTrait: FamilyRef{Namespace: "kinds", Member: "Link"},
	}
	cat, err := Build(def, opts)
	require.NoError(t, err)
	assert.Len(t, cat.SpecificationClasses(), 1)
}
