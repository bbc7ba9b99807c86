package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mediacreation/trait"
)

type testSpec struct {
	set  trait.Set
	data trait.Data
}

func (s testSpec) TraitSet() trait.Set { return s.set }
func (s testSpec) TraitsData() trait.Data { return s.data }

func class(name string, ids ...string) Class {
	set := trait.NewSet(ids...)
	return Class{
		Name:      name + "_v1",
		ShortName: name,
		Version:   1,
		TraitSet:  set,
		Create:    Creator(func() testSpec { return testSpec{set: set, data: NewTraitsData(set)} }),
		Wrap:      Wrapper(func(d trait.Data) testSpec { return testSpec{set: set, data: d} }),
	}
}

func TestNewTraitsData_ExactlyTheSet(t *testing.T) {
	set := trait.NewSet("entity", "image", "pixelBased")
	d := NewTraitsData(set)
	assert.True(t, d.TraitSet().Equal(set))
	for _, id := range set.IDs() {
		assert.Empty(t, d.TraitPropertyKeys(id))
	}
}

func TestConforms(t *testing.T) {
	set := trait.NewSet("entity", "image", "locatableContent")

	d := trait.NewTraitsData("entity", "image", "locatableContent", "extra")
	assert.NoError(t, Conforms(d, set))

	err := Conforms(trait.NewTraitsData("entity"), set)
	require.ErrorIs(t, err, ErrMissingTraits)
	var me *MissingTraitsError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, []string{"image", "locatableContent"}, me.Missing)

	assert.ErrorIs(t, Conforms(nil, set), ErrMissingTraits)
}

func TestClass_CreateAndWrap(t *testing.T) {
	c := class("Image", "entity", "image")
	inst := c.Create()
	assert.True(t, inst.TraitsData().TraitSet().Equal(c.TraitSet))

	d := trait.NewTraitsData("entity")
	wrapped := c.Wrap(d)
	assert.Same(t, d, wrapped.TraitsData())
	assert.Error(t, Conforms(wrapped.TraitsData(), wrapped.TraitSet()))
}

func TestCreatorAndWrapper(t *testing.T) {
	set := trait.NewSet("entity")
	create := Creator(func() testSpec { return testSpec{set: set, data: NewTraitsData(set)} })
	inst, ok := create().(testSpec)
	require.True(t, ok)
	assert.True(t, inst.TraitsData().TraitSet().Equal(set))

	d := trait.NewTraitsData()
	wrapped, ok := Wrapper(func(d trait.Data) testSpec { return testSpec{set: set, data: d} })(d).(testSpec)
	require.True(t, ok)
	assert.Same(t, d, wrapped.data)
}

func TestIndex_Match(t *testing.T) {
	image := class("Image", "entity", "image", "pixelBased")
	sequence := class("RasterImageSequence", "entity", "image", "pixelBased", "frameRanged")
	proxy := class("ProxyRelationship", "relationship", "proxy")
	x := NewIndex(image, sequence, proxy)
	require.Equal(t, 3, x.Len())

	got := x.Match(trait.NewSet("entity", "image", "pixelBased", "frameRanged", "locatableContent"))
	require.Len(t, got, 2)
	assert.Equal(t, "RasterImageSequence_v1", got[0].Name, "most specific first")
	assert.Equal(t, "Image_v1", got[1].Name)

	assert.Empty(t, x.Match(trait.NewSet("entity")))
	assert.Empty(t, x.Match(trait.NewSet("unknown")))

	exact := x.Exact(trait.NewSet("relationship", "proxy"))
	require.Len(t, exact, 1)
	assert.Equal(t, "ProxyRelationship_v1", exact[0].Name)
	assert.Empty(t, x.Exact(trait.NewSet("relationship", "proxy", "extra")))
}

func TestIndex_Refines(t *testing.T) {
	image := class("Image", "entity", "image", "pixelBased")
	sequence := class("RasterImageSequence", "entity", "image", "pixelBased", "frameRanged")
	x := NewIndex(image, sequence)

	refines := x.Refines(sequence)
	require.Len(t, refines, 1)
	assert.Equal(t, "Image_v1", refines[0].Name)
	assert.Empty(t, x.Refines(image))
}

func TestIndex_Empty(t *testing.T) {
	x := NewIndex()
	assert.Equal(t, 0, x.Len())
	assert.Empty(t, x.Match(trait.NewSet("a")))
}
