package trait

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	locatableContent = "locatableContent"
	location         = "location"
)

func TestGetString_Scenario(t *testing.T) {
	d := NewTraitsData()

	_, _, err := GetString(d, locatableContent, location)
	require.ErrorIs(t, err, ErrTraitNotPresent)

	d.AddTrait(locatableContent)
	got, ok, err := GetString(d, locatableContent, location)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)

	require.NoError(t, SetString(d, locatableContent, location, "file:///a"))
	got, ok, err = GetString(d, locatableContent, location)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file:///a", got)
}

func TestGetString_WrongStoredType(t *testing.T) {
	d := NewTraitsData(locatableContent)
	d.SetTraitProperty(locatableContent, location, IntValue(123))

	_, _, err := GetString(d, locatableContent, location)
	require.ErrorIs(t, err, ErrTypeMismatch)
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "invalid stored value type: '123' [int]", err.Error())
	assert.True(t, te.Stored)

	got, err := GetStringOr(d, locatableContent, location, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestGetOr_TraitMissingIgnoresDefault(t *testing.T) {
	d := NewTraitsData()
	_, err := GetStringOr(d, locatableContent, location, "x")
	assert.ErrorIs(t, err, ErrTraitNotPresent)
	_, err = GetIntOr(nil, "frameRanged", "startFrame", 1)
	assert.ErrorIs(t, err, ErrTraitNotPresent)
}

func TestGetOr_UnsetReturnsDefault(t *testing.T) {
	d := NewTraitsData("pixelBased")
	got, err := GetFloatOr(d, "pixelBased", "pixelAspectRatio", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestSet_TraitMissingFails(t *testing.T) {
	d := NewTraitsData()
	err := SetBool(d, "managed", "exclusive", true)
	require.ErrorIs(t, err, ErrTraitNotPresent)
	assert.False(t, d.HasTrait("managed"), "setters never imbue")
}

func TestRoundTrip_AllKinds(t *testing.T) {
	d := NewTraitsData("t")

	require.NoError(t, SetBool(d, "t", "b", true))
	b, ok, err := GetBool(d, "t", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, b)

	require.NoError(t, SetInt(d, "t", "i", -3))
	i, _, err := GetInt(d, "t", "i")
	require.NoError(t, err)
	assert.Equal(t, int64(-3), i)

	require.NoError(t, SetFloat(d, "t", "f", 2.5))
	f, _, err := GetFloat(d, "t", "f")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	require.NoError(t, SetString(d, "t", "s", ""))
	s, ok, err := GetString(d, "t", "s")
	require.NoError(t, err)
	assert.True(t, ok, "empty string is a set value")
	assert.Empty(t, s)
}

func TestProperty_SetRejectsWrongKind(t *testing.T) {
	d := NewTraitsData(locatableContent)
	p := Property{Key: location, Kind: String}

	err := p.Set(d, locatableContent, IntValue(1))
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, "location must be a str", err.Error())
	assert.False(t, d.HasTraitProperty(locatableContent, location))

	require.NoError(t, p.Set(d, locatableContent, StringValue("/tmp/a.exr")))
	v, err := p.GetOr(d, locatableContent, StringValue("unused"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.exr", v.String())
}

func TestCheckProperties(t *testing.T) {
	props := []Property{
		{Key: "startFrame", Kind: Int},
		{Key: "endFrame", Kind: Int},
		{Key: "framesPerSecond", Kind: Float},
	}
	d := NewTraitsData("frameRanged")
	require.NoError(t, CheckProperties(d, "frameRanged", props))

	d.SetTraitProperty("frameRanged", "startFrame", StringValue("1001"))
	d.SetTraitProperty("frameRanged", "framesPerSecond", IntValue(24))
	err := CheckProperties(d, "frameRanged", props)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var te *TypeError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "startFrame", te.Key)

	assert.ErrorIs(t, CheckProperties(d, "missing", props), ErrTraitNotPresent)
}

func TestNotPresentError_Message(t *testing.T) {
	err := &NotPresentError{TraitID: "clip", Key: "name"}
	assert.Equal(t, `trait "clip" is not present in the traits data (property "name")`, err.Error())
	assert.False(t, errors.Is(err, ErrTypeMismatch))
}

func TestImbue(t *testing.T) {
	d := NewTraitsData()
	Imbue(d, "clip")
	assert.True(t, d.HasTrait("clip"))

	assert.NotPanics(t, func() { Imbue(nil, "clip") })

	var typedNil *TraitsData
	assert.NotPanics(t, func() { Imbue(typedNil, "clip") })
	assert.False(t, IsImbued(typedNil, "clip"))
}
