package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFiles_Merges(t *testing.T) {
	dir := t.TempDir()
	usage := filepath.Join(dir, "usage.yml")
	require.NoError(t, os.WriteFile(usage, []byte(`
package: split
description: Split across files.
traits:
  usage:
    members:
      Entity: {versions: {1: {}}}
      Relationship: {versions: {1: {}}}
`), 0o644))
	images := filepath.Join(dir, "images.json")
	require.NoError(t, os.WriteFile(images, []byte(`{
  "traits": {"image": {"members": {"Raster": {"versions": {"1": {}}}}}},
  "specifications": {"image": {"members": {"Still": {"versions": {"1": {"traits": [
    {"namespace": "usage", "name": "Entity"},
    {"namespace": "image", "name": "Raster"}
  ]}}}}}}
}`), 0o644))

	def, err := LoadFiles(usage, images)
	require.NoError(t, err)
	assert.Equal(t, "split", def.Package)
	assert.Equal(t, "Split across files.\n", def.Description)

	cat, err := Build(def, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, cat.TraitClasses(), 3)
	assert.Equal(t, "StillSpecification_v1", cat.SpecificationClasses()[0].Name())
}

func TestMerge_Conflicts(t *testing.T) {
	a, err := Parse([]byte(`
package: one
traits:
  usage:
    members:
      Entity: {versions: {1: {}}}
`), "yaml")
	require.NoError(t, err)
	b, err := Parse([]byte(`
package: two
traits:
  usage:
    members:
      Relationship: {versions: {1: {}}}
`), "yaml")
	require.NoError(t, err)

	_, err = Merge(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), `conflicting packages "one" and "two"`)
	assert.Contains(t, err.Error(), "traits.usage: namespace declared in more than one definition")
}

func TestLoadFiles_MissingFile(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
