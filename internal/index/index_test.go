package index

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mediacreation/internal/schema"
)

const definition = `
package: example
traits:
  usage:
    members:
      Entity: {versions: {1: {}}}
      Relationship: {versions: {1: {}}}
  content:
    members:
      LocatableContent:
        versions:
          1:
            properties:
              location: {type: string, description: A URL.}
      Named:
        description: Has a name.
        versions:
          1:
            properties:
              name: {type: string}
          2:
            properties:
              name: {type: string}
              qualified: {type: boolean}
specifications:
  files:
    members:
      File:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: content, name: LocatableContent}
      NamedFile:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: content, name: LocatableContent}
              - {namespace: content, name: Named, version: 2}
`

func catalog(t *testing.T) *schema.Catalog {
	t.Helper()
	def, err := schema.Parse([]byte(definition), "yaml")
	require.NoError(t, err)
	cat, err := schema.Build(def, schema.DefaultOptions())
	require.NoError(t, err)
	return cat
}

func open(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	id, err := db.Export(ctx, catalog(t))
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	stats, err := db.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		ExportID:       id,
		Package:        "example",
		Traits:         5,
		Properties:     4,
		Specifications: 2,
	}, stats)

	specs, err := db.SpecificationsWithTrait(ctx, "locatableContent")
	require.NoError(t, err)
	assert.Equal(t, []string{"FileSpecification_v1", "NamedFileSpecification_v1"}, specs)

	specs, err = db.SpecificationsWithTrait(ctx, "named.v2")
	require.NoError(t, err)
	assert.Equal(t, []string{"NamedFileSpecification_v1"}, specs)

	specs, err = db.SpecificationsWithTrait(ctx, "named")
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestExport_Rows(t *testing.T) {
	ctx := context.Background()
	db := open(t)
	_, err := db.Export(ctx, catalog(t))
	require.NoError(t, err)

	var kind, desc string
	require.NoError(t, db.db.QueryRowContext(ctx,
		`SELECT kind, description FROM properties WHERE trait_id = 'locatableContent' AND key = 'location'`).Scan(&kind, &desc))
	assert.Equal(t, "string", kind)
	assert.Equal(t, "A URL.", desc)

	var target string
	require.NoError(t, db.db.QueryRowContext(ctx,
		`SELECT target FROM aliases WHERE kind = 'trait' AND short = 'NamedTrait'`).Scan(&target))
	assert.Equal(t, "NamedTrait_v2", target)

	var class, traitDesc string
	require.NoError(t, db.db.QueryRowContext(ctx,
		`SELECT class, description FROM traits WHERE id = 'named'`).Scan(&class, &traitDesc))
	assert.Equal(t, "NamedTrait_v1", class)
	assert.Equal(t, "Has a name.", traitDesc, "falls back to the family description")

	var specKind string
	require.NoError(t, db.db.QueryRowContext(ctx,
		`SELECT kind FROM specifications WHERE class = 'FileSpecification_v1'`).Scan(&specKind))
	assert.Equal(t, "entity", specKind)
}

func TestExport_Replaces(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	first, err := db.Export(ctx, catalog(t))
	require.NoError(t, err)
	second, err := db.Export(ctx, catalog(t))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	stats, err := db.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, stats.ExportID)
	assert.Equal(t, 5, stats.Traits, "re-export does not duplicate rows")
}

func TestStats_Empty(t *testing.T) {
	_, err := open(t).Stats(context.Background())
	assert.Error(t, err)
}
