package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const definitions = `
package: catalog
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
  content:
    members:
      LocatableContent:
        description: Content that can be retrieved from a URL.
        versions:
          1:
            properties:
              location: {type: string}
specifications:
  content:
    members:
      Document:
        versions:
          1:
            traits:
              - {namespace: usage, name: Entity}
          2:
            traits:
              - {namespace: usage, name: Entity}
              - {namespace: content, name: LocatableContent}
`

// project writes a definition file and config into a temp dir and returns
// the config path.
func project(t *testing.T, defs string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "traits.yml"), []byte(defs), 0o644))
	cfg := "definitions: traits.yml\noutput: gen\nimportPath: example.com/catalog/gen\n"
	path := filepath.Join(dir, "traitgen.yml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerate_WritesPackages(t *testing.T) {
	cfg := project(t, definitions)
	out, err := run(t, "generate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 4 files")
	assert.Contains(t, out, "(4 changed)")

	gen := filepath.Join(filepath.Dir(cfg), "gen")
	for _, p := range []string{
		"doc.go",
		"traits/content/content.go",
		"traits/usage/usage.go",
		"specifications/content/content.go",
	} {
		assert.FileExists(t, filepath.Join(gen, filepath.FromSlash(p)))
	}

	src, err := os.ReadFile(filepath.Join(gen, "specifications", "content", "content.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "type DocumentSpecification_v2 struct")
	assert.Contains(t, string(src), `"example.com/catalog/gen/traits/content"`)

	out, err = run(t, "generate", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "(0 changed)", "regenerating identical output rewrites nothing")
}

func TestGenerate_Check(t *testing.T) {
	cfg := project(t, definitions)

	_, err := run(t, "generate", "--check", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 generated files are out of date")

	_, err = run(t, "generate", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "generate", "--check", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "4 generated files are up to date")

	doc := filepath.Join(filepath.Dir(cfg), "gen", "doc.go")
	require.NoError(t, os.WriteFile(doc, []byte("package catalog\n"), 0o644))
	out, err = run(t, "generate", "--check", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, out, "stale: doc.go")
}

func TestGenerate_FlagOverrides(t *testing.T) {
	cfg := project(t, definitions)
	other := t.TempDir()
	out, err := run(t, "generate", "--config", cfg, "--output", other, "--import-path", "example.com/other")
	require.NoError(t, err)
	assert.Contains(t, out, other)

	src, err := os.ReadFile(filepath.Join(other, "doc.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `"example.com/other/specifications/content"`)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := project(t, definitions)
	_, err := run(t, "generate", "--config", cfg, "--import-path", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "importPath is required")
}

func TestValidate(t *testing.T) {
	cfg := project(t, definitions)
	out, err := run(t, "validate", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "OK: 3 trait classes, 2 specification classes\n", out)
}

func TestValidate_ReportsDefinitionErrors(t *testing.T) {
	cfg := project(t, strings.Replace(definitions, "{type: string}", "{type: list}", 1))
	_, err := run(t, "validate", "--config", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown property type "list"`)
}

func TestValidate_Baseline(t *testing.T) {
	cfg := project(t, definitions)
	dir := filepath.Dir(cfg)
	baseline := filepath.Join(dir, "baseline.yml")
	require.NoError(t, os.WriteFile(baseline, []byte(definitions), 0o644))

	_, err := run(t, "validate", "--config", cfg, "--baseline", baseline)
	require.NoError(t, err)

	// Changing a published revision is incompatible.
	changed := strings.Replace(definitions, "{type: string}", "{type: integer}", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "traits.yml"), []byte(changed), 0o644))
	_, err = run(t, "validate", "--config", cfg, "--baseline", baseline)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LocatableContentTrait_v1 changed its properties")
}

func TestInspect(t *testing.T) {
	cfg := project(t, definitions)
	out, err := run(t, "inspect", "--config", cfg)
	require.NoError(t, err)

	assert.Contains(t, out, "content.LocatableContentTrait_v1  id=locatableContent  [location:string]")
	assert.Contains(t, out, "content.LocatableContentTrait = LocatableContentTrait_v1")
	assert.Contains(t, out, "content.DocumentSpecification_v2  (entity)  {entity, locatableContent}")
	assert.Contains(t, out, "content.DocumentSpecification = DocumentSpecification_v2")
	assert.Contains(t, out, "refines: DocumentSpecification_v1")
}

func TestQuery(t *testing.T) {
	cfg := project(t, definitions)
	out, err := run(t, "query", "--config", cfg, "$.traits.usage.members.Entity.id")
	require.NoError(t, err)
	assert.Equal(t, "\"entity\"\n", out)

	_, err = run(t, "query", "--config", cfg, "$[[[")
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	cfg := project(t, definitions)
	db := filepath.Join(t.TempDir(), "catalog.db")
	out, err := run(t, "index", "--config", cfg, db)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported catalog to "+db+": 3 traits, 1 properties, 2 specifications")
	assert.FileExists(t, db)
}

func TestWatchTarget(t *testing.T) {
	root, pattern := watchTarget(filepath.Join("defs", "traits.yml"))
	assert.Equal(t, "defs", root)
	assert.Equal(t, "traits.yml", pattern)

	root, pattern = watchTarget("defs/**/*.yml")
	assert.Equal(t, "defs", root)
	assert.Equal(t, "**/*.yml", pattern)
}
