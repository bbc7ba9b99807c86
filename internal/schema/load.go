package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agentic-research/mediacreation/api"
)

// Load reads a definition file. Files ending in .json are decoded as JSON,
// anything else as YAML. Unknown fields are rejected in both formats.
func Load(path string) (*api.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// LoadCatalog loads and builds a definition in one step.
func LoadCatalog(path string, opts Options) (*Catalog, error) {
	def, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(def, opts)
}

// Parse decodes a definition. format is "json" or "yaml".
func Parse(data []byte, format string) (*api.Definition, error) {
	var def api.Definition
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown definition format %q", format)
	}
	return &def, nil
}

// LoadDocument reads a definition file as an untyped JSON-like tree
// (maps with string keys, slices, scalars), for selector queries.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	var doc any
	if formatOf(path) == "json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: decode json: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: decode yaml: %w", path, err)
	}
	return normalize(doc), nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}

// normalize turns YAML's map[any]any (produced for non-string keys such as
// version numbers) into map[string]any.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			t[k] = normalize(child)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		for i, child := range t {
			t[i] = normalize(child)
		}
		return t
	default:
		return v
	}
}
