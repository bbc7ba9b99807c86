// Package config loads the traitgen project file, traitgen.yml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/agentic-research/mediacreation/internal/naming"
	"github.com/agentic-research/mediacreation/internal/schema"
)

// FileName is the config file traitgen looks for in the working directory.
const FileName = "traitgen.yml"

// Config is the traitgen project configuration.
type Config struct {
	// Definitions is the YAML or JSON definition file, or a doublestar
	// pattern matching several that are merged.
	Definitions string `yaml:"definitions" validate:"required"`
	// Output is the directory generated packages are written below.
	Output string `yaml:"output" validate:"required"`
	// ImportPath is the Go import path of Output.
	ImportPath string      `yaml:"importPath" validate:"required"`
	Usage      UsageConfig `yaml:"usage"`
	// Lint rejects generated code with undocumented exported declarations.
	Lint bool `yaml:"lint"`
}

// UsageConfig names the trait families that mark a specification as an
// entity or a relationship, as namespace.Member.
type UsageConfig struct {
	Entity       string `yaml:"entity" validate:"required,nefield=Relationship"`
	Relationship string `yaml:"relationship" validate:"required"`
	// Locales are the specification namespaces exempt from the usage
	// rule.
	Locales []string `yaml:"locales"`
}

// Default returns a Config with the conventional layout.
func Default() *Config {
	opts := schema.DefaultOptions()
	return &Config{
		Definitions: "traits.yml",
		Output:      ".",
		Usage: UsageConfig{
			Entity:       opts.EntityTrait.String(),
			Relationship: opts.RelationshipTrait.String(),
			Locales:      opts.LocaleNamespaces,
		},
		Lint: true,
	}
}

// Load reads path over the defaults. Relative paths in the file are
// resolved against the directory holding it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.Definitions = resolve(dir, cfg.Definitions)
	cfg.Output = resolve(dir, cfg.Output)
	return cfg, nil
}

// LoadOrDefault loads path when it exists and returns the defaults
// otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Validate checks that the configuration is usable for generation.
func (c *Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}
	if c.Usage.Entity != "" && c.Usage.Relationship != "" {
		if _, err := c.SchemaOptions(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "nefield":
		param := fe.Param()
		return fmt.Errorf("%s must differ from %s", field, strings.ToLower(param[:1])+param[1:])
	default:
		return fmt.Errorf("%s failed %s validation", field, fe.Tag())
	}
}

// DefinitionFiles expands Definitions. A plain path is returned as is;
// a pattern must match at least one file.
func (c *Config) DefinitionFiles() ([]string, error) {
	if !strings.ContainsAny(c.Definitions, "*?[{") {
		return []string{c.Definitions}, nil
	}
	matches, err := doublestar.FilepathGlob(c.Definitions)
	if err != nil {
		return nil, fmt.Errorf("definitions pattern %q: %w", c.Definitions, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("definitions pattern %q matched no files", c.Definitions)
	}
	return matches, nil
}

// SchemaOptions converts the usage settings into build options.
func (c *Config) SchemaOptions() (schema.Options, error) {
	entity, err := schema.ParseFamilyRef(c.Usage.Entity)
	if err != nil {
		return schema.Options{}, fmt.Errorf("usage.entity: %w", err)
	}
	relationship, err := schema.ParseFamilyRef(c.Usage.Relationship)
	if err != nil {
		return schema.Options{}, fmt.Errorf("usage.relationship: %w", err)
	}
	for _, ns := range c.Usage.Locales {
		if !naming.IsNamespace(ns) {
			return schema.Options{}, fmt.Errorf("usage.locales: invalid namespace %q", ns)
		}
	}
	return schema.Options{
		EntityTrait:       entity,
		RelationshipTrait: relationship,
		LocaleNamespaces:  c.Usage.Locales,
	}, nil
}
