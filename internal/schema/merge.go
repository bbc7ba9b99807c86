package schema

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/agentic-research/mediacreation/api"
)

// Merge combines definitions split across files. Namespaces may not be
// declared in more than one definition. Package and description come from
// the first definition that sets them; a conflicting package is an error.
func Merge(defs ...*api.Definition) (*api.Definition, error) {
	out := &api.Definition{
		Traits:         map[string]api.TraitNamespace{},
		Specifications: map[string]api.SpecificationNamespace{},
	}
	var errs []error
	for _, def := range defs {
		switch {
		case out.Package == "":
			out.Package = def.Package
		case def.Package != "" && def.Package != out.Package:
			errs = append(errs, &Error{Path: "package", Message: fmt.Sprintf("conflicting packages %q and %q", out.Package, def.Package)})
		}
		if out.Description == "" {
			out.Description = def.Description
		}
		for _, name := range slices.Sorted(maps.Keys(def.Traits)) {
			if _, dup := out.Traits[name]; dup {
				errs = append(errs, &Error{Path: "traits." + name, Message: "namespace declared in more than one definition"})
				continue
			}
			out.Traits[name] = def.Traits[name]
		}
		for _, name := range slices.Sorted(maps.Keys(def.Specifications)) {
			if _, dup := out.Specifications[name]; dup {
				errs = append(errs, &Error{Path: "specifications." + name, Message: "namespace declared in more than one definition"})
				continue
			}
			out.Specifications[name] = def.Specifications[name]
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}

// LoadFiles loads and merges every definition in paths.
func LoadFiles(paths ...string) (*api.Definition, error) {
	defs := make([]*api.Definition, 0, len(paths))
	for _, p := range paths {
		def, err := Load(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return Merge(defs...)
}
