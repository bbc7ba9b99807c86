package schema

import (
	"errors"
	"fmt"
	"slices"
)

// CheckCompatible compares current against a previously released
// baseline. Existing revisions are immutable: a revision that disappeared,
// or whose id, properties or trait set changed, is reported. New families
// and new revisions are always allowed.
func CheckCompatible(baseline, current *Catalog) error {
	var errs []error
	report := func(path, format string, args ...any) {
		errs = append(errs, &Error{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	for _, old := range baseline.TraitClasses() {
		path := fmt.Sprintf("traits.%s.%s.versions.%d", old.Family.Namespace, old.Family.Member, old.Version)
		f := current.TraitFamily(old.Family.Namespace, old.Family.Member)
		if f == nil || old.Version > len(f.Versions) {
			report(path, "%s was removed", old.Name())
			continue
		}
		cur := f.Versions[old.Version-1]
		if cur.ID != old.ID {
			report(path, "%s changed id from %q to %q", old.Name(), old.ID, cur.ID)
		}
		if !slices.Equal(propertySignature(old), propertySignature(cur)) {
			report(path, "%s changed its properties from %v to %v",
				old.Name(), propertySignature(old), propertySignature(cur))
		}
	}

	for _, old := range baseline.SpecificationClasses() {
		path := fmt.Sprintf("specifications.%s.%s.versions.%d", old.Family.Namespace, old.Family.Member, old.Version)
		f := current.SpecificationFamily(old.Family.Namespace, old.Family.Member)
		if f == nil || old.Version > len(f.Versions) {
			report(path, "%s was removed", old.Name())
			continue
		}
		cur := f.Versions[old.Version-1]
		if !cur.TraitSet().Equal(old.TraitSet()) {
			report(path, "%s changed its trait set from %s to %s", old.Name(), old.TraitSet(), cur.TraitSet())
		}
	}
	return errors.Join(errs...)
}

func propertySignature(c *TraitClass) []string {
	sig := make([]string, len(c.Properties))
	for i, p := range c.Properties {
		sig[i] = p.Key + ":" + p.Kind.DefinitionName()
	}
	return sig
}
