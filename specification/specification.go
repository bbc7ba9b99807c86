// Package specification describes named, fixed sets of traits.
//
// A specification gives a property container a recognizable shape: "this
// is a raster image sequence", "this is a proxy-of relationship". Generated
// specification classes hold their trait set and a reference to the
// container they are bound to, nothing else.
package specification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agentic-research/mediacreation/trait"
)

// ErrMissingTraits is the sentinel behind *MissingTraitsError.
var ErrMissingTraits = errors.New("traits data does not conform to specification")

// Specification is implemented by every generated specification class.
type Specification interface {
	// TraitSet returns the immutable set of trait ids that make up the
	// specification.
	TraitSet() trait.Set
	// TraitsData returns the container the specification is bound to.
	TraitsData() trait.Data
}

// Class describes one versioned specification class.
type Class struct {
	// Name is the versioned class name, e.g. ImageSpecification_v1.
	Name string
	// ShortName is the unversioned alias, e.g. ImageSpecification.
	ShortName string
	Version   int
	TraitSet  trait.Set
	// Create returns an instance bound to a fresh container imbued with
	// TraitSet.
	Create func() Specification
	// Wrap binds an instance to an existing container.
	Wrap func(trait.Data) Specification
}

// Creator adapts a generated CreateX function to Class.Create.
func Creator[S Specification](create func() S) func() Specification {
	return func() Specification { return create() }
}

// Wrapper adapts a generated NewX function to Class.Wrap.
func Wrapper[S Specification](wrap func(trait.Data) S) func(trait.Data) Specification {
	return func(data trait.Data) Specification { return wrap(data) }
}

// NewTraitsData returns a container imbued with exactly the traits in set
// and no properties.
func NewTraitsData(set trait.Set) *trait.TraitsData {
	return trait.NewTraitsData(set.IDs()...)
}

// MissingTraitsError lists the traits of a specification absent from a
// container.
type MissingTraitsError struct {
	Missing []string
}

func (e *MissingTraitsError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrMissingTraits, strings.Join(e.Missing, ", "))
}

func (e *MissingTraitsError) Is(target error) bool {
	return target == ErrMissingTraits
}

// Conforms reports whether data has every trait in set. Extra traits are
// allowed.
func Conforms(data trait.Data, set trait.Set) error {
	var missing []string
	for _, id := range set.IDs() {
		if !trait.IsImbued(data, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &MissingTraitsError{Missing: missing}
	}
	return nil
}
