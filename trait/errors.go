package trait

import (
	"errors"
	"fmt"
)

var (
	// ErrTraitNotPresent is returned when a property of a trait is read or
	// written on a container that does not have the trait. Check
	// membership (or imbue the trait) first.
	ErrTraitNotPresent = errors.New("trait not present")
	// ErrTypeMismatch is the sentinel behind every *TypeError.
	ErrTypeMismatch = errors.New("property type mismatch")
)

// NotPresentError names the trait that was missing.
type NotPresentError struct {
	TraitID string
	Key     string
}

func (e *NotPresentError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("trait %q is not present in the traits data", e.TraitID)
	}
	return fmt.Sprintf("trait %q is not present in the traits data (property %q)", e.TraitID, e.Key)
}

// Is makes errors.Is(err, ErrTraitNotPresent) hold.
func (e *NotPresentError) Is(target error) bool {
	return target == ErrTraitNotPresent
}

// TypeError reports a property value of the wrong kind. Stored is true
// when the value was found in the container, false when it was rejected
// on write.
type TypeError struct {
	TraitID string
	Key     string
	Want    Kind
	Value   Value
	Stored  bool
}

func (e *TypeError) Error() string {
	if e.Stored {
		return fmt.Sprintf("invalid stored value type: '%s' [%s]", e.Value, e.Value.Kind())
	}
	return fmt.Sprintf("%s must be a %s", e.Key, e.Want)
}

// Is makes errors.Is(err, ErrTypeMismatch) hold.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
