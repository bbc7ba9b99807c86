// Package trait is the typed lens over a generic property container.
//
// A trait is a named facet of an entity description, such as "has a
// location". Trait data lives in a Data container keyed by trait id and
// property key; a trait value only binds an id to a container and checks
// kinds on the way in and out.
//
// Reading or writing a property of a trait the container does not have is
// a caller error and always fails with ErrTraitNotPresent, with or without
// a default. Writers never add traits implicitly: imbue the trait first.
package trait
