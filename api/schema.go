package api

// Definition is the root of a trait/specification definition file. It is
// the source of truth the generator turns into Go packages.
type Definition struct {
	// Package names the catalog, e.g. "mediacreation".
	Package string `json:"package" yaml:"package"`
	// Description is copied into the generated package documentation.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Traits groups trait members by namespace.
	Traits map[string]TraitNamespace `json:"traits,omitempty" yaml:"traits,omitempty"`
	// Specifications groups specification members by namespace.
	Specifications map[string]SpecificationNamespace `json:"specifications,omitempty" yaml:"specifications,omitempty"`
}

// TraitNamespace is one namespace of traits, e.g. "twoDimensional".
type TraitNamespace struct {
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Members     map[string]TraitMember `json:"members" yaml:"members"`
}

// TraitMember is a trait family: every revision of one short name.
type TraitMember struct {
	// ID is the base trait identifier. Version 1 uses it as is, later
	// versions append ".vN". Defaults to the member name in lowerCamel.
	ID          string               `json:"id,omitempty" yaml:"id,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Versions    map[int]TraitVersion `json:"versions" yaml:"versions"`
}

// TraitVersion is the immutable property contract of one revision.
type TraitVersion struct {
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Property declares a typed, independently optional trait property.
type Property struct {
	// Type is one of string, integer, float, boolean.
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SpecificationNamespace is one namespace of specifications.
type SpecificationNamespace struct {
	Description string                         `json:"description,omitempty" yaml:"description,omitempty"`
	Members     map[string]SpecificationMember `json:"members" yaml:"members"`
}

// SpecificationMember is a specification family.
type SpecificationMember struct {
	Description string                       `json:"description,omitempty" yaml:"description,omitempty"`
	Versions    map[int]SpecificationVersion `json:"versions" yaml:"versions"`
}

// SpecificationVersion is the immutable trait set of one revision.
type SpecificationVersion struct {
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Traits      []TraitRef `json:"traits" yaml:"traits"`
}

// TraitRef pins one trait version into a specification's trait set.
type TraitRef struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Name      string `json:"name" yaml:"name"`
	// Version defaults to 1.
	Version int `json:"version,omitempty" yaml:"version,omitempty"`
}
