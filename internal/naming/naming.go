// Package naming holds the rules that map definition names onto stable
// identifiers: versioned class names, trait ids and Go identifiers.
//
// A family X at revision N is emitted as X_vN. The unversioned X always
// aliases the highest revision present, so consumers pinned to X_v1 never
// observe a change when X_v2 is introduced.
package naming

import (
	"fmt"
	"go/token"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	traitSuffix         = "Trait"
	specificationSuffix = "Specification"
	// RelationshipSuffix must end the member name of every specification
	// whose trait set contains the relationship usage trait.
	RelationshipSuffix = "Relationship"
	// LocaleSuffix must end the member name of every specification in a
	// locale namespace.
	LocaleSuffix = "Locale"
)

var (
	namespaceRe = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	memberRe    = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	keyRe       = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	traitIDRe   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.:-]*$`)
	versionedRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)_v([1-9][0-9]*)$`)
)

// TraitName returns the short class name of a trait member.
func TraitName(member string) string { return member + traitSuffix }

// SpecificationName returns the short class name of a specification member.
func SpecificationName(member string) string { return member + specificationSuffix }

// Versioned returns the class name of revision version of short.
func Versioned(short string, version int) string {
	return fmt.Sprintf("%s_v%d", short, version)
}

// ParseVersioned splits "FooTrait_v2" into ("FooTrait", 2).
func ParseVersioned(name string) (string, int, bool) {
	m := versionedRe.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	v, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], v, true
}

// DefaultID derives a base trait id from a member name: OCIOColorManaged
// becomes ocioColorManaged, LocatableContent becomes locatableContent.
func DefaultID(member string) string {
	return Unexported(member)
}

// VersionedID returns the id of revision version of a trait whose base id
// is base. Revision 1 keeps the base id.
func VersionedID(base string, version int) string {
	if version <= 1 {
		return base
	}
	return fmt.Sprintf("%s.v%d", base, version)
}

// PackageName returns the Go package name of a namespace.
func PackageName(namespace string) string {
	return strings.ToLower(namespace)
}

// Exported upper-cases the first rune of s.
func Exported(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Unexported lower-cases the leading capital run of s, keeping the last
// capital of an acronym when it starts the next word.
func Unexported(s string) string {
	runes := []rune(s)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	switch {
	case n == 0:
		return s
	case n == 1 || n == len(runes):
	default:
		n-- // "OCIOColor": keep the C of Color
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// TraitSetVar names the package-level variable holding the trait set of
// a specification class.
func TraitSetVar(class string) string { return Unexported(class) + "TraitSet" }

// AccessorName returns the specification accessor for a member trait.
// qualified prefixes the namespace, used when two traits in one
// specification share a member name.
func AccessorName(namespace, member string, qualified bool) string {
	if qualified {
		return Exported(namespace) + member + traitSuffix
	}
	return member + traitSuffix
}

// Getter, GetterOr and Setter name the property accessors of a trait.
func Getter(key string) string { return "Get" + Exported(key) }
func GetterOr(key string) string { return "Get" + Exported(key) + "Or" }
func Setter(key string) string { return "Set" + Exported(key) }

// TraitPackageAlias is the import alias used for a trait namespace inside
// generated specification packages and the root package.
func TraitPackageAlias(namespace string) string {
	return PackageName(namespace) + "trait"
}

// reserved package names would shadow the runtime packages generated code
// imports.
var reserved = map[string]bool{"trait": true, "specification": true}

// IsNamespace reports whether s is a valid namespace name.
func IsNamespace(s string) bool {
	pkg := PackageName(s)
	return namespaceRe.MatchString(s) && !token.IsKeyword(pkg) && !reserved[pkg]
}

// IsMemberName reports whether s is a valid trait or specification member.
func IsMemberName(s string) bool { return memberRe.MatchString(s) }

// IsPropertyKey reports whether s is a valid property key.
func IsPropertyKey(s string) bool { return keyRe.MatchString(s) }

// IsTraitID reports whether s may be used as a trait id.
func IsTraitID(s string) bool { return traitIDRe.MatchString(s) }
