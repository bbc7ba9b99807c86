// Package policy implements the management policy handshake: a host asks
// a manager which of its trait sets the manager handles, for a given kind
// of access, and the manager answers with one traits data per set imbued
// with managementPolicy traits.
package policy

import (
	"context"
	"fmt"

	"github.com/agentic-research/mediacreation/trait"
)

// Access is the kind of access a policy query is made for.
type Access int

const (
	Read Access = iota
	Write
	CreateRelated
	Required
	ManagerDriven
)

var accessNames = [...]string{"read", "write", "createRelated", "required", "managerDriven"}

func (a Access) String() string {
	if a < 0 || int(a) >= len(accessNames) {
		return fmt.Sprintf("Access(%d)", int(a))
	}
	return accessNames[a]
}

// ParseAccess is the inverse of Access.String.
func ParseAccess(s string) (Access, error) {
	for i, name := range accessNames {
		if name == s {
			return Access(i), nil
		}
	}
	return 0, fmt.Errorf("unknown access %q", s)
}

// Manager answers management policy queries. The result holds exactly one
// traits data per requested set, in order. An empty traits data means the
// set is not managed.
type Manager interface {
	ManagementPolicy(ctx context.Context, traitSets []trait.Set, access Access) ([]*trait.TraitsData, error)
}
