package policy

import (
	"context"
	"fmt"

	"github.com/agentic-research/mediacreation/mediacreation/traits/managementpolicy"
	"github.com/agentic-research/mediacreation/trait"
)

// Decision is the host's reading of a manager's policy for one trait set.
type Decision struct {
	TraitSet trait.Set
	// Managed reports that the manager handles the set at all.
	Managed bool
	// Exclusive reports that the manager is the only source of truth for
	// the set, so the host should not fall back to its own handling.
	Exclusive bool
	// ResolvesFutureEntities reports that references to entities not yet
	// published can be resolved.
	ResolvesFutureEntities bool
}

// Negotiate queries m and reads its answers through the managementPolicy
// traits.
func Negotiate(ctx context.Context, m Manager, traitSets []trait.Set, access Access) ([]Decision, error) {
	policies, err := m.ManagementPolicy(ctx, traitSets, access)
	if err != nil {
		return nil, fmt.Errorf("management policy (%s): %w", access, err)
	}
	if len(policies) != len(traitSets) {
		return nil, fmt.Errorf("management policy (%s): manager returned %d results for %d trait sets",
			access, len(policies), len(traitSets))
	}

	decisions := make([]Decision, len(traitSets))
	for i, data := range policies {
		d := Decision{TraitSet: traitSets[i]}
		if data != nil {
			managed := managementpolicy.NewManagedTrait(data)
			d.Managed = managed.IsImbued()
			if d.Managed {
				exclusive, ok, err := managed.GetExclusive()
				if err != nil {
					return nil, fmt.Errorf("management policy for %s: %w", traitSets[i], err)
				}
				d.Exclusive = ok && exclusive
			}
			d.ResolvesFutureEntities = managementpolicy.NewResolvesFutureEntitiesTrait(data).IsImbued()
		}
		decisions[i] = d
	}
	return decisions, nil
}
