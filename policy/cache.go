package policy

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentic-research/mediacreation/trait"
)

// DefaultCacheSize bounds a Cache created with a non-positive size.
const DefaultCacheSize = 256

// Cache is a Manager that remembers another manager's answers per trait
// set and access kind. Policies are fixed for the lifetime of a manager
// session, so entries never expire; they are only evicted by size.
type Cache struct {
	next    Manager
	entries *lru.Cache[string, *trait.TraitsData]
}

// NewCache wraps next.
func NewCache(next Manager, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, *trait.TraitsData](size)
	if err != nil {
		return nil, fmt.Errorf("policy cache: %w", err)
	}
	return &Cache{next: next, entries: entries}, nil
}

func cacheKey(set trait.Set, access Access) string {
	return access.String() + "|" + set.String()
}

// ManagementPolicy implements Manager. Only the sets missing from the
// cache are forwarded, in one batch. Returned data are copies.
func (c *Cache) ManagementPolicy(ctx context.Context, traitSets []trait.Set, access Access) ([]*trait.TraitsData, error) {
	out := make([]*trait.TraitsData, len(traitSets))
	var missing []trait.Set
	var missingIdx []int
	for i, set := range traitSets {
		if data, ok := c.entries.Get(cacheKey(set, access)); ok {
			out[i] = data.Copy()
			continue
		}
		missing = append(missing, set)
		missingIdx = append(missingIdx, i)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched, err := c.next.ManagementPolicy(ctx, missing, access)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missing) {
		return nil, fmt.Errorf("manager returned %d results for %d trait sets", len(fetched), len(missing))
	}
	for k, data := range fetched {
		if data == nil {
			data = trait.NewTraitsData()
		}
		c.entries.Add(cacheKey(missing[k], access), data.Copy())
		out[missingIdx[k]] = data
	}
	return out, nil
}

// Len returns the number of cached answers.
func (c *Cache) Len() int { return c.entries.Len() }

// Purge drops every cached answer.
func (c *Cache) Purge() { c.entries.Purge() }
