package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/mediacreation/mediacreation/traits/content"
	"github.com/agentic-research/mediacreation/mediacreation/traits/managementpolicy"
	"github.com/agentic-research/mediacreation/mediacreation/traits/twodimensional"
	"github.com/agentic-research/mediacreation/mediacreation/traits/usage"
	"github.com/agentic-research/mediacreation/trait"
)

var (
	entity    = usage.EntityTrait_v1{}.ID()
	locatable = content.LocatableContentTrait_v1{}.ID()
	image     = twodimensional.ImageTrait_v1{}.ID()
)

// fileManager only supports reading entities with a location.
func fileManager() *Table {
	return NewTable(ManagedRule(trait.NewSet(entity, locatable), false, Read))
}

func TestAccess_String(t *testing.T) {
	for _, a := range []Access{Read, Write, CreateRelated, Required, ManagerDriven} {
		parsed, err := ParseAccess(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "Access(9)", Access(9).String())
	_, err := ParseAccess("delete")
	assert.Error(t, err)
}

func TestTable_SubsetMatching(t *testing.T) {
	sets := []trait.Set{
		trait.NewSet(entity, locatable),
		trait.NewSet(entity, locatable, image),
		trait.NewSet(entity),
		trait.NewSet(),
	}
	got, err := fileManager().ManagementPolicy(context.Background(), sets, Read)
	require.NoError(t, err)
	require.Len(t, got, len(sets))

	managed := managementpolicy.ManagedTrait_v1{}.ID()
	assert.True(t, got[0].HasTrait(managed))
	assert.True(t, got[1].HasTrait(managed), "supersets are managed")
	assert.False(t, got[2].HasTrait(managed))
	assert.Equal(t, 0, got[3].TraitSet().Len(), "unmanaged sets get empty data")
}

func TestTable_AccessFiltering(t *testing.T) {
	sets := []trait.Set{trait.NewSet(entity, locatable)}
	for _, access := range []Access{Write, CreateRelated, Required, ManagerDriven} {
		got, err := fileManager().ManagementPolicy(context.Background(), sets, access)
		require.NoError(t, err)
		assert.Equal(t, 0, got[0].TraitSet().Len(), access.String())
	}
}

func TestTable_FirstRuleWins(t *testing.T) {
	table := NewTable(
		ManagedRule(trait.NewSet(entity, image), true, Read, Write),
		ManagedRule(trait.NewSet(entity), false, Read),
	)
	sets := []trait.Set{trait.NewSet(entity, image), trait.NewSet(entity, locatable)}

	decisions, err := Negotiate(context.Background(), table, sets, Read)
	require.NoError(t, err)
	assert.Equal(t, Decision{TraitSet: sets[0], Managed: true, Exclusive: true}, decisions[0])
	assert.Equal(t, Decision{TraitSet: sets[1], Managed: true}, decisions[1])

	decisions, err = Negotiate(context.Background(), table, sets, Write)
	require.NoError(t, err)
	assert.True(t, decisions[0].Exclusive)
	assert.False(t, decisions[1].Managed)
}

func TestTable_ImbueAndProperties(t *testing.T) {
	future := managementpolicy.ResolvesFutureEntitiesTrait_v1{}.ID()
	table := NewTable(Rule{
		Access:   []Access{Write},
		Requires: trait.NewSet(entity),
		Imbue:    trait.NewSet(managementpolicy.ManagedTrait_v1{}.ID(), future),
	})

	decisions, err := Negotiate(context.Background(), table, []trait.Set{trait.NewSet(entity)}, Write)
	require.NoError(t, err)
	assert.True(t, decisions[0].Managed)
	assert.False(t, decisions[0].Exclusive, "exclusive defaults to false when unset")
	assert.True(t, decisions[0].ResolvesFutureEntities)
}

func TestTable_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := fileManager().ManagementPolicy(ctx, []trait.Set{trait.NewSet(entity)}, Read)
	assert.ErrorIs(t, err, context.Canceled)
}

type stubManager struct {
	result []*trait.TraitsData
	err    error
	calls  [][]trait.Set
}

func (s *stubManager) ManagementPolicy(_ context.Context, sets []trait.Set, _ Access) ([]*trait.TraitsData, error) {
	s.calls = append(s.calls, sets)
	if s.result != nil || s.err != nil {
		return s.result, s.err
	}
	return fileManager().ManagementPolicy(context.Background(), sets, Read)
}

func TestNegotiate_ResultCountMismatch(t *testing.T) {
	m := &stubManager{result: []*trait.TraitsData{trait.NewTraitsData()}}
	_, err := Negotiate(context.Background(), m, []trait.Set{trait.NewSet(entity), trait.NewSet(image)}, Read)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned 1 results for 2 trait sets")
}

func TestNegotiate_ManagerError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Negotiate(context.Background(), &stubManager{err: boom}, []trait.Set{trait.NewSet(entity)}, Read)
	assert.ErrorIs(t, err, boom)
}

func TestNegotiate_BadExclusiveType(t *testing.T) {
	data := trait.NewTraitsData()
	data.SetTraitProperty(managementpolicy.ManagedTrait_v1{}.ID(), "exclusive", trait.StringValue("yes"))
	_, err := Negotiate(context.Background(), &stubManager{result: []*trait.TraitsData{data}}, []trait.Set{trait.NewSet(entity)}, Read)
	assert.ErrorIs(t, err, trait.ErrTypeMismatch)
}

func TestNegotiate_NilResultIsUnmanaged(t *testing.T) {
	decisions, err := Negotiate(context.Background(), &stubManager{result: []*trait.TraitsData{nil}}, []trait.Set{trait.NewSet(entity)}, Read)
	require.NoError(t, err)
	assert.False(t, decisions[0].Managed)
}

func TestCache(t *testing.T) {
	stub := &stubManager{}
	c, err := NewCache(stub, 0)
	require.NoError(t, err)

	a := trait.NewSet(entity, locatable)
	b := trait.NewSet(entity)

	first, err := c.ManagementPolicy(context.Background(), []trait.Set{a, b}, Read)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	second, err := c.ManagementPolicy(context.Background(), []trait.Set{b, a, image1()}, Read)
	require.NoError(t, err)
	require.Len(t, stub.calls, 2)
	assert.Equal(t, []trait.Set{image1()}, stub.calls[1], "only misses are forwarded")
	assert.True(t, first[0].Equal(second[1]))
	assert.True(t, first[1].Equal(second[0]))

	second[1].AddTrait("tampered")
	third, err := c.ManagementPolicy(context.Background(), []trait.Set{a}, Read)
	require.NoError(t, err)
	assert.False(t, third[0].HasTrait("tampered"), "cached entries are not shared")

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCache_ForwardsErrors(t *testing.T) {
	c, err := NewCache(&stubManager{err: errors.New("offline")}, 4)
	require.NoError(t, err)
	_, err = c.ManagementPolicy(context.Background(), []trait.Set{trait.NewSet(entity)}, Read)
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func image1() trait.Set { return trait.NewSet(entity, image) }
