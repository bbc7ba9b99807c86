package trait

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_SortedAndUnique(t *testing.T) {
	s := NewSet("b", "a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("d"))
	assert.Equal(t, "{a, b, c}", s.String())
}

func TestSet_IDsIsACopy(t *testing.T) {
	s := NewSet("a", "b")
	ids := s.IDs()
	ids[0] = "z"
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("z"))
}

func TestSet_Algebra(t *testing.T) {
	ab := NewSet("a", "b")
	abc := NewSet("c", "b", "a")

	assert.True(t, ab.IsSubsetOf(abc))
	assert.False(t, abc.IsSubsetOf(ab))
	assert.True(t, Set{}.IsSubsetOf(ab))
	assert.True(t, ab.Union(NewSet("c")).Equal(abc))
	assert.False(t, ab.Equal(abc))
	assert.Equal(t, 0, Set{}.Len())
}
