package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/core"
	"github.com/katalvlaran/gridkit/hashtable"
	"github.com/katalvlaran/gridkit/searchtree"
)

func TestIsNilKey(t *testing.T) {
	var p *int
	var s []int
	var m map[string]int
	var f func()
	var i any
	x := 3

	assert.True(t, core.IsNilKey(p))
	assert.True(t, core.IsNilKey(s))
	assert.True(t, core.IsNilKey(m))
	assert.True(t, core.IsNilKey(f))
	assert.True(t, core.IsNilKey(i))

	assert.False(t, core.IsNilKey(&x))
	assert.False(t, core.IsNilKey(0))
	assert.False(t, core.IsNilKey(""))
	assert.False(t, core.IsNilKey(struct{}{}))
}

func TestContainsPair(t *testing.T) {
	tbl := hashtable.NewChaining[string, int]()
	assert.NoError(t, tbl.Insert("a", 1))

	eq := func(a, b int) bool { return a == b }
	assert.True(t, core.ContainsPair[string, int](tbl, "a", 1, eq))
	assert.False(t, core.ContainsPair[string, int](tbl, "a", 2, eq))
	assert.False(t, core.ContainsPair[string, int](tbl, "b", 1, eq))
}

func TestRemovePair(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	for name, m := range map[string]core.Map[string, int]{
		"hashtable":  hashtable.NewChaining[string, int](),
		"searchtree": searchtree.New[string, int](),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Insert("a", 1))

			removed, err := core.RemovePair(m, "a", 2, eq)
			require.NoError(t, err)
			assert.False(t, removed, "value mismatch keeps the entry")
			assert.True(t, m.ContainsKey("a"))

			removed, err = core.RemovePair(m, "b", 1, eq)
			require.NoError(t, err)
			assert.False(t, removed)

			removed, err = core.RemovePair(m, "a", 1, eq)
			require.NoError(t, err)
			assert.True(t, removed)
			assert.Equal(t, 0, m.Len())
		})
	}
}

func TestNilable(t *testing.T) {
	assert.True(t, core.Nilable[*int]())
	assert.True(t, core.Nilable[any]())
	assert.True(t, core.Nilable[[]int]())
	assert.True(t, core.Nilable[func()]())
	assert.False(t, core.Nilable[int]())
	assert.False(t, core.Nilable[string]())
	assert.False(t, core.Nilable[struct{ p *int }]())
}

func TestCollect(t *testing.T) {
	tbl := hashtable.NewOpenAddressing[string, int]()
	for i, k := range []string{"x", "y", "z"} {
		assert.NoError(t, tbl.Insert(k, i))
	}
	assert.Equal(t, map[string]int{"x": 0, "y": 1, "z": 2}, core.Collect[string, int](tbl))
}
