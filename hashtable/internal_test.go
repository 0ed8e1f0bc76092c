package hashtable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_Sequences(t *testing.T) {
	const n = 16
	var linear, quadratic, double []int
	for i := 0; i < 4; i++ {
		linear = append(linear, probe(Linear, 18, i, n))
		quadratic = append(quadratic, probe(Quadratic, 18, i, n))
		double = append(double, probe(DoubleHash, 18, i, n))
	}
	assert.Equal(t, []int{2, 3, 4, 5}, linear)
	assert.Equal(t, []int{2, 3, 6, 11}, quadratic)
	// h2 = 1 + 18 mod 15 = 4
	assert.Equal(t, []int{2, 6, 10, 14}, double)
}

func TestProbe_SecondaryHashNeverZero(t *testing.T) {
	// 15 mod 15 == 0 would stall without the +1
	assert.NotEqual(t, probe(DoubleHash, 15, 0, 16), probe(DoubleHash, 15, 1, 16))
}

// A consistent modular hash cannot collide after doubling, so the failure
// path of a naive resize is driven by planting an entry off its home slot.
func TestDirectStore_GrowCollisionLeavesStorageIntact(t *testing.T) {
	s := newDirectStore[int, string](func(k int) uint64 { return uint64(k) }, 4)
	require.NoError(t, s.add(1, "one"))
	s.slots[2] = entry[int, string]{key: 9, value: "nine"}
	s.occupied[2] = true

	err := s.grow()
	require.True(t, errors.Is(err, ErrHashCollision))
	assert.Equal(t, 4, s.capacity())
	assert.True(t, s.occupied[1])
	assert.True(t, s.occupied[2])
	v, ok := s.lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestTable_FailedResizeSurfacesCollision(t *testing.T) {
	tbl := NewNaiveFunc[int, string](func(k int) uint64 { return uint64(k) }, WithCapacity(4))
	require.NoError(t, tbl.Insert(0, "zero"))
	require.NoError(t, tbl.Insert(1, "one"))
	require.NoError(t, tbl.Insert(2, "two"))
	// plant 10 at slot 3; in an 8-slot table it shares slot 2 with key 2
	ds := tbl.p.(*directStore[int, string])
	ds.slots[3] = entry[int, string]{key: 10, value: "ten"}
	ds.occupied[3] = true
	tbl.count++

	err := tbl.Insert(5, "five")
	assert.ErrorIs(t, err, ErrHashCollision)
	assert.False(t, tbl.Resized())
	assert.Equal(t, 4, tbl.Capacity())
	assert.Equal(t, 4, tbl.Len())
	assert.False(t, tbl.ContainsKey(5))
}
