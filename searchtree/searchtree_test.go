package searchtree_test

import (
	"iter"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/core"
	"github.com/katalvlaran/gridkit/searchtree"
)

func keysOf[K any, V any](seq iter.Seq2[K, V]) []K {
	var out []K
	for k := range seq {
		out = append(out, k)
	}

	return out
}

// sample builds 4(2(1,3),6(5,7)) by insertion order alone.
func sample(t *testing.T, tree *searchtree.Tree[int, string]) {
	t.Helper()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.NoError(t, tree.Insert(k, "v"))
	}
}

func TestTree_InsertGet(t *testing.T) {
	for name, tree := range map[string]*searchtree.Tree[int, string]{
		"bst": searchtree.New[int, string](),
		"avl": searchtree.NewAVL[int, string](),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, tree.Insert(10, "ten"))
			require.NoError(t, tree.Insert(5, "five"))

			v, err := tree.Get(5)
			require.NoError(t, err)
			assert.Equal(t, "five", v)

			err = tree.Insert(5, "again")
			assert.ErrorIs(t, err, core.ErrDuplicateKey)
			v, _ = tree.Get(5)
			assert.Equal(t, "five", v, "Insert must not upsert")

			require.NoError(t, tree.Set(5, "FIVE"))
			require.NoError(t, tree.Set(7, "seven"))
			v, _ = tree.Get(5)
			assert.Equal(t, "FIVE", v)
			assert.Equal(t, 3, tree.Len())

			_, err = tree.Get(99)
			assert.ErrorIs(t, err, core.ErrKeyNotFound)
			_, ok := tree.TryGet(99)
			assert.False(t, ok)
		})
	}
}

func TestTree_Traversals(t *testing.T) {
	tree := searchtree.New[int, string]()
	sample(t, tree)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keysOf(tree.InOrder()))
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, keysOf(tree.PreOrder()))
	assert.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, keysOf(tree.PostOrder()))
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, keysOf(tree.LevelOrder()))

	// restartable
	assert.Equal(t, keysOf(tree.InOrder()), keysOf(tree.InOrder()))
}

func TestTree_TraversalEarlyStop(t *testing.T) {
	tree := searchtree.NewAVL[int, string]()
	sample(t, tree)

	for _, seq := range []iter.Seq2[int, string]{tree.InOrder(), tree.PreOrder(), tree.PostOrder(), tree.LevelOrder()} {
		var got []int
		for k := range seq {
			got = append(got, k)
			if len(got) == 2 {
				break
			}
		}
		assert.Len(t, got, 2)
	}
}

func TestTree_Remove(t *testing.T) {
	tree := searchtree.New[int, string]()
	sample(t, tree)

	// two children: successor 5 takes the root
	ok, err := tree.Remove(4)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{5, 2, 6, 1, 3, 7}, keysOf(tree.LevelOrder()))

	// one child
	ok, _ = tree.Remove(6)
	assert.True(t, ok)
	assert.Equal(t, []int{5, 2, 7, 1, 3}, keysOf(tree.LevelOrder()))

	// leaf
	ok, _ = tree.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, []int{2, 3, 5, 7}, tree.Keys())

	ok, _ = tree.Remove(42)
	assert.False(t, ok)
	assert.False(t, tree.ContainsKey(1))
	assert.Equal(t, 4, tree.Len())
}

func TestAVL_Rotations(t *testing.T) {
	cases := map[string][]int{
		"LL": {3, 2, 1},
		"RR": {1, 2, 3},
		"LR": {3, 1, 2},
		"RL": {1, 3, 2},
	}
	for name, keys := range cases {
		t.Run(name, func(t *testing.T) {
			tree := searchtree.NewAVL[int, string]()
			for _, k := range keys {
				require.NoError(t, tree.Insert(k, "v"))
			}
			assert.Equal(t, []int{2, 1, 3}, keysOf(tree.LevelOrder()))
			assert.Equal(t, 2, tree.Height())
		})
	}
}

func TestAVL_AscendingStaysBalanced(t *testing.T) {
	avl := searchtree.NewAVL[int, string]()
	bst := searchtree.New[int, string]()
	for k := 1; k <= 7; k++ {
		require.NoError(t, avl.Insert(k, "v"))
		require.NoError(t, bst.Insert(k, "v"))
	}
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, keysOf(avl.LevelOrder()))
	assert.Equal(t, 3, avl.Height())
	assert.Equal(t, 7, bst.Height(), "unbalanced tree degenerates into a list")
	assert.True(t, avl.Balanced())
	assert.False(t, bst.Balanced())
}

func TestTree_MinMaxClear(t *testing.T) {
	tree := searchtree.NewAVL[string, int]()
	_, _, ok := tree.Min()
	assert.False(t, ok)

	for i, k := range []string{"m", "c", "x", "a"} {
		require.NoError(t, tree.Insert(k, i))
	}
	k, v, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 3, v)
	k, _, _ = tree.Max()
	assert.Equal(t, "x", k)
	assert.Equal(t, []int{3, 1, 0, 2}, tree.Values())

	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.Keys())
}

func TestTree_CustomOrder(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	tree := searchtree.NewAVLFunc[int, string](desc)
	for _, k := range []int{1, 5, 3} {
		require.NoError(t, tree.Insert(k, "v"))
	}
	assert.Equal(t, []int{5, 3, 1}, tree.Keys())
}

func TestTree_NilKey(t *testing.T) {
	byValue := func(a, b *int) int { return *a - *b }
	tree := searchtree.NewFunc[*int, string](byValue)

	assert.ErrorIs(t, tree.Insert(nil, "x"), core.ErrNilKey)
	assert.ErrorIs(t, tree.Set(nil, "x"), core.ErrNilKey)
	_, err := tree.Get(nil)
	assert.ErrorIs(t, err, core.ErrNilKey)
	_, err = tree.Remove(nil)
	assert.ErrorIs(t, err, core.ErrNilKey)
	assert.PanicsWithError(t, "searchtree: TryGet: core: key is nil", func() { tree.TryGet(nil) })
	assert.PanicsWithError(t, "searchtree: TryGet: core: key is nil", func() { tree.ContainsKey(nil) })

	k := 4
	require.NoError(t, tree.Insert(&k, "four"))
	assert.True(t, tree.ContainsKey(&k))
}

func TestTree_RandomOpsMatchBuiltinMap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for name, tree := range map[string]*searchtree.Tree[int, int]{
		"bst": searchtree.New[int, int](),
		"avl": searchtree.NewAVL[int, int](),
	} {
		t.Run(name, func(t *testing.T) {
			want := map[int]int{}
			for i := 0; i < 2000; i++ {
				k := rng.Intn(200)
				switch rng.Intn(3) {
				case 0:
					require.NoError(t, tree.Set(k, i))
					want[k] = i
				case 1:
					_, exists := want[k]
					ok, err := tree.Remove(k)
					require.NoError(t, err)
					assert.Equal(t, exists, ok)
					delete(want, k)
				default:
					v, ok := tree.TryGet(k)
					wv, wok := want[k]
					assert.Equal(t, wok, ok)
					assert.Equal(t, wv, v)
				}
			}
			assert.Equal(t, want, core.Collect[int, int](tree))
			keys := tree.Keys()
			assert.True(t, slices.IsSorted(keys))
			assert.Len(t, keys, len(want))
		})
	}
}
