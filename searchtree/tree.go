package searchtree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/katalvlaran/gridkit/core"
)

// node is a tree vertex. A leaf has height 1; an empty subtree has height 0.
type node[K any, V any] struct {
	key    K
	value  V
	height int
	left   *node[K, V]
	right  *node[K, V]
}

// Tree is an ordered map. The zero value is not usable; use a constructor.
type Tree[K any, V any] struct {
	root    *node[K, V]
	compare func(a, b K) int
	avl     bool
	nilable bool
}

var _ core.Map[int, string] = (*Tree[int, string])(nil)

// New returns an empty unbalanced tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return newTree[K, V](cmp.Compare[K], false)
}

// NewAVL returns an empty AVL tree ordered by cmp.Compare.
func NewAVL[K cmp.Ordered, V any]() *Tree[K, V] {
	return newTree[K, V](cmp.Compare[K], true)
}

// NewFunc returns an empty unbalanced tree ordered by compare, which must
// return a negative number, zero or a positive number as a < b, a == b, a > b.
func NewFunc[K any, V any](compare func(a, b K) int) *Tree[K, V] {
	return newTree[K, V](compare, false)
}

// NewAVLFunc returns an empty AVL tree ordered by compare.
func NewAVLFunc[K any, V any](compare func(a, b K) int) *Tree[K, V] {
	return newTree[K, V](compare, true)
}

func newTree[K any, V any](compare func(a, b K) int, avl bool) *Tree[K, V] {
	return &Tree[K, V]{compare: compare, avl: avl, nilable: core.Nilable[K]()}
}

func (t *Tree[K, V]) nilKey(key K) bool {
	return t.nilable && core.IsNilKey(key)
}

// Balanced reports whether the tree rebalances itself.
func (t *Tree[K, V]) Balanced() bool { return t.avl }

// Insert adds key→value.
// Returns core.ErrNilKey or core.ErrDuplicateKey.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t.nilKey(key) {
		return core.ErrNilKey
	}
	root, err := t.insert(t.root, key, value, false)
	if err != nil {
		return err
	}
	t.root = root

	return nil
}

// Set overwrites the value of key or inserts a new leaf.
func (t *Tree[K, V]) Set(key K, value V) error {
	if t.nilKey(key) {
		return core.ErrNilKey
	}
	t.root, _ = t.insert(t.root, key, value, true)

	return nil
}

// insert returns the new subtree root. On a duplicate the subtree is
// returned unchanged along with the error.
func (t *Tree[K, V]) insert(n *node[K, V], key K, value V, upsert bool) (*node[K, V], error) {
	if n == nil {
		return &node[K, V]{key: key, value: value, height: 1}, nil
	}

	var err error
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, err = t.insert(n.left, key, value, upsert)
	case c > 0:
		n.right, err = t.insert(n.right, key, value, upsert)
	default:
		if !upsert {
			return n, fmt.Errorf("%w: %v", core.ErrDuplicateKey, key)
		}
		n.value = value

		return n, nil
	}
	if err != nil {
		return n, err
	}

	return t.fix(n), nil
}

// Remove deletes key and reports whether it was present.
func (t *Tree[K, V]) Remove(key K) (bool, error) {
	if t.nilKey(key) {
		return false, core.ErrNilKey
	}
	var removed bool
	t.root, removed = t.remove(t.root, key)

	return removed, nil
}

func (t *Tree[K, V]) remove(n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch c := t.compare(key, n.key); {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
	case c > 0:
		n.right, removed = t.remove(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := minNode(n.right)
		n.key, n.value = succ.key, succ.value
		n.right, _ = t.remove(n.right, succ.key)
		removed = true
	}
	if !removed {
		return n, false
	}

	return t.fix(n), true
}

// fix recomputes the height of n and, for AVL trees, rebalances it.
func (t *Tree[K, V]) fix(n *node[K, V]) *node[K, V] {
	updateHeight(n)
	if t.avl {
		return rebalance(n)
	}

	return n
}

// Get returns the value stored under key.
// Returns core.ErrNilKey or core.ErrKeyNotFound.
func (t *Tree[K, V]) Get(key K) (V, error) {
	var zero V
	if t.nilKey(key) {
		return zero, core.ErrNilKey
	}
	n := t.find(key)
	if n == nil {
		return zero, fmt.Errorf("%w: %v", core.ErrKeyNotFound, key)
	}

	return n.value, nil
}

// TryGet returns the value stored under key and whether it exists.
// It panics with core.ErrNilKey when key is nil.
func (t *Tree[K, V]) TryGet(key K) (V, bool) {
	var zero V
	if t.nilKey(key) {
		panic(fmt.Errorf("searchtree: TryGet: %w", core.ErrNilKey))
	}
	n := t.find(key)
	if n == nil {
		return zero, false
	}

	return n.value, true
}

// ContainsKey reports whether key is stored.
// It panics with core.ErrNilKey when key is nil.
func (t *Tree[K, V]) ContainsKey(key K) bool {
	_, ok := t.TryGet(key)

	return ok
}

func (t *Tree[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// Len counts nodes by walking the whole tree.
func (t *Tree[K, V]) Len() int {
	count := 0
	for range t.InOrder() {
		count++
	}

	return count
}

// Height returns the height of the root; 0 for an empty tree.
func (t *Tree[K, V]) Height() int { return height(t.root) }

// Min returns the smallest key and its value. ok is false if the tree is empty.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.root == nil {
		return key, value, false
	}
	n := minNode(t.root)

	return n.key, n.value, true
}

// Max returns the largest key and its value. ok is false if the tree is empty.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.root == nil {
		return key, value, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.key, n.value, true
}

// All yields every pair in ascending key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] { return t.InOrder() }

// Keys returns every key in ascending order.
func (t *Tree[K, V]) Keys() []K {
	var keys []K
	for k := range t.InOrder() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns every value in ascending key order.
func (t *Tree[K, V]) Values() []V {
	var values []V
	for _, v := range t.InOrder() {
		values = append(values, v)
	}

	return values
}

// Clear drops every node.
func (t *Tree[K, V]) Clear() { t.root = nil }

func minNode[K any, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}
