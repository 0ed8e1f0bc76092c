package searchtree

import "iter"

// InOrder yields pairs in ascending key order (left, node, right).
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inOrder(t.root, yield)
	}
}

// PreOrder yields node, left, right.
func (t *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		preOrder(t.root, yield)
	}
}

// PostOrder yields left, right, node.
func (t *Tree[K, V]) PostOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		postOrder(t.root, yield)
	}
}

// LevelOrder yields nodes breadth-first, left to right within a level.
func (t *Tree[K, V]) LevelOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		queue := []*node[K, V]{t.root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n.key, n.value) {
				return
			}
			if n.left != nil {
				queue = append(queue, n.left)
			}
			if n.right != nil {
				queue = append(queue, n.right)
			}
		}
	}
}

// Each walker returns false once yield has asked to stop.

func inOrder[K any, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, yield) && yield(n.key, n.value) && inOrder(n.right, yield)
}

func preOrder[K any, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return yield(n.key, n.value) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func postOrder[K any, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.key, n.value)
}
