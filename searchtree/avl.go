package searchtree

func height[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return n.height
}

func updateHeight[K any, V any](n *node[K, V]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balanceFactor is height(left) − height(right).
func balanceFactor[K any, V any](n *node[K, V]) int {
	return height(n.left) - height(n.right)
}

// rebalance restores |balanceFactor| ≤ 1 at n, assuming both subtrees
// already satisfy it, and returns the new subtree root.
func rebalance[K any, V any](n *node[K, V]) *node[K, V] {
	switch bf := balanceFactor(n); {
	case bf > 1:
		if balanceFactor(n.left) < 0 { // LR
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 { // RL
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	default:
		return n
	}
}

// rotateRight lifts the left child of y into its place.
//
//	    y          x
//	   / \        / \
//	  x   c  →   a   y
//	 / \            / \
//	a   b          b   c
func rotateRight[K any, V any](y *node[K, V]) *node[K, V] {
	x := y.left
	y.left = x.right
	x.right = y
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[K any, V any](x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	updateHeight(x)
	updateHeight(y)

	return y
}
