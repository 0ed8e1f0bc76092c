// Package searchtree provides an ordered map backed by a binary search tree,
// with optional AVL self-balancing.
//
// A Tree is created unbalanced (New, NewFunc) or AVL-balanced (NewAVL,
// NewAVLFunc). Both satisfy core.Map; iteration through All, Keys and Values
// is in ascending key order.
//
// Operations:
//
//   - Insert adds a key and fails with core.ErrDuplicateKey if it exists.
//   - Set inserts or overwrites.
//   - Remove deletes a key; a node with two children is replaced by its
//     in-order successor (minimum of the right subtree).
//   - InOrder, PreOrder, PostOrder and LevelOrder are lazy iter.Seq2
//     traversals over the current shape. Each call starts a fresh walk.
//     Mutating the tree during a walk is undefined.
//
// Heights are recomputed bottom-up on the touched path. For AVL trees every
// node on that path is rebalanced (LL, LR, RR, RL) so that
// |height(left) − height(right)| ≤ 1 holds after every mutation.
//
// Len is computed by a full traversal and costs O(n). Insert, Remove and
// lookups cost O(h): O(log n) for AVL trees, O(n) worst case otherwise.
package searchtree
