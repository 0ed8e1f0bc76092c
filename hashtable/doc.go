// Package hashtable implements a generic in-memory hash map with a
// pluggable collision policy.
//
// What
//
//   - Table[K,V] satisfies core.Map[K,V]: Insert, Set, Remove, Get, TryGet,
//     ContainsKey, Len, Keys, Values, All, Clear.
//   - Three policies share that contract and differ only in how two keys
//     hashing to the same index are handled:
//   - Chaining: every bucket owns an ordered entry list. Resize at load 0.75.
//   - OpenAddressing: flat slots probed Linear, Quadratic or DoubleHash.
//     Deletions leave tombstones so probe chains stay intact. Resize at
//     load 0.6, or whenever a probe runs past capacity without a free slot.
//   - Naive: one slot per index, no resolution at all. A collision fails
//     with ErrHashCollision, including a collision while resizing.
//
// Resizing
//
//	Before adding a new key, a table whose count/capacity has reached the
//	policy threshold doubles its capacity and rehashes every live entry.
//	After any resize count/capacity is strictly below the threshold.
//	Resized reports that the slot layout changed; AckResize clears it.
//
// Hashing
//
//	Keys are hashed by a Hasher. NewChaining, NewOpenAddressing and NewNaive
//	use hash/maphash with a per-table random seed; the Func constructors
//	accept any deterministic Hasher, which is how tests pin slot placement.
//
// Errors
//
//   - core.ErrNilKey        nil pointer/interface key; TryGet, ContainsKey
//     and SlotOf panic with it.
//   - core.ErrKeyNotFound   Get of an absent key.
//   - core.ErrDuplicateKey  Insert of a present key.
//   - ErrHashCollision      Naive policy only.
//
// Complexity (n entries, c capacity)
//
//   - Chaining:       O(1) expected, O(n) worst per operation.
//   - OpenAddressing: O(1) expected, O(c) worst per operation.
//   - Naive:          O(1) per operation, O(c) per resize.
//
// Tables are not safe for concurrent mutation.
package hashtable
