// Package core holds the contract shared by every associative container in
// gridkit, plus the sentinel errors and helpers that go with it.
//
// Map[K,V] is implemented by:
//
//   - hashtable.Table  – chaining, open addressing (linear, quadratic,
//     double hashing) or naive direct slots.
//   - searchtree.Tree  – binary search tree, optionally AVL-balanced.
//
// Contract:
//
//	Insert(k, v) error         // ErrDuplicateKey if k is present
//	Set(k, v) error            // upsert; never ErrDuplicateKey
//	Remove(k) (bool, error)    // reports presence
//	Get(k) (V, error)          // ErrKeyNotFound if absent
//	TryGet(k) (V, bool)        // panics on a nil key
//	ContainsKey(k) bool        // panics on a nil key
//	Len() int
//	Keys() []K, Values() []V, All() iter.Seq2[K, V]
//	Clear()
//
// A nil key (nil pointer, interface, map, slice, channel or func) is a
// programming error. Every error-returning operation rejects it with
// ErrNilKey; TryGet and ContainsKey have no error result and panic with
// ErrNilKey instead. See IsNilKey.
//
// Errors are matched with errors.Is. Implementations wrap them with the
// offending key:
//
//	if errors.Is(err, core.ErrDuplicateKey) { ... }
//
// Containers are not safe for concurrent mutation.
package core
