package core

import (
	"errors"
	"iter"
	"reflect"
)

// Sentinel errors shared by every Map implementation.
var (
	// ErrNilKey indicates an operation was given a nil key.
	ErrNilKey = errors.New("core: key is nil")

	// ErrKeyNotFound indicates a read of a key the map does not contain.
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrDuplicateKey indicates Insert was called with a key already present.
	// Set never returns it.
	ErrDuplicateKey = errors.New("core: duplicate key")
)

// Map is the associative contract implemented by the hash tables in
// package hashtable and the trees in package searchtree.
//
// Keys are unique. Ordering of Keys, Values and All is implementation
// defined: bucket/slot order for hash tables, ascending key order for trees.
type Map[K any, V any] interface {
	// Insert adds key→value. Returns ErrDuplicateKey if key is present.
	Insert(key K, value V) error

	// Set replaces the value of key, or inserts it if absent.
	Set(key K, value V) error

	// Remove deletes key and reports whether it was present.
	Remove(key K) (bool, error)

	// Get returns the value of key or ErrKeyNotFound.
	Get(key K) (V, error)

	// TryGet returns the value of key and whether it was found.
	// It panics with ErrNilKey when key is nil.
	TryGet(key K) (V, bool)

	// ContainsKey reports membership. It panics with ErrNilKey when key
	// is nil.
	ContainsKey(key K) bool

	// Len returns the number of stored entries.
	Len() int

	// Keys returns a snapshot of all keys in iteration order.
	Keys() []K

	// Values returns a snapshot of all values in iteration order.
	Values() []V

	// All yields every key/value pair in iteration order.
	All() iter.Seq2[K, V]

	// Clear removes every entry.
	Clear()
}

// Nilable reports whether a value of type K can be nil. Implementations
// resolve it once at construction and skip IsNilKey for value kinds.
func Nilable[K any]() bool {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// IsNilKey reports whether key is a nil pointer, interface, map, slice,
// channel or function. Value types are never nil.
func IsNilKey[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true // nil interface
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// ContainsPair reports whether m holds key with a value equal to value
// under eq.
func ContainsPair[K any, V any](m Map[K, V], key K, value V, eq func(a, b V) bool) bool {
	got, ok := m.TryGet(key)
	if !ok {
		return false
	}

	return eq(got, value)
}

// RemovePair deletes key only when its stored value equals value under eq,
// and reports whether it did. A key holding another value is left intact.
func RemovePair[K any, V any](m Map[K, V], key K, value V, eq func(a, b V) bool) (bool, error) {
	if !ContainsPair(m, key, value, eq) {
		return false, nil
	}

	return m.Remove(key)
}

// Collect copies every pair of m into a Go map. Useful for comparisons in
// tests and for handing results to callers that want builtin maps.
func Collect[K comparable, V any](m Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}

	return out
}
