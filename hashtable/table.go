package hashtable

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridkit/core"
)

// policy is the collision strategy behind a Table. Implementations own the
// slot storage; Table owns key validation, counting and the resize trigger.
type policy[K comparable, V any] interface {
	capacity() int
	threshold() float64

	// indexOf returns the bucket or slot currently holding key.
	indexOf(key K) (int, bool)
	lookup(key K) (V, bool)
	// replace overwrites the value of a present key.
	replace(key K, value V) bool
	// add stores a key known to be absent.
	add(key K, value V) error
	remove(key K) bool
	// grow doubles capacity and rehashes. On error storage is unchanged.
	grow() error
	entries() iter.Seq2[K, V]
	reset(capacity int)
}

// Table is a hash map whose collision handling is fixed at construction.
// It implements core.Map.
type Table[K comparable, V any] struct {
	kind    Kind
	opts    Options
	p       policy[K, V]
	count   int
	resized bool
	nilable bool
	log     logrus.FieldLogger
}

var _ core.Map[string, int] = (*Table[string, int])(nil)

// NewChaining returns an empty chaining table using a seeded maphash hasher.
func NewChaining[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewChainingFunc[K, V](NewSeededHasher[K](), opts...)
}

// NewChainingFunc returns an empty chaining table using hash.
func NewChainingFunc[K comparable, V any](hash Hasher[K], opts ...Option) *Table[K, V] {
	o := buildOptions(opts)

	return newTable[K, V](Chaining, o, newChainStore[K, V](hash, o.Capacity))
}

// NewOpenAddressing returns an empty open-addressing table using a seeded
// maphash hasher. Select the probe sequence with WithProbing.
func NewOpenAddressing[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewOpenAddressingFunc[K, V](NewSeededHasher[K](), opts...)
}

// NewOpenAddressingFunc returns an empty open-addressing table using hash.
func NewOpenAddressingFunc[K comparable, V any](hash Hasher[K], opts ...Option) *Table[K, V] {
	o := buildOptions(opts)

	return newTable[K, V](OpenAddressing, o, newProbeStore[K, V](hash, o.Capacity, o.Probing))
}

// NewNaive returns an empty table that fails on any collision.
func NewNaive[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewNaiveFunc[K, V](NewSeededHasher[K](), opts...)
}

// NewNaiveFunc returns an empty naive table using hash.
func NewNaiveFunc[K comparable, V any](hash Hasher[K], opts ...Option) *Table[K, V] {
	o := buildOptions(opts)

	return newTable[K, V](Naive, o, newDirectStore[K, V](hash, o.Capacity))
}

func newTable[K comparable, V any](kind Kind, o Options, p policy[K, V]) *Table[K, V] {
	return &Table[K, V]{
		kind:    kind,
		opts:    o,
		p:       p,
		nilable: core.Nilable[K](),
		log:     o.Logger.WithField("table", kind.String()),
	}
}

func (t *Table[K, V]) nilKey(key K) bool {
	return t.nilable && core.IsNilKey(key)
}

// Kind reports the collision policy.
func (t *Table[K, V]) Kind() Kind { return t.kind }

// Probing reports the probe sequence. Meaningful only for OpenAddressing.
func (t *Table[K, V]) Probing() Probing { return t.opts.Probing }

// Capacity returns the current bucket or slot count.
func (t *Table[K, V]) Capacity() int { return t.p.capacity() }

// LoadFactor returns Len()/Capacity().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.p.capacity())
}

// Threshold returns the load factor at which the table grows.
func (t *Table[K, V]) Threshold() float64 { return t.p.threshold() }

// Resized reports whether capacity changed since the last AckResize.
// Callers mirroring the slot layout use it to know a full redraw is due.
func (t *Table[K, V]) Resized() bool { return t.resized }

// AckResize clears the Resized flag.
func (t *Table[K, V]) AckResize() { t.resized = false }

// Insert adds key→value.
// Returns core.ErrNilKey, core.ErrDuplicateKey, or for Naive tables
// ErrHashCollision (from the slot itself or from the resize it triggered).
func (t *Table[K, V]) Insert(key K, value V) error {
	return t.store(key, value, false)
}

// Set overwrites the value of key, or inserts it exactly like Insert.
// Set never returns core.ErrDuplicateKey.
func (t *Table[K, V]) Set(key K, value V) error {
	return t.store(key, value, true)
}

func (t *Table[K, V]) store(key K, value V, upsert bool) error {
	if t.nilKey(key) {
		return core.ErrNilKey
	}
	if _, ok := t.p.lookup(key); ok {
		if !upsert {
			return fmt.Errorf("%w: %v", core.ErrDuplicateKey, key)
		}
		t.p.replace(key, value)

		return nil
	}

	// Grow before placing so a new entry never pushes load past threshold.
	if t.LoadFactor() >= t.p.threshold() {
		if err := t.grow(); err != nil {
			return err
		}
	}

	before := t.p.capacity()
	if err := t.p.add(key, value); err != nil {
		return err
	}
	if after := t.p.capacity(); after != before {
		// open addressing grew on its own after exhausting a probe sequence
		t.resized = true
		t.log.WithFields(logrus.Fields{"from": before, "to": after, "count": t.count}).
			Debug("hashtable: forced resize after probe exhaustion")
	}
	t.count++

	return nil
}

func (t *Table[K, V]) grow() error {
	before := t.p.capacity()
	if err := t.p.grow(); err != nil {
		t.log.WithFields(logrus.Fields{"capacity": before, "count": t.count}).
			WithError(err).Debug("hashtable: resize failed")

		return err
	}
	t.resized = true
	t.log.WithFields(logrus.Fields{"from": before, "to": t.p.capacity(), "count": t.count}).
		Debug("hashtable: resized")

	return nil
}

// Remove deletes key and reports whether it was present.
func (t *Table[K, V]) Remove(key K) (bool, error) {
	if t.nilKey(key) {
		return false, core.ErrNilKey
	}
	if !t.p.remove(key) {
		return false, nil
	}
	t.count--

	return true, nil
}

// Get returns the value stored under key.
// Returns core.ErrNilKey or core.ErrKeyNotFound.
func (t *Table[K, V]) Get(key K) (V, error) {
	var zero V
	if t.nilKey(key) {
		return zero, core.ErrNilKey
	}
	v, ok := t.p.lookup(key)
	if !ok {
		return zero, fmt.Errorf("%w: %v", core.ErrKeyNotFound, key)
	}

	return v, nil
}

// TryGet returns the value stored under key and whether it exists.
// It panics with core.ErrNilKey when key is nil.
func (t *Table[K, V]) TryGet(key K) (V, bool) {
	if t.nilKey(key) {
		panic(fmt.Errorf("hashtable: TryGet: %w", core.ErrNilKey))
	}

	return t.p.lookup(key)
}

// ContainsKey reports whether key is stored.
// It panics with core.ErrNilKey when key is nil.
func (t *Table[K, V]) ContainsKey(key K) bool {
	_, ok := t.TryGet(key)

	return ok
}

// SlotOf returns the bucket (Chaining) or slot (OpenAddressing, Naive)
// index currently holding key. It panics with core.ErrNilKey when key is
// nil.
func (t *Table[K, V]) SlotOf(key K) (int, bool) {
	if t.nilKey(key) {
		panic(fmt.Errorf("hashtable: SlotOf: %w", core.ErrNilKey))
	}

	return t.p.indexOf(key)
}

// Len returns the number of live entries.
func (t *Table[K, V]) Len() int { return t.count }

// All yields live entries in storage order: bucket index then insertion
// order for Chaining, slot index otherwise. The order is not stable across
// a resize. Mutating the table during iteration is undefined.
func (t *Table[K, V]) All() iter.Seq2[K, V] { return t.p.entries() }

// Keys returns the live keys in All order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for k := range t.p.entries() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns the live values in All order.
func (t *Table[K, V]) Values() []V {
	values := make([]V, 0, t.count)
	for _, v := range t.p.entries() {
		values = append(values, v)
	}

	return values
}

// Clear drops every entry and tombstone. Capacity is kept.
func (t *Table[K, V]) Clear() {
	t.p.reset(t.p.capacity())
	t.count = 0
}
