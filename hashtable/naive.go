package hashtable

import (
	"fmt"
	"iter"
)

// directStore places every key at hash mod capacity and refuses to share
// a slot. It exists to make the cost of having no collision strategy
// observable, so collisions are errors, never resolved.
type directStore[K comparable, V any] struct {
	hash     Hasher[K]
	slots    []entry[K, V]
	occupied []bool
}

func newDirectStore[K comparable, V any](hash Hasher[K], capacity int) *directStore[K, V] {
	s := &directStore[K, V]{hash: hash}
	s.reset(capacity)

	return s
}

func (s *directStore[K, V]) capacity() int      { return len(s.slots) }
func (s *directStore[K, V]) threshold() float64 { return naiveLoadFactor }

func (s *directStore[K, V]) slot(key K, capacity int) int {
	return int(s.hash(key) % uint64(capacity))
}

func (s *directStore[K, V]) indexOf(key K) (int, bool) {
	i := s.slot(key, len(s.slots))
	if s.occupied[i] && s.slots[i].key == key {
		return i, true
	}

	return -1, false
}

func (s *directStore[K, V]) lookup(key K) (V, bool) {
	i, ok := s.indexOf(key)
	if !ok {
		var zero V
		return zero, false
	}

	return s.slots[i].value, true
}

func (s *directStore[K, V]) replace(key K, value V) bool {
	i, ok := s.indexOf(key)
	if !ok {
		return false
	}
	s.slots[i].value = value

	return true
}

func (s *directStore[K, V]) add(key K, value V) error {
	i := s.slot(key, len(s.slots))
	if s.occupied[i] {
		return fmt.Errorf("%w: %v and %v share slot %d", ErrHashCollision, key, s.slots[i].key, i)
	}
	s.slots[i] = entry[K, V]{key: key, value: value}
	s.occupied[i] = true

	return nil
}

func (s *directStore[K, V]) remove(key K) bool {
	i, ok := s.indexOf(key)
	if !ok {
		return false
	}
	var zero entry[K, V]
	s.slots[i] = zero
	s.occupied[i] = false

	return true
}

// grow rehashes into a table twice the size. The new arrays are swapped in
// only when every entry found its own slot.
func (s *directStore[K, V]) grow() error {
	n := 2 * len(s.slots)
	slots := make([]entry[K, V], n)
	occupied := make([]bool, n)
	for i := range s.slots {
		if !s.occupied[i] {
			continue
		}
		j := s.slot(s.slots[i].key, n)
		if occupied[j] {
			return fmt.Errorf("%w: %v and %v share slot %d while resizing to %d",
				ErrHashCollision, s.slots[i].key, slots[j].key, j, n)
		}
		slots[j] = s.slots[i]
		occupied[j] = true
	}
	s.slots, s.occupied = slots, occupied

	return nil
}

func (s *directStore[K, V]) entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.slots {
			if s.occupied[i] && !yield(s.slots[i].key, s.slots[i].value) {
				return
			}
		}
	}
}

func (s *directStore[K, V]) reset(capacity int) {
	s.slots = make([]entry[K, V], capacity)
	s.occupied = make([]bool, capacity)
}
