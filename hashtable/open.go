package hashtable

import "iter"

// probeStore is a flat slot array with tombstoned deletion.
// A slot is live iff occupied[i] && !deleted[i]; a slot that was never
// occupied ends every probe sequence.
type probeStore[K comparable, V any] struct {
	hash     Hasher[K]
	probing  Probing
	slots    []entry[K, V]
	occupied []bool
	deleted  []bool
}

func newProbeStore[K comparable, V any](hash Hasher[K], capacity int, probing Probing) *probeStore[K, V] {
	s := &probeStore[K, V]{hash: hash, probing: probing}
	s.reset(capacity)

	return s
}

func (s *probeStore[K, V]) capacity() int      { return len(s.slots) }
func (s *probeStore[K, V]) threshold() float64 { return openLoadFactor }

// probe returns the slot visited on the given attempt for a key hashing to h
// in a table of n slots. Attempt 0 is always the primary index.
func probe(p Probing, h uint64, attempt, n int) int {
	c := uint64(n)
	i := uint64(attempt)
	h1 := h % c
	switch p {
	case Quadratic:
		return int((h1 + i*i) % c)
	case DoubleHash:
		h2 := 1 + h%(c-1) // never 0
		return int((h1 + i*h2) % c)
	default:
		return int((h1 + i) % c)
	}
}

func (s *probeStore[K, V]) indexOf(key K) (int, bool) {
	h := s.hash(key)
	n := len(s.slots)
	for attempt := 0; attempt < n; attempt++ {
		i := probe(s.probing, h, attempt, n)
		if !s.occupied[i] {
			return -1, false
		}
		if !s.deleted[i] && s.slots[i].key == key {
			return i, true
		}
	}

	return -1, false
}

func (s *probeStore[K, V]) lookup(key K) (V, bool) {
	i, ok := s.indexOf(key)
	if !ok {
		var zero V
		return zero, false
	}

	return s.slots[i].value, true
}

func (s *probeStore[K, V]) replace(key K, value V) bool {
	i, ok := s.indexOf(key)
	if !ok {
		return false
	}
	s.slots[i].value = value

	return true
}

// add places an absent key in the first free or tombstoned slot of its probe
// sequence. When the sequence runs capacity attempts without one, the table
// grows and probing restarts at attempt 0.
func (s *probeStore[K, V]) add(key K, value V) error {
	for !place(s.probing, s.hash(key), s.slots, s.occupied, s.deleted, entry[K, V]{key: key, value: value}) {
		s.rehash()
	}

	return nil
}

func place[K comparable, V any](p Probing, h uint64, slots []entry[K, V], occupied, deleted []bool, e entry[K, V]) bool {
	n := len(slots)
	for attempt := 0; attempt < n; attempt++ {
		i := probe(p, h, attempt, n)
		if !occupied[i] || deleted[i] {
			slots[i] = e
			occupied[i] = true
			deleted[i] = false

			return true
		}
	}

	return false
}

func (s *probeStore[K, V]) remove(key K) bool {
	i, ok := s.indexOf(key)
	if !ok {
		return false
	}
	var zero entry[K, V]
	s.slots[i] = zero
	s.deleted[i] = true

	return true
}

// grow satisfies the policy contract. Open addressing always finds room
// eventually, so it never fails.
func (s *probeStore[K, V]) grow() error {
	s.rehash()

	return nil
}

// rehash doubles capacity, rehashes live entries and drops tombstones. If a
// probe sequence in the new table cannot place an entry it doubles again.
func (s *probeStore[K, V]) rehash() {
	n := len(s.slots)
	for {
		n *= 2
		slots := make([]entry[K, V], n)
		occupied := make([]bool, n)
		deleted := make([]bool, n)
		ok := true
		for i := range s.slots {
			if !s.occupied[i] || s.deleted[i] {
				continue
			}
			if !place(s.probing, s.hash(s.slots[i].key), slots, occupied, deleted, s.slots[i]) {
				ok = false
				break
			}
		}
		if ok {
			s.slots, s.occupied, s.deleted = slots, occupied, deleted

			return
		}
	}
}

func (s *probeStore[K, V]) entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range s.slots {
			if s.occupied[i] && !s.deleted[i] && !yield(s.slots[i].key, s.slots[i].value) {
				return
			}
		}
	}
}

func (s *probeStore[K, V]) reset(capacity int) {
	s.slots = make([]entry[K, V], capacity)
	s.occupied = make([]bool, capacity)
	s.deleted = make([]bool, capacity)
}
