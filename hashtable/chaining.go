package hashtable

import (
	"iter"
	"slices"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// chainStore keeps one ordered entry list per bucket.
type chainStore[K comparable, V any] struct {
	hash    Hasher[K]
	buckets [][]entry[K, V]
}

func newChainStore[K comparable, V any](hash Hasher[K], capacity int) *chainStore[K, V] {
	s := &chainStore[K, V]{hash: hash}
	s.reset(capacity)

	return s
}

func (s *chainStore[K, V]) capacity() int      { return len(s.buckets) }
func (s *chainStore[K, V]) threshold() float64 { return chainingLoadFactor }

func (s *chainStore[K, V]) bucket(key K) int {
	return int(s.hash(key) % uint64(len(s.buckets)))
}

// position returns the bucket of key and the key's offset inside it.
func (s *chainStore[K, V]) position(key K) (int, int) {
	b := s.bucket(key)
	for i := range s.buckets[b] {
		if s.buckets[b][i].key == key {
			return b, i
		}
	}

	return b, -1
}

func (s *chainStore[K, V]) indexOf(key K) (int, bool) {
	b, i := s.position(key)
	if i < 0 {
		return -1, false
	}

	return b, true
}

func (s *chainStore[K, V]) lookup(key K) (V, bool) {
	b, i := s.position(key)
	if i < 0 {
		var zero V
		return zero, false
	}

	return s.buckets[b][i].value, true
}

func (s *chainStore[K, V]) replace(key K, value V) bool {
	b, i := s.position(key)
	if i < 0 {
		return false
	}
	s.buckets[b][i].value = value

	return true
}

func (s *chainStore[K, V]) add(key K, value V) error {
	b := s.bucket(key)
	s.buckets[b] = append(s.buckets[b], entry[K, V]{key: key, value: value})

	return nil
}

func (s *chainStore[K, V]) remove(key K) bool {
	b, i := s.position(key)
	if i < 0 {
		return false
	}
	s.buckets[b] = slices.Delete(s.buckets[b], i, i+1)

	return true
}

// grow rehashes in iteration order, so entries sharing a new bucket keep
// their relative order.
func (s *chainStore[K, V]) grow() error {
	old := s.buckets
	s.buckets = make([][]entry[K, V], 2*len(old))
	for _, list := range old {
		for _, e := range list {
			b := s.bucket(e.key)
			s.buckets[b] = append(s.buckets[b], e)
		}
	}

	return nil
}

func (s *chainStore[K, V]) entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, list := range s.buckets {
			for _, e := range list {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (s *chainStore[K, V]) reset(capacity int) {
	s.buckets = make([][]entry[K, V], capacity)
}
