package hashtable

import (
	"errors"
	"fmt"
	"hash/maphash"

	"github.com/sirupsen/logrus"
)

// ErrHashCollision is returned by the Naive policy when two distinct keys
// map to the same slot, either on insert or while rehashing during resize.
var ErrHashCollision = errors.New("hashtable: hash collision")

const (
	// DefaultCapacity is the initial slot/bucket count.
	DefaultCapacity = 16

	// MinCapacity is the smallest accepted capacity. DoubleHash needs c-1 ≥ 1.
	MinCapacity = 2

	chainingLoadFactor = 0.75
	openLoadFactor     = 0.6
	naiveLoadFactor    = 0.75
)

// Kind names the collision policy of a Table.
type Kind int

const (
	// Chaining resolves collisions with per-bucket entry lists.
	Chaining Kind = iota
	// OpenAddressing resolves collisions by probing other slots.
	OpenAddressing
	// Naive does not resolve collisions.
	Naive
)

// String returns the policy name.
func (k Kind) String() string {
	switch k {
	case Chaining:
		return "chaining"
	case OpenAddressing:
		return "open-addressing"
	case Naive:
		return "naive"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Probing selects the probe sequence of an OpenAddressing table.
type Probing int

const (
	// Linear probes (h1 + i) mod c.
	Linear Probing = iota
	// Quadratic probes (h1 + i²) mod c.
	Quadratic
	// DoubleHash probes (h1 + i·h2) mod c with h2 = 1 + h mod (c-1).
	DoubleHash
)

// String returns the probing strategy name.
func (p Probing) String() string {
	switch p {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case DoubleHash:
		return "double-hash"
	default:
		return fmt.Sprintf("Probing(%d)", int(p))
	}
}

// Hasher maps a key to a 64-bit hash. It must be deterministic for the
// lifetime of a table.
type Hasher[K comparable] func(key K) uint64

// NewSeededHasher returns a Hasher backed by hash/maphash with a fresh
// random seed.
func NewSeededHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()

	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// Option configures a Table at construction.
type Option func(*Options)

// Options holds construction parameters for a Table.
type Options struct {
	// Capacity is the initial number of buckets or slots. Default 16.
	Capacity int

	// Probing is the probe sequence for OpenAddressing tables. Default Linear.
	// Ignored by the other policies.
	Probing Probing

	// Logger receives debug events for resizes and resize failures.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Capacity 16, Linear probing and the standard
// logrus logger.
func DefaultOptions() Options {
	return Options{
		Capacity: DefaultCapacity,
		Probing:  Linear,
		Logger:   logrus.StandardLogger(),
	}
}

// WithCapacity sets the initial capacity. Panics if n < MinCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < MinCapacity {
			panic(fmt.Sprintf("hashtable: capacity %d below minimum %d", n, MinCapacity))
		}
		o.Capacity = n
	}
}

// WithProbing selects the probe sequence for OpenAddressing tables.
func WithProbing(p Probing) Option {
	return func(o *Options) {
		o.Probing = p
	}
}

// WithLogger routes resize events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
