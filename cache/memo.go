// Package cache memoizes sub-parse results for the parse search.
//
// The search repeatedly counts the ways a word range delimited by two
// connector instances can parse; memoizing those counts turns the
// exponential recursion into dynamic programming. Keys mix raw per-parse
// connector identities, so entries are valid only within the single parse
// run that created them and must be discarded across runs.
package cache

import (
	"math/bits"

	"github.com/lexlink/lexlink/internal/chash"
)

// DefaultSize is the bucket count used when no size hint is given.
const DefaultSize = 1 << 10

// Key identifies one memoized sub-parse: the delimiting word pair, the
// per-parse identities of the delimiting connector instances, and the
// remaining cost budget.
type Key struct {
	LeftWord  int
	RightWord int
	Left      uint32
	Right     uint32
	Cost      uint32
}

type entry struct {
	key   Key
	value int64
	next  *entry
}

// Memo is a single-parse memoization table mapping Keys to counts.
// It is private to one parse and needs no locking.
type Memo struct {
	buckets []*entry
	count   int
}

// New creates a Memo with at least sizeHint buckets, rounded up to a power
// of two so the pair hash can mask instead of taking a modulo.
func New(sizeHint int) *Memo {
	size := DefaultSize
	if sizeHint > size {
		size = 1 << bits.Len(uint(sizeHint-1))
	}
	return &Memo{buckets: make([]*entry, size)}
}

func (m *Memo) bucket(k Key) uint32 {
	return chash.Pair(uint32(len(m.buckets)), k.LeftWord, k.RightWord, k.Left, k.Right, k.Cost)
}

// Lookup returns the memoized count for k, if present.
func (m *Memo) Lookup(k Key) (int64, bool) {
	for e := m.buckets[m.bucket(k)]; e != nil; e = e.next {
		if e.key == k {
			return e.value, true
		}
	}
	return 0, false
}

// Store memoizes v for k, overwriting any previous value.
func (m *Memo) Store(k Key, v int64) {
	i := m.bucket(k)
	for e := m.buckets[i]; e != nil; e = e.next {
		if e.key == k {
			e.value = v
			return
		}
	}
	m.buckets[i] = &entry{key: k, value: v, next: m.buckets[i]}
	m.count++
}

// Len returns the number of memoized entries.
func (m *Memo) Len() int { return m.count }

// Reset discards every entry. It must be called between parses: stale
// entries keyed on a previous parse's connector identities would otherwise
// alias new ones.
func (m *Memo) Reset() {
	clear(m.buckets)
	m.count = 0
}
