package chash

import (
	"github.com/cespare/xxhash/v2"
)

// String computes the full-text hash used for connector table probing.
//
// The table's correctness never depends on this hash; only probe-sequence
// length does. xxhash is used because the table is rebuilt on every
// dictionary load and setup cost dominates collision cost.
func String(s string) uint32 {
	h := xxhash.Sum64String(s)
	return uint32(h ^ (h >> 32))
}

// Jenkins computes the Jenkins one-at-a-time hash of s.
//
// Used for the uppercase-substring hash during table build. Finalization
// groups by exact content, so collisions here are harmless.
func Jenkins(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h += uint32(s[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Pair folds two word indices, two per-parse connector identities and a
// cost into a bucket index for the match memoization cache (sdbm mix).
//
// Because it mixes raw per-parse identities, values derived from it are
// meaningless outside the parse that produced them.
func Pair(tableSize uint32, leftWord, rightWord int, left, right uint32, cost uint32) uint32 {
	i := cost
	i = uint32(leftWord) + (i << 6) + (i << 16) - i
	i = uint32(rightWord) + (i << 6) + (i << 16) - i
	i = left + (i << 6) + (i << 16) - i
	i = right + (i << 6) + (i << 16) - i
	return i & (tableSize - 1)
}
