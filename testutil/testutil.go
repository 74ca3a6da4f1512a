package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// maxTrailing mirrors the encoder's trailing-run budget. Generated strings
// never exceed it, so every one of them is well-formed.
const maxTrailing = 9

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Connector returns one well-formed random connector string: an optional
// 'h'/'d' marker, one to three uppercase letters, and up to maxTrailing
// trailing lowercase letters or '*' wildcards. Small alphabets are used on
// purpose so that generated corpora collide on uppercase groups and
// trailing prefixes the way real grammars do.
func (r *RNG) Connector() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	switch r.rand.Intn(4) {
	case 0:
		sb.WriteByte('h')
	case 1:
		sb.WriteByte('d')
	}

	for n := 1 + r.rand.Intn(3); n > 0; n-- {
		sb.WriteByte(byte('A' + r.rand.Intn(4)))
	}

	for n := r.rand.Intn(maxTrailing + 1); n > 0; n-- {
		if r.rand.Intn(4) == 0 {
			sb.WriteByte('*')
		} else {
			sb.WriteByte(byte('a' + r.rand.Intn(3)))
		}
	}
	return sb.String()
}

// Corpus returns n distinct well-formed connector strings.
func (r *RNG) Corpus(n int) []string {
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for len(out) < n {
		c := r.Connector()
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
