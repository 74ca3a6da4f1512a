// Package stringset canonicalizes connector-name text.
//
// Equal strings interned through the same Pool share one backing instance,
// so the connector table can compare names without walking bytes in the
// common case and can borrow text for the dictionary's lifetime without
// retaining caller-owned buffers.
package stringset

import (
	"strings"
	"sync"
)

// Pool is a deduplicating store of canonical strings.
//
// A Pool is safe for concurrent use. Typical usage is one Pool per loaded
// dictionary, torn down together with it.
type Pool struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{
		strings: make(map[string]string),
	}
}

// Intern returns the canonical instance of s.
//
// The returned string is guaranteed not to alias caller-owned memory beyond
// the call: the first interning of a value makes a stable copy that every
// later Intern of an equal string returns.
func (p *Pool) Intern(s string) string {
	p.mu.RLock()
	if c, ok := p.strings[s]; ok {
		p.mu.RUnlock()
		return c
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.strings[s]; ok {
		return c
	}

	c := strings.Clone(s)
	p.strings[c] = c
	return c
}

// Contains reports whether s has been interned.
func (p *Pool) Contains(s string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.strings[s]
	return ok
}

// Len returns the number of distinct strings held.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.strings)
}

// Compare orders two canonical strings. The ordering is byte-wise and is
// used only for deterministic iteration, never for matching.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}
