// Package arena provides a chunked allocator for per-parse records.
//
// # Concurrency Model
//
// An Arena belongs to exactly one parse and is never shared between
// goroutines. The typical usage pattern is:
//   - Obtain an arena when a sentence parse begins
//   - Allocate connector instances from it during parse setup
//   - Call Reset() once when the parse ends (bulk release)
//
// # Memory Management
//
// Elements are allocated out of fixed-size chunks, so addresses handed out
// by Alloc stay stable for the arena's lifetime: records may hold pointers
// to each other without invalidation on growth. Reset keeps the first chunk
// for reuse across parses, which makes the steady-state allocation count
// per parse close to zero.
package arena

// DefaultChunkSize is the number of elements per chunk.
const DefaultChunkSize = 256

// Arena is a chunked, bulk-released allocator for values of type T.
type Arena[T any] struct {
	chunks    [][]T
	chunkSize int
	n         int
}

// New creates an Arena with the given elements-per-chunk. Sizes <= 0 fall
// back to DefaultChunkSize.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc returns a pointer to a zeroed T. The address stays valid until the
// arena is reset.
func (a *Arena[T]) Alloc() *T {
	chunk := a.n / a.chunkSize
	if chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, a.chunkSize))
	}
	p := &a.chunks[chunk][a.n%a.chunkSize]
	a.n++
	return p
}

// Len returns the number of live allocations.
func (a *Arena[T]) Len() int {
	return a.n
}

// Reset releases every allocation at once. The first chunk is zeroed and
// kept for reuse; the rest become garbage. Pointers obtained before Reset
// must not be used afterwards.
func (a *Arena[T]) Reset() {
	if len(a.chunks) > 1 {
		a.chunks = a.chunks[:1]
	}
	if len(a.chunks) == 1 {
		clear(a.chunks[0])
	}
	a.n = 0
}
