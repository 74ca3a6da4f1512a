// Package pool provides reusable per-parse scratch contexts.
// Uses sync.Pool for automatic memory reuse so that the steady-state
// allocation count per sentence stays near zero.
package pool

import (
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/lexlink/lexlink/cache"
	"github.com/lexlink/lexlink/connector"
	"github.com/lexlink/lexlink/internal/arena"
)

const (
	// connectorChunk is the arena chunk size; one chunk covers a typical
	// sentence without a second allocation.
	connectorChunk = 512

	// memoSizeHint sizes the match memo table.
	memoSizeHint = 1 << 12
)

// ParseContext holds everything one sentence parse scratches on: the
// connector-instance arena, the match memoization table and a visited-word
// bitset for setup scans. A context is private to one parse; no locking
// happens at this layer.
type ParseContext struct {
	// Memo caches sub-parse counts. Its entries are keyed on this parse's
	// connector identities and die with the context's reuse.
	Memo *cache.Memo

	conns   *arena.Arena[connector.Connector]
	visited *bitset.BitSet
	opts    *connector.Options
}

var parsePool = sync.Pool{
	New: func() interface{} {
		return &ParseContext{
			Memo:    cache.New(memoSizeHint),
			conns:   arena.New[connector.Connector](connectorChunk),
			visited: bitset.New(connector.BadWord + 1),
		}
	},
}

// Get retrieves a clean ParseContext from the pool. opts applies to every
// connector instance the context creates; nil lifts all length limits.
func Get(opts *connector.Options) *ParseContext {
	pc := parsePool.Get().(*ParseContext)
	pc.Reset()
	pc.opts = opts
	return pc
}

// Put returns a ParseContext to the pool for reuse. The caller must not
// touch the context, its connectors or its memo entries afterwards.
func Put(pc *ParseContext) {
	parsePool.Put(pc)
}

// NewConnector allocates a connector instance referencing desc, initialized
// with the context's parse options. The instance lives until the context is
// returned to the pool.
func (pc *ParseContext) NewConnector(desc *connector.Descriptor) *connector.Connector {
	c := pc.conns.Alloc()
	c.Init(uint32(pc.conns.Len()-1), desc, pc.opts)
	return c
}

// ConnectorCount returns the number of instances created so far.
func (pc *ParseContext) ConnectorCount() int {
	return pc.conns.Len()
}

// Options returns the parse options the context was obtained with.
func (pc *ParseContext) Options() *connector.Options {
	return pc.opts
}

// MarkVisited marks a word index as visited during setup scans and reports
// whether it already was.
func (pc *ParseContext) MarkVisited(word int) bool {
	prior := pc.visited.Test(uint(word))
	pc.visited.Set(uint(word))
	return prior
}

// IsVisited reports whether a word index has been marked.
func (pc *ParseContext) IsVisited(word int) bool {
	return pc.visited.Test(uint(word))
}

// Reset clears the context for reuse: connectors are bulk-released, the
// memo table and the visited set are emptied.
func (pc *ParseContext) Reset() {
	pc.conns.Reset()
	pc.Memo.Reset()
	pc.visited.ClearAll()
	pc.opts = nil
}
