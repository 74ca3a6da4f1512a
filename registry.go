package lexlink

import (
	"iter"

	"github.com/lexlink/lexlink/connector"
	"github.com/lexlink/lexlink/internal/stringset"
	"github.com/lexlink/lexlink/pool"
)

// Registry owns the connector descriptor table and the string pool backing
// it for one loaded dictionary.
//
// Construction and finalization are single-threaded; a finalized registry
// is immutable and safe for concurrent readers. See the package
// documentation for the lifecycle.
type Registry struct {
	strings   *stringset.Pool
	table     *connector.Table
	logger    *Logger
	parseOpts *connector.Options
	closed    bool
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	o := &options{
		logger:    NoopLogger(),
		parseOpts: connector.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Registry{
		strings:   stringset.NewPool(),
		table:     connector.NewTable(o.expected, connector.WithTableLogger(o.logger.Logger)),
		logger:    o.logger,
		parseOpts: o.parseOpts,
	}
}

// Add registers one connector string, returning its shared descriptor.
// Idempotent: equal strings, even from different backing buffers, yield
// the identical descriptor. The dictionary loader calls this once per
// connector occurrence while reading grammar rules.
func (r *Registry) Add(text string) (*connector.Descriptor, error) {
	if r.closed {
		return nil, ErrClosed
	}
	d, err := r.table.GetOrCreate(r.strings.Intern(text))
	if err != nil {
		err = translateError(err)
		r.logger.LogAdd(text, err)
		return nil, err
	}
	return d, nil
}

// Lookup returns the descriptor for text, or nil if it was never added.
func (r *Registry) Lookup(text string) *connector.Descriptor {
	return r.table.Lookup(text)
}

// AddLengthLimit records a link-length override applied at finalization to
// every descriptor whose name matches pattern (a trailing '*' matches by
// prefix). Use connector.UnlimitedLen for no bound.
func (r *Registry) AddLengthLimit(pattern string, limit uint8) error {
	if r.closed {
		return ErrClosed
	}
	return translateError(r.table.AddLengthLimit(pattern, limit))
}

// Finalize freezes the registry: descriptors are grouped by uppercase
// content into dense ids and length-limit overrides are applied. It must
// run exactly once, after the whole dictionary has been read and before
// the first parse.
func (r *Registry) Finalize() error {
	if r.closed {
		return ErrClosed
	}
	err := translateError(r.table.Finalize())
	r.logger.LogFinalize(r.table.Len(), r.table.GroupCount(), err)
	return err
}

// Finalized reports whether Finalize has run.
func (r *Registry) Finalized() bool {
	return r.table.Finalized()
}

// Len returns the number of distinct connector types registered.
func (r *Registry) Len() int {
	return r.table.Len()
}

// GroupCount returns the number of distinct uppercase-content groups.
// Valid only after Finalize.
func (r *Registry) GroupCount() int {
	return r.table.GroupCount()
}

// Descriptors iterates over the registered descriptors; after Finalize the
// order is alphabetical by uppercase part.
func (r *Registry) Descriptors() iter.Seq[*connector.Descriptor] {
	return r.table.Descriptors()
}

// Table exposes the underlying descriptor table for callers that manage
// their own parse machinery.
func (r *Registry) Table() *connector.Table {
	return r.table
}

// NewParse obtains a per-sentence parse context bound to the registry's
// parse options. Valid only on a finalized registry: the descriptor fast
// path depends on the dense group ids.
func (r *Registry) NewParse() (*pool.ParseContext, error) {
	if r.closed {
		return nil, ErrClosed
	}
	if !r.table.Finalized() {
		return nil, ErrNotFinalized
	}
	return pool.Get(r.parseOpts), nil
}

// EndParse releases a parse context. The caller must drop every connector
// instance and memo entry created through it first; they are reclaimed in
// bulk.
func (r *Registry) EndParse(pc *pool.ParseContext) {
	pool.Put(pc)
}

// Close tears down the descriptor table. Parse contexts and descriptors
// must not be used afterwards. Close is not safe to run concurrently with
// parses.
func (r *Registry) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	r.table.Close()
	return nil
}
