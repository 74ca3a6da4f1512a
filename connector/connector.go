package connector

import (
	"iter"

	"github.com/lexlink/lexlink/internal/wordset"
)

const (
	// MaxSentence is the maximum number of words in a sentence. It cannot
	// exceed 254 because word MaxSentence+1 is BadWord, and a connector's
	// word field is one byte.
	MaxSentence = 254

	// BadWord marks a connector nothing can ever connect to.
	BadWord = MaxSentence + 1
)

// DefaultShortLength is the default bound for connectors that defer to the
// parse options.
const DefaultShortLength uint8 = 16

// Options are the per-parse settings consumed when connector instances are
// set up.
type Options struct {
	// ShortLength bounds the links of every connector whose descriptor
	// stores no limit of its own.
	ShortLength uint8

	// AllShort clips every connector's limit to ShortLength, including
	// those whose descriptors allow longer links.
	AllShort bool
}

// DefaultOptions returns the standard parse settings.
func DefaultOptions() *Options {
	return &Options{ShortLength: DefaultShortLength}
}

// Connector is one occurrence of a connector type inside a parse's working
// structures. Many instances share one descriptor; instances are created
// per sentence, are private to that parse, and never outlive the table the
// descriptor lives in.
type Connector struct {
	// LengthLimit is the effective bound for this instance. It can be
	// narrower than the descriptor's stored limit.
	LengthLimit uint8

	// NearestWord is the closest word index this instance could ever
	// connect to, computed during parse setup. BadWord when nothing can.
	NearestWord uint8

	// Multi allows more than one link on this instance.
	Multi bool

	desc   *Descriptor
	origin *wordset.Set
	id     uint32
}

// Init prepares a freshly allocated instance: it binds the shared
// descriptor, records the per-parse identity and computes the effective
// length limit from opts.
func (c *Connector) Init(id uint32, desc *Descriptor, opts *Options) {
	c.id = id
	c.desc = desc
	c.Multi = false
	c.NearestWord = 0
	c.origin = nil
	c.SetLengthLimit(opts)
}

// Desc returns the shared descriptor. Instances never own it.
func (c *Connector) Desc() *Descriptor { return c.desc }

// ID returns the instance identity within its parse. It is meaningless
// outside that parse.
func (c *Connector) ID() uint32 { return c.id }

// SetLengthLimit recomputes the effective limit: the descriptor's stored
// limit, the options' short length for descriptors that defer, and the
// all-short clip; the narrowest applicable bound wins. A nil opts lifts
// the limit entirely.
func (c *Connector) SetLengthLimit(opts *Options) {
	if opts == nil {
		c.LengthLimit = UnlimitedLen
		return
	}
	limit := c.desc.lengthLimit
	if limit == 0 || (opts.AllShort && limit > opts.ShortLength) {
		c.LengthLimit = opts.ShortLength
		return
	}
	c.LengthLimit = limit
}

// Match reports whether this instance's type matches other's. Valid only
// once the descriptor table is finalized.
func (c *Connector) Match(other *Connector) bool {
	return c.desc.Match(other.desc)
}

// SetOrigin records which source word(s) produced this instance. The set is
// shared, not owned.
func (c *Connector) SetOrigin(ws *wordset.Set) { c.origin = ws }

// Origin returns the originating-word set, or nil if none was recorded.
func (c *Connector) Origin() *wordset.Set { return c.origin }

// String renders the connector the way dictionaries write it, with a '@'
// prefix for multi-connectors.
func (c *Connector) String() string {
	if c.Multi {
		return "@" + c.desc.text
	}
	return c.desc.text
}

// List is an owned, ordered sequence of connector instances, the runtime
// link-request list of one disjunct. The instances themselves are arena
// storage owned by the parse; the list only orders them.
type List struct {
	conns []*Connector
}

// Append adds c to the end of the list.
func (l *List) Append(c *Connector) {
	l.conns = append(l.conns, c)
}

// Len returns the number of instances in the list.
func (l *List) Len() int { return len(l.conns) }

// At returns the i-th instance.
func (l *List) At(i int) *Connector { return l.conns[i] }

// All iterates over the instances in order.
func (l *List) All() iter.Seq[*Connector] {
	return func(yield func(*Connector) bool) {
		for _, c := range l.conns {
			if !yield(c) {
				return
			}
		}
	}
}

// Release drops every instance from the list. The referenced descriptors
// are untouched; the instances' storage is reclaimed when the parse's arena
// resets.
func (l *List) Release() {
	l.conns = nil
}
