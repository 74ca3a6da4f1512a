package connector

import (
	"iter"
	"log/slog"
	"math/bits"
	"sort"
	"strings"

	"github.com/lexlink/lexlink/internal/chash"
)

const (
	// minTableSize is the smallest slot array allocated. Power of two, so
	// probing can mask instead of taking a modulo.
	minTableSize = 1 << 6

	growthFactor = 2
)

type tablePhase uint8

const (
	phaseBuilding tablePhase = iota
	phaseFinalized
	phaseClosed
)

// LengthLimitDef overrides the stored length limit of the descriptors whose
// name matches Pattern. A trailing '*' matches by prefix; otherwise the
// full connector name must match exactly. Defs apply in the order they were
// added, later defs winning on overlap.
type LengthLimitDef struct {
	Pattern string
	Limit   uint8
}

func (def LengthLimitDef) matches(text string) bool {
	if p, ok := strings.CutSuffix(def.Pattern, "*"); ok {
		return strings.HasPrefix(text, p)
	}
	return def.Pattern == text
}

// Table is the registry of connector descriptors for one loaded grammar.
//
// It is an open-addressing hash table with linear probing and a load factor
// kept at or below 3/8. The lifecycle has three phases: building (grammar
// load, single-threaded), finalized (immutable, safe for concurrent reads
// by any number of parses) and closed.
type Table struct {
	slots  []*Descriptor
	count  int
	groups int
	phase  tablePhase

	// sorted holds every descriptor ordered by uppercase part, then full
	// name. Populated by Finalize.
	sorted []*Descriptor

	limits []LengthLimitDef
	logger *slog.Logger
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithTableLogger sets the logger used for table lifecycle events. Defaults
// to discarding.
func WithTableLogger(l *slog.Logger) TableOption {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTable creates a Table pre-sized for the expected number of distinct
// connector types. An accurate expectation avoids growth entirely; zero or
// a wrong guess only costs rehashing.
func NewTable(expected int, opts ...TableOption) *Table {
	t := &Table{
		slots:  make([]*Descriptor, sizeFor(expected)),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// sizeFor returns the smallest power-of-two capacity keeping n descriptors
// at or under the 3/8 load bound.
func sizeFor(n int) int {
	size := minTableSize
	if n > 0 {
		need := (8*n + 2) / 3
		if need > size {
			size = 1 << bits.Len(uint(need-1))
		}
	}
	return size
}

// find probes for text starting at its hash, advancing linearly with
// wraparound, and returns the index of either the slot holding text or the
// first empty slot of its probe sequence.
func (t *Table) find(text string, hash uint32) uint32 {
	mask := uint32(len(t.slots) - 1)
	i := hash & mask
	for t.slots[i] != nil && t.slots[i].text != text {
		i = (i + 1) & mask
	}
	return i
}

// GetOrCreate returns the descriptor for text, creating and encoding it on
// first sight. It is idempotent: a second call with an equal string returns
// the identical descriptor. Valid only while the table is building.
func (t *Table) GetOrCreate(text string) (*Descriptor, error) {
	switch t.phase {
	case phaseFinalized:
		return nil, ErrTableFinalized
	case phaseClosed:
		return nil, ErrTableClosed
	}

	hash := chash.String(text)
	i := t.find(text, hash)
	if d := t.slots[i]; d != nil {
		return d, nil
	}

	d := &Descriptor{text: text, strHash: hash}
	if err := d.encode(); err != nil {
		return nil, err
	}
	t.logger.Debug("creating connector descriptor", "text", text)

	t.slots[i] = d
	t.count++
	if 8*t.count > 3*len(t.slots) {
		if err := t.grow(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Lookup returns the descriptor for text, or nil if it was never added.
func (t *Table) Lookup(text string) *Descriptor {
	if t.phase == phaseClosed || len(t.slots) == 0 {
		return nil
	}
	return t.slots[t.find(text, chash.String(text))]
}

// grow doubles the slot array and reinserts every descriptor by its stored
// hash. Finding a reinsertion target occupied is impossible with a correct
// probe sequence and reports an InternalError rather than an allocation
// failure.
func (t *Table) grow() error {
	old := t.slots
	t.slots = make([]*Descriptor, len(old)*growthFactor)
	t.logger.Debug("growing connector table", "from", len(old), "to", len(t.slots))

	for _, d := range old {
		if d == nil {
			continue
		}
		i := t.find(d.text, d.strHash)
		if t.slots[i] != nil {
			return &InternalError{Op: "grow", Detail: "rehash target slot occupied"}
		}
		t.slots[i] = d
	}
	return nil
}

// AddLengthLimit records a length-limit override to be applied to matching
// descriptors during Finalize.
func (t *Table) AddLengthLimit(pattern string, limit uint8) error {
	switch t.phase {
	case phaseFinalized:
		return ErrTableFinalized
	case phaseClosed:
		return ErrTableClosed
	}
	t.limits = append(t.limits, LengthLimitDef{Pattern: pattern, Limit: limit})
	return nil
}

// Finalize groups the descriptors by identical uppercase content, assigns
// each group a dense id, applies the recorded length-limit overrides and
// freezes the table. It must run exactly once, after every grammar
// connector has been added; only then is the descriptor-level match path
// valid. The finalized table may be read concurrently without locking.
func (t *Table) Finalize() error {
	switch t.phase {
	case phaseFinalized:
		return ErrTableFinalized
	case phaseClosed:
		return ErrTableClosed
	}

	t.sorted = make([]*Descriptor, 0, t.count)
	for _, d := range t.slots {
		if d != nil {
			t.sorted = append(t.sorted, d)
		}
	}
	sort.Slice(t.sorted, func(i, j int) bool {
		a, b := t.sorted[i], t.sorted[j]
		if c := strings.Compare(a.UCPart(), b.UCPart()); c != 0 {
			return c < 0
		}
		return a.text < b.text
	})

	// Grouping is by exact uppercase content, not by ucHash: a hash
	// collision must not merge two groups.
	for i, d := range t.sorted {
		if i == 0 || d.UCPart() != t.sorted[i-1].UCPart() {
			t.groups++
		}
		d.ucID = uint32(t.groups - 1)
	}

	t.applyLengthLimits()
	t.phase = phaseFinalized

	t.logger.Info("connector table finalized",
		"descriptors", t.count,
		"uc_groups", t.groups,
		"length_limit_defs", len(t.limits),
	)
	return nil
}

func (t *Table) applyLengthLimits() {
	for _, def := range t.limits {
		for _, d := range t.sorted {
			if def.matches(d.text) {
				d.lengthLimit = def.Limit
			}
		}
	}
}

// Len returns the number of distinct descriptors.
func (t *Table) Len() int { return t.count }

// GroupCount returns the number of distinct uppercase-content groups.
// Valid only after Finalize; zero before.
func (t *Table) GroupCount() int { return t.groups }

// Finalized reports whether Finalize has run.
func (t *Table) Finalized() bool { return t.phase == phaseFinalized }

// Descriptors iterates over every descriptor. After Finalize the order is
// alphabetical by uppercase part, then full name; before, it is the
// unspecified slot order.
func (t *Table) Descriptors() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		if t.phase == phaseFinalized {
			for _, d := range t.sorted {
				if !yield(d) {
					return
				}
			}
			return
		}
		for _, d := range t.slots {
			if d != nil && !yield(d) {
				return
			}
		}
	}
}

// Close releases the descriptor records and the slot array. Descriptor text
// is owned by the dictionary's string pool and is not touched. Connector
// instances must not outlive this call.
func (t *Table) Close() {
	t.slots = nil
	t.sorted = nil
	t.limits = nil
	t.count = 0
	t.groups = 0
	t.phase = phaseClosed
}
