package connector

import (
	"github.com/lexlink/lexlink/internal/chash"
)

const (
	// lcBits is the number of bits used to encode one trailing lowercase
	// letter. With 7 bits, up to 9 letters fit in a uint64.
	lcBits     = 7
	lcSlotMask = (1 << lcBits) - 1

	// MaxTrailing is the maximum number of trailing lowercase letters and
	// wildcards a connector may carry, fixed by the 7-bit/64-bit packing.
	MaxTrailing = 9
)

// UnlimitedLen marks a connector type whose links may span the whole
// sentence.
const UnlimitedLen uint8 = 255

// Descriptor is the deduplicated, encoded record for one distinct connector
// type. Descriptors are created by Table.GetOrCreate during grammar load,
// are immutable once the table is finalized, and live until the table is
// closed. Text is borrowed from the dictionary's string pool.
type Descriptor struct {
	// lcLetters and lcMask encode the trailing lowercase run: letter i
	// occupies bits [lcBits*i, lcBits*(i+1)). A slot whose mask bits are
	// clear holds a wildcard and never participates in comparison.
	lcLetters uint64
	lcMask    uint64

	text    string
	strHash uint32

	// ucHash is a hash of the uppercase substring, used only while the
	// table is still building. ucID is the dense uppercase-group id
	// assigned by Table.Finalize; it is the only valid one of the two
	// afterwards. The table's phase says which applies.
	ucHash uint32
	ucID   uint32

	// lengthLimit is 0 to defer to the parse options' short length,
	// UnlimitedLen for no bound, or a positive link-length bound.
	lengthLimit uint8

	// headDependent is the leading lowercase marker ('h' for head, 'd'
	// for dependent), or 0 when absent.
	headDependent byte

	ucStart uint8
	ucLen   uint8
}

// Text returns the full connector name, including any leading marker.
func (d *Descriptor) Text() string { return d.text }

// UCPart returns the uppercase substring of the connector name.
func (d *Descriptor) UCPart() string {
	return d.text[d.ucStart : d.ucStart+d.ucLen]
}

// GroupID returns the dense uppercase-group id. Valid only after the owning
// table has been finalized; two descriptors share a GroupID exactly when
// their uppercase substrings are identical.
func (d *Descriptor) GroupID() uint32 { return d.ucID }

// LengthLimit returns the stored link-length bound: 0 defers to the parse
// options, UnlimitedLen means no bound.
func (d *Descriptor) LengthLimit() uint8 { return d.lengthLimit }

// HeadDependent returns the leading marker byte, or 0 when absent.
func (d *Descriptor) HeadDependent() byte { return d.headDependent }

func (d *Descriptor) String() string { return d.text }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

// encode parses d.text into its structural parts and fills in every encoded
// field except ucID. The text must have the grammar's lexical shape: an
// optional leading lowercase marker, one or more uppercase letters, then at
// most MaxTrailing trailing lowercase letters or '*' wildcards.
func (d *Descriptor) encode() error {
	s := d.text
	if len(s) == 0 {
		return &EncodingError{Text: s, Reason: "empty connector name"}
	}

	i := 0
	if isLower(s[0]) {
		d.headDependent = s[0]
		i++
	}

	start := i
	for i < len(s) && isUpper(s[i]) {
		i++
	}
	if i == start {
		return &EncodingError{Text: s, Reason: "missing uppercase part"}
	}
	if i-start > int(^uint8(0)) {
		return &EncodingError{Text: s, Reason: "uppercase part too long"}
	}
	d.ucStart = uint8(start)
	d.ucLen = uint8(i - start)

	tail := s[i:]
	if len(tail) > MaxTrailing {
		return &EncodingError{Text: s, Reason: "more than 9 trailing letters"}
	}
	for j := 0; j < len(tail); j++ {
		switch c := tail[j]; {
		case c == '*':
			// Wildcard slot: mask bits stay clear so the position never
			// participates in a bitwise comparison on either side.
		case isLower(c):
			d.lcLetters |= uint64(c&lcSlotMask) << (lcBits * j)
			d.lcMask |= lcSlotMask << (lcBits * j)
		default:
			return &EncodingError{Text: s, Reason: "invalid trailing character"}
		}
	}

	d.strHash = chash.String(s)
	d.ucHash = chash.Jenkins(s[start:i])
	return nil
}
