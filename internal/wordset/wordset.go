// Package wordset tracks which sentence words produced a connector instance.
//
// Sets are built during parse setup (idiom and ellipsis expansion can make
// one connector originate from several source words) and are read-only
// afterwards. They wrap a 32-bit Roaring Bitmap.
package wordset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of sentence word indices.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty Set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Of creates a Set containing the given word indices.
func Of(words ...int) *Set {
	s := New()
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts a word index.
func (s *Set) Add(word int) {
	s.rb.Add(uint32(word))
}

// Contains reports whether word is in the set.
func (s *Set) Contains(word int) bool {
	return s.rb.Contains(uint32(word))
}

// Union merges other into s.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// IsEmpty reports whether the set has no words.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Words iterates over the word indices in ascending order.
func (s *Set) Words() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
