package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoStoreLookup(t *testing.T) {
	m := New(0)

	k := Key{LeftWord: 1, RightWord: 5, Left: 10, Right: 20, Cost: 2}
	_, ok := m.Lookup(k)
	assert.False(t, ok)

	m.Store(k, 42)
	v, ok := m.Lookup(k)
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
	assert.Equal(t, 1, m.Len())
}

func TestMemoOverwrite(t *testing.T) {
	m := New(0)
	k := Key{LeftWord: 1, RightWord: 2}

	m.Store(k, 1)
	m.Store(k, 7)

	v, _ := m.Lookup(k)
	assert.Equal(t, int64(7), v)
	assert.Equal(t, 1, m.Len(), "overwrite must not duplicate the entry")
}

func TestMemoDistinguishesIdentities(t *testing.T) {
	m := New(0)

	a := Key{LeftWord: 1, RightWord: 5, Left: 10, Right: 20, Cost: 2}
	b := a
	b.Left = 11 // same words, different connector instance

	m.Store(a, 1)
	m.Store(b, 2)

	va, _ := m.Lookup(a)
	vb, _ := m.Lookup(b)
	assert.Equal(t, int64(1), va)
	assert.Equal(t, int64(2), vb)
}

func TestMemoCollisionChaining(t *testing.T) {
	// A tiny table forces every insertion through shared buckets.
	m := New(1)
	assert.Equal(t, DefaultSize, len(m.buckets), "hints below the default are ignored")

	for i := 0; i < 5000; i++ {
		m.Store(Key{LeftWord: i % 64, RightWord: i % 101, Left: uint32(i), Cost: uint32(i % 3)}, int64(i))
	}
	for i := 0; i < 5000; i++ {
		v, ok := m.Lookup(Key{LeftWord: i % 64, RightWord: i % 101, Left: uint32(i), Cost: uint32(i % 3)})
		assert.True(t, ok, "entry %d lost", i)
		assert.Equal(t, int64(i), v)
	}
}

func TestMemoReset(t *testing.T) {
	m := New(0)
	m.Store(Key{LeftWord: 1}, 1)
	m.Store(Key{LeftWord: 2}, 2)

	m.Reset()

	assert.Equal(t, 0, m.Len())
	_, ok := m.Lookup(Key{LeftWord: 1})
	assert.False(t, ok)
}

func TestMemoSizeHintRounding(t *testing.T) {
	m := New(3000)
	assert.Equal(t, 4096, len(m.buckets))
}
