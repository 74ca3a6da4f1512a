package arena

import "testing"

type record struct {
	id   int
	next *record
}

func TestArenaAlloc(t *testing.T) {
	a := New[record](4)

	if a.Len() != 0 {
		t.Fatalf("expected empty arena, len %d", a.Len())
	}

	r := a.Alloc()
	if r == nil {
		t.Fatal("Alloc returned nil")
	}
	if r.id != 0 || r.next != nil {
		t.Errorf("expected zeroed record, got %+v", r)
	}
	if a.Len() != 1 {
		t.Errorf("expected len 1, got %d", a.Len())
	}
}

func TestArenaStableAddresses(t *testing.T) {
	a := New[record](2)

	// Allocations spanning several chunks must not move earlier elements.
	first := a.Alloc()
	first.id = 42
	for i := 0; i < 20; i++ {
		a.Alloc().id = i
	}

	if first.id != 42 {
		t.Errorf("first allocation moved or was overwritten: id %d", first.id)
	}
}

func TestArenaReset(t *testing.T) {
	a := New[record](4)

	for i := 0; i < 10; i++ {
		a.Alloc().id = i + 1
	}
	a.Reset()

	if a.Len() != 0 {
		t.Errorf("expected len 0 after reset, got %d", a.Len())
	}

	// The retained chunk must hand out zeroed records again.
	r := a.Alloc()
	if r.id != 0 {
		t.Errorf("expected zeroed record after reset, got id %d", r.id)
	}
}

func TestArenaDefaultChunkSize(t *testing.T) {
	a := New[record](0)
	for i := 0; i < DefaultChunkSize+1; i++ {
		a.Alloc()
	}
	if a.Len() != DefaultChunkSize+1 {
		t.Errorf("expected %d allocations, got %d", DefaultChunkSize+1, a.Len())
	}
}
