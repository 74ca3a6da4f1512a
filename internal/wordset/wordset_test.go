package wordset

import "testing"

func TestSet(t *testing.T) {
	s := Of(1, 3, 5)

	if !s.Contains(3) {
		t.Errorf("expected 3 in set")
	}
	if s.Contains(2) {
		t.Errorf("did not add 2")
	}
	if s.Len() != 3 {
		t.Errorf("expected len 3, got %d", s.Len())
	}

	s.Add(2)
	if !s.Contains(2) {
		t.Errorf("expected 2 after Add")
	}
}

func TestSetUnion(t *testing.T) {
	a := Of(1, 2)
	b := Of(2, 7)

	a.Union(b)

	if a.Len() != 3 {
		t.Errorf("expected union of size 3, got %d", a.Len())
	}
	if !a.Contains(7) {
		t.Errorf("expected 7 after union")
	}
	if b.Len() != 2 {
		t.Errorf("union must not mutate its argument")
	}
}

func TestSetCloneIsDeep(t *testing.T) {
	a := Of(4)
	c := a.Clone()
	c.Add(9)

	if a.Contains(9) {
		t.Errorf("clone aliases original")
	}
}

func TestSetWordsOrdered(t *testing.T) {
	s := Of(9, 1, 4)

	var got []int
	for w := range s.Words() {
		got = append(got, w)
	}

	want := []int{1, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSetEmpty(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Errorf("new set should be empty")
	}
	for range s.Words() {
		t.Fatalf("empty set yielded a word")
	}
}
