package stringset

import (
	"strconv"
	"sync"
	"testing"
)

func TestPoolIntern(t *testing.T) {
	p := NewPool()

	a := p.Intern("Ss*b")
	b := p.Intern("Ss*b")

	if a != b {
		t.Errorf("expected equal canonical strings")
	}
	if p.Len() != 1 {
		t.Errorf("expected 1 distinct string, got %d", p.Len())
	}

	p.Intern("Os")
	if p.Len() != 2 {
		t.Errorf("expected 2 distinct strings, got %d", p.Len())
	}
	if !p.Contains("Os") {
		t.Errorf("expected pool to contain Os")
	}
	if p.Contains("Xca") {
		t.Errorf("did not intern Xca")
	}
}

func TestPoolInternDoesNotRetainCallerBytes(t *testing.T) {
	p := NewPool()

	buf := []byte("MVp")
	c := p.Intern(string(buf))
	buf[0] = 'X'

	if c != "MVp" {
		t.Errorf("canonical string mutated: %q", c)
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				p.Intern("C" + strconv.Itoa(i%100))
			}
		}()
	}
	wg.Wait()

	if p.Len() != 100 {
		t.Errorf("expected 100 distinct strings, got %d", p.Len())
	}
}

func TestCompare(t *testing.T) {
	if Compare("A", "B") >= 0 {
		t.Errorf("expected A < B")
	}
	if Compare("S", "S") != 0 {
		t.Errorf("expected S == S")
	}
}
