package chash

import "testing"

func TestStringDeterministic(t *testing.T) {
	a := String("MVp")
	b := String("MVp")
	if a != b {
		t.Errorf("String not deterministic: %#x != %#x", a, b)
	}
	if String("MVp") == String("MVa") {
		t.Errorf("suspicious collision between distinct connector names")
	}
}

func TestJenkinsDeterministic(t *testing.T) {
	if Jenkins("ABC") != Jenkins("ABC") {
		t.Errorf("Jenkins not deterministic")
	}
	if Jenkins("") != 0 {
		// Empty input mixes nothing; the avalanche of zero is zero.
		t.Errorf("expected zero hash for empty string, got %#x", Jenkins(""))
	}
}

func TestJenkinsDistribution(t *testing.T) {
	// Buckets across a power-of-two table should not collapse onto a few
	// slots for realistic connector-style inputs.
	const size = 64
	seen := make(map[uint32]bool)
	names := []string{"S", "Ss", "Sp", "O", "Os", "Op", "MV", "MVp", "MVa", "AN", "A", "D", "Ds", "Dmc", "J", "Js", "Jp", "W", "Wd", "Wi"}
	for _, n := range names {
		seen[Jenkins(n)&(size-1)] = true
	}
	if len(seen) < len(names)/2 {
		t.Errorf("poor bucket spread: %d buckets for %d names", len(seen), len(names))
	}
}

func TestPairStaysInTable(t *testing.T) {
	const size = 1 << 10
	for lw := 0; lw < 32; lw++ {
		h := Pair(size, lw, lw+1, uint32(lw*7), uint32(lw*13), uint32(lw%4))
		if h >= size {
			t.Fatalf("bucket %d out of range", h)
		}
	}
}

func TestPairMixesIdentities(t *testing.T) {
	const size = 1 << 16
	a := Pair(size, 1, 2, 10, 20, 0)
	b := Pair(size, 1, 2, 11, 20, 0)
	c := Pair(size, 2, 1, 10, 20, 0)
	if a == b && a == c {
		t.Errorf("pair hash ignores its inputs")
	}
}
