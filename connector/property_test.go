package connector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lexlink/lexlink/connector"
	"github.com/lexlink/lexlink/testutil"
)

// Randomized sweep of the §4 matching rules: on a generated dictionary the
// descriptor fast path, the reference rule and symmetry must all agree.
func TestMatchPropertiesRandomCorpus(t *testing.T) {
	rng := testutil.NewRNG(2024)
	corpus := rng.Corpus(400)

	tab := connector.NewTable(len(corpus))
	descs := make([]*connector.Descriptor, len(corpus))
	for i, text := range corpus {
		d, err := tab.GetOrCreate(text)
		require.NoError(t, err, "generated connector %q must be well-formed", text)
		descs[i] = d
	}
	require.NoError(t, tab.Finalize())

	for i, s := range corpus {
		for j, u := range corpus {
			ref := connector.EasyMatch(s, u)
			if sym := connector.EasyMatch(u, s); sym != ref {
				t.Fatalf("EasyMatch(%q, %q)=%v but EasyMatch(%q, %q)=%v", s, u, ref, u, s, sym)
			}
			if fast := descs[i].Match(descs[j]); fast != ref {
				t.Fatalf("descriptor match of %q vs %q = %v, reference says %v", s, u, fast, ref)
			}
		}
	}
}

func TestGrowthPropertiesRandomCorpus(t *testing.T) {
	rng := testutil.NewRNG(99)
	corpus := rng.Corpus(3000)

	tab := connector.NewTable(0)
	created := make([]*connector.Descriptor, len(corpus))
	for i, text := range corpus {
		d, err := tab.GetOrCreate(text)
		require.NoError(t, err)
		created[i] = d
	}

	// Multiple growth events behind us; every descriptor must still be
	// found unchanged.
	for i, text := range corpus {
		d, err := tab.GetOrCreate(text)
		require.NoError(t, err)
		require.Same(t, created[i], d)
	}
	require.Equal(t, len(corpus), tab.Len())
}
