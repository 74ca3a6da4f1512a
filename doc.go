// Package lexlink provides the connector registry and matching core of a
// link-style natural-language dependency parser.
//
// A grammar's rules are built out of connectors: typed endpoints of
// potential links such as subject or object slots. A parse explores huge
// numbers of pairwise connector comparisons, so the registry deduplicates
// every distinct connector string into a compact descriptor once per
// dictionary load, and the matching engine answers compatibility in O(1)
// from those descriptors.
//
// # Quick Start
//
// Build the registry while reading the dictionary, finalize it once, then
// share it read-only across parses:
//
//	reg := lexlink.New(
//	    lexlink.WithExpectedConnectors(4096),
//	)
//	for _, text := range grammarConnectors {
//	    if _, err := reg.Add(text); err != nil {
//	        return err // malformed connector; abort the load
//	    }
//	}
//	if err := reg.Finalize(); err != nil {
//	    return err
//	}
//	defer reg.Close()
//
// Per sentence, obtain a parse context, create connector instances against
// the shared descriptors and match in the search's inner loop:
//
//	pc, err := reg.NewParse()
//	if err != nil {
//	    return err
//	}
//	defer reg.EndParse(pc)
//
//	left := pc.NewConnector(reg.Lookup("Ss"))
//	right := pc.NewConnector(reg.Lookup("hSs"))
//	if left.Match(right) {
//	    // the pair can link
//	}
//
// # Lifecycle
//
// The registry has three phases. While building (single-threaded, during
// dictionary load) Add and AddLengthLimit mutate it. Finalize groups the
// descriptors by uppercase content, assigns dense group ids and applies
// the length-limit overrides; afterwards the registry is immutable and any
// number of parse workers may read it concurrently without locking. Close
// tears everything down; parse contexts must not outlive it.
//
// # Matching
//
// connector.EasyMatch is the reference string-level rule, kept for
// diagnostics. The descriptor-level fast path used by parses replicates it
// exactly, including the head/dependent marker rule, '*' wildcards and the
// tail-length truncation of unequal trailing runs.
package lexlink
