// Package testutil provides testing utilities for lexlink.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating well-formed random connector
// strings, so property tests can drive the matching engine across a far
// larger input space than hand-written tables.
//
// # Random Connector Generation
//
//	rng := testutil.NewRNG(seed)
//	text := rng.Connector()       // e.g. "hABx*"
//	corpus := rng.Corpus(500)     // distinct well-formed names
package testutil
