// Package chash provides the hash functions behind connector bookkeeping.
//
// Three unrelated hashes live here:
//
//   - String: full connector text, used for open-addressing table probes
//   - Jenkins: uppercase substring, used only before table finalization
//   - Pair: word/connector/cost mix, used to bucket match memoization
//
// All three are deterministic within a process. None of them feed any
// persisted format, so they may change freely between releases.
package chash
