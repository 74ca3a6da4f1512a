// Package connector implements the connector-type registry and matching
// engine of the dependency parser.
//
// A connector names one endpoint of a potential grammatical link. Its text
// has three parts: an optional leading lowercase marker ('h' head, 'd'
// dependent), an uppercase category run, and up to nine trailing lowercase
// qualifier letters or '*' wildcards.
//
// # Lifecycle
//
// During grammar load, every distinct connector string is registered once:
//
//	t := connector.NewTable(4096)
//	d, err := t.GetOrCreate("MVp")
//	...
//	err = t.Finalize()
//
// Finalize assigns each group of descriptors sharing an uppercase part a
// dense id, turning uppercase comparison into an integer test. From then
// on the table is immutable and may be read by any number of concurrent
// parses without synchronization.
//
// # Matching
//
// EasyMatch is the reference string-level rule. (*Descriptor).Match is its
// O(1) equivalent for the parse search's innermost loop: a group-id
// comparison plus one XOR/AND over the bit-packed trailing parts. The two
// agree on every pair of well-formed connector strings in a finalized
// table.
//
// # Memory
//
// Descriptors are owned by the Table and live until Close. Connector
// instances are per-parse records allocated from the parse's arena; they
// reference descriptors but never own them. Allocation failure anywhere in
// this package is fatal to the in-progress load or parse; no partial-state
// recovery is attempted.
package connector
