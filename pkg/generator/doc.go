// Package generator produces synthetic data values conforming to a schema.
//
// Generation is a single recursive dispatch: Generate inspects a node's
// enum and declared type and delegates to one of the kind-specific
// producers, recursing into array items and object properties. The core is
// pure - no I/O, no logging, no shared state beyond the generator's own
// random source.
//
// # Randomness
//
// Each Generator owns an explicit *rand.Rand. NewSeeded gives fully
// deterministic output for a fixed seed and schema, which is what tests and
// reproducible fixtures want. A single Generator is not safe for concurrent
// use; create one per goroutine.
//
// # Policy
//
// The optional-property inclusion probability (default 0.7) and the cap on
// unique-item rejection sampling (default 1000 attempts) are configuration,
// not literals. See Options.
package generator
