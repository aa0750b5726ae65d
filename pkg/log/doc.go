// Package log provides the logging abstraction used across listsplit.
//
// The splitter and the CLI runners log through the [Logger] interface so the
// core package never depends on a concrete logging library. A zerolog-backed
// implementation and a no-op implementation are provided.
//
// # Usage
//
//	logger := log.NewZerolog(os.Stderr, "debug")
//	batches, ignored, err := batch.Split(items, weigh.Count[string](), 10,
//	    batch.WithLogger(logger))
//
// Tests and library callers that want silence use [Noop].
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
