// Package batch partitions an ordered list into consecutive weight-bounded batches.
//
// The splitter is greedy and order preserving: it fills the current batch for
// as long as the caller's weight function allows, then opens a new one. It
// never reorders elements and never tries to minimise the number of batches.
//
// # Usage
//
//	batches, ignored, err := batch.Split(lines, weigh.Bytes(1), 4<<20,
//	    batch.WithMaxSize(500))
//	if err != nil {
//	    return err
//	}
//	for _, b := range batches {
//	    // ship b...
//	}
//
// Elements whose weight alone exceeds the maximum cannot be placed in any
// batch. They are returned in ignored, in input order, rather than failing
// the call.
//
// # Weight functions
//
// A [WeightFunc] computes the weight of a whole candidate batch, including the
// empty batch. It must be pure and deterministic: the splitter evaluates it
// repeatedly on growing prefixes of the same batch. Weights only need a total
// order; [Split] uses the native order of [cmp.Ordered] types and [SplitFunc]
// takes an explicit comparator for anything else.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package batch
