// Package listsplit splits ordered lists into consecutive weight-bounded batches.
//
// Example usage:
//
//	batches, ignored, err := listsplit.Split(sizes, weigh.Sum[int](), 4<<20,
//	    listsplit.WithMaxSize(1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The functions here delegate to package batch; see pkg/weigh for ready-made
// weight functions and cmd/listsplit for the command line tool.
package listsplit

import (
	"cmp"

	"github.com/bft-labs/listsplit/pkg/batch"
	"github.com/bft-labs/listsplit/pkg/log"
)

// Option configures optional behavior of a split.
type Option = batch.Option

// ErrInvalidConfig is returned when the maximum weight cannot admit any element.
var ErrInvalidConfig = batch.ErrInvalidConfig

// Split partitions elements into batches whose weight never exceeds maxWeight.
// Elements too heavy to fit any batch alone are returned as ignored.
func Split[A any, B cmp.Ordered](elements []A, weight batch.WeightFunc[A, B], maxWeight B, opts ...Option) ([][]A, []A, error) {
	return batch.Split(elements, weight, maxWeight, opts...)
}

// SplitFunc is like Split but orders weights with compare.
func SplitFunc[A, B any](elements []A, weight batch.WeightFunc[A, B], maxWeight B, compare func(x, y B) int, opts ...Option) ([][]A, []A, error) {
	return batch.SplitFunc(elements, weight, maxWeight, compare, opts...)
}

// WithMaxSize caps the number of elements per batch.
func WithMaxSize(n int) Option {
	return batch.WithMaxSize(n)
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l log.Logger) Option {
	return batch.WithLogger(l)
}
