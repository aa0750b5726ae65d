package batch

import (
	"cmp"
	"fmt"

	"github.com/bft-labs/listsplit/pkg/log"
)

// WeightFunc returns the weight of a candidate batch.
// It must accept the empty batch and must not retain or modify the slice.
type WeightFunc[A, B any] func(batch []A) B

// Split partitions elements into consecutive batches whose weight never
// exceeds maxWeight, using the natural order of B.
//
// It returns the batches in the order they were opened and the elements that
// are too heavy to fit any batch on their own. The batch list always holds at
// least one (possibly empty) batch.
func Split[A any, B cmp.Ordered](elements []A, weight WeightFunc[A, B], maxWeight B, opts ...Option) ([][]A, []A, error) {
	return SplitFunc(elements, weight, maxWeight, cmp.Compare[B], opts...)
}

// SplitFunc is like Split but orders weights with compare, which returns a
// negative number when x < y, zero when x == y and a positive number when
// x > y.
func SplitFunc[A, B any](elements []A, weight WeightFunc[A, B], maxWeight B, compare func(x, y B) int, opts ...Option) ([][]A, []A, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if weight == nil {
		return nil, nil, fmt.Errorf("%w: nil weight function", ErrInvalidConfig)
	}
	if compare == nil {
		return nil, nil, fmt.Errorf("%w: nil weight comparator", ErrInvalidConfig)
	}

	batches := [][]A{{}}

	if o.bounded && o.maxSize <= 0 {
		o.logger.Debug("batching disabled by size cap",
			log.Int("max_size", o.maxSize),
			log.Int("ignored", len(elements)))
		return batches, append([]A{}, elements...), nil
	}
	if len(elements) == 0 {
		return batches, []A{}, nil
	}

	// An empty batch at or above the ceiling can never admit anything,
	// so the loop below would stop advancing.
	empty := weight(nil)
	if compare(empty, maxWeight) >= 0 {
		return nil, nil, fmt.Errorf("%w: max weight %v is not above empty batch weight %v",
			ErrInvalidConfig, maxWeight, empty)
	}

	var (
		ignored = []A{}
		current []A
		before  = empty
		single  = make([]A, 1)
	)

	for i := 0; i < len(elements); {
		e := elements[i]

		single[0] = e
		if compare(weight(single), maxWeight) > 0 {
			o.logger.Debug("element exceeds max weight on its own", log.Int("index", i))
			ignored = append(ignored, e)
			i++
			continue
		}

		// On rejection the write past len(current) is invisible to
		// batches, and current is dropped right after.
		candidate := append(current, e)
		after := weight(candidate)
		if compare(before, maxWeight) < 0 && compare(after, maxWeight) <= 0 && o.fits(len(current)) {
			current = candidate
			before = after
			batches[len(batches)-1] = current
			i++
			continue
		}

		// weight(∅) < max and the singleton check guarantee an empty batch
		// admits e, unless weight gave different answers for the same batch.
		if len(current) == 0 {
			return nil, nil, fmt.Errorf("%w: weight function is not deterministic at index %d",
				ErrInvalidConfig, i)
		}
		o.logger.Debug("batch full, opening next",
			log.Int("batch", len(batches)-1),
			log.Int("size", len(current)))
		current = nil
		before = empty
		batches = append(batches, []A{})
	}

	o.logger.Debug("split complete",
		log.Int("elements", len(elements)),
		log.Int("batches", len(batches)),
		log.Int("ignored", len(ignored)))

	return batches, ignored, nil
}
