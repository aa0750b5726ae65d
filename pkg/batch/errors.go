package batch

import "errors"

// ErrInvalidConfig is returned when the split cannot make progress with the
// given configuration: a nil weight function or comparator, or a maximum
// weight that is not strictly greater than the weight of an empty batch.
var ErrInvalidConfig = errors.New("batch: invalid configuration")
