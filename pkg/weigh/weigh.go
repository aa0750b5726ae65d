package weigh

import (
	"unicode/utf8"

	"github.com/bft-labs/listsplit/pkg/batch"
)

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Count weighs a batch by its number of elements.
func Count[A any]() batch.WeightFunc[A, int] {
	return func(b []A) int { return len(b) }
}

// Sum weighs a batch of numbers by their total.
func Sum[N Number]() batch.WeightFunc[N, N] {
	return SumBy(func(n N) N { return n })
}

// SumBy weighs a batch by the total of f over its elements.
func SumBy[A any, N Number](f func(A) N) batch.WeightFunc[A, N] {
	return func(b []A) N {
		var total N
		for _, e := range b {
			total += f(e)
		}
		return total
	}
}

// Bytes weighs a batch of strings by the length of the strings joined with a
// separator of sepLen bytes.
func Bytes(sepLen int) batch.WeightFunc[string, int] {
	return func(b []string) int {
		if len(b) == 0 {
			return 0
		}
		total := sepLen * (len(b) - 1)
		for _, s := range b {
			total += len(s)
		}
		return total
	}
}

// Runes weighs a batch of strings by their total rune count.
func Runes() batch.WeightFunc[string, int] {
	return SumBy(utf8.RuneCountInString)
}

// Over adapts a weight function on T to elements of type A by projecting
// each element through f.
func Over[A, T, B any](w batch.WeightFunc[T, B], f func(A) T) batch.WeightFunc[A, B] {
	return func(b []A) B {
		projected := make([]T, len(b))
		for i, e := range b {
			projected[i] = f(e)
		}
		return w(projected)
	}
}
