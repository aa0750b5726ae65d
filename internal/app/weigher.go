package app

import (
	"fmt"

	"github.com/bft-labs/listsplit/internal/cliconfig"
	"github.com/bft-labs/listsplit/internal/domain"
	"github.com/bft-labs/listsplit/pkg/batch"
	"github.com/bft-labs/listsplit/pkg/weigh"
)

// lineSep is the separator assumed between lines when measuring bytes.
const lineSep = "\n"

// Weigher resolves a weigher name to a weight function over elements.
func Weigher(name string) (batch.WeightFunc[domain.Element, float64], error) {
	text := func(e domain.Element) string { return e.Text }

	switch name {
	case cliconfig.WeigherCount:
		return asFloat(weigh.Count[domain.Element]()), nil
	case cliconfig.WeigherBytes:
		return asFloat(weigh.Over(weigh.Bytes(len(lineSep)), text)), nil
	case cliconfig.WeigherRunes:
		return asFloat(weigh.Over(weigh.Runes(), text)), nil
	case cliconfig.WeigherSum:
		return weigh.SumBy(func(e domain.Element) float64 { return e.Value }), nil
	case cliconfig.WeigherGzip, cliconfig.WeigherZstd:
		w, err := weigh.Compressed(weigh.Codec(name), lineSep)
		if err != nil {
			return nil, err
		}
		return asFloat(weigh.Over(w, text)), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownWeigher, name)
	}
}

func asFloat[A any](w batch.WeightFunc[A, int]) batch.WeightFunc[A, float64] {
	return func(b []A) float64 { return float64(w(b)) }
}
