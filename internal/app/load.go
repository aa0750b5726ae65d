package app

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/listsplit/internal/domain"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

// Load reads one element per line from r. Blank lines are dropped when
// skipBlank is set; line numbers keep counting them. With numeric set every
// kept line must parse as a finite float.
func Load(r io.Reader, skipBlank, numeric bool) ([]domain.Element, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	elements := []domain.Element{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if skipBlank && strings.TrimSpace(text) == "" {
			continue
		}

		e := domain.Element{Line: line, Text: text}
		if numeric {
			v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d: %q", domain.ErrParseValue, line, text)
			}
			e.Value = v
		}
		elements = append(elements, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return elements, nil
}
