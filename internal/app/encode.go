package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bft-labs/listsplit/internal/cliconfig"
	"github.com/bft-labs/listsplit/internal/domain"
)

// Encode writes res to w in the given format.
//
// The json format is the Result document. The text format prints each batch
// as a block of lines separated by a blank line, then the ignored lines under
// an "# ignored" header when there are any.
func Encode(w io.Writer, format string, res domain.Result) error {
	switch format {
	case cliconfig.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case cliconfig.FormatText:
		return encodeText(w, res)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, res domain.Result) error {
	bw := bufio.NewWriter(w)
	first := true
	for _, b := range res.Batches {
		if len(b) == 0 {
			continue
		}
		if !first {
			bw.WriteString("\n")
		}
		first = false
		for _, e := range b {
			bw.WriteString(e.Text)
			bw.WriteString("\n")
		}
	}
	if len(res.Ignored) > 0 {
		if !first {
			bw.WriteString("\n")
		}
		bw.WriteString("# ignored\n")
		for _, e := range res.Ignored {
			fmt.Fprintf(bw, "%d: %s\n", e.Line, e.Text)
		}
	}
	return bw.Flush()
}
