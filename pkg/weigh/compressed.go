package weigh

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/bft-labs/listsplit/pkg/batch"
)

// Codec names a compression format.
type Codec string

const (
	Gzip Codec = "gzip"
	Zstd Codec = "zstd"
)

// ErrUnknownCodec is returned by Compressed for codecs it does not implement.
var ErrUnknownCodec = errors.New("weigh: unknown codec")

// Compressed weighs a batch of strings by the compressed size, in bytes, of
// the strings joined with sep. The empty batch is compressed like any other.
func Compressed(codec Codec, sep string) (batch.WeightFunc[string, int], error) {
	switch codec {
	case Gzip:
		return func(b []string) int {
			var buf bytes.Buffer
			zw, _ := gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
			// Writes to a bytes.Buffer cannot fail.
			_, _ = zw.Write([]byte(strings.Join(b, sep)))
			_ = zw.Close()
			return buf.Len()
		}, nil
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("create zstd encoder: %w", err)
		}
		// EncodeAll is safe for concurrent use and stateless between calls.
		return func(b []string) int {
			return len(enc.EncodeAll([]byte(strings.Join(b, sep)), nil))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
}
