package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/bft-labs/listsplit/internal/adapters/fs"
	"github.com/bft-labs/listsplit/internal/cliconfig"
	"github.com/bft-labs/listsplit/internal/domain"
	"github.com/bft-labs/listsplit/pkg/batch"
	"github.com/bft-labs/listsplit/pkg/log"
)

// Runner performs one split of the configured input.
type Runner struct {
	cfg    cliconfig.Config
	logger log.Logger
	stdin  io.Reader
	stdout io.Writer

	// serialises watch-triggered runs
	mu sync.Mutex
}

// NewRunner creates a Runner. cfg must already be validated.
func NewRunner(cfg cliconfig.Config, logger log.Logger) *Runner {
	if logger == nil {
		logger = log.Noop
	}
	return &Runner{cfg: cfg, logger: logger, stdin: os.Stdin, stdout: os.Stdout}
}

// WithStdio replaces the streams used when Input or Output is "-".
func (r *Runner) WithStdio(in io.Reader, out io.Writer) *Runner {
	r.stdin = in
	r.stdout = out
	return r
}

// Run loads the input, splits it and writes the encoded result.
func (r *Runner) Run() (domain.Result, error) {
	elements, err := r.load()
	if err != nil {
		return domain.Result{}, err
	}

	res, err := r.Split(elements)
	if err != nil {
		return domain.Result{}, err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, r.cfg.Format, res); err != nil {
		return domain.Result{}, fmt.Errorf("encode: %w", err)
	}
	if err := r.write(buf.Bytes()); err != nil {
		return domain.Result{}, fmt.Errorf("write output: %w", err)
	}

	r.logger.Info("split complete",
		log.String("input", r.cfg.Input),
		log.Int("elements", len(elements)),
		log.Int("batches", res.NonEmpty()),
		log.Int("batched", res.Count()),
		log.Int("ignored", len(res.Ignored)))
	for _, e := range res.Ignored {
		r.logger.Warn("line exceeds max weight", log.Int("line", e.Line))
	}
	return res, nil
}

// Split partitions elements with the configured weigher and limits.
func (r *Runner) Split(elements []domain.Element) (domain.Result, error) {
	weight, err := Weigher(r.cfg.Weigher)
	if err != nil {
		return domain.Result{}, err
	}

	opts := []batch.Option{batch.WithLogger(r.logger)}
	if r.cfg.MaxSize > 0 {
		opts = append(opts, batch.WithMaxSize(r.cfg.MaxSize))
	}

	batches, ignored, err := batch.Split(elements, weight, r.cfg.MaxWeight, opts...)
	if err != nil {
		return domain.Result{}, fmt.Errorf("split: %w", err)
	}
	return domain.Result{Batches: batches, Ignored: ignored}, nil
}

func (r *Runner) load() ([]domain.Element, error) {
	numeric := r.cfg.Weigher == cliconfig.WeigherSum

	if r.cfg.Input == cliconfig.Stdio {
		return Load(r.stdin, r.cfg.SkipBlank, numeric)
	}

	f, err := os.Open(r.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return Load(f, r.cfg.SkipBlank, numeric)
}

func (r *Runner) write(data []byte) error {
	if r.cfg.Output == cliconfig.Stdio {
		_, err := r.stdout.Write(data)
		return err
	}
	out := fs.NewOutputFile(r.cfg.Output)
	if err := out.Write(data); err != nil {
		return err
	}
	r.logger.Debug("output written", log.String("path", out.Path()), log.Int("bytes", len(data)))
	return nil
}
