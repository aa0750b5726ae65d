package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/listsplit/internal/app"
	"github.com/bft-labs/listsplit/internal/cliconfig"
	"github.com/bft-labs/listsplit/pkg/log"
)

const longHelp = `
Split a list of lines into consecutive batches that stay under a weight limit.

Lines are read in order and packed greedily: a batch is closed as soon as the
next line would push it over --max-weight or past --max-size lines. Lines that
are too heavy to fit any batch on their own are reported separately as ignored.

Weighers:
  count   number of lines in the batch
  bytes   size of the batch joined with newlines
  runes   total characters in the batch
  sum     sum of the lines parsed as numbers
  gzip    gzip-compressed size of the joined batch
  zstd    zstd-compressed size of the joined batch
`

var exampleUsage = strings.TrimSpace(`
  listsplit --max-weight 4194304 --weigher zstd < frames.log
  listsplit --input numbers.txt --weigher sum --max-weight 100 --format text
  listsplit --config $HOME/.listsplit/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := cliconfig.Logger()
		logger.Error().Err(err).Msg("listsplit")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "listsplit",
		Short:         "Split a list into weight-bounded batches",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.listsplit/config.toml), then apply env and flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else if cfgPath != "" {
				return fmt.Errorf("config file %s not found", cfgPath)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			cliconfig.SetLogLevel(cfg.LogLevel)
			zl := cliconfig.Logger()
			zl.Debug().Interface("config", cfg).Msg("configuration")

			runner := app.NewRunner(cfg, log.FromZerolog(zl)).
				WithStdio(cmd.InOrStdin(), cmd.OutOrStdout())

			if !cfg.Watch {
				_, err := runner.Run()
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			zl.Info().Str("input", cfg.Input).Msg("watching input")
			if err := runner.Watch(ctx); err != nil {
				return err
			}
			zl.Info().Msg("received signal, stopping...")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.listsplit/config.toml)")
	root.Flags().StringVarP(&cfg.Input, "input", "i", cfg.Input, `input file, one element per line ("-" for stdin)`)
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, `output file ("-" for stdout)`)

	root.Flags().StringVarP(&cfg.Weigher, "weigher", "w", cfg.Weigher, "batch weight function: count, bytes, runes, sum, gzip, zstd")
	root.Flags().Float64Var(&cfg.MaxWeight, "max-weight", cfg.MaxWeight, "maximum weight of a batch (required)")
	root.Flags().IntVar(&cfg.MaxSize, "max-size", cfg.MaxSize, "maximum lines per batch (0 for no limit)")

	root.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: json or text")
	root.Flags().BoolVar(&cfg.SkipBlank, "skip-blank", cfg.SkipBlank, "drop blank input lines")

	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-split whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before re-splitting in watch mode")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	return root
}
