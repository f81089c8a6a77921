package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	xml2py "github.com/The0x539/eyesight-xml2py"
	"github.com/The0x539/eyesight-xml2py/internal/config"
)

type generateFlags struct {
	output   string
	roots    []string
	disabled []string
	noReflow bool
	width    int
	watch    bool
}

func newGenerateCmd(g *globalFlags) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate [input.xml...]",
		Short: "Generate the Python module",
		Long: `Parses and merges the inputs, rewrites and infers every used group, and
writes one Python function per group reachable from the roots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			if err := f.apply(cmd, &cfg); err != nil {
				return err
			}
			paths, err := inputPaths(cfg, args)
			if err != nil {
				return err
			}
			log := g.logger(cmd.ErrOrStderr())

			run := func() error { return generate(cmd, paths, cfg, log) }
			if err := run(); err != nil {
				if !f.watch {
					return err
				}
				log.Error("generation failed", "error", err)
			}
			if !f.watch {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watch(ctx, paths, log, run)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	flags.StringArrayVar(&f.roots, "root", nil, "group to generate (repeatable, replaces configured roots)")
	flags.StringArrayVar(&f.disabled, "disable-pass", nil, "rewrite pass to skip (repeatable)")
	flags.BoolVar(&f.noReflow, "no-reflow", false, "keep one argument per line")
	flags.IntVar(&f.width, "line-width", 0, "reflow width (default from config)")
	flags.BoolVar(&f.watch, "watch", false, "regenerate whenever an input changes")
	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("root") {
		cfg.Roots = f.roots
	}
	if flags.Changed("disable-pass") {
		cfg.DisabledPasses = append(cfg.DisabledPasses, f.disabled...)
	}
	if f.noReflow {
		cfg.Reflow = false
	}
	if flags.Changed("line-width") {
		cfg.LineWidth = f.width
	}
	return cfg.Validate()
}

func generate(cmd *cobra.Command, paths []string, cfg config.Config, log *slog.Logger) error {
	sources, err := xml2py.ReadSources(paths)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	result, err := xml2py.Compile(sources, options(cfg, log))
	if err != nil {
		return err
	}
	logWarnings(log, result)

	if cfg.Output == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), result.Source)
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(result.Source), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info("wrote python", "path", cfg.Output, "groups", len(result.Info.Order))
	return nil
}
