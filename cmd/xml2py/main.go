// Command xml2py translates Eyesight material settings into a Python module
// that rebuilds them as Blender shader node groups.
//
// Usage:
//
//	xml2py generate [options] <input.xml>...
//	xml2py check <input.xml>...
//	xml2py distill <input.xml>...
//	xml2py tiers --group <name> <input.xml>...
//
// Examples:
//
//	xml2py generate -o nodes.py materials.xml      # Generate to a file
//	xml2py generate --watch -o nodes.py *.xml      # Regenerate on change
//	xml2py check materials.xml                     # Print inferred interfaces
//	xml2py --config xml2py.yaml generate           # Inputs from config
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	xml2py "github.com/The0x539/eyesight-xml2py"
	"github.com/The0x539/eyesight-xml2py/internal/config"
)

const xml2pyVersion = "0.1.0-dev"

var errNoInputs = errors.New("no input files specified")

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	config  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "xml2py",
		Short:         "Translate Eyesight materials into Blender node group Python",
		Long:          `xml2py reads Eyesight material settings and writes a Python module that rebuilds the used node groups in Blender.`,
		Version:       xml2pyVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("xml2py version {{.Version}}\n")

	root.PersistentFlags().StringVar(&g.config, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log pipeline progress")

	root.AddCommand(
		newGenerateCmd(g),
		newCheckCmd(g),
		newDistillCmd(g),
		newTiersCmd(g),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (g *globalFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if g.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (g *globalFlags) load() (config.Config, error) {
	return config.Load(g.config)
}

// inputPaths returns the command line inputs, or the configured ones when
// none are given.
func inputPaths(cfg config.Config, args []string) ([]string, error) {
	paths := args
	if len(paths) == 0 {
		paths = cfg.Inputs
	}
	if len(paths) == 0 {
		return nil, errNoInputs
	}
	return paths, nil
}

func options(cfg config.Config, log *slog.Logger) xml2py.Options {
	return xml2py.Options{
		Roots:          cfg.Roots,
		DisabledPasses: cfg.DisabledPasses,
		Reflow:         cfg.Reflow,
		LineWidth:      cfg.LineWidth,
		ImageRoot:      cfg.ImageRoot,
		Logger:         log,
	}
}

func logWarnings(log *slog.Logger, result *xml2py.Result) {
	for _, w := range result.Warnings {
		log.Warn(w.Message, "kind", w.Kind.String(), "group", w.Group, "socket", w.Socket)
	}
}
