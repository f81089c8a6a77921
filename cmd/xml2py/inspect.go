package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	xml2py "github.com/The0x539/eyesight-xml2py"
	"github.com/The0x539/eyesight-xml2py/ir"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [input.xml...]",
		Short: "Print the inferred interface of every used group",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			paths, err := inputPaths(cfg, args)
			if err != nil {
				return err
			}
			sources, err := xml2py.ReadSources(paths)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			result, err := xml2py.Check(sources, options(cfg, g.logger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range result.Groups() {
				iface, _ := result.Interface(name)
				fmt.Fprintln(out, name)
				printSockets(out, "in ", iface.Inputs)
				printSockets(out, "out", iface.Outputs)
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			return nil
		},
	}
}

func printSockets(w io.Writer, side string, sockets []ir.Socket) {
	for _, s := range sockets {
		fmt.Fprintf(w, "  %s %s: %s\n", side, s.Name, s.Type)
	}
}

func newDistillCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "distill [input.xml...]",
		Short: "Group materials that differ only in color",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			paths, err := inputPaths(cfg, args)
			if err != nil {
				return err
			}
			sources, err := xml2py.ReadSources(paths)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			classes, err := xml2py.Distill(sources)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range classes {
				fmt.Fprintf(out, "%s (%d): %s\n", c.Representative(), len(c.Materials), strings.Join(c.Materials, " "))
			}
			return nil
		},
	}
}

func newTiersCmd(g *globalFlags) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "tiers --group <name> [input.xml...]",
		Short: "Print the scheduling tiers of a group or material shader",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			paths, err := inputPaths(cfg, args)
			if err != nil {
				return err
			}
			sources, err := xml2py.ReadSources(paths)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			tiers, err := xml2py.Tiers(sources, group, options(cfg, g.logger(cmd.ErrOrStderr())))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, tier := range tiers {
				names := make([]string, len(tier))
				for j, n := range tier {
					names[j] = n.NodeName()
				}
				fmt.Fprintf(out, "%d: %s\n", i, strings.Join(names, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "group or material to schedule")
	_ = cmd.MarkFlagRequired("group")
	return cmd
}
