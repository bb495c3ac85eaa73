package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/layout"
	"github.com/cfgviz/cfgviz/pkg/render/dot"
)

// exportCommand creates the export command for writing rendered graphs.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export [graph.toml]",
		Short: "Render a control-flow graph to DOT, SVG, or PNG",
		Long: `Render a control-flow graph to DOT, SVG, or PNG.

The export command lays out the graph and writes it through Graphviz.
DOT output keeps branch colors and marks loop edges; SVG and PNG are
rasterized from the same DOT. Without a file argument it exports the
built-in demo function.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runExport(ctx, args, output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: graph name + format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, dot")

	return cmd
}

func validateFormat(format string) error {
	switch format {
	case "svg", "png", "dot":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want svg, png, or dot)", format)
	}
}

// runExport lays out the graph and writes it in the requested format.
func (c *CLI) runExport(ctx context.Context, args []string, output, format string) error {
	logger := loggerFromContext(ctx)

	gf, err := resolveGraph(args)
	if err != nil {
		return err
	}
	g, err := cfg.Build(gf)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	l, err := layout.Build(g, layout.DefaultConfig())
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d blocks, %d edges", l.NodeCount(), l.EdgeCount()))

	d := dot.ToDOT(l)
	var data []byte
	switch format {
	case "dot":
		data = []byte(d)
	case "svg":
		data, err = dot.RenderSVG(d)
	case "png":
		data, err = dot.RenderPNG(d)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if output == "" {
		output = defaultOutput(args, gf.Name, format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Infof("Wrote %s", output)
	return nil
}

// defaultOutput derives the output path from the input file name, falling
// back to the graph's declared name.
func defaultOutput(args []string, name, format string) string {
	base := name
	if len(args) > 0 {
		base = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	if base == "" {
		base = "graph"
	}
	return base + "." + format
}
