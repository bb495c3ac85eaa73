package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/cfg/transform"
	"github.com/cfgviz/cfgviz/pkg/layout"
)

// statsCommand creates the stats command for layout summaries.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [graph.toml]",
		Short: "Print layout statistics for a control-flow graph",
		Long: `Print layout statistics for a control-flow graph.

The stats command lays out the graph and reports block, edge, layer, and
crossing counts, broken down by edge class. Without a file argument it
reports on the built-in demo function.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runStats(ctx, args, cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runStats(ctx context.Context, args []string, out io.Writer) error {
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

	classes := make(map[transform.EdgeClass]int)
	for _, e := range l.Edges() {
		classes[e.Class]++
	}
	components := 0
	for _, n := range l.Nodes() {
		if n.Component+1 > components {
			components = n.Component + 1
		}
	}
	b := l.Bounds()

	name := gf.Name
	if name == "" {
		name = "graph"
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 {
				return StyleNumber.PaddingLeft(1).PaddingRight(1)
			}
			return StyleValue.PaddingLeft(1).PaddingRight(1)
		}).
		Row("Blocks", fmt.Sprintf("%d", l.NodeCount())).
		Row("Edges", fmt.Sprintf("%d", l.EdgeCount())).
		Row("  tree", fmt.Sprintf("%d", classes[transform.EdgeTree])).
		Row("  forward", fmt.Sprintf("%d", classes[transform.EdgeForward])).
		Row("  back", fmt.Sprintf("%d", classes[transform.EdgeBack])).
		Row("  self-loop", fmt.Sprintf("%d", classes[transform.EdgeSelfLoop])).
		Row("Layers", fmt.Sprintf("%d", l.LayerCount())).
		Row("Components", fmt.Sprintf("%d", components)).
		Row("Crossings", fmt.Sprintf("%d", l.Crossings())).
		Row("Drawing size", fmt.Sprintf("%.0f × %.0f", b.Width(), b.Height()))

	fmt.Fprintf(out, "%s\n%s\n", StyleTitle.Render(name), t.Render())
	return nil
}
