package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/cfgviz/cfgviz/pkg/cfg"
)

// =============================================================================
// Graph Files
// =============================================================================

// blockSpec is one [[block]] table in a graph file.
type blockSpec struct {
	ID    string   `toml:"id"`
	Title string   `toml:"title"`
	Body  []string `toml:"body"`
	Entry bool     `toml:"entry"`
	Exit  bool     `toml:"exit"`
}

// edgeSpec is one [[edge]] table in a graph file. Kind is one of "taken",
// "fallthrough", or "unconditional"; an empty kind means unconditional.
type edgeSpec struct {
	From string `toml:"from"`
	To   string `toml:"to"`
	Kind string `toml:"kind"`
}

// graphFile is a control-flow graph loaded from TOML. It implements
// [cfg.Source], [cfg.Describer], and [cfg.Kinded], so a panel or the layout
// engine can consume it directly.
type graphFile struct {
	Name   string      `toml:"name"`
	Blocks []blockSpec `toml:"block"`
	Edges  []edgeSpec  `toml:"edge"`

	succs map[string][]string
	kinds map[[2]string]cfg.BranchKind
}

// loadGraphFile reads and validates a TOML graph description. Structural
// problems (duplicate ids, dangling edges) are left for [cfg.Build] to
// report; only file-level problems are caught here.
func loadGraphFile(path string) (*graphFile, error) {
	var gf graphFile
	if _, err := toml.DecodeFile(path, &gf); err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	if err := gf.finish(); err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	return &gf, nil
}

// finish builds the successor and branch-kind indexes from the decoded
// tables and rejects unknown branch kinds.
func (gf *graphFile) finish() error {
	gf.succs = make(map[string][]string, len(gf.Blocks))
	gf.kinds = make(map[[2]string]cfg.BranchKind, len(gf.Edges))
	for _, e := range gf.Edges {
		kind, err := parseBranchKind(e.Kind)
		if err != nil {
			return fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
		gf.succs[e.From] = append(gf.succs[e.From], e.To)
		gf.kinds[[2]string{e.From, e.To}] = kind
	}
	return nil
}

func parseBranchKind(s string) (cfg.BranchKind, error) {
	switch s {
	case "", "unconditional":
		return cfg.BranchUnconditional, nil
	case "taken":
		return cfg.BranchTaken, nil
	case "fallthrough":
		return cfg.BranchFallThrough, nil
	default:
		return 0, fmt.Errorf("unknown branch kind %q", s)
	}
}

// Nodes returns block ids in file order.
func (gf *graphFile) Nodes() []string {
	ids := make([]string, len(gf.Blocks))
	for i, b := range gf.Blocks {
		ids[i] = b.ID
	}
	return ids
}

// Succs returns the successors of id in file order.
func (gf *graphFile) Succs(id string) []string {
	return gf.succs[id]
}

// Describe returns the block content for id.
func (gf *graphFile) Describe(id string) cfg.Block {
	for _, b := range gf.Blocks {
		if b.ID == id {
			title := b.Title
			if title == "" {
				title = b.ID
			}
			return cfg.Block{Title: title, Body: b.Body, Entry: b.Entry, Exit: b.Exit}
		}
	}
	return cfg.Block{Title: id}
}

// BranchKind returns the kind recorded for the edge from -> to.
func (gf *graphFile) BranchKind(from, to string) cfg.BranchKind {
	return gf.kinds[[2]string{from, to}]
}

// =============================================================================
// Built-In Demo
// =============================================================================

// demoGraph is the graph shown when a command is run without a file: a small
// compare-and-branch function with two arms rejoining at the exit.
func demoGraph() *graphFile {
	gf := &graphFile{
		Name: "demo",
		Blocks: []blockSpec{
			{
				ID:    "entry",
				Title: "entry:",
				Body:  []string{"push rbp", "mov rbp, rsp", "mov eax, edi"},
				Entry: true,
			},
			{
				ID:    "cmp_and_branch",
				Title: "cmp_and_branch:",
				Body:  []string{"cmp eax, 10", "jle .else"},
			},
			{
				ID:    "then",
				Title: ".then:",
				Body:  []string{"imul eax, eax", "jmp .exit"},
			},
			{
				ID:    "else",
				Title: ".else:",
				Body:  []string{"add eax, 1"},
			},
			{
				ID:    "exit",
				Title: ".exit:",
				Body:  []string{"pop rbp", "ret"},
				Exit:  true,
			},
		},
		Edges: []edgeSpec{
			{From: "entry", To: "cmp_and_branch", Kind: "fallthrough"},
			{From: "cmp_and_branch", To: "then", Kind: "fallthrough"},
			{From: "cmp_and_branch", To: "else", Kind: "taken"},
			{From: "then", To: "exit", Kind: "unconditional"},
			{From: "else", To: "exit", Kind: "fallthrough"},
		},
	}
	// The demo is hand-written and always valid.
	_ = gf.finish()
	return gf
}

// resolveGraph loads the optional file argument, falling back to the demo.
func resolveGraph(args []string) (*graphFile, error) {
	if len(args) == 0 {
		return demoGraph(), nil
	}
	return loadGraphFile(args[0])
}
