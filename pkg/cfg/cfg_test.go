package cfg

import (
	"errors"
	"testing"
)

// stubSource is a minimal Source backed by literal adjacency lists.
type stubSource struct {
	nodes []string
	succs map[string][]string
}

func (s stubSource) Nodes() []string         { return s.nodes }
func (s stubSource) Succs(id string) []string { return s.succs[id] }

// richSource adds the optional capabilities on top of stubSource.
type richSource struct {
	stubSource
	blocks map[string]Block
	sizes  map[string][2]float64
	kinds  map[[2]string]BranchKind
}

func (s richSource) Describe(id string) Block { return s.blocks[id] }

func (s richSource) NodeSize(id string) (float64, float64, bool) {
	wh, ok := s.sizes[id]
	return wh[0], wh[1], ok
}

func (s richSource) BranchKind(from, to string) BranchKind {
	return s.kinds[[2]string{from, to}]
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(stubSource{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestBuild_EnumerationOrder(t *testing.T) {
	g, err := Build(stubSource{
		nodes: []string{"a", "b", "c"},
		succs: map[string][]string{"a": {"b"}, "b": {"c"}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for i, want := range []string{"a", "b", "c"} {
		if got := g.Node(NodeID(i)).Key; got != want {
			t.Errorf("Node(%d).Key = %q, want %q", i, got, want)
		}
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	e := g.Edge(0)
	if e.From != 0 || e.To != 1 {
		t.Errorf("Edge(0) = %d -> %d, want 0 -> 1", e.From, e.To)
	}
}

func TestBuild_DuplicateNode(t *testing.T) {
	_, err := Build(stubSource{nodes: []string{"a", "b", "a"}})
	if !errors.Is(err, ErrDuplicateNode) {
		t.Errorf("Build() error = %v, want ErrDuplicateNode", err)
	}
}

func TestBuild_DanglingEdge(t *testing.T) {
	_, err := Build(stubSource{
		nodes: []string{"a"},
		succs: map[string][]string{"a": {"ghost"}},
	})

	var dangling *DanglingEdgeError
	if !errors.As(err, &dangling) {
		t.Fatalf("Build() error = %v, want *DanglingEdgeError", err)
	}
	if dangling.From != "a" || dangling.To != "ghost" {
		t.Errorf("DanglingEdgeError = %s -> %s, want a -> ghost", dangling.From, dangling.To)
	}
}

func TestBuild_ParallelEdges(t *testing.T) {
	g, err := Build(stubSource{
		nodes: []string{"a", "b"},
		succs: map[string][]string{"a": {"b", "b"}},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if g.OutDegree(0) != 2 || g.InDegree(1) != 2 {
		t.Errorf("degrees = out %d, in %d, want 2 and 2", g.OutDegree(0), g.InDegree(1))
	}
}

func TestBuild_DefaultBlockTitle(t *testing.T) {
	g, err := Build(stubSource{nodes: []string{"loop_head"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := g.Node(0).Block.Title; got != "loop_head" {
		t.Errorf("Block.Title = %q, want node key", got)
	}
}

func TestBuild_Capabilities(t *testing.T) {
	src := richSource{
		stubSource: stubSource{
			nodes: []string{"entry", "exit"},
			succs: map[string][]string{"entry": {"exit"}},
		},
		blocks: map[string]Block{
			"entry": {Title: "entry:", Body: []string{"push rbp"}, Entry: true},
			"exit":  {Exit: true},
		},
		sizes: map[string][2]float64{"entry": {200, 80}},
		kinds: map[[2]string]BranchKind{{"entry", "exit"}: BranchFallThrough},
	}

	g, err := Build(src)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	entry := g.Node(0)
	if entry.Block.Title != "entry:" || !entry.Block.Entry {
		t.Errorf("entry block = %+v, want described block", entry.Block)
	}
	if entry.Width != 200 || entry.Height != 80 {
		t.Errorf("entry size = %v x %v, want 200 x 80", entry.Width, entry.Height)
	}

	// A described block with an empty title falls back to the key.
	exit := g.Node(1)
	if exit.Block.Title != "exit" {
		t.Errorf("exit title = %q, want key fallback", exit.Block.Title)
	}

	if got := g.Edge(0).Kind; got != BranchFallThrough {
		t.Errorf("Edge(0).Kind = %v, want fallthrough", got)
	}
}

func TestBuild_UnhintedSizeIsZero(t *testing.T) {
	g, err := Build(stubSource{nodes: []string{"a"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if n := g.Node(0); n.Width != 0 || n.Height != 0 {
		t.Errorf("size = %v x %v, want 0 x 0", n.Width, n.Height)
	}
}

func TestLookup(t *testing.T) {
	g, err := Build(stubSource{nodes: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if id, ok := g.Lookup("b"); !ok || id != 1 {
		t.Errorf("Lookup(b) = %d, %v, want 1, true", id, ok)
	}
	if _, ok := g.Lookup("missing"); ok {
		t.Error("Lookup(missing) should not resolve")
	}
}

func TestBranchKindString(t *testing.T) {
	if got := BranchTaken.String(); got != "taken" {
		t.Errorf("BranchTaken.String() = %q", got)
	}
	if got := BranchFallThrough.String(); got != "fallthrough" {
		t.Errorf("BranchFallThrough.String() = %q", got)
	}
	if got := BranchUnconditional.String(); got != "unconditional" {
		t.Errorf("BranchUnconditional.String() = %q", got)
	}
}
