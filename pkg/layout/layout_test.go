package layout

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/cfg/transform"
)

// stubSource is a minimal cfg.Source backed by literal adjacency lists.
type stubSource struct {
	nodes []string
	succs map[string][]string
}

func (s stubSource) Nodes() []string          { return s.nodes }
func (s stubSource) Succs(id string) []string { return s.succs[id] }

// sizedSource adds explicit size hints.
type sizedSource struct {
	stubSource
	sizes map[string][2]float64
}

func (s sizedSource) NodeSize(id string) (float64, float64, bool) {
	wh, ok := s.sizes[id]
	return wh[0], wh[1], ok
}

func buildLayout(t *testing.T, nodes []string, succs map[string][]string) *Layout {
	t.Helper()
	g, err := cfg.Build(stubSource{nodes: nodes, succs: succs})
	if err != nil {
		t.Fatalf("cfg.Build() error = %v", err)
	}
	l, err := Build(g, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return l
}

func TestBuild_Empty(t *testing.T) {
	l := buildLayout(t, nil, nil)

	if l.NodeCount() != 0 || l.EdgeCount() != 0 {
		t.Errorf("counts = %d nodes, %d edges, want 0, 0", l.NodeCount(), l.EdgeCount())
	}
	if !l.Bounds().Empty() {
		t.Errorf("Bounds() = %+v, want empty", l.Bounds())
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	g, err := cfg.Build(stubSource{nodes: []string{"a"}})
	if err != nil {
		t.Fatalf("cfg.Build() error = %v", err)
	}

	_, err = Build(g, Config{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want ErrInvalidConfig", err)
	}
}

func TestBuild_ChainGeometry(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "c"}, map[string][]string{
		"a": {"b"},
		"b": {"c"},
	})

	for i := 0; i < 3; i++ {
		if got := l.Node(cfg.NodeID(i)).Layer; got != i {
			t.Errorf("Node(%d).Layer = %d, want %d", i, got, i)
		}
	}
	for i := 1; i < 3; i++ {
		prev := l.Node(cfg.NodeID(i - 1))
		curr := l.Node(cfg.NodeID(i))
		if curr.Pos.Y <= prev.Pos.Y {
			t.Errorf("layer %d not below layer %d: y %v vs %v", i, i-1, curr.Pos.Y, prev.Pos.Y)
		}
		if curr.Pos.X != prev.Pos.X {
			t.Errorf("single chain not vertically aligned: x %v vs %v", curr.Pos.X, prev.Pos.X)
		}
	}

	// Consecutive-layer edges run border to border.
	e := l.Edge(0)
	a, b := l.Node(0), l.Node(1)
	if len(e.Points) != 2 {
		t.Fatalf("edge points = %d, want 2", len(e.Points))
	}
	wantStart := Point{a.Pos.X, a.Pos.Y + a.Size.Y/2}
	wantEnd := Point{b.Pos.X, b.Pos.Y - b.Size.Y/2}
	if e.Points[0] != wantStart || e.Points[1] != wantEnd {
		t.Errorf("edge path = %v, want [%v %v]", e.Points, wantStart, wantEnd)
	}
}

func TestBuild_LongEdgeWaypoints(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "c"}, map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
	})

	// a -> c spans two layers and picks up one waypoint in between.
	var long Edge
	for _, e := range l.Edges() {
		if e.From == 0 && e.To == 2 {
			long = e
		}
	}
	if len(long.Points) != 3 {
		t.Fatalf("long edge points = %d, want 3", len(long.Points))
	}
	mid := long.Points[1]
	if mid.Y <= long.Points[0].Y || mid.Y >= long.Points[2].Y {
		t.Errorf("waypoint y = %v, want between %v and %v", mid.Y, long.Points[0].Y, long.Points[2].Y)
	}
}

func TestBuild_BackEdgeLane(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "c"}, map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	})

	back := l.Edge(2)
	if back.Class != transform.EdgeBack {
		t.Fatalf("edge class = %v, want back", back.Class)
	}
	if len(back.Points) != 4 {
		t.Fatalf("back edge points = %d, want 4", len(back.Points))
	}
	if back.Points[1].X != back.Points[2].X {
		t.Errorf("lane is not vertical: x %v vs %v", back.Points[1].X, back.Points[2].X)
	}

	// The lane runs outside every node of the drawing.
	lane := back.Points[1].X
	for _, n := range l.Nodes() {
		if right := n.Bounds().Max.X; lane <= right {
			t.Errorf("lane x %v overlaps node %d (right edge %v)", lane, n.ID, right)
		}
	}
	// Against the flow: the lane goes from the source's layer up to the target's.
	if back.Points[1].Y <= back.Points[2].Y {
		t.Errorf("back edge should run upward, got y %v -> %v", back.Points[1].Y, back.Points[2].Y)
	}
}

func TestBuild_ParallelBackEdgesGetSeparateLanes(t *testing.T) {
	l := buildLayout(t, []string{"a", "b"}, map[string][]string{
		"a": {"b"},
		"b": {"a", "a"},
	})

	var lanes []float64
	for _, e := range l.Edges() {
		if e.Class == transform.EdgeBack {
			lanes = append(lanes, e.Points[1].X)
		}
	}
	if len(lanes) != 2 {
		t.Fatalf("back edges = %d, want 2", len(lanes))
	}
	if lanes[0] == lanes[1] {
		t.Errorf("parallel back edges share lane x = %v", lanes[0])
	}
}

func TestBuild_SelfLoop(t *testing.T) {
	l := buildLayout(t, []string{"a"}, map[string][]string{
		"a": {"a"},
	})

	loop := l.Edge(0)
	if loop.Class != transform.EdgeSelfLoop {
		t.Fatalf("edge class = %v, want selfloop", loop.Class)
	}
	if len(loop.Points) != 4 {
		t.Fatalf("loop points = %d, want 4", len(loop.Points))
	}
	right := l.Node(0).Bounds().Max.X
	for i, p := range loop.Points {
		if p.X < right {
			t.Errorf("loop point %d at x %v, want anchored right of %v", i, p.X, right)
		}
	}
}

func TestBuild_NoOverlapWithinLayer(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "c", "d"}, map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
	})

	b, c := l.Node(1).Bounds(), l.Node(2).Bounds()
	if b.Max.X > c.Min.X && c.Max.X > b.Min.X {
		t.Errorf("siblings overlap: %+v and %+v", b, c)
	}
}

func TestBuild_CrossingReductionUntangles(t *testing.T) {
	// Edges u1 -> l2 and u2 -> l1 cross in enumeration order.
	l := buildLayout(t, []string{"u1", "u2", "l1", "l2"}, map[string][]string{
		"u1": {"l2"},
		"u2": {"l1"},
	})

	if got := l.Crossings(); got != 0 {
		t.Errorf("Crossings() = %d, want 0 after reduction", got)
	}
}

func TestBuild_ZeroPassesKeepsDiscoveryOrder(t *testing.T) {
	g, err := cfg.Build(stubSource{
		nodes: []string{"u1", "u2", "l1", "l2"},
		succs: map[string][]string{"u1": {"l2"}, "u2": {"l1"}},
	})
	if err != nil {
		t.Fatalf("cfg.Build() error = %v", err)
	}
	c := DefaultConfig()
	c.CrossingPasses = 0

	l, err := Build(g, c)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := l.Crossings(); got != 1 {
		t.Errorf("Crossings() = %d, want the initial 1", got)
	}
}

func TestBuild_ComponentsSideBySide(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "x", "y"}, map[string][]string{
		"a": {"b"},
		"x": {"y"},
	})

	if l.Node(0).Component != 0 || l.Node(2).Component != 1 {
		t.Fatalf("components = %d, %d, want 0 and 1", l.Node(0).Component, l.Node(2).Component)
	}

	firstRight := l.Node(0).Bounds().Max.X
	if r := l.Node(1).Bounds().Max.X; r > firstRight {
		firstRight = r
	}
	for _, id := range []cfg.NodeID{2, 3} {
		if left := l.Node(id).Bounds().Min.X; left <= firstRight {
			t.Errorf("component 1 node %d at x %v overlaps component 0 (right %v)", id, left, firstRight)
		}
	}
}

func TestBuild_SizeHintRespected(t *testing.T) {
	g, err := cfg.Build(sizedSource{
		stubSource: stubSource{nodes: []string{"a", "b"}, succs: map[string][]string{"a": {"b"}}},
		sizes:      map[string][2]float64{"a": {100, 30}},
	})
	if err != nil {
		t.Fatalf("cfg.Build() error = %v", err)
	}
	l, err := Build(g, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := l.Node(0).Size; got != (Point{100, 30}) {
		t.Errorf("hinted size = %v, want {100 30}", got)
	}
	// The unhinted node falls back to measured size.
	if got := l.Node(1).Size; got.X <= 0 || got.Y <= 0 {
		t.Errorf("measured size = %v, want positive", got)
	}
}

func TestBuild_NodesInsideBounds(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "c", "d"}, map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": {"a"},
	})

	bounds := l.Bounds()
	for _, n := range l.Nodes() {
		nb := n.Bounds()
		if !bounds.Contains(nb.Min) || !bounds.Contains(nb.Max) {
			t.Errorf("node %d bounds %+v escape drawing bounds %+v", n.ID, nb, bounds)
		}
	}
	for _, e := range l.Edges() {
		for _, p := range e.Points {
			if !bounds.Contains(p) {
				t.Errorf("edge %d point %v escapes drawing bounds %+v", e.ID, p, bounds)
			}
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	src := stubSource{
		nodes: []string{"a", "b", "c", "d", "e"},
		succs: map[string][]string{
			"a": {"b", "c"},
			"b": {"d"},
			"c": {"d", "e"},
			"d": {"e", "b"},
			"e": {"e"},
		},
	}

	build := func() *Layout {
		g, err := cfg.Build(src)
		if err != nil {
			t.Fatalf("cfg.Build() error = %v", err)
		}
		l, err := Build(g, DefaultConfig())
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		return l
	}

	l1, l2 := build(), build()
	if !reflect.DeepEqual(l1.Nodes(), l2.Nodes()) {
		t.Error("node geometry differs between identical builds")
	}
	if !reflect.DeepEqual(l1.Edges(), l2.Edges()) {
		t.Error("edge routing differs between identical builds")
	}
}

func TestBuild_HashMatchesGraph(t *testing.T) {
	g, err := cfg.Build(stubSource{nodes: []string{"a", "b"}, succs: map[string][]string{"a": {"b"}}})
	if err != nil {
		t.Fatalf("cfg.Build() error = %v", err)
	}
	l, err := Build(g, DefaultConfig())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if l.Hash() != g.StructuralHash() {
		t.Errorf("Hash() = %s, want graph hash %s", l.Hash(), g.StructuralHash())
	}
}

func TestBuild_LayerOrderCoversRealNodes(t *testing.T) {
	l := buildLayout(t, []string{"a", "b", "c", "d"}, map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
	})

	total := 0
	for layer := 0; layer < l.LayerCount(); layer++ {
		order := l.LayerOrder(layer)
		total += len(order)
		for i, id := range order {
			n := l.Node(id)
			if n.Layer != layer || n.Order != i {
				t.Errorf("node %d: layer/order = %d/%d, want %d/%d", id, n.Layer, n.Order, layer, i)
			}
		}
	}
	if total != l.NodeCount() {
		t.Errorf("layer orders cover %d nodes, want %d", total, l.NodeCount())
	}
}
