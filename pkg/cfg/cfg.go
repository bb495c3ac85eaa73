package cfg

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNode is returned by [Build] when the source enumerates the
	// same node key more than once. Keys must be unique within one enumeration.
	ErrDuplicateNode = errors.New("duplicate node key")
)

// DanglingEdgeError is returned by [Build] when a successor references a key
// that was not part of the node enumeration. The build fails as a whole; no
// partial graph is produced.
type DanglingEdgeError struct {
	From string // key of the node whose successor list is broken
	To   string // key that is missing from the enumeration
}

func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("dangling edge %s -> %s: target not in node set", e.From, e.To)
}

// NodeID identifies a node within one normalized graph. IDs are assigned in
// source enumeration order starting at 0 and are stable for the lifetime of
// the graph, but not across rebuilds from a changed source.
type NodeID int

// EdgeID identifies an edge within one normalized graph, assigned in
// enumeration order of the source's successor lists.
type EdgeID int

// BranchKind is the semantic kind of a control transfer, as supplied by the
// caller through the optional [Kinded] capability. It is independent of the
// structural classification computed by the transform package.
type BranchKind int

const (
	// BranchUnconditional is a jump that is always taken.
	BranchUnconditional BranchKind = iota
	// BranchTaken is the taken side of a conditional branch.
	BranchTaken
	// BranchFallThrough is the not-taken side of a conditional branch.
	BranchFallThrough
)

// String returns the lowercase name of the branch kind.
func (k BranchKind) String() string {
	switch k {
	case BranchTaken:
		return "taken"
	case BranchFallThrough:
		return "fallthrough"
	default:
		return "unconditional"
	}
}

// Source is the capability a caller's graph representation must provide.
// Any concrete storage (adjacency lists, a disassembler's block table, a
// database cursor) can satisfy it; the layout engine never sees anything else.
//
// Nodes must return a stable, finite enumeration: building twice from an
// unchanged source must yield the same sequence. Succs must return the
// outgoing edge targets of a node in a stable order. Duplicate targets are
// allowed and produce parallel edges.
type Source interface {
	Nodes() []string
	Succs(id string) []string
}

// Describer is an optional capability supplying display metadata per node.
// Sources that do not implement it get nodes labeled with their key and an
// empty body.
type Describer interface {
	Describe(id string) Block
}

// Sized is an optional capability supplying an explicit size hint per node.
// When ok is false for a node, its size is derived from its block content
// instead (see the style package).
type Sized interface {
	NodeSize(id string) (w, h float64, ok bool)
}

// Kinded is an optional capability supplying the branch kind of each edge.
// Parallel edges between the same pair share a kind.
type Kinded interface {
	BranchKind(from, to string) BranchKind
}

// Block is the display payload of a basic block: a title line, the body
// lines shown inside the node, and whether the block is the function's entry
// or an exit.
type Block struct {
	Title string
	Body  []string
	Entry bool
	Exit  bool
}

// Node is a vertex in the normalized graph.
type Node struct {
	ID    NodeID
	Key   string // caller-supplied identifier
	Block Block

	// Width and Height are the caller's size hint, or zero when the hint is
	// absent and sizing is left to the style layer.
	Width  float64
	Height float64
}

// Edge is a directed control transfer in the normalized graph.
type Edge struct {
	ID   EdgeID
	From NodeID
	To   NodeID
	Kind BranchKind
}

// Graph is the normalized index-space form of a caller's control-flow graph.
// It owns the NodeID/EdgeID space exclusively: ids are dense, start at 0, and
// follow the source's enumeration order, which makes every downstream pass
// deterministic for a fixed source.
//
// Graph is immutable after Build and safe for concurrent reads.
type Graph struct {
	nodes []Node
	edges []Edge
	out   [][]EdgeID // per node, outgoing edge ids in enumeration order
	in    [][]EdgeID // per node, incoming edge ids in enumeration order
	index map[string]NodeID
}

// Build normalizes the source into a Graph. Nodes are indexed in enumeration
// order; edges in successor-list order. Returns ErrDuplicateNode for repeated
// keys and a *DanglingEdgeError when a successor is not part of the node set.
// A source with zero nodes is valid and produces an empty graph.
func Build(src Source) (*Graph, error) {
	keys := src.Nodes()

	g := &Graph{
		nodes: make([]Node, 0, len(keys)),
		out:   make([][]EdgeID, len(keys)),
		in:    make([][]EdgeID, len(keys)),
		index: make(map[string]NodeID, len(keys)),
	}

	desc, _ := src.(Describer)
	sized, _ := src.(Sized)
	kinded, _ := src.(Kinded)

	for i, key := range keys {
		if _, exists := g.index[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, key)
		}
		id := NodeID(i)
		g.index[key] = id

		n := Node{ID: id, Key: key, Block: Block{Title: key}}
		if desc != nil {
			n.Block = desc.Describe(key)
			if n.Block.Title == "" {
				n.Block.Title = key
			}
		}
		if sized != nil {
			if w, h, ok := sized.NodeSize(key); ok {
				n.Width, n.Height = w, h
			}
		}
		g.nodes = append(g.nodes, n)
	}

	for _, key := range keys {
		from := g.index[key]
		for _, target := range src.Succs(key) {
			to, ok := g.index[target]
			if !ok {
				return nil, &DanglingEdgeError{From: key, To: target}
			}
			e := Edge{ID: EdgeID(len(g.edges)), From: from, To: to}
			if kinded != nil {
				e.Kind = kinded.BranchKind(key, target)
			}
			g.edges = append(g.edges, e)
			g.out[from] = append(g.out[from], e.ID)
			g.in[to] = append(g.in[to], e.ID)
		}
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given id. Panics if id is out of range.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// Edge returns the edge with the given id. Panics if id is out of range.
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Nodes returns all nodes in id order. The returned slice is shared; callers
// must treat it as read-only.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns all edges in id order. The returned slice is shared; callers
// must treat it as read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// OutEdges returns the outgoing edge ids of a node in enumeration order.
func (g *Graph) OutEdges(id NodeID) []EdgeID { return g.out[id] }

// InEdges returns the incoming edge ids of a node in enumeration order.
func (g *Graph) InEdges(id NodeID) []EdgeID { return g.in[id] }

// OutDegree returns the number of outgoing edges of a node.
func (g *Graph) OutDegree(id NodeID) int { return len(g.out[id]) }

// InDegree returns the number of incoming edges of a node.
func (g *Graph) InDegree(id NodeID) int { return len(g.in[id]) }

// Lookup resolves a caller key to its NodeID.
func (g *Graph) Lookup(key string) (NodeID, bool) {
	id, ok := g.index[key]
	return id, ok
}
