package layout

import (
	"github.com/cfgviz/cfgviz/pkg/cfg"
	"github.com/cfgviz/cfgviz/pkg/cfg/transform"
)

// dummy marks a scaffold slot that stands in for a multi-layer edge at an
// intermediate layer. Dummies take part in ordering but have zero drawn size.
const dummy cfg.NodeID = -1

// slot is one occupant of a layer during layout: a real node or a dummy.
type slot struct {
	node  cfg.NodeID // dummy for subdivision points
	layer int
	pos   int // local index within its layer, fixed at creation
	w, h  float64
	x, y  float64 // center, component-local coordinates
}

// scaffold is the mutable working state for laying out one connected
// component. The input graph stays untouched; everything here is discarded
// once the component is emitted into the snapshot.
type scaffold struct {
	g       *cfg.Graph
	cls     transform.Classification
	comp    int
	members []cfg.NodeID

	slots      []slot
	slotOf     map[cfg.NodeID]int
	layerSlots [][]int // per layer: slot ids in creation order
	orders     [][]int // per layer: current permutation of local indices

	chains map[cfg.EdgeID][]int // reduction edge -> slot path source..target
	backs  []cfg.EdgeID
	loops  []cfg.EdgeID

	down [][][]int // down[l][local] = adjacent locals in layer l+1
	up   [][][]int

	layerY    []float64 // center y per layer
	width     float64
	height    float64
	crossings int // left after crossing reduction

	points map[cfg.EdgeID][]Point
}

// newScaffold builds the unit-span form of one component: real nodes become
// slots on their layers, and every tree/forward edge spanning more than one
// layer is subdivided with dummy slots, one per crossed layer, so ordering
// and crossing counting see only consecutive-layer segments.
func newScaffold(g *cfg.Graph, cls transform.Classification, layers []int, members []cfg.NodeID, comp int, measure MeasureFunc) *scaffold {
	sc := &scaffold{
		g:       g,
		cls:     cls,
		comp:    comp,
		members: members,
		slotOf:  make(map[cfg.NodeID]int, len(members)),
		chains:  make(map[cfg.EdgeID][]int),
		points:  make(map[cfg.EdgeID][]Point),
	}

	// Component-local layer numbering starts at 0.
	minLayer := layers[members[0]]
	for _, id := range members {
		if layers[id] < minLayer {
			minLayer = layers[id]
		}
	}
	depth := 0
	for _, id := range members {
		if l := layers[id] - minLayer + 1; l > depth {
			depth = l
		}
	}
	sc.layerSlots = make([][]int, depth)

	addSlot := func(node cfg.NodeID, layer int, w, h float64) int {
		idx := len(sc.slots)
		sc.slots = append(sc.slots, slot{
			node:  node,
			layer: layer,
			pos:   len(sc.layerSlots[layer]),
			w:     w,
			h:     h,
		})
		sc.layerSlots[layer] = append(sc.layerSlots[layer], idx)
		return idx
	}

	for _, id := range members {
		n := g.Node(id)
		w, h := n.Width, n.Height
		if w <= 0 || h <= 0 {
			w, h = measure(n.Block)
		}
		sc.slotOf[id] = addSlot(id, layers[id]-minLayer, w, h)
	}

	for _, id := range members {
		for _, eid := range g.OutEdges(id) {
			e := g.Edge(eid)
			switch cls.Class[eid] {
			case transform.EdgeSelfLoop:
				sc.loops = append(sc.loops, eid)
			case transform.EdgeBack:
				sc.backs = append(sc.backs, eid)
			default:
				from := layers[e.From] - minLayer
				to := layers[e.To] - minLayer
				chain := []int{sc.slotOf[e.From]}
				for l := from + 1; l < to; l++ {
					chain = append(chain, addSlot(dummy, l, 0, 0))
				}
				chain = append(chain, sc.slotOf[e.To])
				sc.chains[eid] = chain
			}
		}
	}

	sc.buildAdjacency()
	return sc
}

// buildAdjacency materializes per-layer-pair neighbor lists in local index
// space, the form the crossing counter and barycenter sweeps consume.
func (sc *scaffold) buildAdjacency() {
	depth := len(sc.layerSlots)
	sc.down = make([][][]int, depth)
	sc.up = make([][][]int, depth)
	for l := 0; l < depth; l++ {
		sc.down[l] = make([][]int, len(sc.layerSlots[l]))
		sc.up[l] = make([][]int, len(sc.layerSlots[l]))
	}

	for _, chain := range sc.chains {
		for i := 0; i+1 < len(chain); i++ {
			a, b := sc.slots[chain[i]], sc.slots[chain[i+1]]
			sc.down[a.layer][a.pos] = append(sc.down[a.layer][a.pos], b.pos)
			sc.up[b.layer][b.pos] = append(sc.up[b.layer][b.pos], a.pos)
		}
	}

	sc.orders = make([][]int, depth)
	for l := 0; l < depth; l++ {
		perm := make([]int, len(sc.layerSlots[l]))
		for i := range perm {
			perm[i] = i
		}
		sc.orders[l] = perm
	}
}

// emit copies the component's finished geometry into the snapshot, shifted
// right by xOffset so components sit side by side.
func (sc *scaffold) emit(l *Layout, xOffset float64) {
	// Per-layer drawing order of real nodes, concatenated across components
	// in emit order.
	for layer, perm := range sc.orders {
		for len(l.order) <= layer {
			l.order = append(l.order, nil)
		}
		for _, local := range perm {
			s := sc.slots[sc.layerSlots[layer][local]]
			if s.node == dummy {
				continue
			}
			n := sc.g.Node(s.node)
			l.nodes[s.node] = Node{
				ID:        s.node,
				Key:       n.Key,
				Block:     n.Block,
				Layer:     layer,
				Order:     len(l.order[layer]),
				Component: sc.comp,
				Pos:       Point{s.x + xOffset, s.y},
				Size:      Point{s.w, s.h},
			}
			l.order[layer] = append(l.order[layer], s.node)
		}
	}

	for eid, pts := range sc.points {
		e := sc.g.Edge(eid)
		shifted := make([]Point, len(pts))
		for i, p := range pts {
			shifted[i] = Point{p.X + xOffset, p.Y}
		}
		l.edges[eid] = Edge{
			ID:     eid,
			From:   e.From,
			To:     e.To,
			Class:  sc.cls.Class[eid],
			Kind:   e.Kind,
			Points: shifted,
		}
	}
}
