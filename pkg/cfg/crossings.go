package cfg

// CrossingWorkspace provides reusable buffers for crossing counts so the
// barycenter sweeps do not allocate per evaluation. Create one with
// [NewCrossingWorkspace] sized to the widest layer and reuse it for every
// layer pair. Not safe for concurrent use.
type CrossingWorkspace struct {
	ft  []int // Fenwick tree for inversion counting
	pos []int // position of each lower-layer slot in its current order
}

// NewCrossingWorkspace creates a workspace able to handle layers of up to
// maxWidth nodes. Using a smaller workspace than the widest layer passed to
// [CountLayerCrossings] produces incorrect counts.
func NewCrossingWorkspace(maxWidth int) *CrossingWorkspace {
	return &CrossingWorkspace{
		ft:  make([]int, maxWidth+2),
		pos: make([]int, maxWidth+2),
	}
}

// CountLayerCrossings counts edge crossings between two adjacent layers.
//
// down[i] lists the lower-layer slots adjacent to upper-layer slot i. The
// upper and lower parameters are the current orderings (permutations of slot
// indices) of the two layers. Two edges (u1,v1) and (u2,v2) cross iff u1
// precedes u2 while v1 follows v2, so the count equals the number of
// inversions in the target sequence when edges are visited in source order.
// The Fenwick tree makes that O(E log V) instead of the pairwise O(E²).
func CountLayerCrossings(down [][]int, upper, lower []int, ws *CrossingWorkspace) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	for p, slot := range lower {
		ws.pos[slot] = p
	}

	limit := len(lower) + 1
	for i := 0; i < limit; i++ {
		ws.ft[i] = 0
	}

	crossings, total := 0, 0
	for _, u := range upper {
		targets := down[u]
		// Query before update so edges sharing a source never count against
		// each other.
		for _, v := range targets {
			p := ws.pos[v]
			lessOrEqual := 0
			for q := p + 1; q > 0; q -= q & (-q) {
				lessOrEqual += ws.ft[q]
			}
			crossings += total - lessOrEqual
		}
		for _, v := range targets {
			total++
			for idx := ws.pos[v] + 1; idx < limit; idx += idx & (-idx) {
				ws.ft[idx]++
			}
		}
	}
	return crossings
}
