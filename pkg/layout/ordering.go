package layout

import (
	"slices"

	"github.com/cfgviz/cfgviz/pkg/cfg"
)

// reduceCrossings runs barycenter sweeps over the component's layers. Each
// pass sweeps one direction (down, then up, alternating) and re-sorts every
// layer by the mean position of its neighbors in the fixed adjacent layer.
// A pass that increases the total crossing count is rolled back, so the
// sequence of kept counts is non-increasing; two consecutive passes without
// strict improvement end the loop early.
func (sc *scaffold) reduceCrossings(c Config) {
	depth := len(sc.layerSlots)
	if depth < 2 {
		return
	}

	maxWidth := 0
	for _, ls := range sc.layerSlots {
		if len(ls) > maxWidth {
			maxWidth = len(ls)
		}
	}
	ws := cfg.NewCrossingWorkspace(maxWidth)

	countAll := func() int {
		total := 0
		for l := 0; l+1 < depth; l++ {
			total += cfg.CountLayerCrossings(sc.down[l], sc.orders[l], sc.orders[l+1], ws)
		}
		return total
	}

	best := countAll()
	stale := 0
	for pass := 0; pass < c.CrossingPasses && best > 0; pass++ {
		saved := make([][]int, depth)
		for l := range sc.orders {
			saved[l] = slices.Clone(sc.orders[l])
		}

		if pass%2 == 0 {
			for l := 1; l < depth; l++ {
				sc.sortLayer(l, sc.up[l], sc.orders[l-1])
			}
		} else {
			for l := depth - 2; l >= 0; l-- {
				sc.sortLayer(l, sc.down[l], sc.orders[l+1])
			}
		}

		count := countAll()
		if count > best {
			sc.orders = saved
		}
		if count < best {
			best = count
			stale = 0
		} else {
			stale++
		}
		if stale >= 2 {
			break
		}
	}
	sc.crossings = best
}

// sortLayer reorders one layer by the barycenter of each slot's neighbors in
// the adjacent layer, whose current order is adjPerm. Slots without
// neighbors keep their current position as their barycenter, and ties fall
// back to the previous order index, keeping the sort stable.
func (sc *scaffold) sortLayer(layer int, adj [][]int, adjPerm []int) {
	perm := sc.orders[layer]

	adjPos := make([]int, len(adjPerm))
	for p, local := range adjPerm {
		adjPos[local] = p
	}
	prevPos := make([]int, len(perm))
	for p, local := range perm {
		prevPos[local] = p
	}

	bary := make([]float64, len(perm))
	for local := range bary {
		neighbors := adj[local]
		if len(neighbors) == 0 {
			bary[local] = float64(prevPos[local])
			continue
		}
		sum := 0
		for _, nb := range neighbors {
			sum += adjPos[nb]
		}
		bary[local] = float64(sum) / float64(len(neighbors))
	}

	slices.SortFunc(perm, func(a, b int) int {
		switch {
		case bary[a] < bary[b]:
			return -1
		case bary[a] > bary[b]:
			return 1
		default:
			return prevPos[a] - prevPos[b]
		}
	})
}
