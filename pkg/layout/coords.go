package layout

// place assigns world coordinates to every slot of the component.
//
// Vertically, each layer is as tall as its tallest slot and layers stack
// top-down separated by the configured layer spacing; slots are centered on
// their layer's midline. Horizontally, slots line up left-to-right in their
// reduced order separated by the node spacing (dummies contribute no width,
// only the gap, which reserves a lane for the edge passing through), and
// each row is centered on the component's final width.
func (sc *scaffold) place(c Config) {
	depth := len(sc.layerSlots)
	sc.layerY = make([]float64, depth)

	y := 0.0
	for l := 0; l < depth; l++ {
		layerH := 0.0
		for _, si := range sc.layerSlots[l] {
			if h := sc.slots[si].h; h > layerH {
				layerH = h
			}
		}
		sc.layerY[l] = y + layerH/2
		y += layerH + c.LayerSpacing
	}
	if depth > 0 {
		sc.height = y - c.LayerSpacing
	}

	rowWidth := make([]float64, depth)
	for l := 0; l < depth; l++ {
		x := 0.0
		for _, local := range sc.orders[l] {
			s := &sc.slots[sc.layerSlots[l][local]]
			s.x = x + s.w/2
			s.y = sc.layerY[l]
			x += s.w + c.NodeSpacing
		}
		if len(sc.orders[l]) > 0 {
			rowWidth[l] = x - c.NodeSpacing
		}
		if rowWidth[l] > sc.width {
			sc.width = rowWidth[l]
		}
	}

	for l := 0; l < depth; l++ {
		shift := (sc.width - rowWidth[l]) / 2
		for _, si := range sc.layerSlots[l] {
			sc.slots[si].x += shift
		}
	}
}
