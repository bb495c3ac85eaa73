package layout

// route turns every edge of the component into a waypoint path.
//
// Tree and forward edges leave the source's bottom center, pass through the
// center of each dummy slot on intermediate layers, and enter the target's
// top center; a consecutive-layer edge is just the two endpoints. Back edges
// return against the flow through a vertical lane to the right of the
// component, one lane per back edge so parallel arcs never coincide (a
// second back edge between the same pair lands one offset further out).
// Self-loops are small rectangles anchored to the node's right side.
//
// Lanes and loops extend the component's width so neighboring components
// never overlap them.
func (sc *scaffold) route(c Config) {
	for eid, chain := range sc.chains {
		pts := make([]Point, 0, len(chain))
		first := sc.slots[chain[0]]
		pts = append(pts, Point{first.x, first.y + first.h/2})
		for _, si := range chain[1 : len(chain)-1] {
			s := sc.slots[si]
			pts = append(pts, Point{s.x, s.y})
		}
		last := sc.slots[chain[len(chain)-1]]
		pts = append(pts, Point{last.x, last.y - last.h/2})
		sc.points[eid] = pts
	}

	// Lanes are measured from the width before any lane is added, so lane k
	// sits exactly k+1 offsets out regardless of iteration order.
	base := sc.width
	for k, eid := range sc.backs {
		e := sc.g.Edge(eid)
		src := sc.slots[sc.slotOf[e.From]]
		dst := sc.slots[sc.slotOf[e.To]]
		lane := base + c.BackEdgeOffset*float64(k+1)
		sc.points[eid] = []Point{
			{src.x + src.w/2, src.y},
			{lane, src.y},
			{lane, dst.y},
			{dst.x + dst.w/2, dst.y},
		}
		if lane > sc.width {
			sc.width = lane
		}
	}

	r := c.BackEdgeOffset / 2
	for _, eid := range sc.loops {
		e := sc.g.Edge(eid)
		s := sc.slots[sc.slotOf[e.From]]
		right := s.x + s.w/2
		sc.points[eid] = []Point{
			{right, s.y - r},
			{right + 2*r, s.y - r},
			{right + 2*r, s.y + r},
			{right, s.y + r},
		}
		if right+2*r > sc.width {
			sc.width = right + 2*r
		}
	}
}
