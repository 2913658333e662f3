package polygon

// CollapseDegenerates merges neighboring vertices separated by at most
// tol, repeating until a full pass makes no merge, then drops boundary
// loops left with fewer than three vertices and compacts the vertex
// sequence (tombstones removed, neighbor indices renumbered).
//
// The lower-indexed vertex of a merged pair survives and absorbs the clip
// set of the other. tol = 0 merges exact duplicates only.
func (p *Polygon) CollapseDegenerates(tol float64) {
	poly := *p
	tol2 := tol * tol

	for changed := true; changed; {
		changed = false
		for i := range poly {
			if poly[i].Comp < 0 {
				continue
			}
			j := poly[i].Neighbors[1]
			if j == i || poly[j].Comp < 0 {
				continue
			}
			if poly[i].Position.Sub(poly[j].Position).LenSqr() > tol2 {
				continue
			}

			s, r := i, j
			if j < i {
				s, r = j, i
			}
			for id := range poly[r].Clips {
				if poly[s].Clips == nil {
					poly[s].Clips = make(map[int]bool, len(poly[r].Clips))
				}
				poly[s].Clips[id] = true
			}

			prev, next := poly[i].Neighbors[0], poly[j].Neighbors[1]
			if next == i {
				// The pair was a two-vertex loop; the survivor closes on
				// itself and the short-loop sweep below removes it.
				poly[s].Neighbors = [2]int{s, s}
			} else {
				poly[s].Neighbors = [2]int{prev, next}
				poly[prev].Neighbors[1] = s
				poly[next].Neighbors[0] = s
			}
			poly[r].Comp = -1
			changed = true
		}
	}

	// A closed loop needs at least three vertices to bound area.
	visited := make([]bool, len(poly))
	for i := range poly {
		if poly[i].Comp < 0 || visited[i] {
			continue
		}
		var loop []int
		for j := i; !visited[j]; j = poly[j].Neighbors[1] {
			visited[j] = true
			loop = append(loop, j)
		}
		if len(loop) < 3 {
			for _, j := range loop {
				poly[j].Comp = -1
			}
		}
	}

	*p = poly
	p.compact()
}

// compact rebuilds the vertex sequence with live vertices only and
// renumbers all adjacency.
func (p *Polygon) compact() {
	poly := *p
	remap := make([]int, len(poly))
	out := make(Polygon, 0, poly.liveCount())
	for i := range poly {
		if poly[i].Comp < 0 {
			remap[i] = -1
			continue
		}
		remap[i] = len(out)
		out = append(out, poly[i])
	}
	for i := range out {
		out[i].Neighbors[0] = remap[out[i].Neighbors[0]]
		out[i].Neighbors[1] = remap[out[i].Neighbors[1]]
		out[i].ID = -1
	}
	*p = out
}
