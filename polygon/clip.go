package polygon

// Clip truncates the polygon against each plane in order, keeping the
// portion above every plane. The graph is rewritten in place: vertices
// below a plane become tombstones, and a new vertex is interpolated onto
// every boundary edge the plane crosses. Clipping to nothing leaves a
// valid empty polygon; it is not an error.
//
// Applying [P1, P2] is exactly equivalent to applying [P1] then [P2].
func (p *Polygon) Clip(planes []Plane) {
	poly := *p
	for _, plane := range planes {
		// Classify every live vertex against the plane. Ties (exactly on
		// the plane) are kept and spawn no cut vertex; they join the
		// plane's clip record since the cut passes through them.
		dist := make([]float64, len(poly))
		above, below := 0, 0
		for i := range poly {
			if poly[i].Comp < 0 {
				continue
			}
			d := plane.Compare(poly[i].Position)
			dist[i] = d
			switch {
			case d > 0:
				poly[i].Comp = 1
				above++
			case d < 0:
				poly[i].Comp = -1
				below++
			default:
				poly[i].Comp = 0
				if poly[i].Clips == nil {
					poly[i].Clips = make(map[int]bool, 1)
				}
				poly[i].Clips[plane.ID] = true
			}
		}

		// Non-intersecting plane: nothing to do.
		if below == 0 {
			resetComps(poly)
			continue
		}
		// Nothing strictly above: the whole polygon is clipped away.
		if above == 0 {
			for i := range poly {
				poly[i].Comp = -1
			}
			continue
		}

		// Every kept vertex whose next neighbor fell below the plane
		// starts a dead run. Collect them before splicing so the walk
		// below always reads the original topology.
		type cutEdge struct{ kept, dead int }
		var cuts []cutEdge
		for i := range poly {
			if poly[i].Comp < 0 {
				continue
			}
			if nb := poly[i].Neighbors[1]; poly[nb].Comp < 0 {
				cuts = append(cuts, cutEdge{kept: i, dead: nb})
			}
		}

		for _, c := range cuts {
			// Walk the dead run to the vertex where the boundary
			// re-enters the kept half-plane. Tombstoned vertices keep
			// their original next pointers, so the walk is well defined.
			prev, cur := c.dead, poly[c.dead].Neighbors[1]
			for poly[cur].Comp < 0 {
				prev, cur = cur, poly[cur].Neighbors[1]
			}

			// Descending cut: interpolate a new vertex unless the kept
			// endpoint already sits on the plane.
			out := c.kept
			if poly[c.kept].Comp == 1 {
				out = len(poly)
				poly = append(poly, cutVertex(poly, plane, dist, c.kept, c.dead))
				poly[out].Neighbors[0] = c.kept
				poly[c.kept].Neighbors[1] = out
			}
			// Ascending cut, symmetric.
			in := cur
			if poly[cur].Comp == 1 {
				in = len(poly)
				poly = append(poly, cutVertex(poly, plane, dist, cur, prev))
				poly[in].Neighbors[1] = cur
				poly[cur].Neighbors[0] = in
			}

			// Close the boundary along the plane.
			poly[out].Neighbors[1] = in
			poly[in].Neighbors[0] = out
		}

		resetComps(poly)
	}
	*p = poly
}

// cutVertex interpolates a new vertex on the edge from kept (above the
// plane) to dead (below it). The interpolation parameter lies strictly in
// (0, 1) because the endpoint distances have opposite signs.
func cutVertex(poly Polygon, plane Plane, dist []float64, kept, dead int) Vertex {
	t := dist[kept] / (dist[kept] - dist[dead])
	pos := poly[kept].Position.Add(poly[dead].Position.Sub(poly[kept].Position).Mul(t))
	return Vertex{
		Position: pos,
		Comp:     1,
		ID:       -1,
		Clips:    unionClips(poly[kept].Clips, poly[dead].Clips, plane.ID),
	}
}

// resetComps returns every surviving vertex to the resting tag between
// plane passes.
func resetComps(poly Polygon) {
	for i := range poly {
		if poly[i].Comp >= 0 {
			poly[i].Comp = 1
		}
	}
}
