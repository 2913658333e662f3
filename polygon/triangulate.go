package polygon

// SplitIntoTriangles decomposes the polygon into a fan of triangles around
// its lowest-index live vertex, returning vertex index triples in
// counter-clockwise order. Triangles with non-positive signed area are
// skipped.
//
// When tol > 0 the polygon is first collapsed in place with
// CollapseDegenerates(tol); the returned indices reference the compacted
// polygon. The decomposition assumes the polygon is star-shaped from the
// fan vertex, which holds for convex inputs and anything clipped from
// them.
func (p *Polygon) SplitIntoTriangles(tol float64) [][3]int {
	if tol > 0 {
		p.CollapseDegenerates(tol)
	}
	poly := *p
	v0 := poly.firstLive()
	if v0 < 0 {
		return nil
	}

	var tris [][3]int
	apex := poly[v0].Position
	limit := poly.liveCount()
	i := poly[v0].Neighbors[1]
	for steps := 0; steps < limit; steps++ {
		j := poly[i].Neighbors[1]
		if j == v0 {
			break
		}
		area := 0.5 * Cross(poly[i].Position.Sub(apex), poly[j].Position.Sub(apex))
		if area > 0 {
			tris = append(tris, [3]int{v0, i, j})
		}
		i = j
	}
	return tris
}
