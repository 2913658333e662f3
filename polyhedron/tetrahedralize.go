package polyhedron

// SplitIntoTetrahedra decomposes the polyhedron into tetrahedra fanned
// from its lowest-index live vertex: every face not incident to that
// vertex is fan-triangulated around its own first vertex, and each
// triangle closes a tetrahedron with the apex. Tetrahedra with
// non-positive signed volume are skipped.
//
// When tol > 0 the polyhedron is first collapsed in place with
// CollapseDegenerates(tol); the returned indices reference the compacted
// polyhedron. The decomposition assumes the polyhedron is star-shaped from
// the apex, which holds for convex inputs and anything clipped from them.
func (p *Polyhedron) SplitIntoTetrahedra(tol float64) [][4]int {
	if tol > 0 {
		p.CollapseDegenerates(tol)
	}
	poly := *p
	v0 := poly.firstLive()
	if v0 < 0 {
		return nil
	}
	apex := poly[v0].Position

	var tets [][4]int
	for _, face := range poly.ExtractFaces() {
		if len(face) < 3 || containsIndex(face, v0) {
			continue
		}
		r0 := poly[face[0]].Position.Sub(apex)
		for k := 1; k+1 < len(face); k++ {
			r1 := poly[face[k]].Position.Sub(apex)
			r2 := poly[face[k+1]].Position.Sub(apex)
			if vol := r0.Dot(r1.Cross(r2)) / 6; vol > 0 {
				tets = append(tets, [4]int{v0, face[0], face[k], face[k+1]})
			}
		}
	}
	return tets
}

func containsIndex(face []int, v int) bool {
	for _, f := range face {
		if f == v {
			return true
		}
	}
	return false
}
