package polyhedron

import "github.com/go-gl/mathgl/mgl64"

// Moments returns the zeroth moment (signed volume) and first moment
// (volume-weighted centroid) of the polyhedron. Every face is
// fan-triangulated and summed as signed tetrahedra against a reference
// point; outward-oriented faces give positive volume. An empty polyhedron
// yields zeros.
//
// Accumulation runs relative to the first live vertex so large
// translations do not cost precision.
func (p Polyhedron) Moments() (float64, mgl64.Vec3) {
	start := p.firstLive()
	if start < 0 {
		return 0, mgl64.Vec3{}
	}
	origin := p[start].Position

	var zeroth float64
	var first mgl64.Vec3
	for _, face := range p.ExtractFaces() {
		if len(face) < 3 {
			continue
		}
		r0 := p[face[0]].Position.Sub(origin)
		for k := 1; k+1 < len(face); k++ {
			r1 := p[face[k]].Position.Sub(origin)
			r2 := p[face[k+1]].Position.Sub(origin)
			dv := r0.Dot(r1.Cross(r2)) / 6
			zeroth += dv
			first = first.Add(r0.Add(r1).Add(r2).Mul(dv / 4))
		}
	}
	return zeroth, first.Add(origin.Mul(zeroth))
}
