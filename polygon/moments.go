package polygon

import "github.com/go-gl/mathgl/mgl64"

// Moments returns the zeroth moment (signed area) and first moment
// (area-weighted centroid) of the polygon. Disconnected boundary loops all
// contribute. An empty polygon yields zeros.
//
// Accumulation runs relative to the first live vertex so large
// translations do not cost precision; the shoelace contributions of a
// closed loop are reference-independent.
func (p Polygon) Moments() (float64, mgl64.Vec2) {
	start := p.firstLive()
	if start < 0 {
		return 0, mgl64.Vec2{}
	}
	origin := p[start].Position

	var zeroth float64
	var first mgl64.Vec2
	visited := make([]bool, len(p))
	for i := range p {
		if p[i].Comp < 0 || visited[i] {
			continue
		}
		for j := i; !visited[j]; j = p[j].Neighbors[1] {
			visited[j] = true
			k := p[j].Neighbors[1]
			a := p[j].Position.Sub(origin)
			b := p[k].Position.Sub(origin)
			da := 0.5 * Cross(a, b)
			zeroth += da
			first = first.Add(a.Add(b).Mul(da / 3))
		}
	}
	return zeroth, first.Add(origin.Mul(zeroth))
}
