package polygon

import "github.com/go-gl/mathgl/mgl64"

// Cross returns the scalar cross product of two 2D vectors: the z
// component of the cross product of their 3D lifts. Positive when b lies
// counter-clockwise of a.
func Cross(a, b mgl64.Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Unit returns v scaled to unit length. A zero-magnitude input yields the
// canonical (1, 0) axis rather than NaN components.
func Unit(v mgl64.Vec2) mgl64.Vec2 {
	mag := v.Len()
	if mag > 0 {
		return v.Mul(1.0 / mag)
	}
	return mgl64.Vec2{1, 0}
}
