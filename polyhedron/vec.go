package polyhedron

import "github.com/go-gl/mathgl/mgl64"

// Unit returns v scaled to unit length. A zero-magnitude input yields the
// canonical (1, 0, 0) axis rather than NaN components.
func Unit(v mgl64.Vec3) mgl64.Vec3 {
	mag := v.Len()
	if mag > 0 {
		return v.Mul(1.0 / mag)
	}
	return mgl64.Vec3{1, 0, 0}
}
