package polygon

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// UnsetPlaneID marks a plane that was never given an identifier. Vertices
// created by such a plane carry UnsetPlaneID in their clip sets.
const UnsetPlaneID = math.MinInt

// Plane is an oriented half-plane. The plane equation is
// Normal·p + Dist = 0; points with Normal·p + Dist >= 0 are "above" the
// plane and survive clipping. Normal must be unit length.
//
// ID tags the vertices generated when this plane cuts a polygon, so
// downstream remeshing drivers can recover which cut produced which
// feature.
type Plane struct {
	Normal mgl64.Vec2
	Dist   float64
	ID     int
}

// NewPlane builds a plane from its signed distance to the origin and unit
// normal, with no ID.
func NewPlane(dist float64, normal mgl64.Vec2) Plane {
	return Plane{Normal: normal, Dist: dist, ID: UnsetPlaneID}
}

// PlaneThrough builds the plane containing point with the given unit
// normal, tagged with id.
func PlaneThrough(point, normal mgl64.Vec2, id int) Plane {
	return Plane{Normal: normal, Dist: -point.Dot(normal), ID: id}
}

// Compare returns the signed distance from point to the plane: positive
// above, negative below, zero on the plane.
func (pl Plane) Compare(point mgl64.Vec2) float64 {
	return pl.Normal.Dot(point) + pl.Dist
}

// Above reports whether point lies on or above the plane.
func (pl Plane) Above(point mgl64.Vec2) bool { return pl.Compare(point) >= 0 }

// Below reports whether point lies strictly below the plane.
func (pl Plane) Below(point mgl64.Vec2) bool { return pl.Compare(point) < 0 }

// SortPlanesByDistance orders planes by ascending Dist, breaking ties by
// normal components. Sorting is stable, so equal planes keep their
// relative order and repeated clip sequences stay deterministic.
func SortPlanesByDistance(planes []Plane) {
	sort.SliceStable(planes, func(i, j int) bool {
		if planes[i].Dist != planes[j].Dist {
			return planes[i].Dist < planes[j].Dist
		}
		if planes[i].Normal.X() != planes[j].Normal.X() {
			return planes[i].Normal.X() < planes[j].Normal.X()
		}
		return planes[i].Normal.Y() < planes[j].Normal.Y()
	})
}
