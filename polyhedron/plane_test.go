package polyhedron

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlaneCompare(t *testing.T) {
	tests := []struct {
		name  string
		plane Plane
		point mgl64.Vec3
		want  float64
	}{
		{
			name:  "above",
			plane: NewPlane(-0.5, mgl64.Vec3{1, 0, 0}),
			point: mgl64.Vec3{1, 2, 3},
			want:  0.5,
		},
		{
			name:  "below",
			plane: NewPlane(-0.5, mgl64.Vec3{1, 0, 0}),
			point: mgl64.Vec3{0, 0, 0},
			want:  -0.5,
		},
		{
			name:  "on plane",
			plane: NewPlane(-0.5, mgl64.Vec3{1, 0, 0}),
			point: mgl64.Vec3{0.5, -4, 9},
			want:  0,
		},
		{
			name:  "through point",
			plane: PlaneThrough(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 0, 1}, 2),
			point: mgl64.Vec3{5, 5, 3},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plane.Compare(tt.point); !approxEqual(got, tt.want, 1e-12) {
				t.Errorf("Compare(%v) = %g, want %g", tt.point, got, tt.want)
			}
			if above := tt.plane.Above(tt.point); above != (tt.want >= 0) {
				t.Errorf("Above(%v) = %v with compare %g", tt.point, above, tt.want)
			}
		})
	}
}

func TestPlaneDefaultID(t *testing.T) {
	if got := NewPlane(1, mgl64.Vec3{0, 0, 1}).ID; got != UnsetPlaneID {
		t.Errorf("NewPlane ID = %d, want UnsetPlaneID", got)
	}
	if got := PlaneThrough(mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, 8).ID; got != 8 {
		t.Errorf("PlaneThrough ID = %d, want 8", got)
	}
}

func TestSortPlanesByDistance(t *testing.T) {
	planes := []Plane{
		NewPlane(2, mgl64.Vec3{0, 0, 1}),
		NewPlane(-1, mgl64.Vec3{1, 0, 0}),
		NewPlane(2, mgl64.Vec3{0, 1, 0}),
	}
	SortPlanesByDistance(planes)

	wantDists := []float64{-1, 2, 2}
	for i, want := range wantDists {
		if planes[i].Dist != want {
			t.Fatalf("planes[%d].Dist = %g, want %g", i, planes[i].Dist, want)
		}
	}
	if planes[1].Normal.Y() > planes[2].Normal.Y() {
		t.Errorf("tie not broken by normal: %v before %v", planes[1].Normal, planes[2].Normal)
	}
}

func TestUnit(t *testing.T) {
	if got := Unit(mgl64.Vec3{0, 3, 4}); !vec3ApproxEqual(got, mgl64.Vec3{0, 0.6, 0.8}, 1e-12) {
		t.Errorf("Unit(0,3,4) = %v", got)
	}
	if got := Unit(mgl64.Vec3{}); got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Unit(0,0,0) = %v, want (1,0,0)", got)
	}
}
