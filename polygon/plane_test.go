package polygon

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlaneCompare(t *testing.T) {
	tests := []struct {
		name  string
		plane Plane
		point mgl64.Vec2
		want  float64
	}{
		{
			name:  "above",
			plane: NewPlane(-0.5, mgl64.Vec2{1, 0}),
			point: mgl64.Vec2{1, 0},
			want:  0.5,
		},
		{
			name:  "below",
			plane: NewPlane(-0.5, mgl64.Vec2{1, 0}),
			point: mgl64.Vec2{0, 1},
			want:  -0.5,
		},
		{
			name:  "on plane",
			plane: NewPlane(-0.5, mgl64.Vec2{1, 0}),
			point: mgl64.Vec2{0.5, 2},
			want:  0,
		},
		{
			name:  "through point",
			plane: PlaneThrough(mgl64.Vec2{2, 3}, mgl64.Vec2{0, 1}, 1),
			point: mgl64.Vec2{-7, 3},
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
			if below := tt.plane.Below(tt.point); below != (tt.want < 0) {
				t.Errorf("Below(%v) = %v with compare %g", tt.point, below, tt.want)
			}
		})
	}
}

func TestPlaneDefaultID(t *testing.T) {
	if got := NewPlane(1, mgl64.Vec2{0, 1}).ID; got != UnsetPlaneID {
		t.Errorf("NewPlane ID = %d, want UnsetPlaneID", got)
	}
	if got := PlaneThrough(mgl64.Vec2{}, mgl64.Vec2{0, 1}, 4).ID; got != 4 {
		t.Errorf("PlaneThrough ID = %d, want 4", got)
	}
}

func TestSortPlanesByDistance(t *testing.T) {
	planes := []Plane{
		NewPlane(0.5, mgl64.Vec2{1, 0}),
		NewPlane(-1, mgl64.Vec2{0, 1}),
		NewPlane(0.5, mgl64.Vec2{0, 1}),
		NewPlane(0, mgl64.Vec2{1, 0}),
	}
	SortPlanesByDistance(planes)

	wantDists := []float64{-1, 0, 0.5, 0.5}
	for i, want := range wantDists {
		if planes[i].Dist != want {
			t.Fatalf("planes[%d].Dist = %g, want %g", i, planes[i].Dist, want)
		}
	}
	// Equal distances break ties on the normal.
	if planes[2].Normal.X() > planes[3].Normal.X() {
		t.Errorf("tie not broken by normal: %v before %v", planes[2].Normal, planes[3].Normal)
	}
}

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl64.Vec2
		want float64
	}{
		{"orthogonal", mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1}, 1},
		{"reversed", mgl64.Vec2{0, 1}, mgl64.Vec2{1, 0}, -1},
		{"parallel", mgl64.Vec2{2, 2}, mgl64.Vec2{1, 1}, 0},
		{"general", mgl64.Vec2{3, 1}, mgl64.Vec2{1, 2}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cross(tt.a, tt.b); !approxEqual(got, tt.want, 1e-12) {
				t.Errorf("Cross(%v, %v) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	if got := Unit(mgl64.Vec2{3, 4}); !vec2ApproxEqual(got, mgl64.Vec2{0.6, 0.8}, 1e-12) {
		t.Errorf("Unit(3,4) = %v", got)
	}
	// The zero vector maps to the canonical axis instead of NaN.
	if got := Unit(mgl64.Vec2{}); got != (mgl64.Vec2{1, 0}) {
		t.Errorf("Unit(0,0) = %v, want (1,0)", got)
	}
}
