package polygon

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCollapseDegenerates(t *testing.T) {
	// Unit square with an extra vertex 1e-10 away from the origin corner.
	poly, err := Initialize(
		[]mgl64.Vec2{{0, 0}, {1e-10, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{4, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 0}},
	)
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	poly.CollapseDegenerates(1e-8)

	if got := len(poly); got != 4 {
		t.Fatalf("vertices after collapse = %d, want 4", got)
	}
	if err := poly.Validate(); err != nil {
		t.Fatalf("Validate after collapse: %v", err)
	}
	area, _ := poly.Moments()
	if !approxEqual(area, 1.0, 1e-9) {
		t.Errorf("area = %g, want 1 within 1e-9", area)
	}
}

func TestCollapseDegeneratesIdempotent(t *testing.T) {
	build := func() Polygon {
		poly, err := Initialize(
			[]mgl64.Vec2{{0, 0}, {1e-10, 0}, {1, 0}, {1, 1}, {0, 1}},
			[][]int{{4, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 0}},
		)
		if err != nil {
			t.Fatalf("Initialize returned error: %v", err)
		}
		return poly
	}

	once := build()
	once.CollapseDegenerates(1e-8)
	twice := build()
	twice.CollapseDegenerates(1e-8)
	twice.CollapseDegenerates(1e-8)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("collapse not idempotent:\nonce:  %vtwice: %v", once, twice)
	}
}

func TestCollapseZeroToleranceMergesExactDuplicates(t *testing.T) {
	poly, err := Initialize(
		[]mgl64.Vec2{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{4, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 0}},
	)
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	poly.CollapseDegenerates(0)

	if got := len(poly); got != 4 {
		t.Errorf("vertices after collapse = %d, want 4", got)
	}
	area, _ := poly.Moments()
	if !approxEqual(area, 1.0, 1e-12) {
		t.Errorf("area = %g, want 1", area)
	}
}

func TestCollapseRemovesShortLoops(t *testing.T) {
	// A triangle smaller than the tolerance collapses to nothing: a loop
	// needs three vertices to bound area.
	poly, err := Initialize(
		[]mgl64.Vec2{{0, 0}, {1e-10, 0}, {0, 1e-10}},
		[][]int{{2, 1}, {0, 2}, {1, 0}},
	)
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	poly.CollapseDegenerates(1e-8)

	if got := len(poly); got != 0 {
		t.Errorf("vertices after collapse = %d, want 0", got)
	}
	area, first := poly.Moments()
	if area != 0 || first != (mgl64.Vec2{}) {
		t.Errorf("moments = (%g, %v), want zeros", area, first)
	}
}

func TestCollapseUnionsClipSets(t *testing.T) {
	poly, err := Initialize(
		[]mgl64.Vec2{{0, 0}, {1e-10, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{4, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 0}},
	)
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	poly[0].Clips = map[int]bool{1: true}
	poly[1].Clips = map[int]bool{2: true}

	poly.CollapseDegenerates(1e-8)

	if got := len(poly); got != 4 {
		t.Fatalf("vertices after collapse = %d, want 4", got)
	}
	// The lower-indexed vertex survives and absorbs both tags.
	if !poly[0].Clips[1] || !poly[0].Clips[2] {
		t.Errorf("survivor clips = %v, want {1, 2}", poly[0].Clips)
	}
}
