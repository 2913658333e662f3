// Package polygon implements in-place half-plane clipping of polygons
// encoded as vertex-neighbor graphs.
//
// A polygon is a dense sequence of vertices, each holding its position and
// the indices of its two boundary neighbors (previous, next). Walking Next
// repeatedly traverses the boundary counter-clockwise. Clipping against a
// plane retains only the portion of the polygon "above" it (signed distance
// >= 0), rewriting the graph in place: removed vertices become tombstones,
// new vertices are appended on the cut edges.
//
// The representation and algorithms follow the exact remeshing scheme of
// Powell & Abel (2015), specialised to two dimensions.
//
// References:
//   - Powell, D., & Abel, T.: "An exact general remeshing scheme applied to
//     physically conservative voxelization" (2015)
package polygon

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidAdjacency reports initializer input whose neighbor lists have
// the wrong arity or reference vertices outside the polygon.
var ErrInvalidAdjacency = errors.New("invalid adjacency")

// Vertex is one node of the polygon boundary graph.
//
// Comp is the transient classification used during clipping: 1 above the
// current plane, 0 exactly on it, -1 removed. Between operations every
// retained vertex holds Comp == 1 and every tombstone holds Comp == -1.
type Vertex struct {
	Position  mgl64.Vec2
	Neighbors [2]int // previous, next along the boundary
	Comp      int
	ID        int          // scratch label, assigned during face extraction
	Clips     map[int]bool // IDs of the planes whose cuts created or passed through this vertex
}

// Polygon is a dense vertex sequence whose neighbor indices reference the
// same sequence. Tombstoned slots (Comp < 0) are retained for index
// stability and skipped by every operation.
type Polygon []Vertex

// Initialize builds a live polygon from positions and their adjacency.
// Every neighbor list must hold exactly two in-range indices
// (previous, next); the adjacency is copied verbatim, not repaired.
func Initialize(positions []mgl64.Vec2, neighbors [][]int) (Polygon, error) {
	if len(neighbors) != len(positions) {
		return nil, fmt.Errorf("%d positions with %d neighbor lists: %w",
			len(positions), len(neighbors), ErrInvalidAdjacency)
	}
	poly := make(Polygon, len(positions))
	for i, pos := range positions {
		if len(neighbors[i]) != 2 {
			return nil, fmt.Errorf("vertex %d: expected 2 neighbors, got %d: %w",
				i, len(neighbors[i]), ErrInvalidAdjacency)
		}
		for _, j := range neighbors[i] {
			if j < 0 || j >= len(positions) {
				return nil, fmt.Errorf("vertex %d: neighbor %d out of range: %w",
					i, j, ErrInvalidAdjacency)
			}
		}
		poly[i] = Vertex{
			Position:  pos,
			Neighbors: [2]int{neighbors[i][0], neighbors[i][1]},
			Comp:      1,
			ID:        -1,
		}
	}
	return poly, nil
}

// Validate checks the boundary graph invariants: every live vertex has live
// neighbors, and prev/next are mutual inverses. It is a diagnostic; a
// polygon produced by Initialize and mutated only through this package
// never fails it.
func (p Polygon) Validate() error {
	for i := range p {
		if p[i].Comp < 0 {
			continue
		}
		prev, next := p[i].Neighbors[0], p[i].Neighbors[1]
		for _, j := range []int{prev, next} {
			if j < 0 || j >= len(p) {
				return fmt.Errorf("vertex %d: neighbor %d out of range", i, j)
			}
			if p[j].Comp < 0 {
				return fmt.Errorf("vertex %d: neighbor %d is inactive", i, j)
			}
		}
		if p[next].Neighbors[0] != i {
			return fmt.Errorf("vertex %d: next vertex %d has prev %d", i, next, p[next].Neighbors[0])
		}
		if p[prev].Neighbors[1] != i {
			return fmt.Errorf("vertex %d: prev vertex %d has next %d", i, prev, p[prev].Neighbors[1])
		}
	}
	return nil
}

// String renders every live vertex with its index, position, adjacency,
// comp tag and clip set. Debug output only; the format is not stable.
func (p Polygon) String() string {
	var b strings.Builder
	b.WriteString("Polygon:\n")
	for i := range p {
		if p[i].Comp < 0 {
			continue
		}
		fmt.Fprintf(&b, "  %d (%g, %g) prev=%d next=%d comp=%d clips=%v\n",
			i, p[i].Position.X(), p[i].Position.Y(),
			p[i].Neighbors[0], p[i].Neighbors[1], p[i].Comp, sortedClips(p[i].Clips))
	}
	return b.String()
}

// liveCount returns the number of non-tombstoned vertices.
func (p Polygon) liveCount() int {
	n := 0
	for i := range p {
		if p[i].Comp >= 0 {
			n++
		}
	}
	return n
}

// firstLive returns the lowest live vertex index, or -1 for an empty polygon.
func (p Polygon) firstLive() int {
	for i := range p {
		if p[i].Comp >= 0 {
			return i
		}
	}
	return -1
}

// unionClips merges two clip sets and an extra plane ID into a fresh set.
func unionClips(a, b map[int]bool, id int) map[int]bool {
	out := make(map[int]bool, len(a)+len(b)+1)
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	out[id] = true
	return out
}

// sortedClips flattens a clip set into ascending order for rendering.
func sortedClips(clips map[int]bool) []int {
	out := make([]int, 0, len(clips))
	for k := range clips {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
