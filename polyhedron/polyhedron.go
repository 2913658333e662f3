// Package polyhedron implements in-place half-space clipping of polyhedra
// encoded as vertex-neighbor graphs.
//
// A polyhedron is a dense sequence of vertices, each holding its position
// and the indices of its neighbors across incident edges. Neighbor lists
// are cyclic and ordered so that stepping from any incoming edge to the
// entry immediately after it yields the next edge clockwise around the
// vertex, viewed from outside the solid. That single convention drives
// everything here: face loops are recovered by repeatedly taking the
// neighbor after the arrival vertex, and read counter-clockwise from
// outside (outward orientation).
//
// Clipping against a plane retains only the portion of the polyhedron
// "above" it (signed distance >= 0), rewriting the graph in place: removed
// vertices become tombstones, new vertices appear on the cut edges, and
// the ring of new vertices forms the cap face closing the solid along the
// plane.
//
// The representation and algorithms follow R3D as described by
// Powell & Abel (2015).
//
// References:
//   - Powell, D., & Abel, T.: "An exact general remeshing scheme applied to
//     physically conservative voxelization" (2015)
package polyhedron

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidAdjacency reports initializer input whose neighbor lists have
// the wrong arity or reference vertices outside the polyhedron.
var ErrInvalidAdjacency = errors.New("invalid adjacency")

// Vertex is one node of the polyhedron edge graph.
//
// Comp is the transient classification used during clipping: 1 above the
// current plane, 0 exactly on it, -1 removed (2 marks a freshly cut vertex
// inside a single plane pass). Between operations every retained vertex
// holds Comp == 1 and every tombstone holds Comp == -1.
type Vertex struct {
	Position  mgl64.Vec3
	Neighbors []int // cyclic, clockwise around the vertex seen from outside
	Comp      int
	ID        int          // scratch label, assigned during face extraction
	Clips     map[int]bool // IDs of the planes whose cuts created or passed through this vertex
}

// Polyhedron is a dense vertex sequence whose neighbor indices reference
// the same sequence. Tombstoned slots (Comp < 0) are retained for index
// stability and skipped by every operation.
type Polyhedron []Vertex

// Initialize builds a live polyhedron from positions and their adjacency.
// Every neighbor list must hold at least three in-range indices, cyclically
// ordered per the package convention; the adjacency is copied verbatim,
// not repaired or reoriented.
func Initialize(positions []mgl64.Vec3, neighbors [][]int) (Polyhedron, error) {
	if len(neighbors) != len(positions) {
		return nil, fmt.Errorf("%d positions with %d neighbor lists: %w",
			len(positions), len(neighbors), ErrInvalidAdjacency)
	}
	poly := make(Polyhedron, len(positions))
	for i, pos := range positions {
		if len(neighbors[i]) < 3 {
			return nil, fmt.Errorf("vertex %d: expected at least 3 neighbors, got %d: %w",
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
			Neighbors: append([]int(nil), neighbors[i]...),
			Comp:      1,
			ID:        -1,
		}
	}
	return poly, nil
}

// Validate checks the edge-graph invariants: live vertices reference live
// vertices, every live vertex keeps at least three distinct neighbors,
// every directed edge has its reverse, and every face walk closes. It is a
// diagnostic; well-formed inputs mutated only through this package never
// fail it.
func (p Polyhedron) Validate() error {
	limit := 0
	for i := range p {
		if p[i].Comp >= 0 {
			limit += len(p[i].Neighbors)
		}
	}
	for i := range p {
		if p[i].Comp < 0 {
			continue
		}
		if len(p[i].Neighbors) < 3 {
			return fmt.Errorf("vertex %d: degree %d", i, len(p[i].Neighbors))
		}
		seen := make(map[int]bool, len(p[i].Neighbors))
		for _, j := range p[i].Neighbors {
			if j < 0 || j >= len(p) {
				return fmt.Errorf("vertex %d: neighbor %d out of range", i, j)
			}
			if p[j].Comp < 0 {
				return fmt.Errorf("vertex %d: neighbor %d is inactive", i, j)
			}
			if seen[j] {
				return fmt.Errorf("vertex %d: duplicate neighbor %d", i, j)
			}
			seen[j] = true
			if neighborAfter(p[j].Neighbors, i) < 0 {
				return fmt.Errorf("directed edge %d->%d has no reverse", i, j)
			}
		}
		for _, j := range p[i].Neighbors {
			if err := p.checkFaceWalk(i, j, limit); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkFaceWalk follows the face containing the directed edge start->next
// and reports failure to return within the directed-edge budget.
func (p Polyhedron) checkFaceWalk(start, next, limit int) error {
	u, v := start, next
	for steps := 0; ; steps++ {
		if steps > limit {
			return fmt.Errorf("face walk from %d->%d fails to close", start, next)
		}
		w := neighborAfter(p[v].Neighbors, u)
		if w < 0 {
			return fmt.Errorf("face walk from %d->%d lost at %d", start, next, v)
		}
		u, v = v, w
		if u == start && v == next {
			return nil
		}
	}
}

// String renders every live vertex with its index, position, adjacency,
// comp tag and clip set. Debug output only; the format is not stable.
func (p Polyhedron) String() string {
	var b strings.Builder
	b.WriteString("Polyhedron:\n")
	for i := range p {
		if p[i].Comp < 0 {
			continue
		}
		fmt.Fprintf(&b, "  %d (%g, %g, %g) neighbors=%v comp=%d clips=%v\n",
			i, p[i].Position.X(), p[i].Position.Y(), p[i].Position.Z(),
			p[i].Neighbors, p[i].Comp, sortedClips(p[i].Clips))
	}
	return b.String()
}

// neighborAfter returns the entry immediately after u in the cyclic
// neighbor list, or -1 when u is absent.
func neighborAfter(neighbors []int, u int) int {
	for k, n := range neighbors {
		if n == u {
			return neighbors[(k+1)%len(neighbors)]
		}
	}
	return -1
}

// liveCount returns the number of non-tombstoned vertices.
func (p Polyhedron) liveCount() int {
	n := 0
	for i := range p {
		if p[i].Comp >= 0 {
			n++
		}
	}
	return n
}

// firstLive returns the lowest live vertex index, or -1 when empty.
func (p Polyhedron) firstLive() int {
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
