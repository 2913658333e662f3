package polyhedron

import "sync"

// removedSlot marks a neighbor entry scheduled for deletion while a plane
// pass is still rewiring; tidyCycle strips it.
const removedSlot = -2

// walkStart queues one face walk through the removed region. src's slot
// receives the cap successor the walk discovers; the walk itself enters
// the region at `at`, arriving from `from`.
type walkStart struct {
	src  int
	slot int
	from int
	at   int
}

// clipScratch holds the per-plane working buffers. Pooled so repeated
// clipping of many polyhedra does not reallocate them.
type clipScratch struct {
	dist   []float64
	newFor map[[2]int]int // (above, below) edge -> interpolated vertex
	walks  []walkStart
}

var clipScratchPool = sync.Pool{
	New: func() any {
		return &clipScratch{newFor: make(map[[2]int]int)}
	},
}

// Clip truncates the polyhedron against each plane in order, keeping the
// portion above every plane. The graph is rewritten in place: vertices
// below a plane become tombstones, a new vertex is interpolated onto every
// edge the plane crosses, and the new vertices are chained into cap faces
// closing the solid along the plane (cap outward normal = -plane normal).
// Clipping to nothing leaves a valid empty polyhedron; it is not an error.
//
// Applying [P1, P2] is exactly equivalent to applying [P1] then [P2].
func (p *Polyhedron) Clip(planes []Plane) {
	poly := *p
	sc := clipScratchPool.Get().(*clipScratch)
	defer clipScratchPool.Put(sc)

	for _, plane := range planes {
		// Classify every live vertex against the plane. Ties (exactly on
		// the plane) are kept and spawn no cut vertex; they join the
		// plane's clip record since the cut passes through them.
		if cap(sc.dist) < len(poly) {
			sc.dist = make([]float64, len(poly))
		}
		sc.dist = sc.dist[:len(poly)]
		above, below := 0, 0
		for i := range poly {
			if poly[i].Comp < 0 {
				continue
			}
			d := plane.Compare(poly[i].Position)
			sc.dist[i] = d
			switch {
			case d > 0:
				poly[i].Comp = 1
				above++
			case d < 0:
				poly[i].Comp = -1
				below++
			default:
				poly[i].Comp = 0
				if poly[i].Clips == nil {
					poly[i].Clips = make(map[int]bool, 1)
				}
				poly[i].Clips[plane.ID] = true
			}
		}

		// Non-intersecting plane: nothing to do.
		if below == 0 {
			resetComps(poly)
			continue
		}
		// Nothing strictly above: the whole polyhedron is clipped away.
		if above == 0 {
			for i := range poly {
				poly[i].Comp = -1
			}
			continue
		}

		clear(sc.newFor)
		sc.walks = sc.walks[:0]
		nverts0 := len(poly)

		// Interpolate a new vertex onto every descending edge (above ->
		// below). Its first neighbor slot is the surviving endpoint, whose
		// own slot is redirected immediately; the remaining two slots are
		// the cap successor and predecessor, resolved by the face walks
		// below.
		for i := 0; i < nverts0; i++ {
			if poly[i].Comp != 1 {
				continue
			}
			for k, j := range poly[i].Neighbors {
				if j >= nverts0 || poly[j].Comp != -1 {
					continue
				}
				t := sc.dist[i] / (sc.dist[i] - sc.dist[j])
				w := len(poly)
				poly = append(poly, Vertex{
					Position:  poly[i].Position.Add(poly[j].Position.Sub(poly[i].Position).Mul(t)),
					Neighbors: []int{i, -1, -1},
					Comp:      2,
					ID:        -1,
					Clips:     unionClips(poly[i].Clips, poly[j].Clips, plane.ID),
				})
				sc.newFor[[2]int{i, j}] = w
				poly[i].Neighbors[k] = w
				sc.walks = append(sc.walks, walkStart{src: w, slot: 1, from: i, at: j})
			}
		}

		// An on-plane vertex sits on the cap ring itself: every slot that
		// pointed into the removed region expands into a (successor,
		// predecessor) pair along the cap, resolved by the same walks.
		for z := 0; z < nverts0; z++ {
			if poly[z].Comp != 0 || !hasDeadNeighbor(poly, z, nverts0) {
				continue
			}
			rebuilt := make([]int, 0, len(poly[z].Neighbors)+2)
			for _, d := range poly[z].Neighbors {
				if poly[d].Comp >= 0 {
					rebuilt = append(rebuilt, d)
					continue
				}
				sc.walks = append(sc.walks, walkStart{src: z, slot: len(rebuilt), from: z, at: d})
				rebuilt = append(rebuilt, d, d)
			}
			poly[z].Neighbors = rebuilt
		}

		// Walk each dying face through the removed region. Tombstoned
		// vertices keep their original neighbor lists, so stepping to the
		// entry after the arrival vertex traces the face until it exits
		// the region; the exit identifies the cap successor of the walk's
		// source and, symmetrically, the source is the exit's cap
		// predecessor.
		limit := 0
		for i := range poly {
			limit += len(poly[i].Neighbors)
		}
		for _, wk := range sc.walks {
			prev, cur := wk.from, wk.at
			lost := false
			for steps := 0; poly[cur].Comp == -1; steps++ {
				nxt := neighborAfter(poly[cur].Neighbors, prev)
				if nxt < 0 || steps > limit {
					lost = true
					break
				}
				prev, cur = cur, nxt
			}
			if lost {
				// Corrupt adjacency on input; leave the slot unlinked for
				// Validate to report.
				continue
			}
			if poly[cur].Comp == 1 {
				target, ok := sc.newFor[[2]int{cur, prev}]
				if !ok {
					continue
				}
				poly[wk.src].Neighbors[wk.slot] = target
				poly[target].Neighbors[2] = wk.src
				continue
			}
			// Exited at an on-plane vertex.
			if cur == wk.src {
				// The face's only survivor is its on-plane vertex: no cap
				// edge to add, drop the slot pair.
				poly[wk.src].Neighbors[wk.slot] = removedSlot
				poly[wk.src].Neighbors[wk.slot+1] = removedSlot
				continue
			}
			poly[wk.src].Neighbors[wk.slot] = cur
			if bs := lastIndexOf(poly[cur].Neighbors, prev); bs >= 0 {
				poly[cur].Neighbors[bs] = wk.src
			}
		}

		// On-plane vertices may now carry dropped slots, unresolved
		// entries into the removed region (faces that died around them),
		// or cap links duplicating surviving edges (both endpoints on the
		// plane). Strip all of it.
		for z := 0; z < nverts0; z++ {
			if poly[z].Comp != 0 {
				continue
			}
			ns := poly[z].Neighbors[:0]
			for _, n := range poly[z].Neighbors {
				if n == removedSlot || poly[n].Comp == -1 {
					continue
				}
				ns = append(ns, n)
			}
			poly[z].Neighbors = tidyCycle(ns)
			if len(poly[z].Neighbors) == 0 {
				poly[z].Comp = -1
			}
		}

		resetComps(poly)
	}
	*p = poly
}

// hasDeadNeighbor reports whether any neighbor of vertex z was classified
// below the current plane.
func hasDeadNeighbor(poly Polyhedron, z, nverts0 int) bool {
	for _, d := range poly[z].Neighbors {
		if d < nverts0 && poly[d].Comp == -1 {
			return true
		}
	}
	return false
}

// tidyCycle strips removedSlot entries and collapses duplicate adjacent
// entries of a cyclic neighbor list.
func tidyCycle(ns []int) []int {
	out := ns[:0]
	for _, n := range ns {
		if n != removedSlot {
			out = append(out, n)
		}
	}
	for changed := true; changed && len(out) > 1; {
		changed = false
		for k := 0; k < len(out); k++ {
			if out[k] == out[(k+1)%len(out)] {
				out = append(out[:k], out[k+1:]...)
				changed = true
				break
			}
		}
	}
	return out
}

// lastIndexOf returns the highest slot holding u, or -1.
func lastIndexOf(neighbors []int, u int) int {
	for k := len(neighbors) - 1; k >= 0; k-- {
		if neighbors[k] == u {
			return k
		}
	}
	return -1
}

// resetComps returns every surviving vertex to the resting tag between
// plane passes.
func resetComps(poly Polyhedron) {
	for i := range poly {
		if poly[i].Comp >= 0 {
			poly[i].Comp = 1
		}
	}
}
