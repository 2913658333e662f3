package polyhedron

// CollapseDegenerates merges neighboring vertices separated by at most
// tol, repeating until a full pass makes no merge. Pinched features left
// behind (vertices with fewer than three distinct neighbors) are removed,
// then the vertex sequence is compacted: tombstones dropped and neighbor
// indices renumbered.
//
// The lower-indexed vertex of a merged pair survives, absorbing the clip
// set of the other and splicing the other's neighbor fan into its own
// cyclic list at the shared edge. tol = 0 merges exact duplicates only.
func (p *Polyhedron) CollapseDegenerates(tol float64) {
	poly := *p
	tol2 := tol * tol

	for changed := true; changed; {
		changed = false
		for i := range poly {
			for poly[i].Comp >= 0 {
				j := closeNeighbor(poly, i, tol2)
				if j < 0 {
					break
				}
				s, r := i, j
				if j < i {
					s, r = j, i
				}
				mergeVertices(poly, s, r)
				changed = true
			}
		}
		if pruneDegenerates(poly) {
			changed = true
		}
	}

	*p = poly
	p.compact()
}

// closeNeighbor returns a live neighbor of i within the squared tolerance,
// or -1.
func closeNeighbor(poly Polyhedron, i int, tol2 float64) int {
	for _, j := range poly[i].Neighbors {
		if j == i || poly[j].Comp < 0 {
			continue
		}
		if poly[i].Position.Sub(poly[j].Position).LenSqr() <= tol2 {
			return j
		}
	}
	return -1
}

// mergeVertices contracts the edge s-r into s. r's neighbor fan, read
// cyclically starting after s, replaces the single slot of s that pointed
// at r; every former neighbor of r is redirected to s. This is the
// standard edge contraction of a rotation system, so face walks through
// the merged vertex stay consistent.
func mergeVertices(poly Polyhedron, s, r int) {
	si := lastIndexOf(poly[s].Neighbors, r)
	ri := lastIndexOf(poly[r].Neighbors, s)
	if si < 0 || ri < 0 {
		return
	}

	deg := len(poly[r].Neighbors)
	splice := make([]int, 0, deg-1)
	for k := 1; k < deg; k++ {
		if n := poly[r].Neighbors[(ri+k)%deg]; n != s {
			splice = append(splice, n)
		}
	}

	ns := poly[s].Neighbors
	out := make([]int, 0, len(ns)-1+len(splice))
	out = append(out, ns[:si]...)
	out = append(out, splice...)
	out = append(out, ns[si+1:]...)
	poly[s].Neighbors = tidyCycle(out)

	for _, n := range splice {
		if ix := lastIndexOf(poly[n].Neighbors, r); ix >= 0 {
			poly[n].Neighbors[ix] = s
		}
		poly[n].Neighbors = tidyCycle(poly[n].Neighbors)
	}

	for id := range poly[r].Clips {
		if poly[s].Clips == nil {
			poly[s].Clips = make(map[int]bool, len(poly[r].Clips))
		}
		poly[s].Clips[id] = true
	}
	poly[r].Comp = -1
}

// pruneDegenerates removes vertices left with fewer than three distinct
// neighbors: a two-neighbor vertex is a point on an edge (its neighbors
// are bridged), fewer is a dangling pinch. Repeats until stable.
func pruneDegenerates(poly Polyhedron) bool {
	changed := false
	for again := true; again; {
		again = false
		for v := range poly {
			if poly[v].Comp < 0 {
				continue
			}
			poly[v].Neighbors = tidyCycle(poly[v].Neighbors)
			distinct := distinctNeighbors(poly[v].Neighbors)
			if len(distinct) >= 3 {
				continue
			}
			switch len(distinct) {
			case 2:
				a, b := distinct[0], distinct[1]
				if ix := lastIndexOf(poly[a].Neighbors, v); ix >= 0 {
					poly[a].Neighbors[ix] = b
					poly[a].Neighbors = tidyCycle(poly[a].Neighbors)
				}
				if ix := lastIndexOf(poly[b].Neighbors, v); ix >= 0 {
					poly[b].Neighbors[ix] = a
					poly[b].Neighbors = tidyCycle(poly[b].Neighbors)
				}
			case 1:
				a := distinct[0]
				if ix := lastIndexOf(poly[a].Neighbors, v); ix >= 0 {
					poly[a].Neighbors = tidyCycle(append(poly[a].Neighbors[:ix], poly[a].Neighbors[ix+1:]...))
				}
			}
			poly[v].Comp = -1
			again, changed = true, true
		}
	}
	return changed
}

// distinctNeighbors returns the unique entries of a neighbor list in
// first-seen order.
func distinctNeighbors(ns []int) []int {
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		dup := false
		for _, m := range out {
			if m == n {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, n)
		}
	}
	return out
}

// compact rebuilds the vertex sequence with live vertices only and
// renumbers all adjacency.
func (p *Polyhedron) compact() {
	poly := *p
	remap := make([]int, len(poly))
	out := make(Polyhedron, 0, poly.liveCount())
	for i := range poly {
		if poly[i].Comp < 0 {
			remap[i] = -1
			continue
		}
		remap[i] = len(out)
		out = append(out, poly[i])
	}
	for i := range out {
		for k, n := range out[i].Neighbors {
			out[i].Neighbors[k] = remap[n]
		}
		out[i].ID = -1
	}
	*p = out
}
