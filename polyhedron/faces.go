package polyhedron

// ExtractFaces recovers the face loops of the polyhedron as ordered vertex
// index lists. Each face is traced from an unvisited directed edge by the
// package's orientation rule: arriving at a vertex, the walk continues to
// the neighbor immediately after the arrival vertex in the cyclic list.
// Faces come out counter-clockwise viewed from outside. Vertex ID fields
// are relabeled with consecutive live ordinals as a side effect.
func (p Polyhedron) ExtractFaces() [][]int {
	visited := make([][]bool, len(p))
	limit := 0
	ord := 0
	for i := range p {
		if p[i].Comp < 0 {
			continue
		}
		visited[i] = make([]bool, len(p[i].Neighbors))
		limit += len(p[i].Neighbors)
		p[i].ID = ord
		ord++
	}

	var faces [][]int
	for i := range p {
		if p[i].Comp < 0 {
			continue
		}
		for k := range p[i].Neighbors {
			if visited[i][k] {
				continue
			}
			face := p.traceFace(i, p[i].Neighbors[k], visited, limit)
			if face != nil {
				faces = append(faces, face)
			}
		}
	}
	return faces
}

// traceFace walks the face containing the directed edge start->next,
// marking every directed edge it consumes. A walk that fails to close
// within the directed-edge budget indicates corrupt adjacency and yields
// nil.
func (p Polyhedron) traceFace(start, next int, visited [][]bool, limit int) []int {
	var face []int
	u, v := start, next
	for steps := 0; ; steps++ {
		if steps > limit {
			return nil
		}
		face = append(face, u)
		for s, n := range p[u].Neighbors {
			if n == v {
				visited[u][s] = true
				break
			}
		}
		w := neighborAfter(p[v].Neighbors, u)
		if w < 0 {
			return nil
		}
		u, v = v, w
		if u == start && v == next {
			return face
		}
	}
}

// CommonFaceClips returns, for each face, the intersection of the clip
// sets of all its vertices: the IDs of the planes responsible for the
// whole face. A freshly cut cap face maps to exactly its generating
// plane's ID; a face containing any original (unclipped) vertex maps to
// the empty set.
func CommonFaceClips(p Polyhedron, faces [][]int) []map[int]bool {
	out := make([]map[int]bool, len(faces))
	for f, face := range faces {
		common := make(map[int]bool)
		if len(face) > 0 {
			for id := range p[face[0]].Clips {
				common[id] = true
			}
			for _, v := range face[1:] {
				for id := range common {
					if !p[v].Clips[id] {
						delete(common, id)
					}
				}
			}
		}
		out[f] = common
	}
	return out
}
