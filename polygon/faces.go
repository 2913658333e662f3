package polygon

// ExtractFaces returns the boundary loops of the polygon as ordered vertex
// index lists, walking next pointers from each unvisited live vertex, so
// every separate cycle of the neighbor graph yields its own loop. Clip does
// not split a cycle: when a cut separates a non-convex polygon into pieces,
// they stay in one loop, joined by coincident opposite edges along the
// cutting plane. Vertex ID fields are relabeled with each vertex's position
// in the extraction order.
func (p Polygon) ExtractFaces() [][]int {
	var faces [][]int
	visited := make([]bool, len(p))
	ord := 0
	for i := range p {
		if p[i].Comp < 0 || visited[i] {
			continue
		}
		var loop []int
		for j := i; !visited[j]; j = p[j].Neighbors[1] {
			visited[j] = true
			p[j].ID = ord
			ord++
			loop = append(loop, j)
		}
		faces = append(faces, loop)
	}
	return faces
}

// CommonFaceClips returns, for each face, the intersection of the clip
// sets of all its vertices: the IDs of the planes responsible for the
// whole face. A face containing any original (unclipped) vertex maps to
// the empty set.
func CommonFaceClips(p Polygon, faces [][]int) []map[int]bool {
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
