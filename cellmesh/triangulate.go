package cellmesh

// Triangulate derives the current face list: for every alive cell i, for
// every consecutive pair (u,v) in its ring with i < u and i < v, emit
// (i,u,v). Each face of the manifold surfaces exactly once this way,
// since every face has a unique lowest-id vertex among its three corners
// and that vertex's ring visits the other two consecutively.
func (m *Mesh) Triangulate() []Triangle {
	out := make([]Triangle, 0, 2*m.AliveCount())
	for i, alive := range m.alive {
		if !alive {
			continue
		}
		ring := m.links[i]
		n := len(ring)
		for k := 0; k < n; k++ {
			u := ring[k]
			v := ring[(k+1)%n]
			if int32(i) < u && int32(i) < v {
				out = append(out, Triangle{A: m.positions[i], B: m.positions[u], C: m.positions[v]})
			}
		}
	}
	return out
}

// TriangleIndexes derives the same face list as Triangulate but as index
// triples into the live position/normal arrays, for renderers that want
// an index buffer instead of a flat vertex soup.
func (m *Mesh) TriangleIndexes() [][3]int32 {
	out := make([][3]int32, 0, 2*m.AliveCount())
	for i, alive := range m.alive {
		if !alive {
			continue
		}
		ring := m.links[i]
		n := len(ring)
		for k := 0; k < n; k++ {
			u := ring[k]
			v := ring[(k+1)%n]
			if int32(i) < u && int32(i) < v {
				out = append(out, [3]int32{int32(i), u, v})
			}
		}
	}
	return out
}

// VertexAttributes appends a packed per-vertex record
// (position.xyz, normal.xyz, food/splitThreshold) for every cell,
// alive or not, preserving index parity with positions/normals/food so
// a renderer can address vertex i directly without a compaction pass.
func (m *Mesh) VertexAttributes(out []float64, splitThreshold float64) []float64 {
	for i := range m.positions {
		p := m.positions[i]
		n := m.normals[i]
		out = append(out, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z(), m.food[i]/splitThreshold)
	}
	return out
}
