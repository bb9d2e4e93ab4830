package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// AppendCell adds a new cell with the given position, normal and links,
// alive and with food 0, returning its id. Used by the division operator
// to create the child of a split; the only other place cell count grows.
func (m *Mesh) AppendCell(position, normal mgl64.Vec3, links []int32) int32 {
	id := int32(len(m.positions))
	m.positions = append(m.positions, position)
	m.normals = append(m.normals, normal)
	m.food = append(m.food, 0)
	m.alive = append(m.alive, true)
	m.links = append(m.links, links)
	return id
}

// SetPosition overwrites cell i's live position directly, used by
// division for the post-split repositioning step (outside the normal
// double-buffer commit cycle, since division runs between iterations).
func (m *Mesh) SetPosition(i int32, p mgl64.Vec3) {
	m.positions[i] = p
}

// SetNormal overwrites cell i's live normal directly.
func (m *Mesh) SetNormal(i int32, n mgl64.Vec3) {
	m.normals[i] = n
}

// SetLinks replaces cell i's ring wholesale.
func (m *Mesh) SetLinks(i int32, ring []int32) {
	m.links[i] = ring
}

// InsertLinkAfter inserts newID into i's ring immediately after the
// first occurrence of after. Returns ErrInvariantViolation if after is
// not present.
func (m *Mesh) InsertLinkAfter(i, after, newID int32) error {
	ring := m.links[i]
	pos := indexOfLink(ring, after)
	if pos < 0 {
		return ErrInvariantViolation
	}
	m.links[i] = insertAt(ring, pos+1, newID)
	return nil
}

// InsertLinkBefore inserts newID into i's ring immediately before the
// first occurrence of before. Returns ErrInvariantViolation if before is
// not present.
func (m *Mesh) InsertLinkBefore(i, before, newID int32) error {
	ring := m.links[i]
	pos := indexOfLink(ring, before)
	if pos < 0 {
		return ErrInvariantViolation
	}
	m.links[i] = insertAt(ring, pos, newID)
	return nil
}

// ReplaceLink rewrites the first occurrence of oldID in i's ring to
// newID, preserving position. Returns ErrInvariantViolation if oldID is
// not present.
func (m *Mesh) ReplaceLink(i, oldID, newID int32) error {
	ring := m.links[i]
	pos := indexOfLink(ring, oldID)
	if pos < 0 {
		return ErrInvariantViolation
	}
	ring[pos] = newID
	return nil
}

func indexOfLink(ring []int32, id int32) int {
	for i, v := range ring {
		if v == id {
			return i
		}
	}
	return -1
}

func insertAt(ring []int32, pos int, id int32) []int32 {
	out := make([]int32, 0, len(ring)+1)
	out = append(out, ring[:pos]...)
	out = append(out, id)
	out = append(out, ring[pos:]...)
	return out
}

// Clone returns a deep copy of the mesh, including the live arrays but
// not the scratch double buffer (callers resize that fresh on first
// use). Grounded on the teacher's core.Graph.Clone deep-copy idiom,
// generalized from an adjacency map to parallel slices.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		positions: append([]mgl64.Vec3(nil), m.positions...),
		normals:   append([]mgl64.Vec3(nil), m.normals...),
		food:      append([]float64(nil), m.food...),
		alive:     append([]bool(nil), m.alive...),
		links:     make([][]int32, len(m.links)),
	}
	for i, ring := range m.links {
		out.links[i] = append([]int32(nil), ring...)
	}
	return out
}
