package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// CellCount returns the total number of cells, alive or not.
func (m *Mesh) CellCount() int {
	return len(m.positions)
}

// AliveCount returns the number of cells with alive=true.
func (m *Mesh) AliveCount() int {
	n := 0
	for _, a := range m.alive {
		if a {
			n++
		}
	}
	return n
}

// Position returns cell i's current position.
func (m *Mesh) Position(i int32) mgl64.Vec3 {
	return m.positions[i]
}

// Normal returns cell i's current normal.
func (m *Mesh) Normal(i int32) mgl64.Vec3 {
	return m.normals[i]
}

// Food returns cell i's current food level.
func (m *Mesh) Food(i int32) float64 {
	return m.food[i]
}

// Alive reports whether cell i is alive.
func (m *Mesh) Alive(i int32) bool {
	return m.alive[i]
}

// Links returns cell i's CCW ring of neighbor ids. The returned slice is
// shared with the mesh's internal state; callers must not mutate it.
func (m *Mesh) Links(i int32) []int32 {
	return m.links[i]
}

// Positions returns the live position slice. Shared with internal state;
// callers must not mutate it outside the driver's own phases.
func (m *Mesh) Positions() []mgl64.Vec3 {
	return m.positions
}

// Normals returns the live normal slice. Shared with internal state.
func (m *Mesh) Normals() []mgl64.Vec3 {
	return m.normals
}

// AddFood increments cell i's food accumulator by delta.
func (m *Mesh) AddFood(i int32, delta float64) {
	m.food[i] += delta
}

// ResetFood zeroes cell i's food accumulator, used after division.
func (m *Mesh) ResetFood(i int32) {
	m.food[i] = 0
}

// Bounds returns the axis-aligned bounding box over alive cells. If no
// cell is alive, both corners are the zero vector.
func (m *Mesh) Bounds() (min, max mgl64.Vec3) {
	first := true
	for i, alive := range m.alive {
		if !alive {
			continue
		}
		p := m.positions[i]
		if first {
			min, max = p, p
			first = false
			continue
		}
		min = mgl64.Vec3{minF(min.X(), p.X()), minF(min.Y(), p.Y()), minF(min.Z(), p.Z())}
		max = mgl64.Vec3{maxF(max.X(), p.X()), maxF(max.Y(), p.Y()), maxF(max.Z(), p.Z())}
	}
	return min, max
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
