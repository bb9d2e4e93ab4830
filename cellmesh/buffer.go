package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// ResizeBuffers grows or shrinks the write-target double buffer to match
// the current cell count, called by the driver at the top of every
// iteration before dispatching force-step workers. Existing contents are
// discarded; every worker writes its own slots before any is read.
func (m *Mesh) ResizeBuffers() {
	n := len(m.positions)
	if cap(m.newPositions) < n {
		m.newPositions = make([]mgl64.Vec3, n)
		m.newNormals = make([]mgl64.Vec3, n)
		return
	}
	m.newPositions = m.newPositions[:n]
	m.newNormals = m.newNormals[:n]
}

// SetNew writes worker output for cell i into the double buffer. Safe to
// call concurrently from distinct workers since the stride partition
// guarantees each i is written by exactly one goroutine per iteration.
func (m *Mesh) SetNew(i int32, position, normal mgl64.Vec3) {
	m.newPositions[i] = position
	m.newNormals[i] = normal
}

// NewPosition returns the pending (uncommitted) position computed for
// cell i by the current iteration's force step.
func (m *Mesh) NewPosition(i int32) mgl64.Vec3 {
	return m.newPositions[i]
}

// Recenter subtracts delta from every pending position, used by the
// driver to keep the mesh centered near the origin after the force step
// and before commit.
func (m *Mesh) Recenter(delta mgl64.Vec3) {
	for i := range m.newPositions {
		if !m.alive[i] {
			continue
		}
		m.newPositions[i] = m.newPositions[i].Sub(delta)
	}
}

// MeanDelta returns the mean of (newPosition - position) over alive
// cells, the translation Recenter is expected to cancel.
func (m *Mesh) MeanDelta() mgl64.Vec3 {
	var sum mgl64.Vec3
	n := 0
	for i, alive := range m.alive {
		if !alive {
			continue
		}
		sum = sum.Add(m.newPositions[i].Sub(m.positions[i]))
		n++
	}
	if n == 0 {
		return mgl64.Vec3{}
	}
	return sum.Mul(1.0 / float64(n))
}

// Commit swaps the double buffer into the live arrays, ending an
// iteration's force-step phase. Must run after every index-rewrite
// worker has joined.
func (m *Mesh) Commit() {
	m.positions, m.newPositions = m.newPositions, m.positions
	m.normals, m.newNormals = m.newNormals, m.normals
}
