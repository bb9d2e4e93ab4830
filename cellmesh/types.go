package cellmesh

import "github.com/go-gl/mathgl/mgl64"

// Params holds the per-cell force-kernel coefficients and the division
// threshold. All fields are read-only once a Mesh is constructed; the
// growth driver owns the Params value and passes it down to forcestep
// on every call rather than letting Mesh cache a copy that could drift
// from config.Params.
type Params struct {
	SplitThreshold    float64
	LinkRestLength    float64
	RadiusOfInfluence float64
	RepulsionFactor   float64
	SpringFactor      float64
	PlanarFactor      float64
	BulgeFactor       float64
}

// Validate reports ErrInvalidParams if any coefficient is out of the
// range the force kernel assumes (negative factors, non-positive
// lengths or threshold).
func (p Params) Validate() error {
	if p.LinkRestLength <= 0 || p.RadiusOfInfluence <= 0 || p.SplitThreshold <= 0 {
		return ErrInvalidParams
	}
	if p.RepulsionFactor < 0 || p.SpringFactor < 0 || p.PlanarFactor < 0 || p.BulgeFactor < 0 {
		return ErrInvalidParams
	}
	return nil
}

// Mesh is the cell store: parallel arrays indexed by cell id, plus the
// double buffer the force step writes into before commit.
//
// links[i] holds i's neighbor ids in cyclic CCW order around i's normal,
// the "ring" the spec's per-cell kernel and the division operator both
// walk. A ring of length < 3 is a corrupt cell and every operation here
// that discovers one returns ErrInvariantViolation instead of proceeding.
type Mesh struct {
	positions []mgl64.Vec3
	normals   []mgl64.Vec3
	food      []float64
	alive     []bool
	links     [][]int32

	// newPositions and newNormals are the force step's write targets.
	// They are resized to len(positions) at the start of every
	// iteration and swapped into positions/normals on commit, so no
	// worker ever reads a slot another worker is writing.
	newPositions []mgl64.Vec3
	newNormals   []mgl64.Vec3
}
