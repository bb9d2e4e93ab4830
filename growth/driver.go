package growth

import (
	"context"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/division"
	"github.com/arkveil/cellgrow/forcestep"
	"github.com/arkveil/cellgrow/spatialindex"
	"github.com/arkveil/cellgrow/vecutil"
)

// Driver owns one mesh, its spatial index, the force-kernel parameters
// and RNG, and runs the per-iteration phase sequence described in this
// package's doc comment.
type Driver struct {
	Mesh   *cellmesh.Mesh
	Index  *spatialindex.Index
	Params cellmesh.Params
	RNG    *vecutil.RNG

	// WorkerCount is the stride width for both the force-step and
	// index-rewrite phases.
	WorkerCount int
}

// New builds a Driver over an already-seeded mesh, constructing a
// spatial index sized for p.RadiusOfInfluence and registering every
// alive cell with it.
func New(m *cellmesh.Mesh, p cellmesh.Params, workerCount int, rng *vecutil.RNG) (*Driver, error) {
	idx, err := spatialindex.New(1.2 * p.RadiusOfInfluence)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.CellCount(); i++ {
		if m.Alive(int32(i)) {
			idx.Add(m.Position(int32(i)), int32(i))
		}
	}
	if workerCount < 1 {
		workerCount = 1
	}
	return &Driver{Mesh: m, Index: idx, Params: p, RNG: rng, WorkerCount: workerCount}, nil
}

// Update runs one iteration: extend the index's bounds, compute the
// force step, recenter, rewrite the index, commit, and -- if split is
// true -- accrue food and divide every saturated cell in ascending id
// order.
func (d *Driver) Update(ctx context.Context, split bool) error {
	m := d.Mesh

	extend := 10 * maxF(d.Params.LinkRestLength, d.Params.RadiusOfInfluence)
	min, max := m.Bounds()
	d.Index.Ensure(
		d.Index.KeyForPoint(min.Sub(mgl64.Vec3{extend, extend, extend})),
		d.Index.KeyForPoint(max.Add(mgl64.Vec3{extend, extend, extend})),
	)

	m.ResizeBuffers()

	if err := forcestep.Run(ctx, m, d.Index, d.Params, d.WorkerCount); err != nil {
		return err
	}

	m.Recenter(m.MeanDelta())

	if err := forcestep.UpdateIndex(ctx, m, d.Index, d.WorkerCount); err != nil {
		return err
	}

	m.Commit()

	if !split {
		return nil
	}

	var saturated []int32
	for i := 0; i < m.CellCount(); i++ {
		id := int32(i)
		if !m.Alive(id) {
			continue
		}
		m.AddFood(id, d.RNG.Float64())
		if m.Food(id) > d.Params.SplitThreshold {
			saturated = append(saturated, id)
		}
	}
	// saturated is already in ascending id order: the loop above visits
	// ids 0..n-1 in order and newly appended cells start at food=0, so
	// no cell divides in the same pass it was created.
	for _, id := range saturated {
		if err := division.Divide(m, d.Index, id); err != nil {
			return err
		}
	}
	return nil
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
