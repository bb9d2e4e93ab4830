package growth

import (
	"context"
	"fmt"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/logx"
)

// SnapshotFunc is invoked every SnapshotEvery iterations with the
// driver's mesh, the seam between the core engine and an out-of-scope
// renderer or STL writer.
type SnapshotFunc func(iteration int, m *cellmesh.Mesh)

// Runner wraps a Driver with the seed-then-grow two-phase loop: the
// first seedIterations calls run with split=false so the seed mesh can
// relax before any division happens, then the remaining iterations run
// with split=true.
type Runner struct {
	Driver *Driver
	Logger logx.Logger

	// SnapshotEvery, if > 0, invokes Snapshot after every iteration i
	// with (i+1) a multiple of SnapshotEvery; the final iteration fires
	// only when it falls on that cadence. If <= 0, Snapshot fires once,
	// after the last iteration.
	SnapshotEvery int
	Snapshot      SnapshotFunc
}

// NewRunner wraps d with a logger (NullLogger if logger is nil).
func NewRunner(d *Driver, logger logx.Logger) *Runner {
	if logger == nil {
		logger = logx.NullLogger{}
	}
	return &Runner{Driver: d, Logger: logger}
}

// Run executes seedIterations iterations with split=false followed by
// (iterations - seedIterations) with split=true, logging one Info line
// per iteration and invoking Snapshot on the configured cadence.
func (r *Runner) Run(ctx context.Context, iterations, seedIterations int) error {
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		split := i >= seedIterations
		if err := r.Driver.Update(ctx, split); err != nil {
			return fmt.Errorf("growth: iteration %d: %w", i, err)
		}

		min, max := r.Driver.Mesh.Bounds()
		extent := max.Sub(min)
		volume := extent.X() * extent.Y() * extent.Z()
		r.Logger.Info("iteration %d: cells=%d bounds_volume=%.3f", i, r.Driver.Mesh.AliveCount(), volume)

		if r.Snapshot != nil && r.SnapshotEvery > 0 && (i+1)%r.SnapshotEvery == 0 {
			r.Snapshot(i, r.Driver.Mesh)
		}
	}

	if r.Snapshot != nil && r.SnapshotEvery <= 0 {
		r.Snapshot(iterations-1, r.Driver.Mesh)
	}
	return nil
}
