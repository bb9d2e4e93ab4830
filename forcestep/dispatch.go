package forcestep

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/spatialindex"
)

// Run computes the per-cell kernel for every alive cell and writes the
// results into the mesh's double buffer, split across workerCount
// goroutines by stride. Safe by construction: each goroutine's stride
// set is disjoint from every other's, so no two goroutines ever write
// the same buffer slot, and all of them only read from the mesh's live
// (pre-iteration) arrays and the index's current registration.
func Run(ctx context.Context, m *cellmesh.Mesh, idx *spatialindex.Index, p cellmesh.Params, workerCount int) error {
	n := m.CellCount()
	if workerCount < 1 {
		workerCount = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for w := 0; w < workerCount; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < n; i += workerCount {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !m.Alive(int32(i)) {
					continue
				}
				if len(m.Links(int32(i))) == 0 {
					return fmt.Errorf("forcestep: cell %d has no ring: %w", i, cellmesh.ErrInvariantViolation)
				}
				position, normal := Compute(m, idx, p, int32(i))
				m.SetNew(int32(i), position, normal)
			}
			return nil
		})
	}
	return g.Wait()
}

// UpdateIndex moves every alive cell's registration in idx from its live
// position to its pending (double-buffered) position, the second
// parallel phase of an iteration. idx's own striped locks make this safe
// to call with multiple workers; workerCount follows the same stride
// partition as Run for the reason given in this package's doc comment.
func UpdateIndex(ctx context.Context, m *cellmesh.Mesh, idx *spatialindex.Index, workerCount int) error {
	n := m.CellCount()
	if workerCount < 1 {
		workerCount = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for w := 0; w < workerCount; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < n; i += workerCount {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !m.Alive(int32(i)) {
					continue
				}
				idx.Update(m.Position(int32(i)), m.NewPosition(int32(i)), int32(i))
			}
			return nil
		})
	}
	return g.Wait()
}
