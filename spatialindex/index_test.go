package spatialindex_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/spatialindex"
)

func TestNew_RejectsNonPositiveCellSize(t *testing.T) {
	_, err := spatialindex.New(0)
	require.ErrorIs(t, err, spatialindex.ErrInvalidCellSize)
}

func TestAddNearby_SelfMembership(t *testing.T) {
	idx, err := spatialindex.New(1.0)
	require.NoError(t, err)

	p := mgl64.Vec3{0.1, 0.2, -0.3}
	idx.Add(p, 7)

	bag := idx.Nearby(p)
	require.Contains(t, bag, int32(7))
}

func TestNearby_CoversChebyshevNeighborhood(t *testing.T) {
	idx, err := spatialindex.New(1.0)
	require.NoError(t, err)

	idx.Add(mgl64.Vec3{0, 0, 0}, 1)

	// a point one grid cell away (key differs by 1 on one axis) must
	// still see id 1 via halo insertion.
	bag := idx.Nearby(mgl64.Vec3{1, 0, 0})
	require.Contains(t, bag, int32(1))
}

func TestRemove_ClearsMembership(t *testing.T) {
	idx, err := spatialindex.New(1.0)
	require.NoError(t, err)

	p := mgl64.Vec3{0, 0, 0}
	idx.Add(p, 3)
	require.NoError(t, idx.Remove(p, 3))
	require.NotContains(t, idx.Nearby(p), int32(3))
}

func TestUpdate_SameCellIsNoop(t *testing.T) {
	idx, err := spatialindex.New(1.0)
	require.NoError(t, err)

	p0 := mgl64.Vec3{0.1, 0.1, 0.1}
	p1 := mgl64.Vec3{0.2, 0.1, 0.1}
	idx.Add(p0, 5)

	changed := idx.Update(p0, p1, 5)
	require.False(t, changed)
	require.Contains(t, idx.Nearby(p1), int32(5))
}

func TestUpdate_OneCellStep_SymmetricDifference(t *testing.T) {
	idx, err := spatialindex.New(1.0)
	require.NoError(t, err)

	p0 := mgl64.Vec3{0, 0, 0}
	p1 := mgl64.Vec3{1, 0, 0} // moves exactly one grid cell along X
	idx.Ensure(spatialindex.Key{X: -3, Y: -3, Z: -3}, spatialindex.Key{X: 3, Y: 3, Z: 3})
	idx.Add(p0, 9)

	changed := idx.Update(p0, p1, 9)
	require.True(t, changed)

	require.Contains(t, idx.Nearby(p1), int32(9))
	require.NotContains(t, idx.Nearby(mgl64.Vec3{-1, 0, 0}), int32(9))
}

func TestEnsure_GrowsToCoverRequestedBounds(t *testing.T) {
	idx, err := spatialindex.New(1.0)
	require.NoError(t, err)

	far := mgl64.Vec3{10, 10, 10}
	idx.Add(far, 42)
	require.Contains(t, idx.Nearby(far), int32(42))
	require.GreaterOrEqual(t, idx.Stats().Grows, 1)
}
