package cellmesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/icosphere"
)

func TestAppendCell_GrowsAllParallelArraysTogether(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(0))
	require.NoError(t, err)

	before := m.CellCount()
	id := m.AppendCell(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 0}, []int32{0, 1, 2})

	require.Equal(t, int32(before), id)
	require.Equal(t, before+1, m.CellCount())
	require.True(t, m.Alive(id))
	require.Equal(t, 0.0, m.Food(id))
	require.Equal(t, mgl64.Vec3{1, 2, 3}, m.Position(id))
}

func TestInsertLinkAfterAndBefore(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(0))
	require.NoError(t, err)

	m.SetLinks(0, []int32{1, 2, 3})

	require.NoError(t, m.InsertLinkAfter(0, 2, 99))
	require.Equal(t, []int32{1, 2, 99, 3}, m.Links(0))

	require.NoError(t, m.InsertLinkBefore(0, 3, 88))
	require.Equal(t, []int32{1, 2, 99, 88, 3}, m.Links(0))

	require.ErrorIs(t, m.InsertLinkAfter(0, 404, 1), cellmesh.ErrInvariantViolation)
}

func TestReplaceLink(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(0))
	require.NoError(t, err)

	m.SetLinks(0, []int32{1, 2, 3})
	require.NoError(t, m.ReplaceLink(0, 2, 55))
	require.Equal(t, []int32{1, 55, 3}, m.Links(0))

	require.ErrorIs(t, m.ReplaceLink(0, 404, 1), cellmesh.ErrInvariantViolation)
}

func TestResizeCommitRecenter(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(0))
	require.NoError(t, err)

	m.ResizeBuffers()
	for i := 0; i < m.CellCount(); i++ {
		m.SetNew(int32(i), m.Position(int32(i)).Add(mgl64.Vec3{1, 0, 0}), m.Normal(int32(i)))
	}

	delta := m.MeanDelta()
	require.InDelta(t, 1.0, delta.X(), 1e-9)

	m.Recenter(delta)
	require.InDelta(t, 0.0, m.MeanDelta().X(), 1e-9)

	before := m.Position(0)
	m.Commit()
	// recentering undoes the uniform shift applied above, so the
	// committed position should match the pre-iteration one.
	require.InDelta(t, before.X(), m.Position(0).X(), 1e-9)
	require.InDelta(t, before.Y(), m.Position(0).Y(), 1e-9)
	require.InDelta(t, before.Z(), m.Position(0).Z(), 1e-9)
}
