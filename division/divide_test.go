package division_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/division"
	"github.com/arkveil/cellgrow/icosphere"
	"github.com/arkveil/cellgrow/spatialindex"
)

// pick a degree-6 cell from a detail-1 icosphere (30 of the 42 cells are
// degree 6, per S1).
func degree6Cell(t *testing.T, m *cellmesh.Mesh) int32 {
	t.Helper()
	for i := 0; i < m.CellCount(); i++ {
		if len(m.Links(int32(i))) == 6 {
			return int32(i)
		}
	}
	t.Fatal("no degree-6 cell found")
	return -1
}

func TestDivide_Degree6Cell_ParentAndChildEachGetFiveLinks(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(1))
	require.NoError(t, err)
	idx, err := spatialindex.New(1.2)
	require.NoError(t, err)

	parent := degree6Cell(t, m)
	parentNeighborsBefore := append([]int32(nil), m.Links(parent)...)
	childrenCountBefore := m.CellCount()

	require.NoError(t, division.Divide(m, idx, parent))

	require.Equal(t, childrenCountBefore+1, m.CellCount())
	child := int32(childrenCountBefore)

	// for a degree-6 parent the cleavage arc [i0..i1] spans half+1 = 4
	// original neighbors (both hinges included), plus the new direct
	// parent<->child link: 5 links each.
	require.Len(t, m.Links(parent), 5)
	require.Len(t, m.Links(child), 5)
	require.Contains(t, m.Links(parent), child)
	require.Contains(t, m.Links(child), parent)

	// the two hinge neighbors must now link to both parent and child.
	hingeCount := 0
	for _, nb := range parentNeighborsBefore {
		links := m.Links(nb)
		hasParent := false
		hasChild := false
		for _, l := range links {
			if l == parent {
				hasParent = true
			}
			if l == child {
				hasChild = true
			}
		}
		if hasParent && hasChild {
			hingeCount++
		}
	}
	require.Equal(t, 2, hingeCount)

	require.Equal(t, 0.0, m.Food(parent))
}

func TestDivide_RejectsLowDegreeCell(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(1))
	require.NoError(t, err)
	idx, err := spatialindex.New(1.2)
	require.NoError(t, err)

	parent := int32(0)
	m.SetLinks(parent, []int32{1, 2})

	err = division.Divide(m, idx, parent)
	require.ErrorIs(t, err, division.ErrNonManifoldRing)
}

func TestDivide_ManifoldReciprocityPreserved(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(1))
	require.NoError(t, err)
	idx, err := spatialindex.New(1.2)
	require.NoError(t, err)

	parent := degree6Cell(t, m)
	require.NoError(t, division.Divide(m, idx, parent))

	for i := 0; i < m.CellCount(); i++ {
		for _, j := range m.Links(int32(i)) {
			require.Contains(t, m.Links(j), int32(i), "cell %d ring not reciprocated by cell %d", i, j)
		}
	}
}
