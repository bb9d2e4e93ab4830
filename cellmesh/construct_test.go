package cellmesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/icosphere"
)

func TestNewFromTriangles_RejectsEmpty(t *testing.T) {
	_, err := cellmesh.NewFromTriangles(nil)
	require.ErrorIs(t, err, cellmesh.ErrEmptyMesh)
}

func TestNewFromIcosphere_DetailOne_CellAndFaceCounts(t *testing.T) {
	tris := icosphere.Generate(1)
	m, err := cellmesh.NewFromIcosphere(tris)
	require.NoError(t, err)

	require.Equal(t, 42, m.CellCount())
	require.Equal(t, 42, m.AliveCount())
	require.Len(t, m.Triangulate(), 80)

	degree5, degree6 := 0, 0
	for i := 0; i < m.CellCount(); i++ {
		switch len(m.Links(int32(i))) {
		case 5:
			degree5++
		case 6:
			degree6++
		default:
			t.Fatalf("cell %d has unexpected degree %d", i, len(m.Links(int32(i))))
		}
	}
	require.Equal(t, 12, degree5)
	require.Equal(t, 30, degree6)
}

func TestNewFromIcosphere_LinksAreUniqueAndSelfFree(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(1))
	require.NoError(t, err)

	for i := 0; i < m.CellCount(); i++ {
		seen := make(map[int32]bool)
		for _, j := range m.Links(int32(i)) {
			require.NotEqual(t, int32(i), j, "cell %d links to itself", i)
			require.False(t, seen[j], "cell %d has duplicate link %d", i, j)
			seen[j] = true
		}
	}
}

func TestNewFromIcosphere_ManifoldReciprocity(t *testing.T) {
	// for every consecutive pair (u,v) in cell i's ring, i must appear in
	// both links[u] and links[v].
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(1))
	require.NoError(t, err)

	for i := 0; i < m.CellCount(); i++ {
		ring := m.Links(int32(i))
		for _, j := range ring {
			require.Contains(t, m.Links(j), int32(i))
		}
	}
}

func TestTriangulate_FaceCoverageInvariant(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(2))
	require.NoError(t, err)

	want := 2*m.AliveCount() - 4
	require.Len(t, m.Triangulate(), want)
}

func TestBounds_CoversUnitIcosahedron(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(0))
	require.NoError(t, err)

	min, max := m.Bounds()
	require.NotEqual(t, min, max) // a real icosahedron has extent in every axis
	require.True(t, min.X() < 0 && max.X() > 0)
}

func TestClone_IsIndependentDeepCopy(t *testing.T) {
	m, err := cellmesh.NewFromIcosphere(icosphere.Generate(0))
	require.NoError(t, err)

	clone := m.Clone()
	clone.SetPosition(0, clone.Position(0).Add(clone.Position(0)))
	require.NotEqual(t, m.Position(0), clone.Position(0))

	clone.SetLinks(0, append([]int32{}, clone.Links(0)...)[:2])
	require.NotEqual(t, len(m.Links(0)), len(clone.Links(0)))
}
