package vecutil_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/vecutil"
)

func TestTriangleNormal_RightAngle(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{1, 0, 0}
	c := mgl64.Vec3{0, 1, 0}
	n := vecutil.TriangleNormal(a, b, c)
	require.InDelta(t, 0, n.X(), 1e-9)
	require.InDelta(t, 0, n.Y(), 1e-9)
	require.InDelta(t, 1, n.Z(), 1e-9)
}

func TestRingNormal_Square(t *testing.T) {
	p := mgl64.Vec3{0, 0, 0}
	ring := []mgl64.Vec3{
		{1, 0, -1},
		{1, 0, 1},
		{-1, 0, 1},
		{-1, 0, -1},
	}
	n := vecutil.RingNormal(p, ring)
	require.InDelta(t, 1, n.LenSqr(), 1e-9)
	require.Less(t, n.Y(), 0.0)
}

func TestRingNormal_DegenerateRing(t *testing.T) {
	require.Equal(t, mgl64.Vec3{}, vecutil.RingNormal(mgl64.Vec3{}, nil))
	require.Equal(t, mgl64.Vec3{}, vecutil.RingNormal(mgl64.Vec3{}, []mgl64.Vec3{{1, 0, 0}}))
}

func TestCentroid(t *testing.T) {
	pts := []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {1, 2, 0}}
	c := vecutil.Centroid(pts)
	require.InDelta(t, 1, c.X(), 1e-9)
	require.InDelta(t, 2.0/3.0, c.Y(), 1e-9)
}

func TestRNG_Deterministic(t *testing.T) {
	a := vecutil.NewRNG(42)
	b := vecutil.NewRNG(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeedForCell_Distinct(t *testing.T) {
	require.NotEqual(t, vecutil.SeedForCell(1, 0), vecutil.SeedForCell(1, 1))
}
