package division

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/spatialindex"
	"github.com/arkveil/cellgrow/vecutil"
)

// Divide splits parent into a parent/child pair, rewriting the parent's
// ring, the new child's ring, and every neighbor ring the split
// touches, then repairs the spatial index registration for both cells
// and resets the parent's food accumulator. Runs single-threaded; the
// driver never calls Divide for two cells concurrently.
func Divide(m *cellmesh.Mesh, idx *spatialindex.Index, parent int32) error {
	ring := append([]int32(nil), m.Links(parent)...)
	n := len(ring)
	if n < 3 {
		return ErrNonManifoldRing
	}
	half := n / 2

	i0 := argminOppositeDistance(m, ring, half)
	i1 := i0 + half

	oldParentPos := m.Position(parent)
	child := m.AppendCell(oldParentPos, m.Normal(parent), nil)

	parentArc := arcIndices(ring, i0, i1)
	childArc := arcIndices(ring, i1, i0+n)

	parentRing := append(append([]int32(nil), parentArc...), child)
	childRing := append(append([]int32(nil), childArc...), parent)

	m.SetLinks(parent, parentRing)
	m.SetLinks(child, childRing)

	hingeLo := ring[i0%n]
	hingeHi := ring[i1%n]

	if err := m.InsertLinkAfter(hingeLo, parent, child); err != nil {
		return err
	}
	if err := m.InsertLinkBefore(hingeHi, parent, child); err != nil {
		return err
	}

	for k := i1 + 1; k < i0+n; k++ {
		neighbor := ring[k%n]
		if err := m.ReplaceLink(neighbor, parent, child); err != nil {
			return err
		}
	}

	newParentPos := vecutil.Centroid(selfAndRing(oldParentPos, gatherPositions(m, parentRing)))
	newChildPos := vecutil.Centroid(selfAndRing(oldParentPos, gatherPositions(m, childRing)))

	m.SetPosition(parent, newParentPos)
	m.SetPosition(child, newChildPos)

	m.SetNormal(parent, vecutil.RingNormal(newParentPos, gatherPositions(m, parentRing)))
	m.SetNormal(child, vecutil.RingNormal(newChildPos, gatherPositions(m, childRing)))

	idx.Update(oldParentPos, newParentPos, parent)
	idx.Add(newChildPos, child)

	m.ResetFood(parent)
	return nil
}

// argminOppositeDistance returns i0 = argmin_i |ring[i] - ring[(i+half)%n]|,
// tie-breaking on the lowest index by scanning in increasing order and
// only replacing the best on a strict improvement.
func argminOppositeDistance(m *cellmesh.Mesh, ring []int32, half int) int {
	n := len(ring)
	best := 0
	bestDist := oppositeDistance(m, ring, 0, half)
	for i := 1; i < n; i++ {
		d := oppositeDistance(m, ring, i, half)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func oppositeDistance(m *cellmesh.Mesh, ring []int32, i, half int) float64 {
	n := len(ring)
	a := m.Position(ring[i])
	b := m.Position(ring[(i+half)%n])
	return a.Sub(b).Len()
}

// arcIndices returns ring[from%n], ring[from+1%n], ..., ring[to%n]
// inclusive, walking forward from from to to (to >= from).
func arcIndices(ring []int32, from, to int) []int32 {
	n := len(ring)
	out := make([]int32, 0, to-from+1)
	for k := from; k <= to; k++ {
		out = append(out, ring[k%n])
	}
	return out
}

func gatherPositions(m *cellmesh.Mesh, ids []int32) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(ids))
	for i, id := range ids {
		out[i] = m.Position(id)
	}
	return out
}

func selfAndRing(self mgl64.Vec3, ring []mgl64.Vec3) []mgl64.Vec3 {
	return append([]mgl64.Vec3{self}, ring...)
}
