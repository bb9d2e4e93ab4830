package forcestep

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/spatialindex"
	"github.com/arkveil/cellgrow/vecutil"
)

// Compute evaluates the per-cell kernel for cell i and returns its next
// position and normal, reading only stable inputs (m's live arrays and
// idx's current registration) and writing nothing. Callers are
// responsible for placing the result into the double buffer.
//
// Mirrors spec.md's redesigned §4.3 kernel: linked neighbors contribute
// spring/planar/bulge targets plus a pre-cancelling repulsion term, then
// every index neighbor within radius_of_influence contributes the
// opposing repulsion term, so linked cells are never net-repelled by
// their own ring membership.
func Compute(m *cellmesh.Mesh, idx *spatialindex.Index, p cellmesh.Params, i int32) (position, normal mgl64.Vec3) {
	links := m.Links(i)
	n := len(links)
	P := m.Position(i)

	linked := make([]mgl64.Vec3, n)
	for k, j := range links {
		linked[k] = m.Position(j)
	}
	N := vecutil.RingNormal(P, linked)

	var springSum, planarSum, repulsionSum mgl64.Vec3
	var bulgeSum float64
	roi := p.RadiusOfInfluence
	roiSq := roi * roi
	rest := p.LinkRestLength

	for _, L := range linked {
		D := L.Sub(P)
		toward := P.Sub(L)
		if toward.LenSqr() > 0 {
			toward = toward.Normalize()
		}
		springSum = springSum.Add(L.Add(toward.Mul(rest)))
		planarSum = planarSum.Add(L)

		if rest > D.Len() {
			dot := D.Dot(N)
			bulgeSum += math.Sqrt(rest*rest-D.LenSqr()+dot*dot) + dot
		}

		distSq := D.LenSqr()
		if distSq < roiSq && distSq > 0 {
			dir := D.Normalize()
			repulsionSum = repulsionSum.Add(dir.Mul((roiSq - distSq) / roiSq))
		}
	}

	m1 := 1.0 / float64(n)
	springTarget := springSum.Mul(m1)
	planarTarget := planarSum.Mul(m1)
	bulgeDistance := bulgeSum * m1
	// repulsionSum is deliberately left unaveraged: it must cancel, term
	// for term, against the unaveraged per-neighbor contribution the
	// index loop below adds for every linked cell it also sees.
	repulsionVector := repulsionSum

	for _, j := range idx.Nearby(P) {
		if j == i {
			continue
		}
		Lj := m.Position(j)
		D := P.Sub(Lj)
		distSq := D.LenSqr()
		if distSq >= roiSq || distSq == 0 {
			continue
		}
		dir := D.Normalize()
		repulsionVector = repulsionVector.Add(dir.Mul((roiSq - distSq) / roiSq))
	}

	position = P.
		Add(springTarget.Sub(P).Mul(p.SpringFactor)).
		Add(planarTarget.Sub(P).Mul(p.PlanarFactor)).
		Add(N.Mul(bulgeDistance * p.BulgeFactor)).
		Add(repulsionVector.Mul(p.RepulsionFactor))

	normal = N
	return position, normal
}
