package vecutil

import "github.com/go-gl/mathgl/mgl64"

// TriangleNormal returns the unnormalized normal of triangle (a, b, c),
// i.e. (b-a) x (c-a). Its length is twice the triangle's area, which is
// exactly what ring-normal accumulation wants: larger triangles contribute
// proportionally more to the averaged direction.
func TriangleNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}

// RingNormal estimates the outward normal at p from its cyclically ordered
// CCW ring of neighbor positions: it sums the unnormalized triangle normal
// of (p, ring[i], ring[i+1]) for every consecutive pair and normalizes the
// result. Returns the zero vector if ring has fewer than two neighbors (no
// triangle can be formed), so callers must guard against that case
// themselves when a non-zero normal is required.
func RingNormal(p mgl64.Vec3, ring []mgl64.Vec3) mgl64.Vec3 {
	if len(ring) < 2 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum = sum.Add(TriangleNormal(p, ring[i], ring[j]))
	}
	if sum.LenSqr() == 0 {
		return sum
	}
	return sum.Normalize()
}

// Centroid returns the arithmetic mean of points. Returns the zero vector
// for an empty slice.
func Centroid(points []mgl64.Vec3) mgl64.Vec3 {
	if len(points) == 0 {
		return mgl64.Vec3{}
	}
	var sum mgl64.Vec3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}
