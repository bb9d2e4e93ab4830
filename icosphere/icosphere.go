package icosphere

import "github.com/go-gl/mathgl/mgl64"

// Triangle is a single triangular face, vertices in CCW winding as seen
// from outside the sphere.
type Triangle struct {
	A, B, C mgl64.Vec3
}

// icosahedron vertex and face data, golden-ratio construction normalized
// onto the unit sphere (a = 0.8506507174597755, b = 0.5257312591858783).
var (
	icoA = 0.8506507174597755
	icoB = 0.5257312591858783

	icosahedronVertices = []mgl64.Vec3{
		{-icoA, -icoB, 0}, {-icoA, icoB, 0}, {-icoB, 0, -icoA}, {-icoB, 0, icoA},
		{0, -icoA, -icoB}, {0, -icoA, icoB}, {0, icoA, -icoB}, {0, icoA, icoB},
		{icoB, 0, -icoA}, {icoB, 0, icoA}, {icoA, -icoB, 0}, {icoA, icoB, 0},
	}

	icosahedronFaces = [][3]int{
		{0, 3, 1}, {1, 3, 7}, {2, 0, 1}, {2, 1, 6},
		{4, 0, 2}, {4, 5, 0}, {5, 3, 0}, {6, 1, 7},
		{6, 7, 11}, {7, 3, 9}, {8, 2, 6}, {8, 4, 2},
		{8, 6, 11}, {8, 10, 4}, {8, 11, 10}, {9, 3, 5},
		{10, 5, 4}, {10, 9, 5}, {11, 7, 9}, {11, 9, 10},
	}
)

// Icosahedron returns the 20 faces of a regular icosahedron inscribed in
// the unit sphere.
func Icosahedron() []Triangle {
	tris := make([]Triangle, len(icosahedronFaces))
	for i, f := range icosahedronFaces {
		tris[i] = Triangle{
			A: icosahedronVertices[f[0]],
			B: icosahedronVertices[f[1]],
			C: icosahedronVertices[f[2]],
		}
	}
	return tris
}

// Generate recursively subdivides the base icosahedron detail times,
// projecting each new midpoint vertex onto the unit sphere, and returns
// the resulting triangle soup (shared vertices are not yet deduplicated —
// that is cellmesh.NewFromTriangles's job). detail=0 returns the bare
// icosahedron (20 triangles, 12 vertices); each additional level
// quadruples the triangle count.
func Generate(detail int) []Triangle {
	out := make([]Triangle, 0, 20*pow4(detail))
	for _, t := range Icosahedron() {
		subdivide(detail, t.A, t.B, t.C, &out)
	}
	return out
}

func subdivide(detail int, v1, v2, v3 mgl64.Vec3, out *[]Triangle) {
	if detail == 0 {
		*out = append(*out, Triangle{v1, v2, v3})
		return
	}
	v12 := v1.Add(v2).Mul(0.5).Normalize()
	v13 := v1.Add(v3).Mul(0.5).Normalize()
	v23 := v2.Add(v3).Mul(0.5).Normalize()
	subdivide(detail-1, v1, v12, v13, out)
	subdivide(detail-1, v2, v23, v12, out)
	subdivide(detail-1, v3, v13, v23, out)
	subdivide(detail-1, v12, v23, v13, out)
}

func pow4(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 4
	}
	return p
}
