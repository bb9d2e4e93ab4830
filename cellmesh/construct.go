package cellmesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/arkveil/cellgrow/icosphere"
	"github.com/arkveil/cellgrow/vecutil"
)

// Triangle is a flat (position, position, position) face, the seed
// format produced by the icosphere package and by Triangulate.
type Triangle struct {
	A, B, C mgl64.Vec3
}

// NewFromTriangles builds a Mesh from a closed triangle soup: vertices
// are deduplicated by exact position match (mirroring the teacher's
// point -> index map), one cell per unique vertex, then each cell's
// ring is assembled in CCW order by walking the "vertex after" edges
// contributed by its incident triangles -- the half-edge-like walk
// spec.md's redesigned link order calls for, in place of the original
// sort-and-unique (which only needed an unordered neighbor set, not a
// ring).
//
// All cells start alive with food 0 and a normal computed from their
// ring by vecutil.RingNormal.
func NewFromTriangles(triangles []Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}

	indexOf := make(map[mgl64.Vec3]int32)
	var positions []mgl64.Vec3

	indexFor := func(v mgl64.Vec3) int32 {
		if id, ok := indexOf[v]; ok {
			return id
		}
		id := int32(len(positions))
		indexOf[v] = id
		positions = append(positions, v)
		return id
	}

	// nextAfter[i][u] = v means: in some triangle incident to cell i,
	// going CCW around i, neighbor u is immediately followed by
	// neighbor v. Because the input is a closed consistently-wound
	// manifold, each cell's incident triangles chain into exactly one
	// cycle through this map.
	nextAfter := make([]map[int32]int32, 0)
	ensureCellSlot := func(i int32) {
		for int32(len(nextAfter)) <= i {
			nextAfter = append(nextAfter, make(map[int32]int32))
		}
	}

	for _, t := range triangles {
		a := indexFor(t.A)
		b := indexFor(t.B)
		c := indexFor(t.C)

		ensureCellSlot(a)
		ensureCellSlot(b)
		ensureCellSlot(c)

		// rotate (a,b,c) so each vertex takes a turn as the pivot,
		// recording what follows its two incident neighbors.
		nextAfter[a][b] = c
		nextAfter[b][c] = a
		nextAfter[c][a] = b
	}

	n := len(positions)
	links := make([][]int32, n)
	for i := 0; i < n; i++ {
		ring, err := walkRing(nextAfter[i])
		if err != nil {
			return nil, err
		}
		links[i] = ring
	}

	normals := make([]mgl64.Vec3, n)
	for i := range normals {
		normals[i] = vecutil.RingNormal(positions[i], gather(positions, links[i]))
	}

	food := make([]float64, n)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	return &Mesh{
		positions: positions,
		normals:   normals,
		food:      food,
		alive:     alive,
		links:     links,
	}, nil
}

// walkRing follows the next-after chain starting from an arbitrary
// entry until it returns to the start, producing the CCW cyclic ring.
// A ring shorter than 3 or one that never closes indicates the input
// triangles did not form a consistent 2-manifold around this cell.
func walkRing(next map[int32]int32) ([]int32, error) {
	if len(next) < 3 {
		return nil, ErrInvariantViolation
	}

	var start int32
	for k := range next {
		start = k
		break
	}

	ring := make([]int32, 0, len(next))
	cur := start
	for {
		ring = append(ring, cur)
		nxt, ok := next[cur]
		if !ok {
			return nil, ErrInvariantViolation
		}
		cur = nxt
		if cur == start {
			break
		}
		if len(ring) > len(next) {
			return nil, ErrInvariantViolation
		}
	}

	if len(ring) != len(next) {
		return nil, ErrInvariantViolation
	}
	return ring, nil
}

// NewFromIcosphere converts an icosphere triangle soup to this package's
// Triangle type and builds a Mesh from it; the usual seed path.
func NewFromIcosphere(tris []icosphere.Triangle) (*Mesh, error) {
	converted := make([]Triangle, len(tris))
	for i, t := range tris {
		converted[i] = Triangle{A: t.A, B: t.B, C: t.C}
	}
	return NewFromTriangles(converted)
}

func gather(positions []mgl64.Vec3, ids []int32) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(ids))
	for i, id := range ids {
		out[i] = positions[id]
	}
	return out
}
