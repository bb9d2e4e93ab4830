package spatialindex

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Key is an integer grid-cell coordinate.
type Key struct {
	X, Y, Z int32
}

// Add returns the componentwise sum of two keys.
func (k Key) Add(o Key) Key {
	return Key{k.X + o.X, k.Y + o.Y, k.Z + o.Z}
}

const numStripes = 1024

// Index maps 3D points to small bags of ids via halo-inserted grid cells.
// The zero value is not usable; construct with New.
type Index struct {
	cellSize float64

	// growMu serializes Ensure; the driver calls Ensure single-threaded
	// before dispatching any parallel phase, but we still guard it so a
	// misuse (calling Ensure concurrently) fails safe instead of racing.
	growMu sync.Mutex
	start  Key // inclusive lower bound, current allocation
	dims   Key // extents; valid keys are start.{X,Y,Z} .. start+dims-1
	cells  [][]int32

	stripes [numStripes]sync.Mutex

	grows int // number of times Ensure reallocated, surfaced via Stats
}

// New returns an empty Index whose grid cell side is cellSize. Per the
// growth engine's convention, cellSize is typically ~1.2x the force step's
// radius_of_influence.
func New(cellSize float64) (*Index, error) {
	if cellSize <= 0 {
		return nil, ErrInvalidCellSize
	}
	idx := &Index{cellSize: cellSize}
	// start with a small symmetric allocation; later Ensure calls (made
	// by Add itself, and by the driver once per iteration) widen it.
	idx.allocate(Key{-1, -1, -1}, Key{3, 3, 3})
	return idx, nil
}

// Stats reports observability counters: the number of grid cells in the
// backing array, the current largest bag size, and how many times the
// backing array has been reallocated by Ensure.
type Stats struct {
	Buckets   int
	MaxBagLen int
	Grows     int
}

// Stats computes current grid statistics. O(buckets).
func (idx *Index) Stats() Stats {
	idx.growMu.Lock()
	defer idx.growMu.Unlock()
	s := Stats{Buckets: len(idx.cells), Grows: idx.grows}
	for _, b := range idx.cells {
		if len(b) > s.MaxBagLen {
			s.MaxBagLen = len(b)
		}
	}
	return s
}

// KeyForPoint returns the grid cell key containing p: round(p/cellSize)
// componentwise, ties breaking away from zero (the math.Round rule,
// matching std::roundf in the original engine closely enough that no
// test depends on the half-way tie rule).
func (idx *Index) KeyForPoint(p mgl64.Vec3) Key {
	return Key{
		X: roundToInt32(p.X() / idx.cellSize),
		Y: roundToInt32(p.Y() / idx.cellSize),
		Z: roundToInt32(p.Z() / idx.cellSize),
	}
}

func roundToInt32(v float64) int32 {
	if v >= 0 {
		return int32(v + 0.5)
	}
	return int32(v - 0.5)
}
