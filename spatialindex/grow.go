package spatialindex

// allocate installs a fresh backing array covering [start, start+dims),
// copying over any bags that previously existed in that range. Callers
// must hold growMu.
func (idx *Index) allocate(start, dims Key) {
	n := int(dims.X) * int(dims.Y) * int(dims.Z)
	newCells := make([][]int32, n)

	if idx.cells != nil {
		for x := idx.start.X; x < idx.start.X+idx.dims.X; x++ {
			for y := idx.start.Y; y < idx.start.Y+idx.dims.Y; y++ {
				for z := idx.start.Z; z < idx.start.Z+idx.dims.Z; z++ {
					k := Key{x, y, z}
					if !within(k, start, dims) {
						continue // point moved outside the requested window; drop (grow never shrinks in practice, so this is unreachable on the happy path)
					}
					oldIdx := idx.flatIndexUnsafe(k, idx.start, idx.dims)
					if len(idx.cells[oldIdx]) == 0 {
						continue
					}
					newIdx := idx.flatIndexUnsafe(k, start, dims)
					newCells[newIdx] = idx.cells[oldIdx]
				}
			}
		}
	}

	idx.start = start
	idx.dims = dims
	idx.cells = newCells
}

func within(k, start, dims Key) bool {
	return k.X >= start.X && k.X < start.X+dims.X &&
		k.Y >= start.Y && k.Y < start.Y+dims.Y &&
		k.Z >= start.Z && k.Z < start.Z+dims.Z
}

func (idx *Index) flatIndexUnsafe(k, start, dims Key) int {
	dx := int(k.X - start.X)
	dy := int(k.Y - start.Y)
	dz := int(k.Z - start.Z)
	return (dx*int(dims.Y)+dy)*int(dims.Z) + dz
}

// Ensure widens the backing storage so every key in [min, max] (inclusive)
// is addressable. If the current allocation already covers that range,
// Ensure is a no-op. Otherwise it reallocates with ~25% padding on each
// side of the union of the current and requested bounds, the amortization
// strategy the spec calls for so growth stays rare relative to iterations.
func (idx *Index) Ensure(min, max Key) {
	idx.growMu.Lock()
	defer idx.growMu.Unlock()

	curMax := Key{idx.start.X + idx.dims.X - 1, idx.start.Y + idx.dims.Y - 1, idx.start.Z + idx.dims.Z - 1}
	if min.X >= idx.start.X && min.Y >= idx.start.Y && min.Z >= idx.start.Z &&
		max.X <= curMax.X && max.Y <= curMax.Y && max.Z <= curMax.Z {
		return
	}

	unionMin := Key{minI32(min.X, idx.start.X), minI32(min.Y, idx.start.Y), minI32(min.Z, idx.start.Z)}
	unionMax := Key{maxI32(max.X, curMax.X), maxI32(max.Y, curMax.Y), maxI32(max.Z, curMax.Z)}

	padX := padAmount(unionMax.X - unionMin.X + 1)
	padY := padAmount(unionMax.Y - unionMin.Y + 1)
	padZ := padAmount(unionMax.Z - unionMin.Z + 1)

	newStart := Key{unionMin.X - padX, unionMin.Y - padY, unionMin.Z - padZ}
	newDims := Key{
		unionMax.X - unionMin.X + 1 + 2*padX,
		unionMax.Y - unionMin.Y + 1 + 2*padY,
		unionMax.Z - unionMin.Z + 1 + 2*padZ,
	}

	idx.allocate(newStart, newDims)
	idx.grows++
}

// padAmount returns ~25% of span, at least 1, used to overpad new
// allocations on each side so repeated small growths are rare.
func padAmount(span int32) int32 {
	p := span / 4
	if p < 1 {
		p = 1
	}
	return p
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
