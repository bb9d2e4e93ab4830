package spatialindex

import "github.com/go-gl/mathgl/mgl64"

// halo returns the 27 keys in the Chebyshev-1 neighborhood of k (including
// k itself), in a fixed deterministic order.
func halo(k Key) [27]Key {
	var out [27]Key
	i := 0
	for dx := int32(-1); dx <= 1; dx++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dz := int32(-1); dz <= 1; dz++ {
				out[i] = Key{k.X + dx, k.Y + dy, k.Z + dz}
				i++
			}
		}
	}
	return out
}

// stripe picks one of numStripes mutexes for k, using floor-mod so
// negative coordinate sums (common once the mesh recenters around the
// origin) still map into [0, numStripes).
func stripe(k Key) int {
	s := int64(k.X) + int64(k.Y) + int64(k.Z)
	m := s % numStripes
	if m < 0 {
		m += numStripes
	}
	return int(m)
}

// bagAdd inserts id into the bag at key k, assuming k is already in
// bounds (callers ensure this via Ensure before the halo loop).
func (idx *Index) bagAdd(k Key, id int32) {
	s := stripe(k)
	idx.stripes[s].Lock()
	defer idx.stripes[s].Unlock()
	flat := idx.flatIndexUnsafe(k, idx.start, idx.dims)
	idx.cells[flat] = append(idx.cells[flat], id)
}

// bagRemove removes the (single) occurrence of id from the bag at key k
// via swap-with-last + pop.
func (idx *Index) bagRemove(k Key, id int32) error {
	s := stripe(k)
	idx.stripes[s].Lock()
	defer idx.stripes[s].Unlock()
	flat := idx.flatIndexUnsafe(k, idx.start, idx.dims)
	bag := idx.cells[flat]
	for i, v := range bag {
		if v == id {
			last := len(bag) - 1
			bag[i] = bag[last]
			idx.cells[flat] = bag[:last]
			return nil
		}
	}
	return ErrIDNotFound
}

// Add registers id at point p, inserting it into all 27 grid cells
// surrounding KeyForPoint(p). Lazily grows the backing array if p's
// neighborhood falls outside current bounds; callers in the
// single-threaded init/division paths rely on this, concurrent callers
// must have already Ensure'd bounds via the driver.
func (idx *Index) Add(p mgl64.Vec3, id int32) {
	k := idx.KeyForPoint(p)
	idx.Ensure(Key{k.X - 1, k.Y - 1, k.Z - 1}, Key{k.X + 1, k.Y + 1, k.Z + 1})
	for _, hk := range halo(k) {
		idx.bagAdd(hk, id)
	}
}

// Remove unregisters id from point p's 27-cell neighborhood.
func (idx *Index) Remove(p mgl64.Vec3, id int32) error {
	k := idx.KeyForPoint(p)
	for _, hk := range halo(k) {
		if err := idx.bagRemove(hk, id); err != nil {
			return err
		}
	}
	return nil
}

// Update moves id's registration from p0 to p1. If both points key to the
// same grid cell, Update is a no-op and reports unchanged=false.
// Otherwise it computes the symmetric difference of the two 27-cell
// halos and applies only that difference, per the spec's halo-insertion
// design. Safe to call concurrently for distinct ids (each id has at
// most one in-flight Update, guaranteed by the driver's by-id work
// partition); bounds must already cover k1's halo (the driver Ensures
// this once per iteration before dispatching workers).
func (idx *Index) Update(p0, p1 mgl64.Vec3, id int32) (changed bool) {
	k0 := idx.KeyForPoint(p0)
	k1 := idx.KeyForPoint(p1)
	if k0 == k1 {
		return false
	}

	h0 := halo(k0)
	h1 := halo(k1)

	for _, a := range h0 {
		if !containsKey(h1, a) {
			idx.bagRemove(a, id)
		}
	}
	for _, b := range h1 {
		if !containsKey(h0, b) {
			idx.bagAdd(b, id)
		}
	}
	return true
}

func containsKey(haystack [27]Key, k Key) bool {
	for _, h := range haystack {
		if h == k {
			return true
		}
	}
	return false
}

// Nearby returns the bag registered at p's own grid cell. Thanks to
// halo-insertion this already contains every id within radius_of_influence
// of p (plus some false positives up to Chebyshev distance 1), so a single
// lookup replaces a 27-cell scan.
func (idx *Index) Nearby(p mgl64.Vec3) []int32 {
	k := idx.KeyForPoint(p)
	if !within(k, idx.start, idx.dims) {
		return nil
	}
	flat := idx.flatIndexUnsafe(k, idx.start, idx.dims)
	return idx.cells[flat]
}
