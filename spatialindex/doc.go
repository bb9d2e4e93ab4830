// Package spatialindex implements the 3D integer-grid spatial hash used to
// make short-range repulsion tractable in the growth engine's force step.
//
// Keys are point positions divided by a fixed cell size and rounded to the
// nearest integer triple. Every id is registered under "halo insertion":
// Add/Remove touch all 27 grid cells in the Chebyshev-1 neighborhood of a
// point's key, so a single Nearby(p) lookup at p's own key already returns
// every id within one cell of p — trading 27x bag memory for an O(1)
// effective query in the hot force loop.
//
// The backing store is a dense, reallocatable 3D array (Ensure grows it
// with padding, the same shape as the teacher repo's gridgraph package's
// dense 2D CellValues array, generalized to three dimensions and to
// dynamic growth instead of a fixed size). A striped set of mutexes
// guards per-cell bag mutation during Update, which is the only operation
// invoked concurrently by multiple goroutines.
package spatialindex
