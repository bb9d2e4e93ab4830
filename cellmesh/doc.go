// Package cellmesh holds the growth engine's cell store: parallel arrays
// of position, normal, food, aliveness and cyclically ordered neighbor
// ids ("links"), plus the double buffer the force step writes into.
//
// There is no pointer graph — every adjacency is by integer index into
// the parallel arrays, the same index-everything design the teacher repo
// uses for its adjacency list (core.Graph.adjacencyList), generalized
// here from a string-keyed map to dense int32 slices since cell ids are
// dense and append-only.
//
// Unlike core.Graph, Mesh carries no internal mutex: the driver's phase
// barriers (force step -> recenter -> index rewrite -> commit -> divide)
// already guarantee that concurrent readers and the eventual writer never
// overlap, so a lock on the hot per-cell read path would only add
// contention without buying safety. Division, which does mutate links
// and append cells, runs strictly single-threaded after every worker has
// joined (see the growth package), so it needs no lock either.
package cellmesh
