// Package forcestep computes one iteration's per-cell force kernel
// (spring, planar, bulge and repulsion terms) and dispatches it, and the
// subsequent spatial-index rewrite, across a worker pool.
//
// Both phases use the same stride partition the teacher's
// perf-analysis-style worker pools use: worker w handles cell ids
// w, w+W, w+2W, ... rather than a contiguous chunk. Striding, not
// chunking, matters here because spatialindex's striped locks are keyed
// by grid-cell coordinate sum, not by cell id -- a chunked partition
// would let one worker monopolize a run of nearby ids (and nearby grid
// cells) while another sits idle on contention, whereas a strided
// partition scatters each worker's writes across the whole index.
package forcestep
