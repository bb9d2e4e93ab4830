// Package growth is the driver loop: per iteration it extends the
// spatial index's bounds, dispatches the force-step workers, recenters
// the mesh, dispatches the index-rewrite workers, commits the double
// buffer, and -- when enabled -- accrues food and divides every
// saturated cell in ascending id order.
//
// Grounded on original_source/src/main.cpp's per-frame Update call
// generalized into an explicit phase-barrier sequence, and on
// perf-analysis's stage-logging cadence (one Info line per unit of
// work) carried through logx instead of a raw log.Printf.
package growth
