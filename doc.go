// Package cellgrow implements the cellular-forms growth model: a
// triangulated manifold mesh of cells that relax under a per-cell
// force step (spring, planar, bulge, repulsion) and divide by mitosis
// once a cell's food reserve saturates.
//
// Subpackages:
//
//	vecutil/      — vector and RNG helpers shared by the rest of the module
//	icosphere/    — recursive icosahedron subdivision, the seed mesh
//	cellmesh/     — the Mesh type: positions, CCW adjacency rings, double buffer
//	spatialindex/ — striped-lock 3D spatial hash for neighbor queries
//	forcestep/    — the per-cell force kernel and its worker dispatch
//	division/     — mitotic division: cleavage plane, ring rewrite, reposition
//	growth/       — the driver loop tying the above into iterations
//	stl/          — binary STL export
//	config/       — YAML-backed parameter loading
//	logx/         — leveled logger used throughout
//	cmd/cellgrow/ — the command-line entry point
package cellgrow
