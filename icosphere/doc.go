// Package icosphere builds the initial closed triangle set for a growing
// cellular form by recursively subdividing a regular icosahedron and
// projecting new vertices onto the unit sphere.
//
// The base icosahedron (12 vertices, 20 faces) is a fixed, canonical
// dataset — analogous in spirit to the teacher repo's platonic-solid
// generators, which keep one immutable edge table per solid and build
// from it deterministically. Here the dataset is a vertex/face table
// instead of an edge table, since the consumer (cellmesh) needs embedded
// 3D coordinates, not just topology.
package icosphere
