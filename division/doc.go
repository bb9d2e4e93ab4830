// Package division implements cell mitosis: splitting one saturated
// cell into a parent/child pair while locally rewriting the surrounding
// ring of neighbors so the mesh stays a valid closed triangulation.
//
// The teacher repo has no direct analogue to a local topology rewrite
// (its graph mutations are add/remove-edge at the granularity of a
// single edge); this package is built instead directly from the
// step-by-step cleavage-plane rewrite procedure, expressed with
// cellmesh's link-rewrite primitives (InsertLinkAfter/Before,
// ReplaceLink, SetLinks) standing in for pointer surgery.
package division
