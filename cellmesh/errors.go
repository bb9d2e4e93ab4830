package cellmesh

import "errors"

// ErrEmptyMesh indicates construction was attempted from zero triangles.
var ErrEmptyMesh = errors.New("cellmesh: seed mesh must have at least one triangle")

// ErrInvalidParams indicates a non-positive link_rest_length or
// radius_of_influence, or a non-positive split_threshold, was supplied.
var ErrInvalidParams = errors.New("cellmesh: parameter out of range")

// ErrInvariantViolation indicates a link was not found where the manifold
// invariant requires it, a ring contained a duplicate or self-reference,
// or some other structural invariant broke. This is always a bug, never
// a user condition: the engine aborts with a diagnostic naming the
// operation that detected it.
var ErrInvariantViolation = errors.New("cellmesh: mesh invariant violated")

// ErrCellNotFound indicates a reference to an id outside [0, CellCount()).
var ErrCellNotFound = errors.New("cellmesh: cell id out of range")
