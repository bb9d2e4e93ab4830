package spatialindex

import "errors"

// ErrInvalidCellSize indicates a non-positive cell size was supplied to New.
var ErrInvalidCellSize = errors.New("spatialindex: cell size must be positive")

// ErrIDNotFound indicates Remove was asked to drop an id that is not
// registered in the target grid cell. This signals a bug in the caller
// (an id must appear exactly once per halo cell) and is never expected on
// the happy path.
var ErrIDNotFound = errors.New("spatialindex: id not found in grid cell")

// ErrOutOfBounds indicates a key fell outside the array the index was most
// recently Ensure'd to cover. Update assumes the driver already widened
// the index for the iteration via Ensure before dispatching workers;
// seeing this means that assumption was violated — a bug, not a user
// condition.
var ErrOutOfBounds = errors.New("spatialindex: key out of bounds")
