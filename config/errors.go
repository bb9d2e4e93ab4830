package config

import "errors"

// ErrParameterOutOfRange is returned by Validate when a force-kernel
// factor, length, or threshold is outside the range the engine assumes.
var ErrParameterOutOfRange = errors.New("config: parameter out of range")

// ErrEmptySeedMesh is returned by Validate when Detail would produce no
// seed triangles (only possible for a negative detail level).
var ErrEmptySeedMesh = errors.New("config: detail level produces an empty seed mesh")
