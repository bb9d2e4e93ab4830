// Package vecutil collects the small vector and randomness primitives shared
// by every growth-engine package: triangle and ring normals, and a
// per-goroutine seedable random source.
//
// Vectors are github.com/go-gl/mathgl/mgl64.Vec3 throughout the module —
// vecutil adds the handful of operations the engine actually needs on top
// of mgl64's arithmetic, rather than wrapping the whole type.
package vecutil
