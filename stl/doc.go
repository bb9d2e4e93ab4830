// Package stl writes the binary STL format: an 80-byte ASCII header, a
// little-endian uint32 triangle count, then 50 bytes per triangle (3
// float32 normal components, 3x3 float32 vertex components, a uint16
// attribute byte count left at zero).
//
// Grounded on original_source/src/stl.cpp's SaveBinarySTL, translated
// from its mmap-and-memcpy layout to sequential encoding/binary.Write
// calls -- idiomatic Go has no equivalent to overlaying a struct onto a
// mapped byte range, and a growth run's triangle count is small enough
// that buffered sequential writes cost nothing by comparison.
package stl
