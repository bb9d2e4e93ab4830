package stl

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/vecutil"
)

const headerSize = 80

// Write encodes triangles as a binary STL to w. header is the run
// identifier / parameter summary to stamp into the 80-byte header; it
// is truncated or zero-padded to fit.
func Write(w io.Writer, header string, triangles []cellmesh.Triangle) error {
	buf := make([]byte, headerSize)
	copy(buf, header)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("stl: writing header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return fmt.Errorf("stl: writing triangle count: %w", err)
	}

	for _, t := range triangles {
		normal := vecutil.TriangleNormal(t.A, t.B, t.C)
		if normal.LenSqr() > 0 {
			normal = normal.Normalize()
		}

		if err := writeVec3f32(w, normal); err != nil {
			return err
		}
		if err := writeVec3f32(w, t.A); err != nil {
			return err
		}
		if err := writeVec3f32(w, t.B); err != nil {
			return err
		}
		if err := writeVec3f32(w, t.C); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("stl: writing attribute byte count: %w", err)
		}
	}
	return nil
}

func writeVec3f32(w io.Writer, v mgl64.Vec3) error {
	vals := [3]float32{float32(v.X()), float32(v.Y()), float32(v.Z())}
	return binary.Write(w, binary.LittleEndian, vals)
}
