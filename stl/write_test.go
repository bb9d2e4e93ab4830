package stl_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/arkveil/cellgrow/cellmesh"
	"github.com/arkveil/cellgrow/stl"
)

func TestWrite_HeaderCountAndTriangleBytes(t *testing.T) {
	tris := []cellmesh.Triangle{
		{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{1, 0, 0}, C: mgl64.Vec3{0, 1, 0}},
	}

	var buf bytes.Buffer
	require.NoError(t, stl.Write(&buf, "run-1 detail=2", tris))

	data := buf.Bytes()
	require.Equal(t, 84+50, len(data))
	require.Contains(t, string(data[:80]), "run-1 detail=2")

	count := binary.LittleEndian.Uint32(data[80:84])
	require.Equal(t, uint32(1), count)

	// attribute byte count trailer for the one triangle is zero.
	attr := binary.LittleEndian.Uint16(data[84+48 : 84+50])
	require.Equal(t, uint16(0), attr)
}

func TestWrite_EmptyTriangleList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, stl.Write(&buf, "", nil))
	require.Equal(t, 84, buf.Len())
}
