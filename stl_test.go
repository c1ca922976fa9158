package colladarender

import (
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSTLFile(t *testing.T) {

	solid := &stl.Solid{
		Name: "wedge",
		Triangles: []stl.Triangle{
			{Vertices: [3]stl.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0.5, 1}}},
			{Vertices: [3]stl.Vec3{{1, 0, 0}, {1, 0.5, 1}, {0, 0.5, 1}}},
		},
	}

	for _, ascii := range []bool{true, false} {

		solid.IsAscii = ascii

		path := filepath.Join(t.TempDir(), "wedge.stl")
		require.NoError(t, solid.WriteFile(path))

		tris, err := LoadSTLFile(path)
		require.NoError(t, err)

		assert.Equal(t, []Triangle{
			NewTriangle(NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(0, 0.5, 1)),
			NewTriangle(NewVector(1, 0, 0), NewVector(1, 0.5, 1), NewVector(0, 0.5, 1)),
		}, tris, "ascii: %v", ascii)

	}

}

func TestLoadSTLFileMissing(t *testing.T) {
	_, err := LoadSTLFile(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}
