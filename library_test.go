package colladarender

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTrianglesErrors(t *testing.T) {

	dir := t.TempDir()

	unsupported := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unsupported, []byte("hello"), 0o644))

	_, err := LoadTriangles(unsupported)
	assert.True(t, IsUserError(err))
	assert.Contains(t, err.Error(), unsupported)

	missing := filepath.Join(dir, "missing.dae")
	_, err = LoadTriangles(missing)
	assert.True(t, IsUserError(err))
	assert.Contains(t, err.Error(), missing)

	malformed := filepath.Join(dir, "broken.dae")
	require.NoError(t, os.WriteFile(malformed, []byte("<COLLADA><library_geometries>"), 0o644))

	_, err = LoadTriangles(malformed)
	assert.True(t, IsUserError(err))
	assert.Contains(t, err.Error(), malformed)

}

func TestLoadTrianglesByExtension(t *testing.T) {

	path := filepath.Join(t.TempDir(), "QUAD.DAE")
	require.NoError(t, os.WriteFile(path, daeQuad("Y_UP", `
        <triangles count="1">
          <input semantic="VERTEX" source="#quad-mesh-vertices" offset="0"/>
          <p>0 1 2</p>
        </triangles>`), 0o644))

	tris, err := LoadTriangles(path)
	require.NoError(t, err)
	assert.Len(t, tris, 1)

}

func TestRegisterLoader(t *testing.T) {

	t.Cleanup(func() { delete(loaders, ".tri") })

	RegisterLoader("TRI", func(path string) ([]Triangle, error) {
		return []Triangle{NewTriangle(NewVector(0, math.NaN(), 0), NewVector(1, 0, 0), NewVector(0, 0, 1))}, nil
	})

	assert.Contains(t, SupportedExtensions(), ".tri")

	path := filepath.Join(t.TempDir(), "bad.tri")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	// Non-finite coordinates are rejected whatever loaded them.
	_, err := LoadTriangles(path)
	assert.True(t, IsUserError(err))
	assert.Contains(t, err.Error(), "non-finite")

}

func TestSupportedExtensions(t *testing.T) {
	assert.Equal(t, []string{".dae", ".glb", ".gltf", ".obj", ".ply", ".stl"}, SupportedExtensions())
}
