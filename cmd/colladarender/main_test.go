package main

import (
	"bytes"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hschendel/stl"
	"github.com/solarlune/colladarender/internal/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGround writes an STL file holding a single flat triangle covering half a unit square.
func writeGround(t *testing.T, path string) {
	t.Helper()
	solid := &stl.Solid{
		Name:    "ground",
		IsAscii: true,
		Triangles: []stl.Triangle{
			{Vertices: [3]stl.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}},
		},
	}
	require.NoError(t, solid.WriteFile(path))
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	return img
}

func TestRun(t *testing.T) {

	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	input := filepath.Join(dir, "ground.stl")
	writeGround(t, input)

	output := filepath.Join(dir, "out", "ground.png")

	stderr := &bytes.Buffer{}
	require.Equal(t, ExitSuccess, run([]string{"-o", output, input}, stderr), stderr.String())

	assert.Equal(t, "Rendering "+output+" ...\n", stderr.String())
	assert.Equal(t, image.Pt(8, 8), decodePNG(t, output).Bounds().Size())

	stderr.Reset()
	require.Equal(t, ExitSuccess, run([]string{"--quiet", "--scale", "4", "--palette", "heat", "--output", output, input}, stderr))

	assert.Empty(t, stderr.String())
	assert.Equal(t, image.Pt(4, 4), decodePNG(t, output).Bounds().Size())

}

func TestRunDirectory(t *testing.T) {

	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	models := filepath.Join(dir, "models")
	require.NoError(t, os.MkdirAll(models, 0o755))

	writeGround(t, filepath.Join(models, "a.stl"))
	require.NoError(t, os.WriteFile(filepath.Join(models, "b.obj"), []byte("v 2 1 2\nv 3 1 2\nv 2 1 3\nf 1 2 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(models, ".hidden"), []byte("ignored"), 0o644))

	output := filepath.Join(dir, "models.png")

	stderr := &bytes.Buffer{}
	require.Equal(t, ExitSuccess, run([]string{"-o", output, models}, stderr), stderr.String())

	// Together the two files cover three units along each axis.
	assert.Equal(t, image.Pt(24, 24), decodePNG(t, output).Bounds().Size())

}

func TestRunUserErrors(t *testing.T) {

	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	input := filepath.Join(dir, "ground.stl")
	writeGround(t, input)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.MkdirAll(empty, 0o755))

	tests := map[string][]string{
		"no arguments":       {},
		"too many arguments": {input, input},
		"unknown flag":       {"--wobble", input},
		"missing input":      {filepath.Join(dir, "missing.dae")},
		"unsupported input":  {"-o", filepath.Join(dir, "x.png"), filepath.Join(dir, "out")},
		"unknown palette":    {"--palette", "plaid", "-o", filepath.Join(dir, "x.png"), input},
		"unknown easing":     {"--ease", "wobbly", "-o", filepath.Join(dir, "x.png"), input},
		"bad scale":          {"--scale", "0", "-o", filepath.Join(dir, "x.png"), input},
		"empty directory":    {"-o", filepath.Join(dir, "x.png"), empty},
		"missing config":     {"--config", filepath.Join(dir, "missing.toml"), input},
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "out"), []byte("?"), 0o644))

	for name, args := range tests {

		stderr := &bytes.Buffer{}

		assert.Equal(t, ExitUserError, run(args, stderr), name)
		assert.Contains(t, stderr.String(), "error: ", name)

	}

	assert.NoFileExists(t, filepath.Join(dir, "x.png"))

}

func TestLogInterrupted(t *testing.T) {

	t.Setenv("NO_COLOR", "1")

	defer func(level slog.Level, logger *slog.Logger) {
		logx.UserLevel = level
		slog.SetDefault(logger)
	}(logx.UserLevel, slog.Default())

	stderr := &bytes.Buffer{}

	logx.UserLevel = slog.LevelInfo
	logx.SetDefaultLogger(stderr)

	logInterrupted()

	assert.Equal(t, "Operation interrupted.\n", stderr.String())

}

func TestInputPaths(t *testing.T) {

	dir := t.TempDir()

	for _, name := range []string{"c.dae", "a.stl", ".DS_Store", "b.obj"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "textures"), 0o755))

	paths, err := InputPaths(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.stl"),
		filepath.Join(dir, "b.obj"),
		filepath.Join(dir, "c.dae"),
	}, paths)

	file := filepath.Join(dir, "c.dae")
	paths, err = InputPaths(file)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, paths)

	_, err = InputPaths(filepath.Join(dir, "missing"))
	assert.Error(t, err)

}

func TestDefaultOutputPath(t *testing.T) {

	assert.Equal(t, filepath.Join("renderings", "ship.png"), DefaultOutputPath(filepath.Join("models", "ship.dae")))
	assert.Equal(t, filepath.Join("renderings", "models.png"), DefaultOutputPath("models"+string(filepath.Separator)))
	assert.Equal(t, filepath.Join("renderings", "scene.v2.png"), DefaultOutputPath("scene.v2.glb"))

}
