package colladarender

import (
	"log/slog"
)

// A Scene is the full set of triangles gathered from one or more mesh files. Triangles are kept in the order they
// were loaded: file order, then the order of geometries, primitives, and triangles within each file.
type Scene struct {
	Sources   []string   // The paths the scene was loaded from, in order
	Triangles []Triangle // Every triangle of every source, concatenated
}

// NewScene creates a new Scene containing the triangles given.
func NewScene(triangles ...Triangle) *Scene {
	return &Scene{
		Sources:   []string{},
		Triangles: triangles,
	}
}

// LoadScene loads every mesh file given, in order, and concatenates their triangles into a single Scene.
// The first file that fails to load stops the process, and the error names that file.
func LoadScene(paths ...string) (*Scene, error) {

	scene := NewScene()

	for _, path := range paths {

		tris, err := LoadTriangles(path)
		if err != nil {
			return nil, err
		}

		slog.Debug("loaded mesh file", "path", path, "triangles", len(tris))

		scene.Sources = append(scene.Sources, path)
		scene.Triangles = append(scene.Triangles, tris...)

	}

	return scene, nil

}

// IsEmpty returns true if the Scene has no triangles.
func (scene *Scene) IsEmpty() bool {
	return scene == nil || len(scene.Triangles) == 0
}
