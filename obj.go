package colladarender

import (
	"github.com/fogleman/fauxgl"
	"github.com/pkg/errors"
)

// LoadOBJFile loads the triangles of a Wavefront .obj file. Faces with more than three vertices are split into
// triangle fans.
func LoadOBJFile(path string) ([]Triangle, error) {

	mesh, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return nil, errors.Wrap(err, "parsing OBJ file")
	}

	return fauxglTriangles(mesh), nil

}

// LoadPLYFile loads the triangles of an ASCII or binary .ply file.
func LoadPLYFile(path string) ([]Triangle, error) {

	mesh, err := fauxgl.LoadPLY(path)
	if err != nil {
		return nil, errors.Wrap(err, "parsing PLY file")
	}

	return fauxglTriangles(mesh), nil

}

func fauxglTriangles(mesh *fauxgl.Mesh) []Triangle {

	triangles := make([]Triangle, 0, len(mesh.Triangles))

	for _, t := range mesh.Triangles {
		triangles = append(triangles, NewTriangle(
			fauxglVector(t.V1.Position),
			fauxglVector(t.V2.Position),
			fauxglVector(t.V3.Position),
		))
	}

	return triangles

}

func fauxglVector(v fauxgl.Vector) Vector {
	return NewVector(v.X, v.Y, v.Z)
}
