package colladarender

import (
	"github.com/hschendel/stl"
	"github.com/pkg/errors"
)

// LoadSTLFile loads the triangles of an ASCII or binary .stl file. Facet normals and attributes are ignored.
func LoadSTLFile(path string) ([]Triangle, error) {

	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "parsing STL file")
	}

	return stlTriangles(solid), nil

}

func stlTriangles(solid *stl.Solid) []Triangle {

	triangles := make([]Triangle, len(solid.Triangles))

	for i, t := range solid.Triangles {
		for j, v := range t.Vertices {
			triangles[i][j] = NewVector(float64(v[0]), float64(v[1]), float64(v[2]))
		}
	}

	return triangles

}
