package colladarender

import (
	"bytes"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, returning every triangle of every mesh primitive
// in it. Buffers referenced by relative URIs are read from alongside the file.
func LoadGLTFFile(path string) ([]Triangle, error) {

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "parsing glTF document")
	}

	return LoadGLTFDocument(doc)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, returning every triangle of every mesh primitive in
// it. Since there's no file to read external buffers relative to, buffers must be embedded (or be data URIs).
func LoadGLTFData(data []byte) ([]Triangle, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, errors.Wrap(err, "parsing glTF document")
	}

	return LoadGLTFDocument(doc)

}

// LoadGLTFDocument returns the triangles of every primitive of every mesh in the decoded glTF document, in the order
// the meshes and primitives are listed. Primitives drawn as triangles, triangle strips, or triangle fans are used;
// points and lines are skipped. As with DAE files, coordinates are mesh-local; node transforms aren't applied.
func LoadGLTFDocument(doc *gltf.Document) ([]Triangle, error) {

	triangles := []Triangle{}

	for meshIndex, mesh := range doc.Meshes {

		for primIndex, prim := range mesh.Primitives {

			switch prim.Mode {
			case gltf.PrimitiveTriangles, gltf.PrimitiveTriangleStrip, gltf.PrimitiveTriangleFan:
			default:
				slog.Debug("skipping non-triangle glTF primitive", "mesh", mesh.Name, "primitive", primIndex, "mode", prim.Mode)
				continue
			}

			posAccessor, exists := prim.Attributes[gltf.POSITION]
			if !exists {
				slog.Debug("skipping glTF primitive without positions", "mesh", mesh.Name, "primitive", primIndex)
				continue
			}

			if int(posAccessor) >= len(doc.Accessors) {
				return nil, errors.Errorf("mesh %d primitive %d: position accessor %d out of range", meshIndex, primIndex, posAccessor)
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "mesh %d primitive %d: reading positions", meshIndex, primIndex)
			}

			var indices []uint32

			if prim.Indices != nil {

				if int(*prim.Indices) >= len(doc.Accessors) {
					return nil, errors.Errorf("mesh %d primitive %d: index accessor %d out of range", meshIndex, primIndex, *prim.Indices)
				}

				indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, errors.Wrapf(err, "mesh %d primitive %d: reading indices", meshIndex, primIndex)
				}

			} else {

				indices = make([]uint32, len(vertPos))
				for i := range indices {
					indices[i] = uint32(i)
				}

			}

			verts := make([]Vector, len(indices))

			for i, index := range indices {

				if int(index) >= len(vertPos) {
					return nil, errors.Errorf("mesh %d primitive %d: vertex index %d out of range (%d positions)", meshIndex, primIndex, index, len(vertPos))
				}

				p := vertPos[index]
				verts[i] = NewVector(float64(p[0]), float64(p[1]), float64(p[2]))

			}

			switch prim.Mode {

			case gltf.PrimitiveTriangles:
				for i := 0; i+2 < len(verts); i += 3 {
					triangles = append(triangles, NewTriangle(verts[i], verts[i+1], verts[i+2]))
				}

			case gltf.PrimitiveTriangleStrip:
				triangles = triangulateStrip(triangles, verts)

			case gltf.PrimitiveTriangleFan:
				triangles = triangulateFan(triangles, verts)

			}

		}

	}

	return triangles, nil

}
