package colladarender

import (
	"bytes"
	"encoding/xml"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type daeAccessor struct {
	Count  int `xml:"count,attr"`
	Stride int `xml:"stride,attr"`
}

type daeSource struct {
	ID          string      `xml:"id,attr"`
	StringArray string      `xml:"float_array"`
	Accessor    daeAccessor `xml:"technique_common>accessor"`
}

// Parse parses the source's float array.
func (source daeSource) Parse() ([]float64, error) {
	split := strings.Fields(source.StringArray)
	data := make([]float64, 0, len(split))
	for _, v := range split {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "source %q", source.ID)
		}
		data = append(data, f)
	}
	return data, nil
}

// stride returns the number of floats per element of the source; positions default to 3.
func (source daeSource) stride() int {
	if source.Accessor.Stride > 0 {
		return source.Accessor.Stride
	}
	return 3
}

type daeInput struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   int    `xml:"offset,attr"`
}

type daeVertices struct {
	ID     string     `xml:"id,attr"`
	Inputs []daeInput `xml:"input"`
}

// daePrimitive is any primitive group inside a <mesh>: <triangles>, <polylist>, <polygons>, <trifans>, or <tristrips>.
// Other elements (<lines>, <extra>, and so on) land here too and are skipped.
type daePrimitive struct {
	XMLName      xml.Name
	Count        int        `xml:"count,attr"`
	MaterialName string     `xml:"material,attr"`
	Inputs       []daeInput `xml:"input"`
	VCount       string     `xml:"vcount"`
	P            []string   `xml:"p"`
}

type daeMesh struct {
	Sources    []daeSource    `xml:"source"`
	Vertices   []daeVertices  `xml:"vertices"`
	Primitives []daePrimitive `xml:",any"`
}

type daeGeometry struct {
	Name string   `xml:"name,attr"`
	ID   string   `xml:"id,attr"`
	Mesh *daeMesh `xml:"mesh"`
}

type daeDocument struct {
	UpAxis     string        `xml:"asset>up_axis"`
	Geometries []daeGeometry `xml:"library_geometries>geometry"`
}

// DaeLoadOptions represents options one can use to tweak how .dae files are loaded.
type DaeLoadOptions struct {
	// Whether to rotate Z-up files (like ones exported from Blender) so that their Z axis becomes height.
	// The file's <up_axis> decides whether anything is done.
	CorrectYUp bool
}

// DefaultDaeLoadOptions returns a default instance of DaeLoadOptions. By default, coordinates are used exactly as
// they're stored in the file.
func DefaultDaeLoadOptions() *DaeLoadOptions {
	return &DaeLoadOptions{
		CorrectYUp: false,
	}
}

// LoadDAEFile takes a filepath to a .dae (COLLADA) file, and returns every triangle of every geometry in it, using
// the default load options.
func LoadDAEFile(path string) ([]Triangle, error) {

	fileData, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return LoadDAEData(fileData, nil)

}

// LoadDAEData takes a []byte consisting of the contents of a DAE file, and returns every triangle found in it. Geometries
// are read in document order, and every primitive group in each geometry in document order; polygons are split into
// triangle fans, and strips into triangles. Coordinates are geometry-local; scene node transforms aren't applied.
// If the call couldn't complete for any reason, like due to a malformed DAE file, it will return an error.
// Passing nil for options uses DefaultDaeLoadOptions().
func LoadDAEData(data []byte, options *DaeLoadOptions) ([]Triangle, error) {

	if options == nil {
		options = DefaultDaeLoadOptions()
	}

	doc := &daeDocument{}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(doc); err != nil {
		return nil, errors.Wrap(err, "parsing COLLADA document")
	}

	triangles := []Triangle{}

	for _, geo := range doc.Geometries {

		if geo.Mesh == nil {
			slog.Debug("skipping geometry without a mesh", "geometry", geo.ID)
			continue
		}

		tris, err := geo.Mesh.triangles()
		if err != nil {
			return nil, errors.Wrapf(err, "geometry %q", geo.ID)
		}

		triangles = append(triangles, tris...)

	}

	if options.CorrectYUp && strings.EqualFold(strings.TrimSpace(doc.UpAxis), "Z_UP") {
		for i := range triangles {
			for j, v := range triangles[i] {
				// The file's +Z is our +Y
				triangles[i][j] = NewVector(v.X, v.Z, -v.Y)
			}
		}
	}

	return triangles, nil

}

// positions resolves the positions referenced by a primitive input, either directly from a <source> or through a
// <vertices> element's POSITION input.
func (mesh *daeMesh) positions(input daeInput) ([]Vector, error) {

	id := strings.TrimPrefix(input.Source, "#")

	for _, verts := range mesh.Vertices {
		if verts.ID == id {
			for _, in := range verts.Inputs {
				if in.Semantic == "POSITION" {
					return mesh.positions(in)
				}
			}
			return nil, errors.Errorf("vertices %q have no POSITION input", id)
		}
	}

	for _, source := range mesh.Sources {

		if source.ID != id {
			continue
		}

		data, err := source.Parse()
		if err != nil {
			return nil, err
		}

		stride := source.stride()
		if stride < 3 {
			return nil, errors.Errorf("source %q has stride %d, which is too small for positions", id, stride)
		}

		positions := make([]Vector, 0, len(data)/stride)
		for i := 0; i+2 < len(data); i += stride {
			positions = append(positions, NewVector(data[i], data[i+1], data[i+2]))
		}

		return positions, nil

	}

	return nil, errors.Errorf("source %q not found", id)

}

func (mesh *daeMesh) triangles() ([]Triangle, error) {

	triangles := []Triangle{}

	for _, prim := range mesh.Primitives {

		kind := prim.XMLName.Local

		switch kind {
		case "triangles", "polylist", "polygons", "trifans", "tristrips":
		default:
			slog.Debug("skipping unsupported COLLADA primitive", "primitive", kind)
			continue
		}

		tris, err := mesh.primitiveTriangles(prim)
		if err != nil {
			return nil, errors.Wrapf(err, "<%s>", kind)
		}

		triangles = append(triangles, tris...)

	}

	return triangles, nil

}

// primitiveTriangles resolves the vertex positions of a primitive group and splits it into triangles.
func (mesh *daeMesh) primitiveTriangles(prim daePrimitive) ([]Triangle, error) {

	stride := 0
	vertexOffset := -1
	var vertexInput daeInput

	for _, input := range prim.Inputs {
		stride = max(stride, input.Offset+1)
		if vertexOffset < 0 && (input.Semantic == "VERTEX" || input.Semantic == "POSITION") {
			vertexOffset = input.Offset
			vertexInput = input
		}
	}

	if vertexOffset < 0 {
		return nil, errors.New("no VERTEX input")
	}

	positions, err := mesh.positions(vertexInput)
	if err != nil {
		return nil, err
	}

	// Each <p> becomes a list of positions, one for each index group.
	resolve := func(p string) ([]Vector, error) {

		split := strings.Fields(p)

		if len(split)%stride != 0 {
			return nil, errors.Errorf("index count %d isn't a multiple of the input count %d", len(split), stride)
		}

		verts := make([]Vector, 0, len(split)/stride)

		for i := vertexOffset; i < len(split); i += stride {

			index, err := strconv.Atoi(split[i])
			if err != nil {
				return nil, errors.Wrap(err, "parsing index")
			}

			if index < 0 || index >= len(positions) {
				return nil, errors.Errorf("vertex index %d out of range (%d positions)", index, len(positions))
			}

			verts = append(verts, positions[index])

		}

		return verts, nil

	}

	triangles := []Triangle{}

	switch prim.XMLName.Local {

	case "triangles":

		for _, p := range prim.P {

			verts, err := resolve(p)
			if err != nil {
				return nil, err
			}

			if len(verts)%3 != 0 {
				return nil, errors.Errorf("vertex count %d isn't a multiple of 3", len(verts))
			}

			for i := 0; i < len(verts); i += 3 {
				triangles = append(triangles, NewTriangle(verts[i], verts[i+1], verts[i+2]))
			}

		}

	case "polylist":

		verts := []Vector{}
		for _, p := range prim.P {
			v, err := resolve(p)
			if err != nil {
				return nil, err
			}
			verts = append(verts, v...)
		}

		start := 0
		for _, vc := range strings.Fields(prim.VCount) {

			n, err := strconv.Atoi(vc)
			if err != nil {
				return nil, errors.Wrap(err, "parsing vcount")
			}

			if n < 0 || start+n > len(verts) {
				return nil, errors.Errorf("vcount %d runs past the %d vertices given", n, len(verts))
			}

			triangles = triangulateFan(triangles, verts[start:start+n])
			start += n

		}

	case "polygons", "trifans":

		for _, p := range prim.P {
			verts, err := resolve(p)
			if err != nil {
				return nil, err
			}
			triangles = triangulateFan(triangles, verts)
		}

	case "tristrips":

		for _, p := range prim.P {
			verts, err := resolve(p)
			if err != nil {
				return nil, err
			}
			triangles = triangulateStrip(triangles, verts)
		}

	}

	return triangles, nil

}
