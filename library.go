package colladarender

import (
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// A Loader reads every triangle out of the mesh file at the path given.
type Loader func(path string) ([]Triangle, error)

// loaders maps lower-cased file extensions (including the dot) to the Loader that reads them.
var loaders = map[string]Loader{
	".dae":  LoadDAEFile,
	".gltf": LoadGLTFFile,
	".glb":  LoadGLTFFile,
	".stl":  LoadSTLFile,
	".obj":  LoadOBJFile,
	".ply":  LoadPLYFile,
}

// RegisterLoader registers a Loader for files with the given extension (for example, ".dae"), replacing any Loader
// already registered for it. RegisterLoader isn't safe to call concurrently with loading.
func RegisterLoader(ext string, loader Loader) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	loaders[ext] = loader
}

// SupportedExtensions returns the file extensions that can be loaded, sorted.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(loaders))
	for ext := range loaders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// LoadTriangles loads every triangle from the mesh file at the path given, picking a Loader by the file's extension.
// Any failure, whether the file is missing, of an unknown type, or malformed, is returned as a UserError naming the file.
func LoadTriangles(path string) ([]Triangle, error) {

	loader, ok := loaders[extension(path)]
	if !ok {
		return nil, NewUserError("%s: unsupported mesh file type (supported: %s)", path, strings.Join(SupportedExtensions(), ", "))
	}

	if _, err := os.Stat(path); err != nil {
		return nil, WrapUserError(err, "%s: can't read mesh file", path)
	}

	tris, err := loader(path)
	if err != nil {
		return nil, WrapUserError(err, "%s: can't load mesh file", path)
	}

	for i, tri := range tris {
		if !tri.IsFinite() {
			return nil, NewUserError("%s: triangle %d has non-finite coordinates", path, i)
		}
	}

	return tris, nil

}

// readFile reads the whole file at path, annotating any error with the operation.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	return data, nil
}
