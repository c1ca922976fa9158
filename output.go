package colladarender

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// TempSuffix is appended to an output path to name the temporary file an image is written to before being renamed
// into place.
const TempSuffix = "~"

// SavePNG encodes img as a PNG and atomically places it at path. The parent directory is created if it doesn't exist.
// The image is written to path + TempSuffix first, then renamed over path, so a reader never sees a partial file there.
func SavePNG(path string, img image.Image) error {

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WrapUserError(err, "can't create output directory")
	}

	tempPath := path + TempSuffix

	if err := writePNG(tempPath, img); err != nil {
		os.Remove(tempPath)
		return WrapUserError(err, "%s: can't write image", path)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return WrapUserError(err, "%s: can't replace image", path)
	}

	return nil

}

func writePNG(path string, img image.Image) error {

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return errors.Wrap(err, "encoding PNG")
	}

	return file.Close()

}
