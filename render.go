package colladarender

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Render loads every mesh file in inputPaths, renders them together as a top-down height map, and saves the result
// as a PNG at outputPath. The output is written to a temporary file next to outputPath first and then renamed over
// it, so outputPath is either left untouched or replaced with a complete image. Passing nil for opts renders with
// DefaultRenderOptions().
// Rendering the same files with the same options always produces a byte-identical image.
func Render(outputPath string, inputPaths []string, opts *RenderOptions) error {

	scene, err := LoadScene(inputPaths...)
	if err != nil {
		return err
	}

	img, err := RenderScene(scene, opts)
	if err != nil {
		return err
	}

	return SavePNG(outputPath, img)

}

// RenderScene renders the Scene given as a top-down height map. The scene's X and Z axes become the image's axes, and
// each triangle is colored by its height proxy (see Triangle.Height()) relative to the rest of the scene. Triangles
// are drawn from lowest to highest, so higher triangles cover lower ones, and the finished image is rotated 180
// degrees to put the model's axes the right way up.
// The image is ceil(width * scale) by ceil(depth * scale) pixels, where width and depth are the scene's extents along X and Z.
// RenderScene returns ErrEmptyScene for a scene without triangles and ErrNoExtent for one that has no area when seen
// from above.
func RenderScene(scene *Scene, opts *RenderOptions) (*image.RGBA, error) {

	if opts == nil {
		opts = DefaultRenderOptions()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if scene.IsEmpty() {
		return nil, ErrEmptyScene
	}

	sorted := DrawOrder(scene.Triangles)

	bounds, err := NewBounds(sorted)
	if err != nil {
		return nil, err
	}

	size := bounds.CanvasSize(float64(opts.Scale))

	if size.X <= 0 || size.Y <= 0 {
		return nil, WrapUserError(errors.Errorf("image would be %dx%d", size.X, size.Y), "%s", ErrNoExtent.msg)
	}

	samples := float64(opts.samplesPerUnit())
	transform := bounds.Transform(samples)
	canvas := NewCanvas(bounds.CanvasSize(samples))

	slog.Debug("rendering height map",
		"triangles", len(sorted),
		"size", size,
		"minHeight", bounds.MinHeight,
		"maxHeight", bounds.MaxHeight,
	)

	for _, tri := range sorted {

		height := opts.ease(bounds.NormalizedHeight(tri.Height()))

		fillColor := opts.ColorMap.At(height)
		lineColor := opts.ColorMap.At(height + opts.OutlineOffset)

		points := transform.Project(tri)

		canvas.FillPolygon(points[:], fillColor)
		canvas.StrokePolygon(points[:], lineColor)

	}

	img := canvas.Rotated180()

	if img.Bounds().Size() != size {
		img = downsample(img, size)
	}

	return img, nil

}

// downsample shrinks a supersampled image down to the given size.
func downsample(img *image.RGBA, size image.Point) *image.RGBA {

	resized := resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3)

	if rgba, ok := resized.(*image.RGBA); ok {
		return rgba
	}

	rgba := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(rgba, rgba.Bounds(), resized, resized.Bounds().Min, draw.Src)
	return rgba

}
