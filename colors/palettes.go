package colors

import (
	"slices"
	"strings"

	"github.com/solarlune/colladarender"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultPalette is the name of the palette used when none is asked for.
const DefaultPalette = "bezier"

// palettes maps palette names to functions building them with n segments.
var palettes = map[string]func(n int) (colladarender.ColorMap, error){
	"bezier": func(n int) (colladarender.ColorMap, error) {
		if n == colladarender.DefaultColorMapSegments {
			return colladarender.SharedColorMap(), nil
		}
		return colladarender.DefaultColorMap(n), nil
	},
	"heat": func(n int) (colladarender.ColorMap, error) {
		return FromPalette(palette.Heat(n+1, 1)), nil
	},
	"kindlmann":          sampled(moreland.Kindlmann),
	"extended-kindlmann": sampled(moreland.ExtendedKindlmann),
	"blackbody":          sampled(moreland.BlackBody),
	"extended-blackbody": sampled(moreland.ExtendedBlackBody),
	"smooth-blue-red":    sampled(func() palette.ColorMap { return moreland.SmoothBlueRed() }),
	"plasma":             interpolated(plasma),
}

// A stop is a color a gradient passes through, at a position between 0 and 1.
type stop struct {
	at    float64
	color colladarender.Color
}

// plasma holds matplotlib's "plasma" color map, sampled at every 32nd of its 256 entries (plus the last one).
var plasma = []stop{
	{0.0 / 255, colladarender.NewColor(0.050383, 0.029803, 0.527975, 1)},
	{32.0 / 255, colladarender.NewColor(0.287076, 0.010855, 0.627295, 1)},
	{64.0 / 255, colladarender.NewColor(0.494877, 0.011990, 0.657865, 1)},
	{96.0 / 255, colladarender.NewColor(0.665129, 0.138566, 0.585582, 1)},
	{128.0 / 255, colladarender.NewColor(0.798216, 0.280197, 0.469538, 1)},
	{160.0 / 255, colladarender.NewColor(0.897564, 0.422900, 0.363701, 1)},
	{192.0 / 255, colladarender.NewColor(0.963394, 0.573218, 0.256891, 1)},
	{224.0 / 255, colladarender.NewColor(0.987819, 0.745049, 0.177103, 1)},
	{255.0 / 255, colladarender.NewColor(0.940015, 0.975158, 0.131326, 1)},
}

// interpolated builds n+1 evenly spaced colors, blending linearly between the two stops around each one.
func interpolated(stops []stop) func(n int) (colladarender.ColorMap, error) {
	return func(n int) (colladarender.ColorMap, error) {

		colorMap := make(colladarender.ColorMap, n+1)

		next := 1
		for i := range colorMap {

			t := float64(i) / float64(n)

			for next < len(stops)-1 && t > stops[next].at {
				next++
			}

			from, to := stops[next-1], stops[next]
			colorMap[i] = from.color.Blend(to.color, (t-from.at)/(to.at-from.at))

		}

		return colorMap, nil

	}
}

func sampled(newColorMap func() palette.ColorMap) func(n int) (colladarender.ColorMap, error) {
	return func(n int) (colladarender.ColorMap, error) {
		return FromColorMap(newColorMap(), n)
	}
}

// Palette returns the named color map. n is the number of colors between anchors for "bezier" (which then has 3n+1
// colors), and otherwise the palette is sampled into n+1 colors. Unknown names, or an n below 1, give a UserError.
func Palette(name string, n int) (colladarender.ColorMap, error) {

	if n < 1 {
		return nil, colladarender.NewUserError("palette segment count must be at least 1, not %d", n)
	}

	build, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, colladarender.NewUserError("unknown palette %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	return build(n)

}

// Names returns the name of every palette, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FromPalette converts a gonum palette.Palette into a ColorMap, keeping its colors in order.
func FromPalette(p palette.Palette) colladarender.ColorMap {
	colors := p.Colors()
	colorMap := make(colladarender.ColorMap, len(colors))
	for i, c := range colors {
		colorMap[i] = colladarender.NewColorFromStd(c)
	}
	return colorMap
}

// FromColorMap samples a gonum palette.ColorMap evenly from its minimum to its maximum into n+1 colors.
// The ColorMap's range is set to 0-1 first.
func FromColorMap(cm palette.ColorMap, n int) (colladarender.ColorMap, error) {

	cm.SetMin(0)
	cm.SetMax(1)

	colorMap := make(colladarender.ColorMap, n+1)

	for i := range colorMap {

		c, err := cm.At(float64(i) / float64(n))
		if err != nil {
			return nil, err
		}

		colorMap[i] = colladarender.NewColorFromStd(c)

	}

	return colorMap, nil

}
