package main

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/solarlune/colladarender"
	"github.com/solarlune/colladarender/colors"
	"github.com/spf13/pflag"
)

// Config holds every render setting that can be given on the command line or in a TOML config file.
type Config struct {
	Output        string  `toml:"output"`         // Where to write the PNG; empty means renderings/<input name>.png
	Scale         int     `toml:"scale"`          // Pixels per model unit
	Palette       string  `toml:"palette"`        // Name of the palette heights are colored with
	Segments      int     `toml:"segments"`       // Colors between palette anchors
	OutlineOffset float64 `toml:"outline_offset"` // How far up the palette outline colors are picked from
	Ease          string  `toml:"ease"`           // Name of the easing applied to normalized heights
	Supersample   int     `toml:"supersample"`    // Render this many times larger, then shrink
}

// DefaultConfig returns a Config with the default render settings.
func DefaultConfig() *Config {
	return &Config{
		Scale:         colladarender.DefaultScale,
		Palette:       colors.DefaultPalette,
		Segments:      colladarender.DefaultColorMapSegments,
		OutlineOffset: colladarender.DefaultOutlineOffset,
		Ease:          "linear",
		Supersample:   1,
	}
}

// Open reads the TOML config file at path into the Config. Settings the file doesn't mention keep their current values.
// Unknown settings are an error.
func (cfg *Config) Open(path string) error {

	data, err := os.ReadFile(path)
	if err != nil {
		return colladarender.WrapUserError(err, "can't read config file")
	}

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if errors.As(err, &strictErr) {
			return colladarender.WrapUserError(errors.New(strictErr.String()), "%s: unknown settings", path)
		}
		return colladarender.WrapUserError(err, "%s: malformed config file", path)
	}

	return nil

}

// BindFlags registers a flag for each setting on fs, storing parsed values in the Config.
func (cfg *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output PNG path (default renderings/<input name>.png)")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per model unit")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "palette to color heights with")
	fs.IntVar(&cfg.Segments, "segments", cfg.Segments, "number of colors between palette anchors")
	fs.Float64Var(&cfg.OutlineOffset, "outline-offset", cfg.OutlineOffset, "how far up the palette triangle outlines are colored from")
	fs.StringVar(&cfg.Ease, "ease", cfg.Ease, "easing applied to normalized heights")
	fs.IntVar(&cfg.Supersample, "supersample", cfg.Supersample, "render this many times larger and shrink, to smooth edges")
}

// ApplyFlags copies the settings whose flags were set on fs from flagged (the Config the flags were bound to) into cfg.
// This lets flags override a config file.
func (cfg *Config) ApplyFlags(fs *pflag.FlagSet, flagged *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = flagged.Output
		case "scale":
			cfg.Scale = flagged.Scale
		case "palette":
			cfg.Palette = flagged.Palette
		case "segments":
			cfg.Segments = flagged.Segments
		case "outline-offset":
			cfg.OutlineOffset = flagged.OutlineOffset
		case "ease":
			cfg.Ease = flagged.Ease
		case "supersample":
			cfg.Supersample = flagged.Supersample
		}
	})
}

// RenderOptions builds the RenderOptions the Config describes.
func (cfg *Config) RenderOptions() (*colladarender.RenderOptions, error) {

	colorMap, err := colors.Palette(cfg.Palette, cfg.Segments)
	if err != nil {
		return nil, err
	}

	opts := colladarender.DefaultRenderOptions()

	if err := opts.SetEasing(cfg.Ease); err != nil {
		return nil, err
	}

	opts.Scale = cfg.Scale
	opts.ColorMap = colorMap
	opts.OutlineOffset = cfg.OutlineOffset
	opts.Supersample = cfg.Supersample

	return opts, opts.Validate()

}
