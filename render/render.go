// Package render draws planned routes onto the terrain raster and exports
// them as GeoJSON.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
)

// Default overlay colours.
var (
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Orange  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// Option configures the overlay.
type Option func(*Options)

// Options holds overlay colours and the caption switch.
type Options struct {
	Halo    color.Color
	Path    color.Color
	Partial color.Color // nil: partial chains are not drawn
	Text    color.Color
	Caption bool
}

// DefaultOptions returns cyan halos, magenta paths, no partial chains and a
// black distance caption.
func DefaultOptions() Options {
	return Options{
		Halo:    Cyan,
		Path:    Magenta,
		Text:    color.Black,
		Caption: true,
	}
}

// WithPartial draws the closest-approach chain of unreached segments in c.
func WithPartial(c color.Color) Option {
	return func(o *Options) { o.Partial = c }
}

// WithoutCaption suppresses the distance caption.
func WithoutCaption() Option {
	return func(o *Options) { o.Caption = false }
}

// WithColors overrides the halo and path colours; nil keeps the default.
func WithColors(halo, path color.Color) Option {
	return func(o *Options) {
		if halo != nil {
			o.Halo = halo
		}
		if path != nil {
			o.Path = path
		}
	}
}

// Overlay paints onto a copy of base: every halo cell, then the path cells of
// every reached segment, then the caption "Distance: <total>". base itself
// is left untouched.
func Overlay(base image.Image, halos [][]gridgraph.Coordinate, segs []planner.Segment, opts ...Option) image.Image {
	return overlay(base, halos, segs, opts).Image()
}

func overlay(base image.Image, halos [][]gridgraph.Coordinate, segs []planner.Segment, opts []Option) *gg.Context {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dc := gg.NewContextForImage(base)
	origin := base.Bounds().Min

	plot := func(cells []gridgraph.Coordinate, c color.Color) {
		dc.SetColor(c)
		for _, p := range cells {
			dc.SetPixel(origin.X+p.X, origin.Y+p.Y)
		}
	}
	for _, h := range halos {
		plot(h, o.Halo)
	}
	for _, s := range segs {
		switch {
		case s.Err != nil:
		case s.Reached:
			plot(s.Path, o.Path)
		case o.Partial != nil:
			plot(s.Partial, o.Partial)
		}
	}

	if o.Caption {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(o.Text)
		dc.DrawStringAnchored(Caption(segs), 10, 10, 0, 1)
	}

	return dc
}

// Caption is the text written on the map.
func Caption(segs []planner.Segment) string {
	return fmt.Sprintf("Distance: %.2f", planner.TotalDistance(segs))
}

// WritePNG encodes the overlay as PNG to w.
func WritePNG(w io.Writer, base image.Image, halos [][]gridgraph.Coordinate, segs []planner.Segment, opts ...Option) error {
	dc := overlay(base, halos, segs, opts)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the overlay to path.
func SavePNG(path string, base image.Image, halos [][]gridgraph.Coordinate, segs []planner.Segment, opts ...Option) error {
	dc := overlay(base, halos, segs, opts)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}
