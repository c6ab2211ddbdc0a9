// Package loader reads the three run inputs: the terrain raster, the
// elevation table and the waypoint list.
//
// Every failure wraps ErrLoad; a run must not start searching on partial
// input.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp" // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register decoder

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/terrain"
)

var (
	// ErrLoad wraps every loader failure.
	ErrLoad = errors.New("loader: cannot load input")

	// ErrDimension reports an elevation table smaller than the terrain raster.
	ErrDimension = errors.New("loader: elevation smaller than terrain")

	// ErrSyntax reports a malformed line in a text input.
	ErrSyntax = errors.New("loader: malformed line")
)

// maxLine bounds a single text line; elevation rows can be wide.
const maxLine = 4 << 20

// Terrain decodes a raster image and normalises it to NRGBA with its origin
// at (0,0).
func Terrain(r io.Reader) (*image.NRGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: terrain: %w", ErrLoad, err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: terrain: empty %s image", ErrLoad, format)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst, nil
}

// Classes converts every pixel of img to its terrain class, indexed [y][x].
func Classes(img image.Image) [][]terrain.Class {
	b := img.Bounds()
	out := make([][]terrain.Class, b.Dy())
	for y := range out {
		row := make([]terrain.Class, b.Dx())
		for x := range row {
			row[x] = terrain.ClassOf(img.At(b.Min.X+x, b.Min.Y+y))
		}
		out[y] = row
	}
	return out
}

// Elevation parses a whitespace-separated table of heights, one row per
// line, and returns exactly height rows of width values.
//
// Rows and columns beyond the requested size are ignored; blank lines are
// skipped. A table with fewer rows or a row with fewer values than needed
// yields ErrDimension.
func Elevation(r io.Reader, width, height int) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	out := make([][]float64, 0, height)
	line := 0
	for len(out) < height && sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < width {
			return nil, fmt.Errorf("%w: elevation line %d: %d values, need %w of %d",
				ErrLoad, line, len(fields), ErrDimension, width)
		}
		row := make([]float64, width)
		for x := range row {
			v, err := strconv.ParseFloat(fields[x], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: elevation line %d column %d: %w: %w",
					ErrLoad, line, x+1, ErrSyntax, err)
			}
			row[x] = v
		}
		out = append(out, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: elevation: %w", ErrLoad, err)
	}
	if len(out) < height {
		return nil, fmt.Errorf("%w: elevation: %d rows, need %w of %d",
			ErrLoad, len(out), ErrDimension, height)
	}
	return out, nil
}

// Waypoints parses "x y" integer pairs, one per line. Blank lines are
// skipped. Bounds are not checked here.
func Waypoints(r io.Reader) ([]gridgraph.Coordinate, error) {
	sc := bufio.NewScanner(r)
	var out []gridgraph.Coordinate
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: waypoints line %d: %w: want 2 values, got %d",
				ErrLoad, line, ErrSyntax, len(fields))
		}
		x, errX := strconv.Atoi(fields[0])
		y, errY := strconv.Atoi(fields[1])
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("%w: waypoints line %d: %w: %w", ErrLoad, line, ErrSyntax, err)
		}
		out = append(out, gridgraph.C(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: waypoints: %w", ErrLoad, err)
	}
	return out, nil
}
