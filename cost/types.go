package cost

import (
	"errors"
	"math"
)

// Sentinel errors returned by the cost model.
var (
	// ErrImpassable indicates the destination cell of a move cannot be entered.
	ErrImpassable = errors.New("cost: destination cell is impassable")

	// ErrBadCellSize indicates a non-positive or non-finite cell dimension.
	ErrBadCellSize = errors.New("cost: cell dimensions must be positive and finite")

	// ErrNilInput indicates a nil grid or terrain model.
	ErrNilInput = errors.New("cost: grid and terrain model must be non-nil")
)

// Reference cell dimensions of the orienteering map raster, in metres.
const (
	// DefaultCellWidth is the real-world extent of a cell along a row (X).
	DefaultCellWidth = 10.29
	// DefaultCellHeight is the real-world extent of a cell along a column (Y).
	DefaultCellHeight = 7.55
)

// Options configures the cost model.
//
// CellWidth  – metres covered by a move that keeps the row (X changes).
// CellHeight – metres covered by a move that keeps the column (Y changes).
type Options struct {
	CellWidth  float64
	CellHeight float64
}

// Option represents a functional option for configuring a Model.
type Option func(*Options)

// WithCellSize overrides the real-world cell dimensions.
// Invalid values are reported by New as ErrBadCellSize.
func WithCellSize(width, height float64) Option {
	return func(o *Options) {
		o.CellWidth = width
		o.CellHeight = height
	}
}

// DefaultOptions returns Options with the reference cell dimensions.
func DefaultOptions() Options {
	return Options{
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
	}
}

func (o Options) validate() error {
	for _, v := range []float64{o.CellWidth, o.CellHeight} {
		if !(v > 0) || math.IsInf(v, 0) {
			return ErrBadCellSize
		}
	}
	return nil
}
