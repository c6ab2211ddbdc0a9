package render

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/terrapath/gridgraph"
	"github.com/katalvlaran/terrapath/planner"
)

// FeatureCollection returns one feature per segment, in chain order.
// Coordinates are raster cells (x = column, y = row), not geographic.
//
// The geometry is the path of a reached segment, otherwise its partial
// chain: a LineString for two or more cells, a Point for one and an empty
// LineString for none.
func FeatureCollection(segs []planner.Segment) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range segs {
		cells := s.Path
		if !s.Reached {
			cells = s.Partial
		}

		f := geojson.NewFeature(geometry(cells))
		f.Properties["index"] = s.Index
		f.Properties["from"] = s.Source.String()
		f.Properties["to"] = s.Target.String()
		f.Properties["reached"] = s.Reached
		f.Properties["truncated"] = s.Truncated
		f.Properties["distance"] = s.Distance
		f.Properties["cost"] = s.Cost
		f.Properties["expanded"] = s.Expanded
		if s.Err != nil {
			f.Properties["error"] = s.Err.Error()
		}
		fc.Append(f)
	}
	return fc
}

func geometry(cells []gridgraph.Coordinate) orb.Geometry {
	if len(cells) == 1 {
		return point(cells[0])
	}
	ls := make(orb.LineString, 0, len(cells))
	for _, c := range cells {
		ls = append(ls, point(c))
	}
	return ls
}

func point(c gridgraph.Coordinate) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}

// WriteGeoJSON writes the FeatureCollection of segs to w.
func WriteGeoJSON(w io.Writer, segs []planner.Segment) error {
	data, err := FeatureCollection(segs).MarshalJSON()
	if err != nil {
		return fmt.Errorf("render: marshal geojson: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("render: write geojson: %w", err)
	}
	return nil
}
