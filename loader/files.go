package loader

import (
	"fmt"
	"image"
	"os"

	"github.com/katalvlaran/terrapath/gridgraph"
)

// Scene is a loaded map: the normalised terrain raster and the grid built
// from it and the elevation table.
type Scene struct {
	Image *image.NRGBA
	Grid  *gridgraph.Grid
}

// LoadScene reads the terrain raster and the elevation table and builds the
// grid. The elevation table is trimmed to the raster size.
func LoadScene(terrainPath, elevationPath string) (*Scene, error) {
	img, err := TerrainFile(terrainPath)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()

	f, err := os.Open(elevationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	elev, err := Elevation(f, b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	g, err := gridgraph.NewGrid(Classes(img), elev)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return &Scene{Image: img, Grid: g}, nil
}

// TerrainFile opens path and decodes it with Terrain.
func TerrainFile(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	return Terrain(f)
}

// WaypointsFile opens path and parses it with Waypoints.
func WaypointsFile(path string) ([]gridgraph.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()
	return Waypoints(f)
}
