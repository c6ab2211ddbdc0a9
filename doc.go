// Package terrapath plans orienteering routes over terrain maps.
//
// A map is a raster whose pixel colours classify the terrain (open land,
// forest, marsh, road ...) plus an elevation sample per pixel. Given an
// ordered list of waypoints, terrapath finds a route between each
// consecutive pair with A* under a cost model that penalises climbing and
// slow ground, then draws the route and a small halo around every waypoint.
//
// Packages:
//
//	terrain/   - colour classes and the class → speed-modifier table
//	gridgraph/ - the immutable grid: bounds, neighbours, 3-D distance, regions
//	cost/      - planar step, elevation delta and terrain effort per move
//	astar/     - A* search and predecessor-chain reconstruction
//	halo/      - bounded breadth-first neighbourhood of a waypoint
//	planner/   - waypoint chains, optionally with concurrent segments
//	loader/    - terrain raster, elevation table and waypoint list readers
//	render/    - PNG overlay and GeoJSON export
//	config/    - YAML configuration with environment overrides
//
// Quick ASCII example (M = marsh):
//
//	S . .
//	. M .
//	. . T
//
// The search from S to T walks around the marsh; every route over flat
// ground has the same length, 2·10.29 m + 2·7.55 m.
//
// The command line front end lives in cmd/terrapath:
//
//	go install github.com/katalvlaran/terrapath/cmd/terrapath@latest
package terrapath
