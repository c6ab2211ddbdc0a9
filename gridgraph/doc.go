// Package gridgraph treats a rasterised terrain as a graph, enabling
// bounds-checked neighbour enumeration and passable-region analysis.
//
// What:
//
//   - Grid wraps two aligned rectangular layers: terrain classes and elevations.
//   - Coordinate is a fixed-width integer (column, row) pair, never a float.
//   - Identifies connected components of passable cells under a terrain.Model.
//
// Why:
//
//   - Route planning: A* and halo expansion walk the grid through Neighbors.
//   - Reachability: two waypoints in different components can never be joined.
//
// Complexity:
//
//   - NewGrid:             O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//   - InBounds, Index:     O(1).
//
// Edges:
//
//   - The grid border is a wall: Neighbors never yields an out-of-bounds cell,
//     and CheckBounds rejects out-of-bounds waypoints with ErrOutOfBounds.
//
// Errors:
//
//   - ErrEmptyGrid: a layer has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDimensionMismatch: terrain and elevation layers differ in size.
//   - ErrOutOfBounds: coordinate outside the grid.
package gridgraph
