// Package astar implements A* search over a terrain grid with a composite,
// non-uniform edge cost.
//
// Overview:
//
//   - Search finds a path between two cells of a gridgraph.Grid, moving in
//     4 directions only, using the heuristic and edge costs of a cost.Model.
//   - Reconstruct walks the predecessor chain of a finished search back to
//     its source; Reverse turns it into source → target order.
//
// Algorithm:
//
//   - The source is recorded with no predecessor, priority h(source) and
//     zero cost and distance, and pushed onto the frontier.
//   - Each step pops the lowest-priority entry. Entries for finalised cells
//     are stale and dropped; every other cell is expanded exactly once and
//     then finalised for good.
//   - Expansion visits the orthogonal neighbours that are inside the grid,
//     passable and not finalised. A neighbour's candidate priority is
//     h(neighbour) + g(current) + EdgeCost(current, neighbour); its record is
//     (over)written and a new frontier entry pushed only when there was no
//     record or the candidate is strictly lower.
//
// Frontier policy:
//
//   - Lazy deletion: a relaxed cell is pushed again rather than decreased in
//     place. Duplicates coexist until the cell is finalised; a popped entry
//     for a finalised cell is always discarded, never reprocessed.
//
// Termination:
//
//   - TerminateOnDiscovery (default): stop as soon as a discovered neighbour
//     has heuristic exactly zero. The heuristic mixes planar cells with
//     elevation and is not admissible, and the goal test fires before the
//     target's own entry is popped, so the result is not guaranteed optimal.
//   - TerminateOnPop: stop when the target itself is popped.
//   - In both modes a source that equals the target yields a single-cell path,
//     even when that cell is impassable.
//
// Unreachable targets:
//
//   - When the frontier empties (or WithMaxExpansions is hit) Search still
//     succeeds: Result.Reached is false, Path is empty and Partial holds the
//     chain to the finalised cell closest to the target.
//
// Complexity:
//
//   - Time:  O(N log N) for N discovered cells.
//   - Space: O(N); all search state is local to one call.
//
// Thread safety:
//
//   - Search shares only the read-only grid and models; concurrent searches
//     over the same cost.Model are safe.
package astar
