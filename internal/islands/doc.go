// Package islands implements the core bad-pixel detection engine: it
// partitions the dark pixels of a greyscale grid into maximal connected
// regions ("islands") and computes each region's perimeter.
//
// # Coordinate System
//
// All coordinates are 0-based (row, col) pairs with origin at the top-left:
//   - Row: vertical position (0 = topmost row, grows downward)
//   - Col: horizontal position (0 = leftmost column, grows rightward)
//
// Coordinates are totally ordered row-major (row first, then column). All
// membership slices produced by this package are sorted in that order, so
// output is deterministic for a given input grid.
//
// # Definitions
//
// A pixel is dark when its intensity satisfies the Classifier predicate.
// An island is a maximal group of dark pixels connected under the adjacency
// rule (4-connectivity by default). An island's interior is its member
// pixels; its perimeter is the set of in-bounds pixels that are not members
// but are adjacent to at least one member.
//
// # Determinism
//
// Islands are discovered by a row-major scan and numbered sequentially from
// 1 in discovery order. Running the engine twice on the same grid yields
// identical IDs, interiors, and perimeters.
//
// # Concurrency
//
// One analysis is a single-threaded, single-pass batch computation. The
// Grid input is read-only and may be shared; the visited markers used
// during traversal are owned by the finder for the duration of one call.
package islands
