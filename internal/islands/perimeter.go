package islands

// TracePerimeter computes the perimeter of an island interior: the set of
// in-bounds coordinates that are not interior members but are adjacent to
// at least one interior coordinate under the given connectivity rule.
//
// Membership in the perimeter does not depend on the bordering pixel's own
// intensity. A dark non-member neighbor cannot occur when the interior came
// from Find with the same connectivity, since connectivity guarantees
// adjacent dark pixels share an island; if one shows up anyway that is a
// finder defect, not a tracing concern.
//
// The result is deduplicated, sorted row-major, and empty (non-nil) for an
// empty interior. Work is O(len(interior)) for a fixed connectivity.
func TracePerimeter(grid Grid, interior []Coord, conn Connectivity) []Coord {
	width, height := grid.Width(), grid.Height()
	offsets := conn.offsets()

	member := make(map[Coord]struct{}, len(interior))
	for _, c := range interior {
		member[c] = struct{}{}
	}

	seen := make(map[Coord]struct{})
	perimeter := make([]Coord, 0, len(interior))

	for _, c := range interior {
		for _, d := range offsets {
			n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
			if n.Row < 0 || n.Row >= height || n.Col < 0 || n.Col >= width {
				// Beyond the grid edge: not an error, just no
				// perimeter member on that side.
				continue
			}
			if _, ok := member[n]; ok {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			perimeter = append(perimeter, n)
		}
	}

	sortRowMajor(perimeter)
	return perimeter
}
