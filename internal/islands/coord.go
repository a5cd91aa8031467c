package islands

import "sort"

// Coord identifies a single pixel by row and column, 0-based from the
// top-left corner of the grid.
type Coord struct {
	Row int `json:"row"` // Vertical position (0 = topmost)
	Col int `json:"col"` // Horizontal position (0 = leftmost)
}

// Less reports whether c precedes other in row-major order (row first,
// then column). This is the total order used for all membership output.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Connectivity selects the adjacency rule used when growing islands.
type Connectivity int

const (
	// Conn4 uses orthogonal neighbors only: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 additionally includes the four diagonal neighbors. Diagonal
	// merging changes which regions count as one island; Conn4 is the
	// default and the contractual behavior of the CLI.
	Conn8
)

// offsets returns the (row, col) neighbor deltas for the rule.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{
			{-1, 0}, {1, 0}, {0, -1}, {0, 1},
			{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
		}
	}
	return [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
}

// sortRowMajor sorts coords in place into row-major order.
func sortRowMajor(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})
}
