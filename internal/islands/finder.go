package islands

// Grid is the read-only pixel source the engine operates on. It is
// satisfied by imaging.GreyGrid. Implementations must be rectangular:
// AtUnchecked is only called with 0 <= row < Height(), 0 <= col < Width().
type Grid interface {
	Width() int
	Height() int
	AtUnchecked(row, col int) uint8
}

// Island represents one maximal connected group of dark pixels.
//
// Interior holds the member pixels; Perimeter holds the in-bounds
// non-member pixels adjacent to the interior (filled in by
// TracePerimeter, empty until then). Both slices are sorted row-major.
// Islands are immutable once the catalog is built.
type Island struct {
	// ID is the stable island identifier, assigned sequentially from 1
	// in discovery order of the row-major scan.
	ID int `json:"id"`

	// Interior is the set of dark pixels belonging to the island.
	Interior []Coord `json:"interior"`

	// Perimeter is the set of in-bounds pixels bordering the interior.
	// Pixels beyond the grid edge are never perimeter members; an island
	// touching the edge simply has fewer perimeter pixels on that side.
	Perimeter []Coord `json:"perimeter"`

	// Metrics summarizes the island's geometry.
	Metrics Metrics `json:"metrics"`
}

// Finder partitions the dark pixels of a grid into maximal connected
// components. A Finder is stateless between calls; the visited markers
// it allocates are scoped to a single Find invocation.
type Finder struct {
	classify Classifier
	conn     Connectivity
}

// NewFinder creates a Finder using the given darkness predicate and
// adjacency rule. A nil classify falls back to DarkBelow(DefaultThreshold).
func NewFinder(classify Classifier, conn Connectivity) *Finder {
	if classify == nil {
		classify = DarkBelow(DefaultThreshold)
	}
	return &Finder{classify: classify, conn: conn}
}

// Find scans the grid in row-major order and returns every island, in
// discovery order with IDs starting at 1. Interiors are sorted row-major;
// perimeters and metrics are not populated here (see TracePerimeter and
// MeasureIsland).
//
// Returns ErrEmptyGrid if the grid has zero width or height. A grid with
// no dark pixels yields an empty slice. Each cell is visited exactly
// once, so total work is O(width × height).
func (f *Finder) Find(grid Grid) ([]Island, error) {
	width, height := grid.Width(), grid.Height()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	visited := make([]bool, width*height)
	offsets := f.conn.offsets()

	var found []Island
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if visited[row*width+col] || !f.classify(grid.AtUnchecked(row, col)) {
				continue
			}
			interior := f.fill(grid, visited, Coord{Row: row, Col: col}, offsets)
			sortRowMajor(interior)
			found = append(found, Island{
				ID:       len(found) + 1,
				Interior: interior,
			})
		}
	}

	return found, nil
}

// fill performs an iterative stack-based flood fill from start, collecting
// every connected dark pixel. Stack-based rather than recursive so large
// islands cannot overflow the goroutine stack.
func (f *Finder) fill(grid Grid, visited []bool, start Coord, offsets [][2]int) []Coord {
	width, height := grid.Width(), grid.Height()

	stack := []Coord{start}
	visited[start.Row*width+start.Col] = true
	interior := make([]Coord, 0, 16)

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		interior = append(interior, c)

		for _, d := range offsets {
			row, col := c.Row+d[0], c.Col+d[1]
			if row < 0 || row >= height || col < 0 || col >= width {
				continue
			}
			idx := row*width + col
			if visited[idx] || !f.classify(grid.AtUnchecked(row, col)) {
				continue
			}
			visited[idx] = true
			stack = append(stack, Coord{Row: row, Col: col})
		}
	}

	return interior
}
