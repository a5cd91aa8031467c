package islands

import "fmt"

// Catalog is the ordered, immutable collection of fully described islands
// from one analysis run. Iteration order is ID order, which equals
// discovery order. A Catalog is built once and then only read.
type Catalog struct {
	islands []Island
	byID    map[int]int // ID -> index into islands
}

// NewCatalog builds a catalog from completed islands. The slice is taken
// over by the catalog and must not be mutated afterwards.
func NewCatalog(found []Island) *Catalog {
	byID := make(map[int]int, len(found))
	for i, isl := range found {
		byID[isl.ID] = i
	}
	return &Catalog{islands: found, byID: byID}
}

// Len returns the number of islands in the catalog.
func (c *Catalog) Len() int { return len(c.islands) }

// Islands returns the islands in ID order. The returned slice is the
// catalog's backing store; callers must treat it as read-only.
func (c *Catalog) Islands() []Island { return c.islands }

// ByID looks up an island by its ID.
//
// Returns ErrUnknownIslandID (wrapped with the offending ID) if no island
// carries the ID. A failed lookup does not invalidate the catalog.
func (c *Catalog) ByID(id int) (Island, error) {
	i, ok := c.byID[id]
	if !ok {
		return Island{}, fmt.Errorf("island %d: %w", id, ErrUnknownIslandID)
	}
	return c.islands[i], nil
}

// Analyze runs the full detection engine over a grid: find the islands,
// trace each perimeter, measure each island, and assemble the catalog.
//
// This is the single entry point callers outside the package should use;
// it guarantees the Island invariants (disjoint interiors covering all
// dark pixels, perimeters matching the connectivity rule).
func Analyze(grid Grid, classify Classifier, conn Connectivity) (*Catalog, error) {
	finder := NewFinder(classify, conn)
	found, err := finder.Find(grid)
	if err != nil {
		return nil, err
	}

	for i := range found {
		found[i].Perimeter = TracePerimeter(grid, found[i].Interior, conn)
		found[i].Metrics = MeasureIsland(found[i].Interior)
	}

	return NewCatalog(found), nil
}
