package render

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	dimg "github.com/disintegration/imaging"

	"github.com/samfallible/bad-pixels/internal/imaging"
	"github.com/samfallible/bad-pixels/internal/islands"
)

// Snippet rendering defaults. Margin is grid pixels of context kept around
// the island's bounding box; scale is the integer magnification factor.
const (
	SnippetMargin = 4
	SnippetScale  = 8
)

// Snippet crops the highlighted rendering down to one island's bounding
// box plus margin and magnifies it with nearest-neighbor resampling, so
// individual bad pixels stay crisp at the larger size.
func Snippet(highlighted *image.NRGBA, grid *imaging.GreyGrid, isl islands.Island, margin, scale int) *image.NRGBA {
	b := isl.Metrics.Bounds

	x1 := b.Left - margin
	y1 := b.Top - margin
	x2 := b.Right + margin + 1
	y2 := b.Bottom + margin + 1
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > grid.Width() {
		x2 = grid.Width()
	}
	if y2 > grid.Height() {
		y2 = grid.Height()
	}

	crop := dimg.Crop(highlighted, image.Rect(x1, y1, x2, y2))
	return dimg.Resize(crop, (x2-x1)*scale, (y2-y1)*scale, dimg.NearestNeighbor)
}

// WriteSnippets writes one magnified close-up PNG per island into dir,
// named island_<id>.png. The directory is created if missing. Returns on
// the first failure; files already written are left in place.
func WriteSnippets(dir string, highlighted *image.NRGBA, grid *imaging.GreyGrid, catalog *islands.Catalog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snippet directory: %w", err)
	}

	for _, isl := range catalog.Islands() {
		snip := Snippet(highlighted, grid, isl, SnippetMargin, SnippetScale)
		path := filepath.Join(dir, fmt.Sprintf("island_%d.png", isl.ID))
		if err := WritePNG(path, snip); err != nil {
			return fmt.Errorf("island %d snippet: %w", isl.ID, err)
		}
	}
	return nil
}
