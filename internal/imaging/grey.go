package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates a grid with zero width or height.
	ErrEmptyGrid = errors.New("imaging: grid must have at least one row and one column")
	// ErrRaggedGrid indicates input rows of differing lengths.
	ErrRaggedGrid = errors.New("imaging: all grid rows must have the same length")
	// ErrOutOfBounds indicates an access outside [0,height)×[0,width).
	ErrOutOfBounds = errors.New("imaging: coordinate outside grid bounds")
)

// GreyGrid is an immutable rectangular grid of greyscale intensities
// (0 = black, 255 = white), stored row-major. It is built once from a
// decoded image and read-only afterwards, so it may be shared freely.
type GreyGrid struct {
	width  int
	height int
	pix    []uint8 // row-major, len = width*height
}

// NewGreyGrid converts an image to a greyscale grid using bild's
// luminance-weighted conversion. Returns ErrEmptyGrid for a zero-sized
// image.
func NewGreyGrid(img image.Image) (*GreyGrid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	grey := effect.Grayscale(img)

	g := &GreyGrid{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
	gb := grey.Bounds()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			// All three channels are equal after conversion; take R.
			off := grey.PixOffset(gb.Min.X+col, gb.Min.Y+row)
			g.pix[row*width+col] = grey.Pix[off]
		}
	}

	return g, nil
}

// NewGreyGridFromValues builds a grid directly from intensity rows.
// Returns ErrEmptyGrid for empty input and ErrRaggedGrid if rows differ
// in length. The values are copied; the caller keeps ownership of rows.
func NewGreyGridFromValues(rows [][]uint8) (*GreyGrid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])

	g := &GreyGrid{
		width:  width,
		height: len(rows),
		pix:    make([]uint8, 0, width*len(rows)),
	}
	for _, r := range rows {
		if len(r) != width {
			return nil, ErrRaggedGrid
		}
		g.pix = append(g.pix, r...)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *GreyGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *GreyGrid) Height() int { return g.height }

// InBounds reports whether (row, col) lies within the grid.
func (g *GreyGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the intensity at (row, col), or ErrOutOfBounds (wrapped with
// the offending coordinate) when outside the grid.
func (g *GreyGrid) At(row, col int) (uint8, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("(%d,%d) on %dx%d grid: %w", row, col, g.width, g.height, ErrOutOfBounds)
	}
	return g.pix[row*g.width+col], nil
}

// AtUnchecked returns the intensity at (row, col) without bounds checks.
// The caller must guarantee InBounds; this is the hot path the detection
// engine uses with generated in-bounds coordinates.
func (g *GreyGrid) AtUnchecked(row, col int) uint8 {
	return g.pix[row*g.width+col]
}

// Image renders the grid as an 8-bit greyscale image with origin (0,0).
// Used as the base layer for highlight compositing.
func (g *GreyGrid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			img.SetGray(col, row, color.Gray{Y: g.pix[row*g.width+col]})
		}
	}
	return img
}
