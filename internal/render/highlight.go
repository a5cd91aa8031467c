package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	dimg "github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samfallible/bad-pixels/internal/imaging"
	"github.com/samfallible/bad-pixels/internal/islands"
)

// DefaultHighlightColor is the color bad-pixel interiors are painted with.
const DefaultHighlightColor = "#FF0000"

// ParseColor parses a hex color string like "#FF0000" into an opaque RGBA.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid highlight color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// HighlightMap returns the coordinate-to-color mapping for a catalog:
// every interior pixel of every island maps to the highlight color.
// Perimeter pixels are deliberately absent. The map is a pure function of
// the catalog, so repeated calls yield identical mappings.
func HighlightMap(catalog *islands.Catalog, hex string) (map[islands.Coord]color.NRGBA, error) {
	highlight, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}

	m := make(map[islands.Coord]color.NRGBA)
	for _, isl := range catalog.Islands() {
		for _, c := range isl.Interior {
			m[c] = highlight
		}
	}
	return m, nil
}

// Options configure the highlight rendering.
type Options struct {
	// Color is the hex highlight color for island interiors.
	Color string
	// Labels draws each island's ID next to its bounding box.
	Labels bool
}

// DefaultOptions returns the rendering defaults: red highlights, no labels.
func DefaultOptions() Options {
	return Options{Color: DefaultHighlightColor}
}

// Highlight composites the catalog's highlight map over the greyscale
// rendering of the grid and returns the result. The grid itself is never
// mutated.
func Highlight(grid *imaging.GreyGrid, catalog *islands.Catalog, opts Options) (*image.NRGBA, error) {
	highlights, err := HighlightMap(catalog, opts.Color)
	if err != nil {
		return nil, err
	}

	out := dimg.Clone(grid.Image())
	for c, col := range highlights {
		out.SetNRGBA(c.Col, c.Row, col)
	}

	if opts.Labels {
		labelColor := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		bgColor := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
		for _, isl := range catalog.Islands() {
			b := isl.Metrics.Bounds
			drawLabel(out, b.Right+2, b.Top, fmt.Sprintf("%d", isl.ID), labelColor, bgColor)
		}
	}

	return out, nil
}

// WritePNG encodes an image to a PNG file. The file is created (or
// truncated) at path; encode failures remove nothing the caller has not
// already accepted losing.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode output image: %w", err)
	}
	return nil
}

// drawLabel draws a small numeric label at the given position using a
// 3x5 pixel digit font. Positions outside the image are clipped.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.NRGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	// Background pad so the label stays readable over highlights.
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.SetNRGBA(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px, py := cx+col, y+row
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					img.SetNRGBA(px, py, fg)
				}
			}
		}
		cx += charWidth
	}
}
