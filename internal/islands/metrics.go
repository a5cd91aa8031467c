package islands

import "math"

// Bounds is the axis-aligned bounding box of an island's interior.
//
// The coordinate convention follows the rest of the package:
//   - (Top, Left) is the first interior row/column (inclusive)
//   - (Bottom, Right) is the last interior row/column (inclusive)
type Bounds struct {
	Top    int `json:"top"`    // First row (inclusive)
	Left   int `json:"left"`   // First column (inclusive)
	Bottom int `json:"bottom"` // Last row (inclusive)
	Right  int `json:"right"`  // Last column (inclusive)
}

// Width is the horizontal extent of the box in pixels.
func (b Bounds) Width() int { return b.Right - b.Left + 1 }

// Height is the vertical extent of the box in pixels.
func (b Bounds) Height() int { return b.Bottom - b.Top + 1 }

// Area is Width × Height.
func (b Bounds) Area() int { return b.Width() * b.Height() }

// Metrics summarizes the geometry of one island.
type Metrics struct {
	// PixelCount is the number of interior pixels.
	PixelCount int `json:"pixel_count"`

	// Bounds is the bounding box enclosing the interior.
	Bounds Bounds `json:"bounds"`

	// CentroidRow and CentroidCol are the mean interior coordinates,
	// rounded to two decimals.
	CentroidRow float64 `json:"centroid_row"`
	CentroidCol float64 `json:"centroid_col"`

	// FillRatio is PixelCount divided by the bounding box area (0-1],
	// rounded to three decimals. 1.0 means a solid rectangle.
	FillRatio float64 `json:"fill_ratio"`
}

// MeasureIsland computes geometry metrics for an interior. An empty
// interior yields the zero Metrics.
func MeasureIsland(interior []Coord) Metrics {
	if len(interior) == 0 {
		return Metrics{}
	}

	b := Bounds{
		Top:    interior[0].Row,
		Left:   interior[0].Col,
		Bottom: interior[0].Row,
		Right:  interior[0].Col,
	}
	var sumRow, sumCol float64

	for _, c := range interior {
		if c.Row < b.Top {
			b.Top = c.Row
		}
		if c.Row > b.Bottom {
			b.Bottom = c.Row
		}
		if c.Col < b.Left {
			b.Left = c.Col
		}
		if c.Col > b.Right {
			b.Right = c.Col
		}
		sumRow += float64(c.Row)
		sumCol += float64(c.Col)
	}

	n := float64(len(interior))
	return Metrics{
		PixelCount:  len(interior),
		Bounds:      b,
		CentroidRow: math.Round(sumRow/n*100) / 100,
		CentroidCol: math.Round(sumCol/n*100) / 100,
		FillRatio:   math.Round(n/float64(b.Area())*1000) / 1000,
	}
}
