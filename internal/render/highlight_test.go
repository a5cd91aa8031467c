package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/samfallible/bad-pixels/internal/imaging"
	"github.com/samfallible/bad-pixels/internal/islands"
)

// analyzeValues builds a grid from intensity rows and runs the full
// detection over it.
func analyzeValues(t *testing.T, rows [][]uint8) (*imaging.GreyGrid, *islands.Catalog) {
	t.Helper()
	grid, err := imaging.NewGreyGridFromValues(rows)
	if err != nil {
		t.Fatalf("failed to build grid: %v", err)
	}
	catalog, err := islands.Analyze(grid, nil, islands.Conn4)
	if err != nil {
		t.Fatalf("failed to analyze grid: %v", err)
	}
	return grid, catalog
}

// singleIslandRows is a 5x5 bright grid with one dark pixel at (2,2).
func singleIslandRows() [][]uint8 {
	rows := make([][]uint8, 5)
	for r := range rows {
		rows[r] = []uint8{255, 255, 255, 255, 255}
	}
	rows[2][2] = 0
	return rows
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF0000")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("color: got %+v, want opaque red", c)
	}

	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("ParseColor should fail for malformed input")
	}
}

func TestHighlightMap_InteriorOnly(t *testing.T) {
	_, catalog := analyzeValues(t, singleIslandRows())

	m, err := HighlightMap(catalog, DefaultHighlightColor)
	if err != nil {
		t.Fatalf("HighlightMap failed: %v", err)
	}

	if len(m) != 1 {
		t.Fatalf("highlight map size: got %d, want 1", len(m))
	}
	if _, ok := m[islands.Coord{Row: 2, Col: 2}]; !ok {
		t.Error("interior pixel (2,2) missing from highlight map")
	}
	// Perimeter pixels are never highlighted
	if _, ok := m[islands.Coord{Row: 1, Col: 2}]; ok {
		t.Error("perimeter pixel (1,2) must not be highlighted")
	}
}

func TestHighlightMap_EmptyCatalog(t *testing.T) {
	rows := [][]uint8{{255, 255}, {255, 255}}
	_, catalog := analyzeValues(t, rows)

	m, err := HighlightMap(catalog, DefaultHighlightColor)
	if err != nil {
		t.Fatalf("HighlightMap failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("highlight map size: got %d, want 0", len(m))
	}
}

func TestHighlight_PaintsInteriorRed(t *testing.T) {
	grid, catalog := analyzeValues(t, singleIslandRows())

	img, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	if got := img.NRGBAAt(2, 2); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("interior pixel: got %+v, want red", got)
	}
	// Everything else keeps its greyscale rendering
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("perimeter pixel: got %+v, want white", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("far pixel: got %+v, want white", got)
	}
}

func TestHighlight_Idempotent(t *testing.T) {
	grid, catalog := analyzeValues(t, singleIslandRows())

	first, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("first Highlight failed: %v", err)
	}
	second, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("second Highlight failed: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("re-rendering the same catalog produced different pixels")
	}
}

func TestHighlight_CustomColor(t *testing.T) {
	grid, catalog := analyzeValues(t, singleIslandRows())

	img, err := Highlight(grid, catalog, Options{Color: "#00FF00"})
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	if got := img.NRGBAAt(2, 2); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("interior pixel: got %+v, want green", got)
	}
}

func TestHighlight_BadColor(t *testing.T) {
	grid, catalog := analyzeValues(t, singleIslandRows())

	if _, err := Highlight(grid, catalog, Options{Color: "red"}); err == nil {
		t.Error("Highlight should fail for a malformed color")
	}
}

func TestHighlight_Labels(t *testing.T) {
	// Larger grid so the label fits to the right of the island box
	rows := make([][]uint8, 20)
	for r := range rows {
		rows[r] = make([]uint8, 20)
		for c := range rows[r] {
			rows[r][c] = 255
		}
	}
	rows[5][5] = 0
	grid, catalog := analyzeValues(t, rows)

	opts := DefaultOptions()
	opts.Labels = true
	img, err := Highlight(grid, catalog, opts)
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	// The label background repaints some pixels near the bounding box
	labeled := false
	for x := 6; x < 12 && !labeled; x++ {
		for y := 4; y < 12 && !labeled; y++ {
			c := img.NRGBAAt(x, y)
			if c == (color.NRGBA{A: 255}) {
				labeled = true
			}
		}
	}
	if !labeled {
		t.Error("label background not drawn near the island")
	}
}

func TestWritePNG(t *testing.T) {
	grid, catalog := analyzeValues(t, singleIslandRows())
	img, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if stat.Size() == 0 {
		t.Error("output file is empty")
	}
}
