package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSnippet_Dimensions(t *testing.T) {
	grid, catalog := analyzeValues(t, singleIslandRows())
	img, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	isl, err := catalog.ByID(1)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}

	// Island at (2,2) in a 5x5 grid: a margin of 2 covers the full grid,
	// so the snippet is the whole image scaled by 4
	snip := Snippet(img, grid, isl, 2, 4)
	if snip.Bounds().Dx() != 20 || snip.Bounds().Dy() != 20 {
		t.Errorf("snippet dimensions: got %dx%d, want 20x20",
			snip.Bounds().Dx(), snip.Bounds().Dy())
	}
}

func TestSnippet_ClipsAtGridEdge(t *testing.T) {
	rows := [][]uint8{
		{0, 255, 255},
		{255, 255, 255},
		{255, 255, 255},
	}
	grid, catalog := analyzeValues(t, rows)
	img, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}
	isl, err := catalog.ByID(1)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}

	// Island at the corner: margin clips to the grid, 2x2 region remains
	snip := Snippet(img, grid, isl, 1, 3)
	if snip.Bounds().Dx() != 6 || snip.Bounds().Dy() != 6 {
		t.Errorf("snippet dimensions: got %dx%d, want 6x6",
			snip.Bounds().Dx(), snip.Bounds().Dy())
	}
}

func TestWriteSnippets(t *testing.T) {
	rows := make([][]uint8, 8)
	for r := range rows {
		rows[r] = make([]uint8, 8)
		for c := range rows[r] {
			rows[r][c] = 255
		}
	}
	rows[1][1] = 0
	rows[6][6] = 0
	grid, catalog := analyzeValues(t, rows)
	img, err := Highlight(grid, catalog, DefaultOptions())
	if err != nil {
		t.Fatalf("Highlight failed: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "snippets")
	if err := WriteSnippets(dir, img, grid, catalog); err != nil {
		t.Fatalf("WriteSnippets failed: %v", err)
	}

	for _, name := range []string{"island_1.png", "island_2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing snippet %s: %v", name, err)
		}
	}
}
