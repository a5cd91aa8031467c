package islands

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyze_EndToEnd(t *testing.T) {
	grid := gridFromPattern(t, []string{
		"#....",
		".....",
		"..##.",
		".....",
		"....#",
	})

	catalog, err := Analyze(grid, nil, Conn4)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if catalog.Len() != 3 {
		t.Fatalf("islands: got %d, want 3", catalog.Len())
	}

	// ID order equals discovery order
	for i, isl := range catalog.Islands() {
		if isl.ID != i+1 {
			t.Errorf("island at index %d: ID got %d, want %d", i, isl.ID, i+1)
		}
		if isl.Metrics.PixelCount != len(isl.Interior) {
			t.Errorf("island %d: PixelCount %d != interior size %d",
				isl.ID, isl.Metrics.PixelCount, len(isl.Interior))
		}
		if len(isl.Perimeter) == 0 {
			t.Errorf("island %d: perimeter not populated", isl.ID)
		}
	}

	second, err := catalog.ByID(2)
	if err != nil {
		t.Fatalf("ByID(2) failed: %v", err)
	}
	if want := coords([2]int{2, 2}, [2]int{2, 3}); !reflect.DeepEqual(second.Interior, want) {
		t.Errorf("island 2 interior: got %v, want %v", second.Interior, want)
	}
}

func TestCatalog_ByID_Unknown(t *testing.T) {
	catalog := NewCatalog([]Island{{ID: 1}})

	_, err := catalog.ByID(99)
	if !errors.Is(err, ErrUnknownIslandID) {
		t.Errorf("error: got %v, want ErrUnknownIslandID", err)
	}

	// A failed lookup leaves the catalog usable
	if _, err := catalog.ByID(1); err != nil {
		t.Errorf("ByID(1) after failed lookup: %v", err)
	}
}

func TestAnalyze_EmptyGrid(t *testing.T) {
	_, err := Analyze(testGrid{}, nil, Conn4)
	if !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("error: got %v, want ErrEmptyGrid", err)
	}
}

func TestAnalyze_NoDarkPixels(t *testing.T) {
	grid := gridFromPattern(t, []string{".....", ".....", "....."})

	catalog, err := Analyze(grid, nil, Conn4)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("islands: got %d, want 0", catalog.Len())
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	grid := randomGrid(t, 30, 30, 0.3, 11)

	first, err := Analyze(grid, nil, Conn4)
	if err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}
	second, err := Analyze(grid, nil, Conn4)
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}

	if !reflect.DeepEqual(first.Islands(), second.Islands()) {
		t.Error("two analyses of the same grid differ")
	}
}
