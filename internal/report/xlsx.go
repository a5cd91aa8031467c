package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/samfallible/bad-pixels/internal/islands"
)

// Sheet names in the generated workbook.
const (
	SummarySheet = "Islands"
	PixelSheet   = "Pixels"
)

// Pixel-role values in the Pixels sheet.
const (
	RoleInterior  = "interior"
	RolePerimeter = "perimeter"
)

// WriteWorkbook writes the catalog to an .xlsx workbook at path. The file
// is created or replaced. The catalog is not modified.
func WriteWorkbook(path string, catalog *islands.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to set up workbook: %w", err)
	}
	if _, err := f.NewSheet(PixelSheet); err != nil {
		return fmt.Errorf("failed to set up workbook: %w", err)
	}

	if err := writeSummary(f, catalog); err != nil {
		return err
	}
	if err := writePixels(f, catalog); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeSummary fills the Islands sheet: one row per island, ID ascending.
func writeSummary(f *excelize.File, catalog *islands.Catalog) error {
	header := []interface{}{
		"Island Number", "Number of Pixels",
		"Pixel Coordinates", "Perimeter Coordinates",
		"Bounding Box", "Centroid", "Fill Ratio",
	}
	if err := setRow(f, SummarySheet, 1, header); err != nil {
		return err
	}

	for i, isl := range catalog.Islands() {
		m := isl.Metrics
		row := []interface{}{
			isl.ID,
			m.PixelCount,
			formatCoords(isl.Interior),
			formatCoords(isl.Perimeter),
			fmt.Sprintf("rows %d-%d, cols %d-%d", m.Bounds.Top, m.Bounds.Bottom, m.Bounds.Left, m.Bounds.Right),
			fmt.Sprintf("(%.2f, %.2f)", m.CentroidRow, m.CentroidCol),
			m.FillRatio,
		}
		if err := setRow(f, SummarySheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// writePixels fills the Pixels sheet: one row per (island, pixel, role),
// grouped by island ID, row-major within each island.
func writePixels(f *excelize.File, catalog *islands.Catalog) error {
	if err := setRow(f, PixelSheet, 1, []interface{}{"Island ID", "Row", "Col", "Role"}); err != nil {
		return err
	}

	line := 2
	for _, isl := range catalog.Islands() {
		for _, rec := range mergeByCoord(isl) {
			row := []interface{}{isl.ID, rec.coord.Row, rec.coord.Col, rec.role}
			if err := setRow(f, PixelSheet, line, row); err != nil {
				return err
			}
			line++
		}
	}
	return nil
}

type pixelRecord struct {
	coord islands.Coord
	role  string
}

// mergeByCoord interleaves an island's interior and perimeter into a
// single row-major sequence. Both inputs are already sorted row-major and
// disjoint, so a two-pointer merge suffices.
func mergeByCoord(isl islands.Island) []pixelRecord {
	records := make([]pixelRecord, 0, len(isl.Interior)+len(isl.Perimeter))
	i, p := 0, 0
	for i < len(isl.Interior) || p < len(isl.Perimeter) {
		switch {
		case p >= len(isl.Perimeter):
			records = append(records, pixelRecord{isl.Interior[i], RoleInterior})
			i++
		case i >= len(isl.Interior):
			records = append(records, pixelRecord{isl.Perimeter[p], RolePerimeter})
			p++
		case isl.Interior[i].Less(isl.Perimeter[p]):
			records = append(records, pixelRecord{isl.Interior[i], RoleInterior})
			i++
		default:
			records = append(records, pixelRecord{isl.Perimeter[p], RolePerimeter})
			p++
		}
	}
	return records
}

// formatCoords renders coordinates as "(row, col); (row, col); ...".
func formatCoords(coords []islands.Coord) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("(%d, %d)", c.Row, c.Col)
	}
	return strings.Join(parts, "; ")
}

// setRow writes one horizontal row of values starting at column A.
func setRow(f *excelize.File, sheet string, line int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", line, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", line, err)
	}
	return nil
}
