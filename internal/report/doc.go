// Package report serializes a finished island catalog to an .xlsx
// workbook.
//
// The workbook has two sheets. "Islands" carries one summary row per
// island (island number, pixel count, coordinate lists, geometry
// columns). "Pixels" carries one row
// per (island, pixel) with an interior/perimeter role flag, grouped by
// island ID ascending and ordered row-major within each island.
//
// The writer only reads the catalog; a write failure leaves the completed
// analysis intact and is propagated unchanged to the caller.
package report
