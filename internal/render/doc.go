// Package render turns a finished island catalog into diagnostic output
// images: the full-size highlight rendering and optional per-island
// close-up snippets.
//
// Highlighting is a pure function of the catalog: every interior pixel
// maps to the highlight color (red by default), perimeter pixels are left
// untouched, and all other pixels show the greyscale rendering of the
// input. Re-rendering the same catalog always produces identical output.
package render
