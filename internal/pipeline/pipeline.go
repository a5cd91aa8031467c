// Package pipeline wires the analysis stages into a single-run batch
// computation: decode, greyscale grid, island detection, perimeter
// tracing, catalog, and the two outputs (highlight image and report).
//
// An Analyzer holds all run state explicitly; there are no package-level
// globals. Any failure aborts the run before partial output is written;
// the computation is pure and deterministic, so nothing is retried.
package pipeline

import (
	"errors"
	"fmt"
	"image"

	"github.com/samfallible/bad-pixels/internal/imaging"
	"github.com/samfallible/bad-pixels/internal/islands"
	"github.com/samfallible/bad-pixels/internal/render"
	"github.com/samfallible/bad-pixels/internal/report"
)

// Options configure one analysis run.
type Options struct {
	// Threshold is the darkness cutoff: intensities strictly below it
	// count as bad pixels.
	Threshold uint8

	// Connectivity is the adjacency rule for island growth.
	Connectivity islands.Connectivity

	// HighlightColor is the hex color painted over island interiors.
	HighlightColor string

	// Labels draws island IDs onto the highlight image.
	Labels bool
}

// DefaultOptions returns the standard configuration: threshold 1 (pure
// black only), 4-connectivity, red highlights, no labels.
func DefaultOptions() Options {
	return Options{
		Threshold:      islands.DefaultThreshold,
		Connectivity:   islands.Conn4,
		HighlightColor: render.DefaultHighlightColor,
	}
}

// Analyzer runs the bad-pixel pipeline for a single image. Create one per
// run with New, call Analyze once, then read the catalog and write
// outputs. An Analyzer is not safe for concurrent use.
type Analyzer struct {
	opts Options

	grid        *imaging.GreyGrid
	catalog     *islands.Catalog
	highlighted *image.NRGBA
}

// New creates an Analyzer with the given options.
func New(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// ErrNotAnalyzed is returned when output is requested before Analyze
// succeeded.
var ErrNotAnalyzed = errors.New("pipeline: no analysis has completed")

// Analyze decodes the image at path, builds the greyscale grid, and runs
// the detection engine to completion. On success the catalog is available
// via Catalog; on failure the analyzer holds no partial state.
func (a *Analyzer) Analyze(path string) error {
	grid, err := imaging.LoadGreyGrid(path)
	if err != nil {
		return err
	}

	catalog, err := islands.Analyze(grid, islands.DarkBelow(a.opts.Threshold), a.opts.Connectivity)
	if err != nil {
		return err
	}

	a.grid = grid
	a.catalog = catalog
	a.highlighted = nil
	return nil
}

// Catalog returns the islands found by the last successful Analyze, or
// nil if none has run.
func (a *Analyzer) Catalog() *islands.Catalog { return a.catalog }

// Grid returns the greyscale grid of the last successful Analyze, or nil.
func (a *Analyzer) Grid() *imaging.GreyGrid { return a.grid }

// render produces (and caches) the highlight image for this run. The
// cache only avoids re-compositing for snippets; highlighting is a pure
// function of the catalog, so re-rendering would yield identical bytes.
func (a *Analyzer) render() (*image.NRGBA, error) {
	if a.catalog == nil {
		return nil, ErrNotAnalyzed
	}
	if a.highlighted != nil {
		return a.highlighted, nil
	}

	img, err := render.Highlight(a.grid, a.catalog, render.Options{
		Color:  a.opts.HighlightColor,
		Labels: a.opts.Labels,
	})
	if err != nil {
		return nil, fmt.Errorf("highlight rendering: %w", err)
	}
	a.highlighted = img
	return img, nil
}

// WriteImage writes the highlight rendering as a PNG to path.
func (a *Analyzer) WriteImage(path string) error {
	img, err := a.render()
	if err != nil {
		return err
	}
	return render.WritePNG(path, img)
}

// WriteReport writes the island workbook to path.
func (a *Analyzer) WriteReport(path string) error {
	if a.catalog == nil {
		return ErrNotAnalyzed
	}
	return report.WriteWorkbook(path, a.catalog)
}

// WriteSnippets writes per-island close-up PNGs into dir.
func (a *Analyzer) WriteSnippets(dir string) error {
	img, err := a.render()
	if err != nil {
		return err
	}
	return render.WriteSnippets(dir, img, a.grid, a.catalog)
}
