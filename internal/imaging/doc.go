// Package imaging handles the image-format boundary of the tool: decoding
// input files into a greyscale pixel grid and describing the decoded image.
//
// # Supported Formats
//
// Decoding goes through image.Decode with registered format drivers, so the
// core never knows which format an input was. PNG, JPEG, and GIF come from
// the standard library; BMP, TIFF, and WebP come from golang.org/x/image.
//
// # Greyscale Conversion
//
// Color inputs are converted with bild's luminance-weighted greyscale
// (ITU-R BT.601 family weights) before analysis. The resulting GreyGrid is
// immutable: built once per run and read-only for the rest of the pipeline.
//
// # Coordinate System
//
// GreyGrid is addressed by 0-based (row, col) with the origin at the
// top-left; row grows downward, column rightward.
//
// # Error Handling
//
//   - File open or decode failures are wrapped and fatal to the run.
//   - A decoded image with zero width or height yields ErrEmptyGrid.
//   - Out-of-bounds access via At returns ErrOutOfBounds; given correct
//     neighbor generation in the core this indicates a defect, not a
//     recoverable condition.
package imaging
