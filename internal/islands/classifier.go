package islands

// DefaultThreshold is the intensity cutoff below which a pixel counts as
// dark. The value 1 means only pure black (intensity 0) qualifies on the
// 0-255 greyscale, matching the tool's historical "< 1" definition. The
// threshold is configurable but never silently broadened.
const DefaultThreshold uint8 = 1

// Classifier reports whether a greyscale intensity counts as dark.
// It must be a pure function: same input, same answer, no side effects.
type Classifier func(intensity uint8) bool

// DarkBelow returns a Classifier that treats intensities strictly below
// threshold as dark. DarkBelow(0) marks nothing as dark.
func DarkBelow(threshold uint8) Classifier {
	return func(intensity uint8) bool {
		return intensity < threshold
	}
}
