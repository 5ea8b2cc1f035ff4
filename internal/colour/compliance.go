package colour

import "fmt"

// Level identifies a WCAG conformance level.
type Level string

// Supported conformance levels.
const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Size identifies the text size class a contrast threshold applies to.
type Size string

// Supported text size classes.
const (
	SizeNormal Size = "normal"
	SizeLarge  Size = "large"
)

// Minimum contrast ratios required by WCAG 2.2.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// Threshold returns the minimum contrast ratio for a conformance level and
// text size. Unrecognised levels fall through to the AAA column and
// unrecognised sizes to the large row.
func Threshold(level Level, size Size) float64 {
	if level == LevelAA {
		if size == SizeNormal {
			return ThresholdAANormal
		}
		return ThresholdAALarge
	}
	if size == SizeNormal {
		return ThresholdAAANormal
	}
	return ThresholdAAALarge
}

// IsCompliant reports whether a foreground/background pair meets the contrast
// threshold for the given conformance level and text size. The comparison is
// inclusive: a ratio exactly on the threshold is compliant.
func IsCompliant(foreground, background RGB, level Level, size Size) bool {
	return ContrastRatio(foreground, background) >= Threshold(level, size)
}

// ParseLevel converts a flag or JSON value to a Level.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelAA, LevelAAA:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid conformance level: %s (valid: AA, AAA)", s)
	}
}

// ParseSize converts a flag or JSON value to a Size.
func ParseSize(s string) (Size, error) {
	switch Size(s) {
	case SizeNormal, SizeLarge:
		return Size(s), nil
	default:
		return "", fmt.Errorf("invalid text size: %s (valid: normal, large)", s)
	}
}
