package colour

// Adjustment search parameters.
const (
	// DefaultMaxIterations bounds the adjustment search when callers have no
	// reason to pick their own budget.
	DefaultMaxIterations = 20

	// adjustStep is how far each channel moves per iteration.
	adjustStep = 10
)

// AdjustForContrast nudges target away from reference until the contrast ratio
// between them reaches minimumRatio or the search gives up. Each iteration
// moves all three channels of the working colour by a fixed step, lightening
// when the target starts out lighter than the reference and darkening
// otherwise, with each channel clamped to [0, 255] independently.
//
// The search stops early once the ratio is met, once the step no longer
// changes any channel, or once the colour saturates at black or white. The
// returned ratio is the actual contrast achieved, which may fall short of
// minimumRatio when the search exhausts its budget or saturates first.
func AdjustForContrast(target, reference RGB, minimumRatio float64, maxIterations int) (RGB, float64) {
	step := -adjustStep
	if Luminance(target) > Luminance(reference) {
		step = adjustStep
	}

	// Work in int so channels can clamp without wrapping.
	channels := [3]int{int(target.R), int(target.G), int(target.B)}

	for i := 0; i < maxIterations; i++ {
		current := RGB{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2])}
		if ContrastRatio(current, reference) >= minimumRatio {
			return current, ContrastRatio(current, reference)
		}

		changed := false
		for c := range channels {
			next := clampChannel(channels[c] + step)
			if next != channels[c] {
				channels[c] = next
				changed = true
			}
		}
		if !changed {
			break
		}
		if allAt(channels, 0) || allAt(channels, 255) {
			break
		}
	}

	final := RGB{R: uint8(channels[0]), G: uint8(channels[1]), B: uint8(channels[2])}
	return final, ContrastRatio(final, reference)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func allAt(channels [3]int, v int) bool {
	return channels[0] == v && channels[1] == v && channels[2] == v
}
