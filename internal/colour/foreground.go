package colour

// highContrastCandidates are tried in order before falling back to the
// adjustment search.
var highContrastCandidates = []RGB{White, Black}

// FindForeground picks a foreground colour for background that meets
// minimumRatio. Pure white and pure black are tried first, in that order, and
// the first candidate that qualifies wins. If neither does, the current
// foreground is adjusted towards compliance and the best effort is returned
// along with its actual ratio.
//
// One of white or black always has a contrast of at least 4.5 against any
// background, so for the thresholds used by the correction paths the fallback
// never fires. It exists for callers asking for stricter ratios.
func FindForeground(background, current RGB, minimumRatio float64) (RGB, float64) {
	for _, candidate := range highContrastCandidates {
		if ratio := ContrastRatio(candidate, background); ratio >= minimumRatio {
			return candidate, ratio
		}
	}

	return AdjustForContrast(current, background, minimumRatio, DefaultMaxIterations)
}
