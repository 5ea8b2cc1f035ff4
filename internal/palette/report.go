package palette

import "github.com/jmylchreest/luma/internal/colour"

// Entry holds the measured contrast for one state. TextRatio is the
// foreground against the state background; SurroundRatio is the state
// background against the application background.
type Entry struct {
	State             State
	Pair              Pair
	TextRatio         float64
	TextCompliant     bool
	SurroundRatio     float64
	SurroundCompliant bool
}

// Report is the compliance assessment of a whole configuration at one
// conformance level and text size.
type Report struct {
	Level         colour.Level
	Size          colour.Size
	AppBackground colour.RGB
	Entries       []Entry
}

// Report measures every state against the thresholds for level and size.
// Text contrast is judged at the requested size. The surround contrast is
// judged at the large-text threshold for the same level, the bar WCAG sets
// for non-text boundaries like a control against its surroundings.
func (c Configuration) Report(level colour.Level, size colour.Size) Report {
	report := Report{Level: level, Size: size, AppBackground: c.AppBackground}

	textMin := colour.Threshold(level, size)
	surroundMin := colour.Threshold(level, colour.SizeLarge)

	for _, state := range States() {
		pair, ok := c.Pairs[state]
		if !ok {
			continue
		}

		entry := Entry{State: state, Pair: pair}
		entry.TextRatio = colour.ContrastRatio(pair.Foreground, pair.Background)
		entry.TextCompliant = entry.TextRatio >= textMin
		entry.SurroundRatio = colour.ContrastRatio(c.AppBackground, pair.Background)
		entry.SurroundCompliant = entry.SurroundRatio >= surroundMin

		report.Entries = append(report.Entries, entry)
	}

	return report
}

// AllCompliant reports whether every entry passed both of its checks.
func (r Report) AllCompliant() bool {
	for _, entry := range r.Entries {
		if !entry.TextCompliant || !entry.SurroundCompliant {
			return false
		}
	}
	return true
}

// FailureCount returns the number of individual check failures in the report.
func (r Report) FailureCount() int {
	failures := 0
	for _, entry := range r.Entries {
		if !entry.TextCompliant {
			failures++
		}
		if !entry.SurroundCompliant {
			failures++
		}
	}
	return failures
}
