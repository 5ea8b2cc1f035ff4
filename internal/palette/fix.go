package palette

import "github.com/jmylchreest/luma/internal/colour"

// FixState corrects a single state pair so its text meets the AA normal
// threshold and its background stands out from the application background at
// the AA large threshold. Three checks run in a fixed order, and the order
// matters: replacing the background can break text contrast that passed a
// moment earlier, so the text check runs again whenever the background moved.
// The returned count is the number of replacements applied, 0 to 3.
func FixState(appBackground colour.RGB, pair Pair) (Pair, int) {
	fixes := 0

	if !colour.IsCompliant(pair.Foreground, pair.Background, colour.LevelAA, colour.SizeNormal) {
		pair.Foreground, _ = colour.FindForeground(pair.Background, pair.Foreground, colour.ThresholdAANormal)
		fixes++
	}

	if !colour.IsCompliant(appBackground, pair.Background, colour.LevelAA, colour.SizeLarge) {
		pair.Background, _ = colour.AdjustForContrast(pair.Background, appBackground, colour.ThresholdAALarge, colour.DefaultMaxIterations)
		fixes++

		if !colour.IsCompliant(pair.Foreground, pair.Background, colour.LevelAA, colour.SizeNormal) {
			pair.Foreground, _ = colour.FindForeground(pair.Background, pair.Foreground, colour.ThresholdAANormal)
			fixes++
		}
	}

	return pair, fixes
}

// Correct applies FixState to every state in declared order and returns the
// corrected configuration along with the total number of fixes. The receiver
// is left untouched. States correct independently, so running Correct on an
// already corrected configuration applies nothing further.
func (c Configuration) Correct() (Configuration, int) {
	out := c.Clone()
	total := 0

	for _, state := range States() {
		pair, ok := out.Pairs[state]
		if !ok {
			continue
		}
		fixed, n := FixState(out.AppBackground, pair)
		out.Pairs[state] = fixed
		total += n
	}

	return out, total
}
