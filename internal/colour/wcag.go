package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.2.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG22/#dfn-relative-luminance.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	// Calculate luminance using WCAG formula.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.2. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG22/#dfn-contrast-ratio.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
