// Package palette models a UI colour palette, an application background plus
// one colour pair per interactive state, and the WCAG-driven operations over
// it: compliance reporting, correction, random generation, and persistence.
package palette

import "github.com/jmylchreest/luma/internal/colour"

// Pair holds the colours drawn for one interactive state.
type Pair struct {
	Background colour.RGB
	Foreground colour.RGB
}

// Configuration is a complete palette: the application background and the
// colour pair for every interactive state.
type Configuration struct {
	AppBackground colour.RGB
	Pairs         map[State]Pair
}

// Default returns the built-in palette, a steel blue button set on a light
// grey application background.
func Default() Configuration {
	return Configuration{
		AppBackground: colour.RGB{R: 240, G: 240, B: 240},
		Pairs: map[State]Pair{
			StateDefault:  {Background: colour.RGB{R: 70, G: 130, B: 180}, Foreground: colour.White},
			StateHover:    {Background: colour.RGB{R: 50, G: 100, B: 150}, Foreground: colour.White},
			StateFocused:  {Background: colour.RGB{R: 90, G: 150, B: 200}, Foreground: colour.White},
			StateActive:   {Background: colour.RGB{R: 30, G: 70, B: 110}, Foreground: colour.White},
			StateDisabled: {Background: colour.RGB{R: 190, G: 210, B: 230}, Foreground: colour.RGB{R: 105, G: 105, B: 105}},
		},
	}
}

// Clone returns a deep copy. The pair map is the only shared structure, so
// mutating the copy never touches the original.
func (c Configuration) Clone() Configuration {
	pairs := make(map[State]Pair, len(c.Pairs))
	for state, pair := range c.Pairs {
		pairs[state] = pair
	}
	return Configuration{AppBackground: c.AppBackground, Pairs: pairs}
}

// Equal reports whether two configurations hold exactly the same colours.
func (c Configuration) Equal(other Configuration) bool {
	if c.AppBackground != other.AppBackground {
		return false
	}
	if len(c.Pairs) != len(other.Pairs) {
		return false
	}
	for state, pair := range c.Pairs {
		if other.Pairs[state] != pair {
			return false
		}
	}
	return true
}
