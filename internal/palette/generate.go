package palette

import (
	"math/rand/v2"

	"github.com/jmylchreest/luma/internal/colour"
)

const (
	// maxDarkenAttempts bounds the background darkening search.
	maxDarkenAttempts = 50

	// darkenStep is subtracted from each channel per attempt.
	darkenStep = 10

	// lightLuminanceFloor separates colours light enough to serve as an
	// application background.
	lightLuminanceFloor = 0.5
)

// steelBlue stands in when the darkening search exhausts its attempts.
var steelBlue = colour.RGB{R: 70, G: 130, B: 180}

// lightFallbacks are used when the curated palette has no light entries.
var lightFallbacks = []colour.RGB{
	{R: 240, G: 240, B: 240},
	{R: 255, G: 255, B: 255},
}

// Generate produces a palette built around a randomly chosen light
// application background. Every state receives a background darkened from
// the application background until it reads as a distinct surface, and a
// foreground meeting the AA normal text threshold on top of it. Randomness
// comes only from rng, so equal seeds produce equal palettes.
func Generate(rng *rand.Rand) Configuration {
	var appBackground colour.RGB
	if pool := lightPool(); len(pool) > 0 {
		appBackground = pool[rng.IntN(len(pool))]
	} else {
		appBackground = lightFallbacks[rng.IntN(len(lightFallbacks))]
	}

	cfg := Configuration{
		AppBackground: appBackground,
		Pairs:         make(map[State]Pair, len(States())),
	}
	for _, state := range States() {
		background := darkerBackground(appBackground)
		foreground, _ := colour.FindForeground(background, colour.White, colour.ThresholdAANormal)
		cfg.Pairs[state] = Pair{Background: background, Foreground: foreground}
	}
	return cfg
}

// lightPool returns the curated palette entries light enough for use as an
// application background.
func lightPool() []colour.RGB {
	var pool []colour.RGB
	for _, c := range Balanced() {
		if colour.Luminance(c) > lightLuminanceFloor {
			pool = append(pool, c)
		}
	}
	return pool
}

// darkerBackground darkens the application background step by step until it
// has at least the AA large contrast against it while being strictly darker.
// A search that can no longer darken keeps the colour it reached; only a
// fully exhausted attempt budget falls back to steel blue.
func darkerBackground(appBackground colour.RGB) colour.RGB {
	background := appBackground

	for i := 0; i < maxDarkenAttempts; i++ {
		if colour.ContrastRatio(background, appBackground) >= colour.ThresholdAALarge &&
			colour.Luminance(background) < colour.Luminance(appBackground) {
			return background
		}

		darkened := darken(background)
		if darkened == background {
			return background
		}
		background = darkened
	}

	return steelBlue
}

func darken(c colour.RGB) colour.RGB {
	return colour.RGB{
		R: darkenChannel(c.R),
		G: darkenChannel(c.G),
		B: darkenChannel(c.B),
	}
}

func darkenChannel(v uint8) uint8 {
	if v < darkenStep {
		return 0
	}
	return v - darkenStep
}
