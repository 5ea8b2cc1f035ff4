// Package colour provides the colour primitives for WCAG contrast checking:
// an RGB value type with hex encoding, relative luminance and contrast ratio
// calculations, compliance thresholds, and the iterative adjustment search
// used to nudge colours towards a target contrast.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ErrInvalidFormat is returned when a hex colour string cannot be parsed.
var ErrInvalidFormat = errors.New("invalid hex colour, expected #RRGGBB")

// ParseHex converts a hex colour string to an RGB value.
// Surrounding whitespace and a leading "#" are accepted; the remainder must
// be exactly six hex digits, any case. The offending input is carried in the
// returned error and no default colour is ever substituted.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: got %q", ErrInvalidFormat, s)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#4682B4").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Common colours used throughout the correction paths.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)
