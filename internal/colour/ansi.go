package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput forces plain output regardless of terminal support.
var DisableColourOutput = false

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block. When colour output
// is disabled the block degrades to plain spaces so alignment survives.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	block := strings.Repeat(" ", width)
	if DisableColourOutput || !SupportsANSIColours() {
		return block
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + block + ansiReset
}

// PairPreview renders sample text in the foreground colour on a block of the
// background colour, centred within width. This is how a state pair is shown
// in terminal output: the same text-on-background combination a widget would
// draw.
func PairPreview(background, foreground RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if DisableColourOutput || !SupportsANSIColours() {
		return display
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, background.R, background.G, background.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, foreground.R, foreground.G, foreground.B, ansiSuffix)
	return bgColour + fgColour + display + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(rgb RGB, width int) string {
	preview := ColourPreview(rgb, width)
	return fmt.Sprintf("%s %s", preview, rgb.Hex())
}

// SupportsANSIColours checks if the terminal likely supports ANSI colour codes.
// Honours NO_COLOR and falls back to a TTY check on stdout.
func SupportsANSIColours() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
