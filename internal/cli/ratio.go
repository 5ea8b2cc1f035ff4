package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
)

// ratioCmd represents the ratio command
var ratioCmd = &cobra.Command{
	Use:   "ratio <foreground> <background>",
	Short: "Show the contrast ratio between two colours",
	Long: `Show the WCAG 2.2 contrast ratio between two colours and the verdict at
every conformance level and text size.

Colours are hex codes, with or without the leading hash.

Examples:
  luma ratio "#4682B4" "#FFFFFF"
  luma ratio 696969 BED2E6`,
	Args: cobra.ExactArgs(2),
	RunE: runRatio,
}

func runRatio(cmd *cobra.Command, args []string) error {
	fg, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	fmt.Printf("%s on %s  %s\n", fg.Hex(), bg.Hex(), colour.PairPreview(bg, fg, "Sample", 10))
	fmt.Printf("Contrast ratio: %.2f:1\n\n", colour.ContrastRatio(fg, bg))

	table := NewTable([]string{"LEVEL", "SIZE", "THRESHOLD", "RESULT"})
	for _, level := range []colour.Level{colour.LevelAA, colour.LevelAAA} {
		for _, size := range []colour.Size{colour.SizeNormal, colour.SizeLarge} {
			verdict := failText("fail")
			if colour.IsCompliant(fg, bg, level, size) {
				verdict = passText("pass")
			}
			table.AddRow([]string{
				string(level),
				string(size),
				fmt.Sprintf("%.2f:1", colour.Threshold(level, size)),
				verdict,
			})
		}
	}
	fmt.Print(table.Render())
	return nil
}
