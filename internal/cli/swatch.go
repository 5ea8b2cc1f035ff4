package cli

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/palette"
	"github.com/jmylchreest/luma/internal/swatch"
)

var (
	swatchOutput   string
	swatchColumns  int
	swatchCellSize int
	swatchWidth    int
)

// swatchCmd represents the swatch command
var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Render the built-in balanced palette",
	Long: `Render the 256-colour balanced palette, either as a colour grid on the
terminal or as a PNG swatch image.

Without --output the palette is drawn in the terminal using 24-bit colour.
With --output a PNG is written instead; --columns and --cell-size control
the grid and --width scales the finished image for thumbnails.

Examples:
  # Show the palette in the terminal
  luma swatch

  # Write a PNG swatch
  luma swatch -o palette.png

  # A 512px wide image with 16 colours per row
  luma swatch -o palette.png --columns 16 --width 512`,
	Args: cobra.NoArgs,
	RunE: runSwatch,
}

func init() {
	swatchCmd.Flags().StringVarP(&swatchOutput, "output", "o", "", "write a PNG swatch to this file instead of the terminal")
	swatchCmd.Flags().IntVar(&swatchColumns, "columns", swatch.DefaultColumns, "colours per row")
	swatchCmd.Flags().IntVar(&swatchCellSize, "cell-size", swatch.DefaultCellSize, "cell size in pixels")
	swatchCmd.Flags().IntVar(&swatchWidth, "width", 0, "scale the image to this width (0 = keep the native size)")
}

func runSwatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	colours := palette.Balanced()

	if swatchOutput == "" {
		return printSwatch(colours, swatchColumns)
	}

	logger.Debug("rendering swatch", "colours", len(colours), "columns", swatchColumns, "cell_size", swatchCellSize)
	img, err := swatch.Render(colours, swatchColumns, swatchCellSize)
	if err != nil {
		return fmt.Errorf("failed to render swatch: %w", err)
	}

	if swatchWidth > 0 {
		logger.Debug("scaling swatch", "width", swatchWidth)
		img, err = swatch.Scale(img, swatchWidth)
		if err != nil {
			return fmt.Errorf("failed to scale swatch: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	if err := os.WriteFile(swatchOutput, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write swatch: %w", err)
	}

	fmt.Printf("Swatch written to %s\n", swatchOutput)
	return nil
}

// printSwatch draws the palette as a grid of coloured cells on the terminal.
func printSwatch(colours []colour.RGB, columns int) error {
	if columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", columns)
	}

	for i, c := range colours {
		fmt.Print(colour.ColourPreview(c, 2))
		if (i+1)%columns == 0 {
			fmt.Println()
		}
	}
	if len(colours)%columns != 0 {
		fmt.Println()
	}
	return nil
}
