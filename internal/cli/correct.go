package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/palette"
)

var correctOutput string

// correctCmd represents the correct command
var correctCmd = &cobra.Command{
	Use:   "correct [settings-file]",
	Short: "Adjust a palette until every state passes WCAG 2.2 AA",
	Long: `Adjust the colours of a palette until every state passes the WCAG 2.2 AA
thresholds, then emit the corrected palette as a settings file.

For each state the foreground is re-picked or nudged until it reaches 4.5:1
against its background, and the background is darkened or lightened until it
reaches 3.0:1 against the application background. The corrected palette is
written to stdout, or to a file with --output; a summary of how many
adjustments were applied goes to stderr so the output stays pipeable.

Examples:
  # Correct the built-in default palette and print the result
  luma correct

  # Correct a saved palette in place
  luma correct -o theme.json theme.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCorrect,
}

func init() {
	correctCmd.Flags().StringVarP(&correctOutput, "output", "o", "", "output file for the corrected settings (default: stdout)")
}

func runCorrect(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := loadConfiguration(path, logger)
	if err != nil {
		return err
	}

	corrected, fixes := cfg.Correct()
	for _, state := range palette.States() {
		before, ok := cfg.Pairs[state]
		if !ok {
			continue
		}
		if after := corrected.Pairs[state]; after != before {
			logger.Debug("adjusted state",
				"state", string(state),
				"background", fmt.Sprintf("%s -> %s", before.Background.Hex(), after.Background.Hex()),
				"foreground", fmt.Sprintf("%s -> %s", before.Foreground.Hex(), after.Foreground.Hex()))
		}
	}

	if fixes > 0 {
		fmt.Fprintf(os.Stderr, "Applied %d colour adjustments to improve contrast.\n", fixes)
	} else {
		fmt.Fprintln(os.Stderr, "All colour combinations are already compliant!")
	}

	if correctOutput != "" {
		if err := palette.Save(correctOutput, corrected); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
		logger.Debug("settings written", "path", correctOutput)
		return nil
	}

	data, err := palette.Encode(corrected)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
