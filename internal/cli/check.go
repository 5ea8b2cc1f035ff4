package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/palette"
)

var (
	passText = color.New(color.FgGreen).SprintFunc()
	failText = color.New(color.FgRed).SprintFunc()
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [settings-file]",
	Short: "Check a palette against the WCAG 2.2 contrast thresholds",
	Long: `Check every state of a palette against the WCAG 2.2 contrast thresholds
and print a report.

Each state is judged twice: the foreground against its own background at the
selected level and text size, and the background against the application
background at the level's large-text threshold. The command exits non-zero
when any check fails, so it can gate a build.

Examples:
  # Check the built-in default palette at AA, normal text
  luma check

  # Check a saved palette at AAA
  luma check --level AAA theme.json

  # Large text loosens the text threshold to 3.0:1
  luma check --size large theme.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := loadConfiguration(path, logger)
	if err != nil {
		return err
	}

	report := cfg.Report(checkLevel, checkSize)
	printReport(report)

	if !report.AllCompliant() {
		return fmt.Errorf("%d contrast checks failed", report.FailureCount())
	}
	return nil
}

// printReport renders a compliance report as a table, one state per row.
func printReport(report palette.Report) {
	fmt.Printf("WCAG 2.2 %s report, %s text\n", report.Level, report.Size)
	fmt.Printf("App background: %s\n\n", colour.FormatColourWithPreview(report.AppBackground, 4))

	table := NewTable([]string{"STATE", "PREVIEW", "BACKGROUND", "FOREGROUND", "TEXT", "SURROUND"})
	for _, entry := range report.Entries {
		table.AddRow([]string{
			entry.State.Description(),
			colour.PairPreview(entry.Pair.Background, entry.Pair.Foreground, "Sample", 10),
			entry.Pair.Background.Hex(),
			entry.Pair.Foreground.Hex(),
			ratioCell(entry.TextRatio, entry.TextCompliant),
			ratioCell(entry.SurroundRatio, entry.SurroundCompliant),
		})
	}
	fmt.Print(table.Render())
	fmt.Println()

	if report.AllCompliant() {
		fmt.Printf("All colour combinations are WCAG 2.2 %s compliant!\n", report.Level)
	} else {
		fmt.Println("Some colour combinations need improvement. See details above.")
	}
}

// ratioCell formats a contrast ratio, green when it meets its threshold and
// red when it does not.
func ratioCell(ratio float64, compliant bool) string {
	cell := fmt.Sprintf("%7.2f:1", ratio)
	if compliant {
		return passText(cell)
	}
	return failText(cell)
}
