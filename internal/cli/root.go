// Package cli provides the command-line interface for Luma.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/palette"
	"github.com/jmylchreest/luma/internal/version"
)

var (
	// Conformance settings shared by every command, populated by the
	// persistent flags and their LUMA_* environment fallbacks.
	checkLevel    = colour.LevelAA
	checkSize     = colour.SizeNormal
	globalNoColor bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "luma",
		Short: "A WCAG contrast checker for UI colour palettes",
		Long: `Luma checks, corrects and generates UI colour palettes against the
WCAG 2.2 contrast thresholds.

A palette is an application background plus a background/foreground colour
pair for each interactive state (default, hover, focused, active, disabled).
Text contrast is judged at the conformance level and text size selected with
--level and --size. Each state background is additionally judged against the
application background at the level's large-text threshold, the bar WCAG
applies to non-text boundaries.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: resolveGlobalFlags,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().VarP(levelFlag{&checkLevel}, "level", "l", "conformance level (AA, AAA)")
	rootCmd.PersistentFlags().VarP(sizeFlag{&checkSize}, "size", "s", "text size for the text checks (normal, large)")
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "disable coloured terminal output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(ratioCmd)
	rootCmd.AddCommand(swatchCmd)
}

// levelFlag parses the conformance level as the flag is set, so a bad
// --level fails before any command runs.
type levelFlag struct {
	level *colour.Level
}

var _ pflag.Value = levelFlag{}

func (f levelFlag) String() string { return string(*f.level) }
func (f levelFlag) Type() string   { return "level" }

func (f levelFlag) Set(s string) error {
	parsed, err := colour.ParseLevel(s)
	if err != nil {
		return err
	}
	*f.level = parsed
	return nil
}

// sizeFlag parses the text size as the flag is set.
type sizeFlag struct {
	size *colour.Size
}

var _ pflag.Value = sizeFlag{}

func (f sizeFlag) String() string { return string(*f.size) }
func (f sizeFlag) Type() string   { return "size" }

func (f sizeFlag) Set(s string) error {
	parsed, err := colour.ParseSize(s)
	if err != nil {
		return err
	}
	*f.size = parsed
	return nil
}

// resolveGlobalFlags applies the LUMA_LEVEL, LUMA_SIZE and LUMA_NO_COLOR
// environment fallbacks for flags not given on the command line, then wires
// up colour output.
func resolveGlobalFlags(cmd *cobra.Command, _ []string) error {
	var err error
	if !cmd.Flags().Changed("level") {
		if env := os.Getenv("LUMA_LEVEL"); env != "" {
			if checkLevel, err = colour.ParseLevel(env); err != nil {
				return fmt.Errorf("LUMA_LEVEL: %w", err)
			}
		}
	}
	if !cmd.Flags().Changed("size") {
		if env := os.Getenv("LUMA_SIZE"); env != "" {
			if checkSize, err = colour.ParseSize(env); err != nil {
				return fmt.Errorf("LUMA_SIZE: %w", err)
			}
		}
	}
	if !globalNoColor && os.Getenv("LUMA_NO_COLOR") != "" {
		globalNoColor = true
	}

	if globalNoColor {
		color.NoColor = true
		colour.DisableColourOutput = true
	}
	return nil
}

// newLogger returns the logger for a command invocation. Verbose runs emit
// debug detail on stderr; anything else is discarded outright.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "luma",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "luma",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// loadConfiguration reads a settings file when a path is given and falls
// back to the built-in palette otherwise.
func loadConfiguration(path string, logger hclog.Logger) (palette.Configuration, error) {
	if path == "" {
		logger.Debug("using built-in default palette")
		return palette.Default(), nil
	}

	logger.Debug("loading settings file", "path", path)
	cfg, err := palette.Load(path)
	if err != nil {
		return palette.Configuration{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
