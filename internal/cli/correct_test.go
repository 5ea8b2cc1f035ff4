package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/luma/internal/colour"
	"github.com/jmylchreest/luma/internal/palette"
)

func TestCorrectDefaultToStdout(t *testing.T) {
	out, err := runCommand(t, "correct")
	if err != nil {
		t.Fatalf("correct returned error: %v", err)
	}

	cfg, err := palette.Decode([]byte(out))
	if err != nil {
		t.Fatalf("correct stdout is not a valid settings file: %v", err)
	}
	if !cfg.Report(colour.LevelAA, colour.SizeNormal).AllCompliant() {
		t.Error("Corrected palette should pass AA with normal text")
	}

	// The weak focused and disabled backgrounds get darkened.
	if !strings.Contains(out, "#508CBE") {
		t.Error("Expected corrected focused background #508CBE in output")
	}
	if !strings.Contains(out, "#788CA0") {
		t.Error("Expected corrected disabled background #788CA0 in output")
	}
}

func TestCorrectToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrected.json")

	out, err := runCommand(t, "correct", "-o", path)
	if err != nil {
		t.Fatalf("correct returned error: %v", err)
	}
	if strings.Contains(out, "app_background_color") {
		t.Error("Settings JSON should go to the file, not stdout")
	}

	cfg, err := palette.Load(path)
	if err != nil {
		t.Fatalf("Failed to load corrected settings: %v", err)
	}
	if !cfg.Report(colour.LevelAA, colour.SizeNormal).AllCompliant() {
		t.Error("Corrected palette should pass AA with normal text")
	}
}

func TestCorrectAlreadyCompliant(t *testing.T) {
	corrected, _ := palette.Default().Correct()
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := palette.Save(path, corrected); err != nil {
		t.Fatalf("Failed to save settings: %v", err)
	}

	out, err := runCommand(t, "correct", path)
	if err != nil {
		t.Fatalf("correct returned error: %v", err)
	}

	cfg, err := palette.Decode([]byte(out))
	if err != nil {
		t.Fatalf("correct stdout is not a valid settings file: %v", err)
	}
	if !cfg.Equal(corrected) {
		t.Error("A compliant palette should come back unchanged")
	}
}

func TestCorrectMissingFile(t *testing.T) {
	_, err := runCommand(t, "correct", filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Expected an error for a missing settings file")
	}
	if !strings.Contains(err.Error(), "failed to load settings") {
		t.Errorf("Expected load error, got: %v", err)
	}
}
