package palette

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/luma/internal/colour"
)

const validSettings = `{
    "app_background_color": "#F0F0F0",
    "state_color_settings": {
        "default": {"background": "#4682B4", "foreground": "#FFFFFF"},
        "hover": {"background": "#326496", "foreground": "#FFFFFF"},
        "focused": {"background": "#5A96C8", "foreground": "#FFFFFF"},
        "active": {"background": "#1E466E", "foreground": "#FFFFFF"},
        "disabled": {"background": "#BED2E6", "foreground": "#696969"}
    }
}`

func TestDecode(t *testing.T) {
	cfg, err := Decode([]byte(validSettings))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !cfg.Equal(Default()) {
		t.Error("decoded settings should match the default palette")
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "not JSON",
			input:   "{",
			wantErr: ErrInvalidSettings,
		},
		{
			name:    "empty object",
			input:   "{}",
			wantErr: ErrInvalidSettings,
		},
		{
			name:    "missing state settings",
			input:   `{"app_background_color": "#F0F0F0"}`,
			wantErr: ErrInvalidSettings,
		},
		{
			name:    "missing state",
			input:   strings.Replace(validSettings, `"disabled"`, `"pressed"`, 1),
			wantErr: ErrInvalidSettings,
		},
		{
			name:    "missing foreground",
			input:   strings.Replace(validSettings, `"background": "#326496", "foreground": "#FFFFFF"`, `"background": "#326496"`, 1),
			wantErr: ErrInvalidSettings,
		},
		{
			name:    "malformed app background",
			input:   strings.Replace(validSettings, "#F0F0F0", "light grey", 1),
			wantErr: colour.ErrInvalidFormat,
		},
		{
			name:    "malformed state colour",
			input:   strings.Replace(validSettings, "#4682B4", "#4682B", 1),
			wantErr: colour.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeIgnoresExtraStates(t *testing.T) {
	input := strings.Replace(validSettings,
		`"disabled": {"background": "#BED2E6", "foreground": "#696969"}`,
		`"disabled": {"background": "#BED2E6", "foreground": "#696969"},
        "pressed": {"background": "#000000", "foreground": "#FFFFFF"}`, 1)

	cfg, err := Decode([]byte(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(cfg.Pairs) != len(States()) {
		t.Errorf("Decode() kept %d pairs, want %d", len(cfg.Pairs), len(States()))
	}
	if _, ok := cfg.Pairs[State("pressed")]; ok {
		t.Error("undeclared state should be dropped")
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	text := string(data)
	for _, want := range []string{
		"\n    \"app_background_color\": \"#F0F0F0\"",
		"\"state_color_settings\"",
		"\"default\"",
		"\"#4682B4\"",
		"\"#696969\"",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Encode() output missing %q", want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original, _ := Default().Correct()

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !decoded.Equal(original) {
		t.Error("round trip changed the configuration")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !loaded.Equal(Default()) {
		t.Error("loaded configuration should match what was saved")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Load() expected error for a missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want wrapped os.ErrNotExist", err)
	}
}
