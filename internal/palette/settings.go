package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jmylchreest/luma/internal/colour"
)

// ErrInvalidSettings is returned when a settings file fails validation.
var ErrInvalidSettings = errors.New("invalid settings file")

// settingsFile is the on-disk JSON shape. Colour fields are pointers so a
// missing key can be told apart from a present but malformed value.
type settingsFile struct {
	AppBackgroundColor *string                 `json:"app_background_color"`
	StateColorSettings map[string]settingsPair `json:"state_color_settings"`
}

type settingsPair struct {
	Background *string `json:"background"`
	Foreground *string `json:"foreground"`
}

// Decode parses and validates settings JSON. Every declared state must be
// present with both of its colours; states beyond the declared set are
// ignored. No partial configuration is ever returned.
func Decode(data []byte) (Configuration, error) {
	var file settingsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Configuration{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if file.AppBackgroundColor == nil || file.StateColorSettings == nil {
		return Configuration{}, fmt.Errorf("%w: missing required keys", ErrInvalidSettings)
	}

	appBackground, err := colour.ParseHex(*file.AppBackgroundColor)
	if err != nil {
		return Configuration{}, fmt.Errorf("application background: %w", err)
	}

	cfg := Configuration{
		AppBackground: appBackground,
		Pairs:         make(map[State]Pair, len(States())),
	}
	for _, state := range States() {
		entry, ok := file.StateColorSettings[string(state)]
		if !ok {
			return Configuration{}, fmt.Errorf("%w: missing settings for state %q", ErrInvalidSettings, state)
		}
		if entry.Background == nil || entry.Foreground == nil {
			return Configuration{}, fmt.Errorf("%w: missing background or foreground for state %q", ErrInvalidSettings, state)
		}

		background, err := colour.ParseHex(*entry.Background)
		if err != nil {
			return Configuration{}, fmt.Errorf("state %q background: %w", state, err)
		}
		foreground, err := colour.ParseHex(*entry.Foreground)
		if err != nil {
			return Configuration{}, fmt.Errorf("state %q foreground: %w", state, err)
		}
		cfg.Pairs[state] = Pair{Background: background, Foreground: foreground}
	}

	return cfg, nil
}

// Encode renders the configuration as indented JSON with uppercase hex
// colours, the same shape Decode accepts.
func Encode(cfg Configuration) ([]byte, error) {
	appBackground := cfg.AppBackground.Hex()
	file := settingsFile{
		AppBackgroundColor: &appBackground,
		StateColorSettings: make(map[string]settingsPair, len(cfg.Pairs)),
	}
	for state, pair := range cfg.Pairs {
		background := pair.Background.Hex()
		foreground := pair.Foreground.Hex()
		file.StateColorSettings[string(state)] = settingsPair{
			Background: &background,
			Foreground: &foreground,
		}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(file); err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads a settings file from disk.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("read settings: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to disk as settings JSON.
func Save(path string, cfg Configuration) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
