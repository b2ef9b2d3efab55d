// Package config handles cellgrid configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/terminal"
)

// ErrFeatureConflict indicates mutually exclusive features enabled together.
var ErrFeatureConflict = errors.New("config: conflicting features")

// ErrInvalidValue indicates a setting outside its allowed values.
var ErrInvalidValue = errors.New("config: invalid value")

// Config represents cellgrid configuration.
type Config struct {
	Features FeaturesConfig `toml:"features"`
	Render   RenderConfig   `toml:"render"`
	Theme    ThemeConfig    `toml:"theme"`
	Keys     KeysConfig     `toml:"keys"`
}

// FeaturesConfig toggles optional capabilities.
type FeaturesConfig struct {
	// Forbid heap-backed grids; storage must come from the caller
	HeapFree bool `toml:"heap_free"`

	// Permit heap-backed conveniences such as grid.Alloc
	HostAlloc bool `toml:"host_alloc"`

	// Use the ANSI renderer; plain text otherwise
	ColorOutput bool `toml:"color_output"`

	// Offer the Text, Fill and Border fixtures
	BuiltinWidgets bool `toml:"builtin_widgets"`

	// Allow fixed-point weighted splits
	ExtendedMath bool `toml:"extended_math"`
}

// RenderConfig contains renderer settings.
type RenderConfig struct {
	// Color mode: "auto", "none", "16", "256", "truecolor"
	ColorMode string `toml:"color_mode"`

	// Clear the screen before every frame
	Clear bool `toml:"clear"`

	// Hide the cursor while a frame is written
	HideCursor bool `toml:"hide_cursor"`

	// Disable auto-wrap while a frame is written
	NoWrap bool `toml:"no_wrap"`
}

// ThemeConfig contains hex colors for the demo host.
type ThemeConfig struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Accent     string `toml:"accent"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Quit string `toml:"quit"`
	Next string `toml:"next"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Features: FeaturesConfig{
			HeapFree:       false,
			HostAlloc:      true,
			ColorOutput:    true,
			BuiltinWidgets: true,
			ExtendedMath:   true,
		},
		Render: RenderConfig{
			ColorMode: "auto",
			Clear:     true,
		},
		Theme: ThemeConfig{
			Background: "#14141e",
			Foreground: "#c8c8c8",
			Accent:     "#64c8dc",
		},
		Keys: KeysConfig{
			Quit: "escape",
			Next: "tab",
		},
	}
}

// Load loads configuration from path over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	// go-toml/v2 only overwrites fields present in the document,
	// preserving defaults for unspecified fields (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// heap_free without an explicit host_alloc implies host_alloc = false
	var set struct {
		Features struct {
			HeapFree  *bool `toml:"heap_free"`
			HostAlloc *bool `toml:"host_alloc"`
		} `toml:"features"`
	}
	if err := toml.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	if f := set.Features; f.HeapFree != nil && *f.HeapFree && f.HostAlloc == nil {
		cfg.Features.HostAlloc = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML to path.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Features.HeapFree && c.Features.HostAlloc {
		errs = append(errs, fmt.Errorf("%w: heap_free and host_alloc", ErrFeatureConflict))
	}

	if _, ok := parseColorMode(c.Render.ColorMode); !ok {
		errs = append(errs, fmt.Errorf("%w: render.color_mode %q", ErrInvalidValue, c.Render.ColorMode))
	}

	for _, field := range []struct {
		name, value string
	}{
		{"theme.background", c.Theme.Background},
		{"theme.foreground", c.Theme.Foreground},
		{"theme.accent", c.Theme.Accent},
	} {
		if _, err := parseHex(field.value); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidValue, field.name, err))
		}
	}

	for _, field := range []struct {
		name, value string
	}{
		{"keys.quit", c.Keys.Quit},
		{"keys.next", c.Keys.Next},
	} {
		if _, ok := parseKey(field.value); !ok {
			errs = append(errs, fmt.Errorf("%w: %s %q", ErrInvalidValue, field.name, field.value))
		}
	}

	return errors.Join(errs...)
}

// ColorMode resolves render.color_mode, detecting the terminal for "auto".
// Plain output disables color regardless of the mode.
func (c *Config) ColorMode() terminal.ColorMode {
	if !c.Features.ColorOutput {
		return terminal.ColorModeNone
	}
	mode, ok := parseColorMode(c.Render.ColorMode)
	if !ok {
		return terminal.ColorModeNone
	}
	return mode
}

func parseColorMode(s string) (terminal.ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return terminal.DetectColorMode(), true
	case "none":
		return terminal.ColorModeNone, true
	case "16":
		return terminal.ColorMode16, true
	case "256":
		return terminal.ColorMode256, true
	case "truecolor", "24bit":
		return terminal.ColorModeTrueColor, true
	}
	return terminal.ColorModeNone, false
}

// Palette holds resolved theme colors.
type Palette struct {
	Background terminal.Color
	Foreground terminal.Color
	Accent     terminal.Color
}

// Colors resolves the theme's hex colors.
// Empty entries resolve to the terminal default.
func (t ThemeConfig) Colors() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = parseHex(t.Background); err != nil {
		return Palette{}, fmt.Errorf("%w: theme.background: %v", ErrInvalidValue, err)
	}
	if p.Foreground, err = parseHex(t.Foreground); err != nil {
		return Palette{}, fmt.Errorf("%w: theme.foreground: %v", ErrInvalidValue, err)
	}
	if p.Accent, err = parseHex(t.Accent); err != nil {
		return Palette{}, fmt.Errorf("%w: theme.accent: %v", ErrInvalidValue, err)
	}
	return p, nil
}

func parseHex(s string) (terminal.Color, error) {
	if s == "" {
		return terminal.Default, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return terminal.Default, err
	}
	r, g, b := c.RGB255()
	return terminal.RGB(r, g, b), nil
}

// QuitKey resolves keys.quit.
func (k KeysConfig) QuitKey() event.Key {
	key, _ := parseKey(k.Quit)
	return key
}

// NextKey resolves keys.next.
func (k KeysConfig) NextKey() event.Key {
	key, _ := parseKey(k.Next)
	return key
}

// parseKey accepts names in either "ctrl_c" or "ctrl+c" form
func parseKey(s string) (event.Key, bool) {
	return event.ParseKey(strings.ReplaceAll(s, "+", "_"))
}
