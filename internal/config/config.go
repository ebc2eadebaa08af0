// Package config loads the TOML styling schema and parses the command-line
// flags that select the run mode and an optional initial query.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jhbabon/scout/internal/style"
)

// Mode selects whether the UI switches to the alternate screen (Full) or
// draws on the normal screen (Inline). In both modes each frame is painted
// from the top-left corner after clearing the screen; Inline does not draw
// below the current cursor position.
type Mode int

const (
	Full Mode = iota
	Inline
)

func (m Mode) String() string {
	if m == Inline {
		return "inline"
	}
	return "full"
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "full":
		*m = Full
	case "inline":
		*m = Inline
	default:
		return fmt.Errorf("unknown mode %q", text)
	}
	return nil
}

// MinHeight and MinWidth bound how small an explicitly configured screen
// may be before Validate rejects it, since the layout cannot render
// meaningfully below them. A size taken from the terminal is not checked.
const (
	MinHeight = 3
	MinWidth  = 4
)

// ScreenConfig configures the overall layout.
type ScreenConfig struct {
	Mode       Mode  `toml:"mode"`
	Style      style.Style `toml:"style"`
	Width      int   `toml:"columns"`
	Height     int   `toml:"lines"`
	FullWidth  bool  `toml:"full_width"`
	FullHeight bool  `toml:"full_height"`
}

// PromptConfig configures the input line's leading symbol and styling.
type PromptConfig struct {
	Symbol string      `toml:"symbol"`
	Style  style.Style `toml:"style"`
}

// GaugeConfig configures the "current/total" counter.
type GaugeConfig struct {
	Prefix string      `toml:"prefix"`
	Symbol string      `toml:"symbol"`
	Style  style.Style `toml:"style"`
}

// CandidateConfig configures unselected result rows.
type CandidateConfig struct {
	Symbol     string      `toml:"symbol"`
	Style      style.Style `toml:"style"`
	StyleMatch style.Style `toml:"style_match"`
}

// SelectionConfig configures the highlighted result row.
type SelectionConfig struct {
	Symbol     string      `toml:"symbol"`
	Style      style.Style `toml:"style"`
	StyleMatch style.Style `toml:"style_match"`
}

// Config is the full deserialized TOML document plus whatever the command
// line overrode on top of it.
type Config struct {
	Screen    ScreenConfig    `toml:"screen"`
	Prompt    PromptConfig    `toml:"prompt"`
	Gauge     GaugeConfig     `toml:"gauge"`
	Candidate CandidateConfig `toml:"candidate"`
	Selection SelectionConfig `toml:"selection"`

	InitialQuery string
}

// Default returns the configuration scout ships with when no TOML file is
// present, mirroring the styling defaults of the original components.
func Default() Config {
	underlineBold := style.Style{Rules: []style.Rule{{Kind: style.Underline}, {Kind: style.Bold}}}
	reverse := style.Style{Rules: []style.Rule{{Kind: style.Reverse}}}

	return Config{
		Screen: ScreenConfig{Mode: Full, FullWidth: true, FullHeight: true},
		Prompt: PromptConfig{Symbol: "> "},
		Gauge:  GaugeConfig{Prefix: "  ", Symbol: "/"},
		Candidate: CandidateConfig{
			Symbol:     "  ",
			StyleMatch: underlineBold,
		},
		Selection: SelectionConfig{
			Symbol:     "* ",
			Style:      reverse,
			StyleMatch: underlineBold,
		},
	}
}

// Load reads and parses a TOML config file, falling back to Default()'s
// values for anything the file does not set.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the screen's explicit dimensions, if any, are at
// least MinWidth x MinHeight.
func (c Config) Validate() error {
	if c.Screen.Width != 0 && c.Screen.Width < MinWidth {
		return fmt.Errorf("screen width %d is below the minimum %d", c.Screen.Width, MinWidth)
	}
	if c.Screen.Height != 0 && c.Screen.Height < MinHeight {
		return fmt.Errorf("screen height %d is below the minimum %d", c.Screen.Height, MinHeight)
	}
	return nil
}
