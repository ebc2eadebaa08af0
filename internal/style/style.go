// Package style parses the TOML styling grammar used by every configurable
// UI component (prompt, gauge, candidate rows, the selection row): a
// whitespace-separated list of rules such as "bold fg:yellow bg:#202020",
// or the literal "none" to reset to no styling.
package style

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color in one of three forms: a named ANSI color, an
// 8-bit palette index, or a 24-bit RGB triple.
type Color struct {
	kind colorKind
	rgb  [3]uint8
	idx  uint8
	name string
}

type colorKind int

const (
	colorNamed colorKind = iota
	colorFixed
	colorRGB
)

var namedColors = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"purple":  5,
	"cyan":    6,
	"white":   7,
	"bright-black":   8,
	"bright-red":     9,
	"bright-green":   10,
	"bright-yellow":  11,
	"bright-blue":    12,
	"bright-purple":  13,
	"bright-cyan":    14,
	"bright-white":   15,
}

// ParseColor parses a color token: "#rrggbb", a bare palette index, or one
// of the named ANSI colors (including the "bright-" variants).
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return Color{kind: colorRGB, rgb: [3]uint8{r, g, b}}, nil
	}

	if idx, ok := namedColors[s]; ok {
		return Color{kind: colorFixed, idx: idx, name: s}, nil
	}

	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Color{kind: colorFixed, idx: uint8(n)}, nil
	}

	return Color{}, fmt.Errorf("unknown color %q", s)
}

// RGB255 returns the color's 24-bit representation, resolving fixed/named
// palette indices to their nearest standard RGB approximation via
// go-colorful when the color was not already given as RGB.
func (c Color) RGB255() (uint8, uint8, uint8) {
	if c.kind == colorRGB {
		return c.rgb[0], c.rgb[1], c.rgb[2]
	}
	return ansi256ToRGB(c.idx)
}

// ansi256ToRGB approximates the standard 16-color ANSI palette; indices
// beyond it fall back to a colorful.Color built from the index scaled into
// grayscale, which is good enough for a terminal UI's fallback path.
func ansi256ToRGB(idx uint8) (uint8, uint8, uint8) {
	basic := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	if int(idx) < len(basic) {
		c := basic[idx]
		return c[0], c[1], c[2]
	}
	g := colorful.Color{R: float64(idx) / 255.0, G: float64(idx) / 255.0, B: float64(idx) / 255.0}
	return g.RGB255()
}

// RuleKind discriminates a Rule's meaning.
type RuleKind int

const (
	Reset RuleKind = iota
	Underline
	Strikethrough
	Reverse
	Bold
	Italic
	Dimmed
	Fg
	Bg
)

// Rule is one styling directive: either a bare attribute or a foreground/
// background color assignment.
type Rule struct {
	Kind  RuleKind
	Color Color
}

// ParseRule parses a single whitespace-delimited style token.
func ParseRule(token string) (Rule, error) {
	switch token {
	case "none":
		return Rule{Kind: Reset}, nil
	case "underline":
		return Rule{Kind: Underline}, nil
	case "strikethrough":
		return Rule{Kind: Strikethrough}, nil
	case "reverse":
		return Rule{Kind: Reverse}, nil
	case "bold":
		return Rule{Kind: Bold}, nil
	case "italic":
		return Rule{Kind: Italic}, nil
	case "dimmed":
		return Rule{Kind: Dimmed}, nil
	}

	if rest, ok := cut(token, "fg:"); ok {
		c, err := ParseColor(rest)
		if err != nil {
			return Rule{}, err
		}
		return Rule{Kind: Fg, Color: c}, nil
	}

	if rest, ok := cut(token, "bg:"); ok {
		c, err := ParseColor(rest)
		if err != nil {
			return Rule{}, err
		}
		return Rule{Kind: Bg, Color: c}, nil
	}

	return Rule{}, fmt.Errorf("unknown style rule %q", token)
}

func cut(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return s[len(prefix):], true
	}
	return "", false
}

// Style is an ordered list of Rules. Parsing "none" anywhere in the token
// stream resets the style to just [Reset] and stops: it is the grammar's
// way of saying "no styling at all", and any rules after it would be moot.
type Style struct {
	Rules []Rule
}

// UnmarshalText lets Style be used directly as a TOML string field value
// via BurntSushi/toml's encoding.TextUnmarshaler support.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Parse splits raw on whitespace and parses each token as a Rule.
func Parse(raw string) (Style, error) {
	var rules []Rule

	for _, token := range strings.Fields(raw) {
		rule, err := ParseRule(token)
		if err != nil {
			return Style{}, err
		}

		if rule.Kind == Reset {
			return Style{Rules: []Rule{rule}}, nil
		}

		rules = append(rules, rule)
	}

	return Style{Rules: rules}, nil
}
