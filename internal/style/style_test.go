package style

import "testing"

func TestParseColorNamed(t *testing.T) {
	c, err := ParseColor("red")
	if err != nil {
		t.Fatalf("ParseColor(red) error: %v", err)
	}
	r, g, b := c.RGB255()
	if r == 0 && g == 0 && b == 0 {
		t.Errorf("RGB255() for red looks unset: (%d,%d,%d)", r, g, b)
	}
}

func TestParseColorBrightVariant(t *testing.T) {
	if _, err := ParseColor("bright-blue"); err != nil {
		t.Errorf("ParseColor(bright-blue) error: %v", err)
	}
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#112233")
	if err != nil {
		t.Fatalf("ParseColor(#112233) error: %v", err)
	}
	r, g, b := c.RGB255()
	if r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("RGB255() = (%#x,%#x,%#x), want (0x11,0x22,0x33)", r, g, b)
	}
}

func TestParseColorFixedIndex(t *testing.T) {
	if _, err := ParseColor("200"); err != nil {
		t.Errorf("ParseColor(200) error: %v", err)
	}
}

func TestParseColorInvalid(t *testing.T) {
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Errorf("ParseColor(not-a-color) expected an error")
	}
}

func TestParseRuleBareKeywords(t *testing.T) {
	cases := map[string]RuleKind{
		"underline":     Underline,
		"strikethrough": Strikethrough,
		"reverse":       Reverse,
		"bold":          Bold,
		"italic":        Italic,
		"dimmed":        Dimmed,
	}

	for token, want := range cases {
		rule, err := ParseRule(token)
		if err != nil {
			t.Errorf("ParseRule(%q) error: %v", token, err)
			continue
		}
		if rule.Kind != want {
			t.Errorf("ParseRule(%q).Kind = %v, want %v", token, rule.Kind, want)
		}
	}
}

func TestParseRuleFgBg(t *testing.T) {
	fg, err := ParseRule("fg:blue")
	if err != nil || fg.Kind != Fg {
		t.Errorf("ParseRule(fg:blue) = %+v, err=%v", fg, err)
	}

	bg, err := ParseRule("bg:#ff0000")
	if err != nil || bg.Kind != Bg {
		t.Errorf("ParseRule(bg:#ff0000) = %+v, err=%v", bg, err)
	}
}

func TestParseRuleUnknown(t *testing.T) {
	if _, err := ParseRule("sparkle"); err == nil {
		t.Errorf("ParseRule(sparkle) expected an error")
	}
}

func TestParseStyleMultipleRules(t *testing.T) {
	s, err := Parse("bold fg:yellow bg:#202020")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(s.Rules) != 3 {
		t.Errorf("len(Rules) = %d, want 3", len(s.Rules))
	}
}

func TestParseStyleNoneResetsAndStops(t *testing.T) {
	s, err := Parse("bold none fg:red")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(s.Rules) != 1 || s.Rules[0].Kind != Reset {
		t.Errorf("Rules = %+v, want a single Reset rule", s.Rules)
	}
}

func TestParseStyleEmpty(t *testing.T) {
	s, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error: %v", err)
	}
	if len(s.Rules) != 0 {
		t.Errorf("Rules = %+v, want empty", s.Rules)
	}
}

func TestParseStylePropagatesRuleError(t *testing.T) {
	if _, err := Parse("bold fg:nope"); err == nil {
		t.Errorf("Parse expected an error from an invalid color")
	}
}
