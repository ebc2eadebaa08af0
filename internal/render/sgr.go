package render

import (
	"fmt"
	"strings"

	"github.com/jhbabon/scout/internal/style"
)

// sgr renders a Style as a single Select Graphic Rendition escape sequence,
// the same direct-ANSI approach the original UI used instead of a
// retained-mode terminal library.
func sgr(s style.Style) string {
	if len(s.Rules) == 0 {
		return ""
	}

	var codes []string
	for _, rule := range s.Rules {
		switch rule.Kind {
		case style.Reset:
			return sgrReset()
		case style.Underline:
			codes = append(codes, "4")
		case style.Strikethrough:
			codes = append(codes, "9")
		case style.Reverse:
			codes = append(codes, "7")
		case style.Bold:
			codes = append(codes, "1")
		case style.Italic:
			codes = append(codes, "3")
		case style.Dimmed:
			codes = append(codes, "2")
		case style.Fg:
			r, g, b := rule.Color.RGB255()
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", r, g, b))
		case style.Bg:
			r, g, b := rule.Color.RGB255()
			codes = append(codes, fmt.Sprintf("48;2;%d;%d;%d", r, g, b))
		}
	}

	if len(codes) == 0 {
		return ""
	}

	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// sgrReset clears all attributes back to the terminal default.
func sgrReset() string {
	return "\x1b[0m"
}
