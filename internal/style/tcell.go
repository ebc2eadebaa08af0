package style

import "github.com/gdamore/tcell/v2"

// Apply folds Style's rules into a tcell.Style the render package can hand
// straight to a Screen's SetContent, resolving Fg/Bg colors through RGB255
// so named, fixed and truecolor rules all end up in the same representation.
func (s Style) Apply(base tcell.Style) tcell.Style {
	out := base

	for _, rule := range s.Rules {
		switch rule.Kind {
		case Reset:
			out = tcell.StyleDefault
		case Underline:
			out = out.Underline(true)
		case Strikethrough:
			out = out.StrikeThrough(true)
		case Reverse:
			out = out.Reverse(true)
		case Bold:
			out = out.Bold(true)
		case Italic:
			out = out.Italic(true)
		case Dimmed:
			out = out.Dim(true)
		case Fg:
			r, g, b := rule.Color.RGB255()
			out = out.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		case Bg:
			r, g, b := rule.Color.RGB255()
			out = out.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		}
	}

	return out
}
