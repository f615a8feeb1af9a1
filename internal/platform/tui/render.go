package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-junction/internal/core"
)

// ansiCodes holds the 256-color code for each core.Color, indexed by color.
var ansiCodes = [core.ColorCount]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
	core.ColorTeal:          "30",
	core.ColorPurple:        "93",
	core.ColorSlate:         "60",
}

// Palette turns screen colors into terminal styles for one output.
// Each SSH session gets its own palette so color detection follows the
// client's terminal rather than the server's.
type Palette struct {
	styles []lipgloss.Style
}

// NewPalette builds a palette for the given renderer. A nil renderer uses
// the process's standard output.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = r.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return Palette{styles: styles}
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// Render converts a screen buffer into styled text. Runs of same-colored
// cells share one style so the output carries few escape sequences.
func (p Palette) Render(s *core.Screen) string {
	if len(p.styles) == 0 {
		p = NewPalette(nil)
	}

	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			out.WriteString(p.style(color).Render(run.String()))
		}
	}
	return out.String()
}
