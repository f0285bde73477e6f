package hdoc

import (
	"sort"
	"strings"

	"pkt.systems/hdoc/internal/palette"
)

// Theme maps advisory styles to ANSI prefix sequences for terminal
// sinks.
type Theme interface {
	Name() string
	Prefix(style Style) string
}

type theme struct {
	name string
	p    palette.Palette
}

func (t theme) Name() string { return t.name }

func (t theme) Prefix(style Style) string {
	switch style {
	case StyleHeading1:
		return join(palette.Bold, t.p.H1)
	case StyleHeading2:
		return join(palette.Bold, t.p.H2)
	case StyleHeading3:
		return join(palette.Bold, t.p.H3)
	case StyleSoft:
		return join(t.p.Soft)
	case StyleTeletype:
		return join(t.p.Teletype)
	case StyleCode:
		return join(t.p.Code)
	case StyleStrong:
		return join(palette.Bold, t.p.Strong, t.p.Text)
	case StyleEmphasis:
		return join(palette.Italic, t.p.Emphasis, t.p.Text)
	case StyleString:
		return join(t.p.String)
	case StyleListMarker:
		return join(t.p.ListMarker)
	case StyleLabel:
		return join(palette.Bold, t.p.Label)
	default:
		return join(t.p.Text)
	}
}

func join(prefixes ...string) string {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return b.String()
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", p: palette.PaletteDefault},
	"gruvbox":        theme{name: "gruvbox", p: palette.PaletteGruvbox},
	"nord":           theme{name: "nord", p: palette.PaletteNord},
	"solarized-dark": theme{name: "solarized-dark", p: palette.PaletteSolarizedDark},
	"github-light":   theme{name: "github-light", p: palette.PaletteGithubLight},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	t, ok := builtinThemes[normalized]
	return t, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
