// Package palette defines ANSI escape prefixes used by hdoc themes.
package palette

// Text attribute prefixes.
const (
	Bold      = "\x1b[1m"
	Faint     = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

func fg256(n string) string { return "\x1b[38;5;" + n + "m" }

// Palette names the per-role color prefixes of a theme.
type Palette struct {
	Text       string
	H1         string
	H2         string
	H3         string
	Soft       string
	Teletype   string
	Code       string
	Strong     string
	Emphasis   string
	String     string
	ListMarker string
	Label      string
}

// PaletteDefault keeps body text in the terminal's default color and
// reserves color for structure.
var PaletteDefault = Palette{
	H1:         fg256("81"),
	H2:         fg256("75"),
	H3:         fg256("68"),
	Soft:       Faint,
	Teletype:   fg256("252"),
	Code:       fg256("222"),
	String:     fg256("114"),
	ListMarker: fg256("75"),
	Label:      fg256("203"),
}

// PaletteGruvbox approximates the gruvbox dark scheme.
var PaletteGruvbox = Palette{
	Text:       fg256("223"),
	H1:         fg256("214"),
	H2:         fg256("142"),
	H3:         fg256("109"),
	Soft:       fg256("245"),
	Teletype:   fg256("187"),
	Code:       fg256("208"),
	String:     fg256("142"),
	ListMarker: fg256("109"),
	Label:      fg256("167"),
}

// PaletteNord approximates the nord scheme.
var PaletteNord = Palette{
	Text:       fg256("253"),
	H1:         fg256("110"),
	H2:         fg256("109"),
	H3:         fg256("111"),
	Soft:       fg256("244"),
	Teletype:   fg256("252"),
	Code:       fg256("222"),
	String:     fg256("114"),
	ListMarker: fg256("110"),
	Label:      fg256("174"),
}

// PaletteSolarizedDark approximates solarized dark.
var PaletteSolarizedDark = Palette{
	Text:       fg256("244"),
	H1:         fg256("33"),
	H2:         fg256("37"),
	H3:         fg256("64"),
	Soft:       fg256("240"),
	Teletype:   fg256("245"),
	Code:       fg256("166"),
	String:     fg256("37"),
	ListMarker: fg256("33"),
	Label:      fg256("160"),
}

// PaletteGithubLight targets light backgrounds.
var PaletteGithubLight = Palette{
	Text:       fg256("235"),
	H1:         fg256("25"),
	H2:         fg256("25"),
	H3:         fg256("24"),
	Soft:       fg256("102"),
	Teletype:   fg256("237"),
	Code:       fg256("124"),
	String:     fg256("22"),
	ListMarker: fg256("25"),
	Label:      fg256("124"),
}
