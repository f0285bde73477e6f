package hdoc

// Style is advisory formatting metadata attached to a text run. Plain
// sinks may ignore it entirely.
type Style uint8

const (
	// StyleNone is an unstyled text run.
	StyleNone Style = iota
	// StyleHeading1 through StyleHeading3 mark heading runs by level.
	StyleHeading1
	StyleHeading2
	StyleHeading3
	// StyleSoft marks de-emphasized text.
	StyleSoft
	// StyleTeletype marks fixed-width literal text.
	StyleTeletype
	// StyleCode marks inline code.
	StyleCode
	// StyleStrong marks strong emphasis.
	StyleStrong
	// StyleEmphasis marks emphasis.
	StyleEmphasis
	// StyleString marks string literals.
	StyleString
	// StyleListMarker marks bullet and number markers.
	StyleListMarker
	// StyleLabel marks prefix labels such as NOTE: and WARNING:.
	StyleLabel
)

// Sink is the destination for rendered content. A single render pass is
// the sink's only writer. Boundary must be idempotent: repeated calls
// collapse to exactly one blank line in the output.
type Sink interface {
	// Text emits a literal run with advisory style.
	Text(run string, style Style) error
	// Boundary ensures the output position is separated from prior
	// content by exactly one blank line.
	Boundary() error
	// Hyperlink emits an activatable link. activate may be nil for
	// bare external links.
	Hyperlink(label, target string, activate func()) error
	// Button emits an actionable button carrying an opaque payload.
	Button(label, payload string, activate func()) error
	// CodeBlock emits an editable, independently executable block and
	// returns its addressable id within this render.
	CodeBlock(code string) (int, error)
}

// ImageSink is implemented by sinks that can embed inline images.
// Sinks without it receive the image title as plain text instead.
type ImageSink interface {
	// Image embeds the image at path with alt as the fallback label.
	Image(path, alt string) error
}
