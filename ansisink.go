package hdoc

import (
	"io"
	"strings"
)

const ansiReset = "\x1b[0m"

// ANSISink renders content with themed ANSI styling to an io.Writer,
// typically a terminal. Hyperlinks use OSC 8 framing when enabled;
// otherwise only the label is shown. Terminals have no inline images,
// so ANSISink deliberately does not implement ImageSink and image
// nodes degrade to their title.
type ANSISink struct {
	w       io.Writer
	theme   Theme
	osc8    bool
	started bool
	prev    [2]byte // last two printable bytes written
	style   string  // active ANSI prefix
	blocks  int
}

// NewANSISink creates a themed terminal sink writing to w.
func NewANSISink(w io.Writer, theme Theme, opts ...RenderOption) *ANSISink {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &ANSISink{w: w, theme: theme, osc8: cfg.osc8}
}

// setStyle switches the active ANSI prefix, resetting first when a
// different prefix is already active.
func (s *ANSISink) setStyle(prefix string) error {
	if prefix == s.style {
		return nil
	}
	if s.style != "" {
		if _, err := io.WriteString(s.w, ansiReset); err != nil {
			return err
		}
	}
	s.style = prefix
	if s.style != "" {
		if _, err := io.WriteString(s.w, s.style); err != nil {
			return err
		}
	}
	return nil
}

// write emits printable text and advances the boundary tail state.
// Escape sequences never pass through here.
func (s *ANSISink) write(text string) error {
	if text == "" {
		return nil
	}
	s.started = true
	if len(text) >= 2 {
		s.prev[0] = text[len(text)-2]
		s.prev[1] = text[len(text)-1]
	} else {
		s.prev[0] = s.prev[1]
		s.prev[1] = text[0]
	}
	_, err := io.WriteString(s.w, text)
	return err
}

// Text emits a styled run.
func (s *ANSISink) Text(run string, style Style) error {
	if run == "" {
		return nil
	}
	if err := s.setStyle(s.theme.Prefix(style)); err != nil {
		return err
	}
	return s.write(run)
}

// Boundary ensures exactly one blank line before the next emission.
// The active style is reset first so blank lines carry no color.
func (s *ANSISink) Boundary() error {
	if !s.started {
		return nil
	}
	if s.prev[1] != '\n' || s.prev[0] != '\n' {
		if err := s.setStyle(""); err != nil {
			return err
		}
	}
	if s.prev[1] != '\n' {
		if err := s.write("\n"); err != nil {
			return err
		}
	}
	if s.prev[0] != '\n' {
		if err := s.write("\n"); err != nil {
			return err
		}
	}
	return nil
}

// Hyperlink emits the label with link styling, framed as an OSC 8
// hyperlink when enabled. The activation callback has no terminal
// binding; interactive hosts supply their own sink.
func (s *ANSISink) Hyperlink(label, target string, _ func()) error {
	if err := s.setStyle(s.theme.Prefix(StyleListMarker)); err != nil {
		return err
	}
	if s.osc8 && target != "" {
		if _, err := io.WriteString(s.w, osc8Start+target+"\x1b\\"); err != nil {
			return err
		}
	}
	if err := s.write(label); err != nil {
		return err
	}
	if s.osc8 && target != "" {
		if _, err := io.WriteString(s.w, osc8End); err != nil {
			return err
		}
	}
	return nil
}

// Button emits the button as a bracketed, strongly styled label.
func (s *ANSISink) Button(label, _ string, _ func()) error {
	if err := s.setStyle(s.theme.Prefix(StyleStrong)); err != nil {
		return err
	}
	return s.write("[" + label + "]")
}

// CodeBlock emits the code verbatim in code styling, bounded by blank
// lines, and returns a sequential block id.
func (s *ANSISink) CodeBlock(code string) (int, error) {
	if err := s.Boundary(); err != nil {
		return 0, err
	}
	if err := s.setStyle(s.theme.Prefix(StyleCode)); err != nil {
		return 0, err
	}
	if !strings.HasSuffix(code, "\n") {
		code += "\n"
	}
	if err := s.write(code); err != nil {
		return 0, err
	}
	if err := s.Boundary(); err != nil {
		return 0, err
	}
	id := s.blocks
	s.blocks++
	return id, nil
}

// Flush resets any active styling. Call it when a render completes.
func (s *ANSISink) Flush() error {
	return s.setStyle("")
}
