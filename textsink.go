package hdoc

import (
	"io"
	"strings"
)

// TextSink renders content as plain text to an io.Writer. Styles are
// ignored, hyperlinks render as their label, buttons as a bracketed
// label, and images are unsupported (callers fall back to the title).
// It is the reference implementation of the Sink boundary contract.
type TextSink struct {
	w       io.Writer
	started bool
	prev    [2]byte // last two bytes written
	blocks  int
}

// NewTextSink creates a plain text sink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) write(text string) error {
	if text == "" {
		return nil
	}
	s.started = true
	switch {
	case len(text) >= 2:
		s.prev[0] = text[len(text)-2]
		s.prev[1] = text[len(text)-1]
	default:
		s.prev[0] = s.prev[1]
		s.prev[1] = text[0]
	}
	_, err := io.WriteString(s.w, text)
	return err
}

// Text emits a literal run. The style is ignored.
func (s *TextSink) Text(run string, _ Style) error {
	return s.write(run)
}

// Boundary ensures exactly one blank line separates what came before
// from what comes next. Calling it repeatedly has no further effect,
// and nothing is emitted before the first run of output.
func (s *TextSink) Boundary() error {
	if !s.started {
		return nil
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

// Hyperlink emits the link label; plain text has no link targets.
func (s *TextSink) Hyperlink(label, _ string, _ func()) error {
	return s.write(label)
}

// Button emits the button as a bracketed label.
func (s *TextSink) Button(label, _ string, _ func()) error {
	return s.write("[" + label + "]")
}

// CodeBlock emits the code verbatim, bounded by blank lines, and
// returns a sequential block id.
func (s *TextSink) CodeBlock(code string) (int, error) {
	if err := s.Boundary(); err != nil {
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
