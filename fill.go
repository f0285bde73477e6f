package hdoc

import (
	"unicode"

	"github.com/muesli/reflow/ansi"
)

// filler re-flows inline prose against a fixed width, emitting to the
// sink word by word. Words may span styled segments; embedded units
// such as hyperlinks wrap as a whole. A width of zero disables
// re-flowing and passes runs through verbatim.
type filler struct {
	sink    Sink
	width   int
	col     int
	word    []fillSegment
	wordW   int
	pending bool // a space separates the next word from the current line
}

type fillSegment struct {
	text  string
	style Style
}

func newFiller(sink Sink, width int) *filler {
	return &filler{sink: sink, width: width}
}

// addText feeds a styled run into the filler. Whitespace, including
// newlines, collapses into single word separators.
func (f *filler) addText(text string, style Style) error {
	if text == "" {
		return nil
	}
	if f.width <= 0 {
		return f.sink.Text(text, style)
	}
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				f.append(text[start:i], style)
				start = -1
			}
			if err := f.flushWord(); err != nil {
				return err
			}
			f.pending = true
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		f.append(text[start:], style)
	}
	return nil
}

// addUnit emits an atomic pre-measured unit (a hyperlink or button)
// with word wrapping applied around it.
func (f *filler) addUnit(unitWidth int, emit func() error) error {
	if f.width <= 0 {
		return emit()
	}
	if err := f.flushWord(); err != nil {
		return err
	}
	if err := f.breakBefore(unitWidth); err != nil {
		return err
	}
	if err := emit(); err != nil {
		return err
	}
	f.col += unitWidth
	return nil
}

// finish flushes any buffered word. Call it at the end of a paragraph.
func (f *filler) finish() error {
	if f.width <= 0 {
		return nil
	}
	return f.flushWord()
}

// reset clears layout state after a hard break emitted elsewhere.
func (f *filler) reset() {
	f.col = 0
	f.pending = false
	f.word = f.word[:0]
	f.wordW = 0
}

func (f *filler) append(text string, style Style) {
	n := len(f.word)
	if n > 0 && f.word[n-1].style == style {
		f.word[n-1].text += text
	} else {
		f.word = append(f.word, fillSegment{text: text, style: style})
	}
	f.wordW += ansi.PrintableRuneWidth(text)
}

func (f *filler) flushWord() error {
	if len(f.word) == 0 {
		return nil
	}
	if err := f.breakBefore(f.wordW); err != nil {
		return err
	}
	for _, seg := range f.word {
		if err := f.sink.Text(seg.text, seg.style); err != nil {
			return err
		}
	}
	f.col += f.wordW
	f.word = f.word[:0]
	f.wordW = 0
	return nil
}

// breakBefore inserts a newline or pending space so that a unit of the
// given width starts at a legal position. Overlong units stay on their
// own line rather than being split.
func (f *filler) breakBefore(unitWidth int) error {
	if f.col > 0 {
		need := unitWidth
		if f.pending {
			need++
		}
		if f.col+need > f.width {
			if err := f.sink.Text("\n", StyleNone); err != nil {
				return err
			}
			f.col = 0
		} else if f.pending {
			if err := f.sink.Text(" ", StyleNone); err != nil {
				return err
			}
			f.col++
		}
	}
	f.pending = false
	return nil
}
