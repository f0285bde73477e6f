package hdoc

import (
	"bytes"
	"strings"
	"testing"
)

func fillProse(t *testing.T, width int, root *Node, opts ...RenderOption) string {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]RenderOption{WithWidth(width)}, opts...)
	r := NewRenderer(NewTextSink(&buf), opts...)
	if err := r.Render(root); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestProseFillsToWidth(t *testing.T) {
	root := NewNode(TagProse, TextNode(TagText, "aaa bbb ccc ddd eee"))
	out := fillProse(t, 7, root)
	want := "aaa bbb\nccc ddd\neee\n\n"
	if out != want {
		t.Fatalf("fill:\ngot  %q\nwant %q", out, want)
	}
}

func TestProseFillCollapsesWhitespace(t *testing.T) {
	root := NewNode(TagProse, TextNode(TagText, "one\n  two\t three"))
	out := fillProse(t, 40, root)
	if out != "one two three\n\n" {
		t.Fatalf("collapse: got %q", out)
	}
}

func TestProseFillSpansStyledSegments(t *testing.T) {
	// "wide" and "spread" form one word each with the inline style
	// split mid-word; the word must not be broken at the style edge.
	root := NewNode(TagProse,
		TextNode(TagText, "a wi"),
		TextNode(TagStrong, "de"),
		TextNode(TagText, " spread"),
	)
	out := fillProse(t, 6, root)
	want := "a wide\nspread\n\n"
	if out != want {
		t.Fatalf("styled fill:\ngot  %q\nwant %q", out, want)
	}
}

func TestProseFillWrapsLinkAsUnit(t *testing.T) {
	oracle := &fakeOracle{titles: map[string]string{"Array": "Arrays"}}
	root := NewNode(TagProse,
		TextNode(TagText, "see also"),
		TextNode(TagLink, "Array"),
	)
	out := fillProse(t, 10, root, WithOracle(oracle))
	want := "see also\nArrays\n\n"
	if out != want {
		t.Fatalf("link wrap:\ngot  %q\nwant %q", out, want)
	}
}

func TestProseWidthZeroPassesThrough(t *testing.T) {
	root := NewNode(TagProse, TextNode(TagText, "keep   spacing\nand lines"))
	out := fillProse(t, 0, root)
	if out != "keep   spacing\nand lines\n\n" {
		t.Fatalf("pass-through: got %q", out)
	}
}

func TestProseHardBreakViaNL(t *testing.T) {
	root := NewNode(TagProse,
		TextNode(TagText, "first paragraph"),
		NewNode(TagNL),
		TextNode(TagText, "second paragraph"),
	)
	out := fillProse(t, 40, root)
	if out != "first paragraph\n\nsecond paragraph\n\n" {
		t.Fatalf("hard break: got %q", out)
	}
}

func TestProseOverlongWordStaysWhole(t *testing.T) {
	root := NewNode(TagProse, TextNode(TagText, "tiny incomprehensibilities end"))
	out := fillProse(t, 8, root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{"tiny", "incomprehensibilities", "end"}
	if len(lines) != len(want) {
		t.Fatalf("lines: got %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
