package hdoc

import "testing"

func TestParseTagRoundTrip(t *testing.T) {
	for tag := Tag(1); tag < tagCount; tag++ {
		parsed, ok := ParseTag(tag.String())
		if !ok {
			t.Fatalf("ParseTag(%q) not found", tag.String())
		}
		if parsed != tag {
			t.Fatalf("ParseTag(%q) = %v, want %v", tag.String(), parsed, tag)
		}
	}
}

func TestParseTagCaseInsensitive(t *testing.T) {
	tag, ok := ParseTag(" codeblock ")
	if !ok || tag != TagCodeBlock {
		t.Fatalf("ParseTag(\" codeblock \") = %v, %v", tag, ok)
	}
}

func TestParseTagUnknown(t *testing.T) {
	if _, ok := ParseTag("FOOBAR"); ok {
		t.Fatal("FOOBAR should not parse")
	}
	if _, ok := ParseTag("UNKNOWN"); ok {
		t.Fatal("UNKNOWN is not part of the public vocabulary")
	}
}

func TestTagNamePrefersRawForm(t *testing.T) {
	n := &Node{Tag: TagUnknown, Raw: "LEGACYTAG"}
	if n.TagName() != "LEGACYTAG" {
		t.Fatalf("TagName() = %q", n.TagName())
	}
	if got := TextNode(TagCode, "x").TagName(); got != "CODE" {
		t.Fatalf("TagName() = %q", got)
	}
}

func TestSkippedTags(t *testing.T) {
	for _, tag := range []Tag{TagCPrivate, TagIPrivate, TagCopyMethod, TagCCopyMethod, TagICopyMethod} {
		if !skippedTag(tag) {
			t.Fatalf("%s should be skipped", tag)
		}
	}
	if skippedTag(TagMethod) {
		t.Fatal("METHOD must not be skipped")
	}
}
