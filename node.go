package hdoc

import "strings"

// Tag classifies a document node's semantic role.
type Tag uint8

const (
	// TagUnknown marks a node whose raw tag has no entry in the
	// vocabulary. Such nodes render through the raw-form fallback.
	TagUnknown Tag = iota
	TagDocument
	TagHeader
	TagTitle
	TagSummary
	TagBody
	TagSection
	TagSubsection
	TagDescription
	TagExamples
	TagClassMethods
	TagInstanceMethods
	TagDiscussion
	TagReturns
	TagProse
	TagText
	TagSoft
	TagTeletype
	TagCode
	TagStrong
	TagEmphasis
	TagString
	TagTeletypeBlock
	TagCodeBlock
	TagNL
	TagNote
	TagWarning
	TagList
	TagNumberedList
	TagItem
	TagDefinitionList
	TagArguments
	TagArgument
	TagLink
	TagImage
	TagMethod
	TagCMethod
	TagIMethod
	TagMethodNames
	TagMethodBody
	TagCPrivate
	TagIPrivate
	TagCopyMethod
	TagCCopyMethod
	TagICopyMethod

	tagCount
)

var tagNames = [tagCount]string{
	TagUnknown:         "UNKNOWN",
	TagDocument:        "DOCUMENT",
	TagHeader:          "HEADER",
	TagTitle:           "TITLE",
	TagSummary:         "SUMMARY",
	TagBody:            "BODY",
	TagSection:         "SECTION",
	TagSubsection:      "SUBSECTION",
	TagDescription:     "DESCRIPTION",
	TagExamples:        "EXAMPLES",
	TagClassMethods:    "CLASSMETHODS",
	TagInstanceMethods: "INSTANCEMETHODS",
	TagDiscussion:      "DISCUSSION",
	TagReturns:         "RETURNS",
	TagProse:           "PROSE",
	TagText:            "TEXT",
	TagSoft:            "SOFT",
	TagTeletype:        "TELETYPE",
	TagCode:            "CODE",
	TagStrong:          "STRONG",
	TagEmphasis:        "EMPHASIS",
	TagString:          "STRING",
	TagTeletypeBlock:   "TELETYPEBLOCK",
	TagCodeBlock:       "CODEBLOCK",
	TagNL:              "NL",
	TagNote:            "NOTE",
	TagWarning:         "WARNING",
	TagList:            "LIST",
	TagNumberedList:    "NUMBEREDLIST",
	TagItem:            "ITEM",
	TagDefinitionList:  "DEFINITIONLIST",
	TagArguments:       "ARGUMENTS",
	TagArgument:        "ARGUMENT",
	TagLink:            "LINK",
	TagImage:           "IMAGE",
	TagMethod:          "METHOD",
	TagCMethod:         "CMETHOD",
	TagIMethod:         "IMETHOD",
	TagMethodNames:     "METHODNAMES",
	TagMethodBody:      "METHODBODY",
	TagCPrivate:        "CPRIVATE",
	TagIPrivate:        "IPRIVATE",
	TagCopyMethod:      "COPYMETHOD",
	TagCCopyMethod:     "CCOPYMETHOD",
	TagICopyMethod:     "ICOPYMETHOD",
}

var tagsByName = func() map[string]Tag {
	m := make(map[string]Tag, tagCount)
	for t := Tag(1); t < tagCount; t++ {
		m[tagNames[t]] = t
	}
	return m
}()

// String returns the canonical upper-case tag name.
func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "UNKNOWN"
}

// ParseTag resolves a canonical tag name. Matching is case-insensitive.
func ParseTag(name string) (Tag, bool) {
	t, ok := tagsByName[strings.ToUpper(strings.TrimSpace(name))]
	return t, ok
}

// Node is one element of a document tree. Nodes are built once by the
// external parser and never mutated by the renderer.
type Node struct {
	Tag      Tag
	Raw      string // original tag name when Tag is TagUnknown
	Text     string
	Children []*Node
}

// TagName returns the node's tag name, preferring the raw form for
// unknown tags.
func (n *Node) TagName() string {
	if n.Tag == TagUnknown && n.Raw != "" {
		return n.Raw
	}
	return n.Tag.String()
}

// NewNode builds a container node.
func NewNode(tag Tag, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// TextNode builds a leaf node carrying literal text.
func TextNode(tag Tag, text string) *Node {
	return &Node{Tag: tag, Text: text}
}

// skippedTag reports tags that are neither rendered nor recursed into.
func skippedTag(t Tag) bool {
	switch t {
	case TagCPrivate, TagIPrivate, TagCopyMethod, TagCCopyMethod, TagICopyMethod:
		return true
	default:
		return false
	}
}
