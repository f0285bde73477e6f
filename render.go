package hdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/muesli/reflow/ansi"
)

// Renderer walks a document tree and drives a Sink. Layout state is
// created fresh for every render; a Renderer serves one render at a
// time and concurrent topics need separate Renderer values.
type Renderer struct {
	sink     Sink
	cfg      renderConfig
	busy     atomic.Bool
	problems []error
}

// NewRenderer creates a renderer emitting to sink.
func NewRenderer(sink Sink, opts ...RenderOption) *Renderer {
	r := &Renderer{sink: sink}
	for _, opt := range opts {
		if opt != nil {
			opt(&r.cfg)
		}
	}
	return r
}

// RenderTopic renders an opened topic. The returned error reports sink
// failures only; degraded fragments are collected in Problems.
func (r *Renderer) RenderTopic(t *Topic) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("render topic: empty topic")
	}
	dir := ""
	if t.Path != "" {
		dir = filepath.Dir(t.Path)
	}
	st := renderState{
		subjectClass:     t.SubjectClass,
		subjectMetaclass: t.SubjectMetaclass,
	}
	return r.run(t.Root, st, dir)
}

// Render renders a bare tree with no subject class or source path.
func (r *Renderer) Render(root *Node) error {
	if root == nil {
		return fmt.Errorf("render: nil root")
	}
	return r.run(root, renderState{}, "")
}

func (r *Renderer) run(root *Node, st renderState, dir string) error {
	if !r.busy.CompareAndSwap(false, true) {
		return ErrRenderBusy
	}
	defer r.busy.Store(false)
	r.problems = r.problems[:0]
	p := &pass{r: r, sink: r.sink, cfg: &r.cfg, st: st, dir: dir}
	if err := p.render(root); err != nil {
		return err
	}
	if err := r.sink.Boundary(); err != nil {
		return err
	}
	if fl, ok := r.sink.(interface{ Flush() error }); ok {
		return fl.Flush()
	}
	return nil
}

// Problems returns the non-fatal errors recorded by the last render:
// unknown tags, malformed subtrees, oracle failures and missing
// resources. The slice is reset at the start of each render.
func (r *Renderer) Problems() []error {
	return r.problems
}

type bulletMode uint8

const (
	bulletNone bulletMode = iota
	bulletUnordered
	bulletOrdered
)

type bulletLevel struct {
	mode    bulletMode
	counter int
}

// renderState is the mutable layout context of one render pass.
type renderState struct {
	bullets          []bulletLevel
	subjectClass     string
	subjectMetaclass string
}

func (st *renderState) bullet() *bulletLevel {
	if len(st.bullets) == 0 {
		return nil
	}
	return &st.bullets[len(st.bullets)-1]
}

// pass bundles the per-render collaborators threaded through the walk.
type pass struct {
	r    *Renderer
	sink Sink
	cfg  *renderConfig
	st   renderState
	dir  string // topic source directory, for relative image paths
}

func (p *pass) problem(err error) {
	p.r.problems = append(p.r.problems, err)
}

func (p *pass) oracle() Oracle {
	if p.cfg.oracle != nil {
		return p.cfg.oracle
	}
	return nopOracle{}
}

type ruleFunc func(*pass, *Node) error

var rules [tagCount]ruleFunc

func init() {
	rules = [tagCount]ruleFunc{
		TagUnknown:         ruleUnknown,
		TagDocument:        ruleDocument,
		TagHeader:          ruleStructural,
		TagTitle:           headingRule(1, ""),
		TagSummary:         ruleSummary,
		TagBody:            ruleStructural,
		TagSection:         headingRule(1, ""),
		TagSubsection:      headingRule(2, ""),
		TagDescription:     headingRule(1, "Description"),
		TagExamples:        headingRule(1, "Examples"),
		TagClassMethods:    headingRule(1, "Class Methods"),
		TagInstanceMethods: headingRule(1, "Instance Methods"),
		TagDiscussion:      headingRule(2, "Discussion"),
		TagReturns:         headingRule(3, "Returns"),
		TagProse:           ruleProse,
		TagText:            inlineRule(StyleNone),
		TagSoft:            inlineRule(StyleSoft),
		TagTeletype:        inlineRule(StyleTeletype),
		TagCode:            inlineRule(StyleCode),
		TagStrong:          inlineRule(StyleStrong),
		TagEmphasis:        inlineRule(StyleEmphasis),
		TagString:          inlineRule(StyleString),
		TagTeletypeBlock:   ruleTeletypeBlock,
		TagCodeBlock:       ruleCodeBlock,
		TagNL:              ruleNL,
		TagNote:            labelRule("NOTE: "),
		TagWarning:         labelRule("WARNING: "),
		TagList:            listRule(bulletUnordered),
		TagNumberedList:    listRule(bulletOrdered),
		TagItem:            ruleItem,
		TagDefinitionList:  ruleStructural,
		TagArguments:       ruleArguments,
		TagArgument:        ruleArgument,
		TagLink:            ruleLink,
		TagImage:           ruleImage,
		TagMethod:          ruleMethod,
		TagCMethod:         ruleCMethod,
		TagIMethod:         ruleIMethod,
		TagMethodNames:     ruleStructural,
		TagMethodBody:      ruleStructural,
		TagCPrivate:        ruleSkip,
		TagIPrivate:        ruleSkip,
		TagCopyMethod:      ruleSkip,
		TagCCopyMethod:     ruleSkip,
		TagICopyMethod:     ruleSkip,
	}
	for t := Tag(0); t < tagCount; t++ {
		if rules[t] == nil {
			panic("hdoc: no render rule registered for tag " + t.String())
		}
	}
}

func (p *pass) render(n *Node) error {
	if n == nil {
		return nil
	}
	if skippedTag(n.Tag) {
		return nil
	}
	if n.Tag >= tagCount {
		return ruleUnknown(p, n)
	}
	return rules[n.Tag](p, n)
}

func (p *pass) renderChildren(n *Node) error {
	for _, c := range n.Children {
		if err := p.render(c); err != nil {
			return err
		}
	}
	return nil
}

func ruleStructural(p *pass, n *Node) error {
	return p.renderChildren(n)
}

func ruleSkip(*pass, *Node) error { return nil }

func ruleDocument(p *pass, n *Node) error {
	if len(n.Children) != 2 || n.Children[0].Tag != TagHeader || n.Children[1].Tag != TagBody {
		p.problem(&MalformedNodeError{Tag: TagDocument, Reason: "want HEADER then BODY"})
	}
	return p.renderChildren(n)
}

func ruleUnknown(p *pass, n *Node) error {
	p.problem(&UnknownTagError{Tag: n.TagName()})
	raw := "<" + n.TagName()
	if n.Text != "" {
		raw += " " + n.Text
	}
	raw += ">"
	return p.sink.Text(raw, StyleSoft)
}

// headingRule renders a heading at the given level. With a fixed label
// the node text is ignored; otherwise the node text is the label.
func headingRule(level int, fixed string) ruleFunc {
	return func(p *pass, n *Node) error {
		label := fixed
		if label == "" {
			label = n.Text
		}
		if err := p.heading(level, label); err != nil {
			return err
		}
		return p.renderChildren(n)
	}
}

func (p *pass) heading(level int, label string) error {
	if err := p.sink.Boundary(); err != nil {
		return err
	}
	style := StyleHeading1
	switch level {
	case 2:
		style = StyleHeading2
	case 3:
		style = StyleHeading3
	}
	if err := p.sink.Text(strings.Repeat("#", level)+" "+label, style); err != nil {
		return err
	}
	return p.sink.Boundary()
}

func ruleSummary(p *pass, n *Node) error {
	if err := p.sink.Boundary(); err != nil {
		return err
	}
	if n.Text != "" {
		if err := p.sink.Text(n.Text, StyleSoft); err != nil {
			return err
		}
	}
	if err := p.renderChildren(n); err != nil {
		return err
	}
	return p.sink.Boundary()
}

// inlineRule emits a node's literal text as a styled run and renders
// any children inline after it.
func inlineRule(style Style) ruleFunc {
	return func(p *pass, n *Node) error {
		if n.Text != "" {
			if err := p.sink.Text(n.Text, style); err != nil {
				return err
			}
		}
		return p.renderChildren(n)
	}
}

func inlineStyle(t Tag) (Style, bool) {
	switch t {
	case TagText:
		return StyleNone, true
	case TagSoft:
		return StyleSoft, true
	case TagTeletype:
		return StyleTeletype, true
	case TagCode:
		return StyleCode, true
	case TagStrong:
		return StyleStrong, true
	case TagEmphasis:
		return StyleEmphasis, true
	case TagString:
		return StyleString, true
	default:
		return StyleNone, false
	}
}

func ruleProse(p *pass, n *Node) error {
	if err := p.sink.Boundary(); err != nil {
		return err
	}
	f := newFiller(p.sink, p.cfg.width)
	if err := p.proseChildren(f, n); err != nil {
		return err
	}
	if err := f.finish(); err != nil {
		return err
	}
	return p.sink.Boundary()
}

func (p *pass) proseChildren(f *filler, n *Node) error {
	for _, c := range n.Children {
		if skippedTag(c.Tag) {
			continue
		}
		if style, ok := inlineStyle(c.Tag); ok {
			if err := f.addText(c.Text, style); err != nil {
				return err
			}
			if len(c.Children) > 0 {
				if err := p.proseChildren(f, c); err != nil {
					return err
				}
			}
			continue
		}
		switch c.Tag {
		case TagLink:
			label, target, activate := p.resolveLink(c.Text)
			err := f.addUnit(ansi.PrintableRuneWidth(label), func() error {
				return p.sink.Hyperlink(label, target, activate)
			})
			if err != nil {
				return err
			}
		case TagNL:
			if err := f.finish(); err != nil {
				return err
			}
			if err := p.sink.Boundary(); err != nil {
				return err
			}
			f.reset()
		default:
			if err := f.finish(); err != nil {
				return err
			}
			if err := p.render(c); err != nil {
				return err
			}
			f.reset()
		}
	}
	return nil
}

func ruleTeletypeBlock(p *pass, n *Node) error {
	if err := p.sink.Boundary(); err != nil {
		return err
	}
	text := n.Text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := p.sink.Text(text, StyleTeletype); err != nil {
		return err
	}
	return p.sink.Boundary()
}

func ruleCodeBlock(p *pass, n *Node) error {
	id, err := p.sink.CodeBlock(n.Text)
	if err != nil {
		return err
	}
	if p.cfg.runner == nil {
		return nil
	}
	code := n.Text
	run := p.cfg.runner
	err = p.sink.Button("Run", strconv.Itoa(id), func() { run(id, code) })
	if err != nil {
		return err
	}
	return p.sink.Boundary()
}

func ruleNL(p *pass, n *Node) error {
	return p.sink.Boundary()
}

func labelRule(label string) ruleFunc {
	return func(p *pass, n *Node) error {
		if err := p.sink.Text(label, StyleLabel); err != nil {
			return err
		}
		if err := p.renderChildren(n); err != nil {
			return err
		}
		return p.sink.Text("\n", StyleNone)
	}
}

func listRule(mode bulletMode) ruleFunc {
	return func(p *pass, n *Node) error {
		if err := p.sink.Boundary(); err != nil {
			return err
		}
		p.st.bullets = append(p.st.bullets, bulletLevel{mode: mode, counter: 1})
		err := p.renderChildren(n)
		p.st.bullets = p.st.bullets[:len(p.st.bullets)-1]
		if err != nil {
			return err
		}
		return p.sink.Boundary()
	}
}

func ruleItem(p *pass, n *Node) error {
	if b := p.st.bullet(); b != nil {
		switch b.mode {
		case bulletOrdered:
			marker := strconv.Itoa(b.counter) + ". "
			b.counter++
			if err := p.sink.Text(marker, StyleListMarker); err != nil {
				return err
			}
		case bulletUnordered:
			if err := p.sink.Text("* ", StyleListMarker); err != nil {
				return err
			}
		}
	}
	if err := p.renderChildren(n); err != nil {
		return err
	}
	return p.sink.Text("\n", StyleNone)
}

func ruleArguments(p *pass, n *Node) error {
	if n.Text != "" {
		p.problem(&MalformedNodeError{Tag: TagArguments, Reason: "unexpected literal text"})
		return nil
	}
	return p.renderChildren(n)
}

func ruleArgument(p *pass, n *Node) error {
	if n.Text != "" {
		if err := p.sink.Text(n.Text, StyleStrong); err != nil {
			return err
		}
		if err := p.sink.Text("\t", StyleNone); err != nil {
			return err
		}
	}
	if err := p.renderChildren(n); err != nil {
		return err
	}
	return p.sink.Boundary()
}

var externalSchemes = [...]string{"http://", "https://", "ftp://", "file://"}

func isExternalURL(doc string) bool {
	lower := strings.ToLower(doc)
	for _, scheme := range externalSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// resolveLink parses a LINK payload of the form document[#anchor[#title]]
// and resolves the displayed label, the link target, and the activation
// callback for internal links.
func (p *pass) resolveLink(text string) (label, target string, activate func()) {
	parts := strings.SplitN(text, "#", 3)
	doc := parts[0]
	anchor, title := "", ""
	if len(parts) > 1 {
		anchor = parts[1]
	}
	if len(parts) > 2 {
		title = parts[2]
	}
	target = doc
	if anchor != "" {
		target = doc + "#" + anchor
	}
	if isExternalURL(doc) {
		label = title
		if label == "" {
			label = target
		}
		return label, target, nil
	}
	label = title
	if label == "" && doc == "" {
		label = anchor
	}
	if label == "" && doc != "" {
		t, err := p.oracle().DocumentTitle(doc)
		if err != nil {
			p.problem(fmt.Errorf("link %q title lookup: %w", doc, err))
		} else {
			label = t
		}
	}
	if label == "" {
		label = anchor
	}
	if label == "" {
		label = doc
	}
	if p.cfg.opener != nil && doc != "" {
		id := doc
		activate = func() { p.cfg.opener(id) }
	}
	return label, target, activate
}

func ruleLink(p *pass, n *Node) error {
	label, target, activate := p.resolveLink(n.Text)
	return p.sink.Hyperlink(label, target, activate)
}

func ruleImage(p *pass, n *Node) error {
	parts := strings.SplitN(n.Text, "#", 2)
	path := parts[0]
	alt := path
	if len(parts) > 1 && parts[1] != "" {
		alt = parts[1]
	}
	img, ok := p.sink.(ImageSink)
	if !ok {
		return p.sink.Text(alt, StyleNone)
	}
	resolved := path
	if path != "" && !filepath.IsAbs(path) && p.dir != "" {
		resolved = filepath.Join(p.dir, path)
	}
	if _, err := os.Stat(resolved); err != nil {
		p.problem(fmt.Errorf("image %q: %w", resolved, ErrResourceNotFound))
		return p.sink.Text(alt, StyleNone)
	}
	return img.Image(resolved, alt)
}

// methodNames validates the method-group shape and extracts the name
// list. Shape violations are recoverable: the caller records the error
// and skips the subtree.
func methodNames(n *Node) ([]string, *MalformedNodeError) {
	if len(n.Children) != 2 {
		return nil, &MalformedNodeError{Tag: n.Tag, Reason: "want METHODNAMES then METHODBODY"}
	}
	names := n.Children[0]
	if names.Tag != TagMethodNames {
		return nil, &MalformedNodeError{Tag: n.Tag, Reason: "first child is not METHODNAMES"}
	}
	if n.Children[1].Tag != TagMethodBody {
		return nil, &MalformedNodeError{Tag: n.Tag, Reason: "second child is not METHODBODY"}
	}
	if len(names.Children) == 0 {
		return nil, &MalformedNodeError{Tag: n.Tag, Reason: "empty name list"}
	}
	out := make([]string, 0, len(names.Children))
	for _, c := range names.Children {
		name := strings.TrimSpace(c.Text)
		if name == "" {
			return nil, &MalformedNodeError{Tag: n.Tag, Reason: "name entry without text"}
		}
		out = append(out, name)
	}
	return out, nil
}

// ruleMethod renders a method group whose argument signature is carried
// verbatim in the node text; the oracle is not consulted.
func ruleMethod(p *pass, n *Node) error {
	names, merr := methodNames(n)
	if merr != nil {
		p.problem(merr)
		return nil
	}
	if err := p.sink.Boundary(); err != nil {
		return err
	}
	for _, name := range names {
		if err := p.sink.Text(name, StyleStrong); err != nil {
			return err
		}
		if n.Text != "" {
			if err := p.sink.Text(n.Text, StyleCode); err != nil {
				return err
			}
		}
		if err := p.sink.Text("\n", StyleNone); err != nil {
			return err
		}
	}
	if err := p.renderChildren(n.Children[1]); err != nil {
		return err
	}
	return p.sink.Boundary()
}

func ruleCMethod(p *pass, n *Node) error { return p.methodGroup(n, true) }
func ruleIMethod(p *pass, n *Node) error { return p.methodGroup(n, false) }

// methodGroup renders CMETHOD and IMETHOD nodes: each name qualified
// against the document's subject class, enriched with the argument
// list the oracle knows for it.
func (p *pass) methodGroup(n *Node, classSide bool) error {
	names, merr := methodNames(n)
	if merr != nil {
		p.problem(merr)
		return nil
	}
	if err := p.sink.Boundary(); err != nil {
		return err
	}
	lookupClass := p.st.subjectClass
	if classSide && p.st.subjectMetaclass != "" {
		lookupClass = p.st.subjectMetaclass
	}
	for _, name := range names {
		display := name
		if classSide && p.st.subjectClass != "" {
			display = p.st.subjectClass + "." + name
		}
		if err := p.sink.Text(display, StyleStrong); err != nil {
			return err
		}
		if sig := p.methodSignature(lookupClass, name); sig != "" {
			if err := p.sink.Text(sig, StyleCode); err != nil {
				return err
			}
		}
		if err := p.sink.Text("\n", StyleNone); err != nil {
			return err
		}
	}
	if err := p.renderChildren(n.Children[1]); err != nil {
		return err
	}
	return p.sink.Boundary()
}

// methodSignature formats the oracle's argument list for a method, or
// "" when the oracle has no information. An empty list renders no
// parentheses at all.
func (p *pass) methodSignature(class, method string) string {
	if class == "" {
		return ""
	}
	args, err := p.oracle().MethodArgs(class, method)
	if err != nil {
		p.problem(fmt.Errorf("method %s.%s args lookup: %w", class, method, err))
		return ""
	}
	if len(args) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("(")
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Name)
		if a.Default != "" {
			b.WriteString(": ")
			b.WriteString(a.Default)
		}
	}
	b.WriteString(")")
	return b.String()
}
