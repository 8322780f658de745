package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var calloutPattern = regexp.MustCompile(`(?i)^\s*\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]`)

// KindCallout is the node kind of a marked blockquote
var KindCallout = ast.NewNodeKind("Callout")

// Callout is a blockquote whose first line carried a [!TYPE] marker
type Callout struct {
	ast.BaseBlock
	Variant string // lower case: note, tip, important, warning, caution
}

func (n *Callout) Kind() ast.NodeKind {
	return KindCallout
}

func (n *Callout) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Variant": n.Variant}, nil)
}

// Title is the heading shown above the callout body
func (n *Callout) Title() string {
	return cases.Title(language.English).String(n.Variant)
}

type calloutTransformer struct{}

func (t *calloutTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()

	var quotes []*ast.Blockquote
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if quote, ok := n.(*ast.Blockquote); ok && entering {
			quotes = append(quotes, quote)
		}
		return ast.WalkContinue, nil
	})

	for _, quote := range quotes {
		calloutType, ok := detectCallout(quote, source)
		if !ok {
			continue
		}

		callout := &Callout{Variant: calloutType}
		for child := quote.FirstChild(); child != nil; {
			next := child.NextSibling()
			callout.AppendChild(callout, child)
			child = next
		}
		quote.Parent().ReplaceChild(quote.Parent(), quote, callout)
	}
}

// detectCallout reports the callout type when the blockquote's first child is a
// paragraph whose first text starts with a marker, and strips that marker.
// The first text may sit inside emphasis, as in **[!NOTE]**.
func detectCallout(quote *ast.Blockquote, source []byte) (string, bool) {
	para, ok := quote.FirstChild().(*ast.Paragraph)
	if !ok {
		return "", false
	}
	container := firstTextContainer(para)
	if container == nil {
		return "", false
	}

	var (
		leading []*ast.Text
		buf     strings.Builder
	)
	for n := container.FirstChild(); n != nil; n = n.NextSibling() {
		txt, ok := n.(*ast.Text)
		if !ok {
			break
		}
		leading = append(leading, txt)
		buf.Write(txt.Segment.Value(source))
		if txt.SoftLineBreak() || txt.HardLineBreak() {
			break
		}
	}

	match := calloutPattern.FindStringSubmatch(buf.String())
	if match == nil {
		return "", false
	}

	stripMarker(container, leading, len(match[0]), source)

	// Drop wrappers the marker leaves empty
	for container != ast.Node(para) && container.ChildCount() == 0 {
		parent := container.Parent()
		next := container.NextSibling()
		parent.RemoveChild(parent, container)
		if txt, ok := next.(*ast.Text); ok {
			trimLeadingBlanks(parent, txt, source)
		}
		container = parent
	}

	if para.ChildCount() == 0 {
		quote.RemoveChild(quote, para)
	}
	return strings.ToLower(match[1]), true
}

// firstTextContainer returns the node holding the paragraph's first text,
// following first children through inline wrappers. Code spans never count.
func firstTextContainer(para *ast.Paragraph) ast.Node {
	var n ast.Node = para
	for {
		child := n.FirstChild()
		if child == nil {
			return nil
		}
		if _, ok := child.(*ast.Text); ok {
			return n
		}
		if child.Kind() == ast.KindCodeSpan {
			return nil
		}
		n = child
	}
}

// stripMarker removes the first n bytes of the leading text nodes, plus any
// blanks that followed the marker on the same line.
func stripMarker(container ast.Node, leading []*ast.Text, n int, source []byte) {
	remaining := n
	for _, txt := range leading {
		seg := txt.Segment
		if remaining > 0 {
			cut := min(remaining, seg.Len())
			seg = seg.WithStart(seg.Start + cut)
			remaining -= cut
		}
		txt.Segment = seg
		if remaining == 0 {
			trimLeadingBlanks(container, txt, source)
			if txt.Segment.Len() > 0 {
				return
			}
			continue
		}
		if seg.Len() == 0 {
			container.RemoveChild(container, txt)
		}
	}
}

// trimLeadingBlanks drops spaces and tabs at the start of txt, removing it when nothing is left
func trimLeadingBlanks(parent ast.Node, txt *ast.Text, source []byte) {
	seg := txt.Segment
	for seg.Len() > 0 && (source[seg.Start] == ' ' || source[seg.Start] == '\t') {
		seg = seg.WithStart(seg.Start + 1)
	}
	txt.Segment = seg
	if seg.Len() == 0 {
		parent.RemoveChild(parent, txt)
	}
}
