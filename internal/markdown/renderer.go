package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

const highlightStyle = "github"

var headingClasses = map[int]string{
	2: "md-h2",
	3: "md-h3",
}

// nodeRenderer overrides the block elements that get site-specific markup
type nodeRenderer struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

func newNodeRenderer() *nodeRenderer {
	return &nodeRenderer{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     styles.Get(highlightStyle),
	}
}

func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(KindCallout, r.renderCallout)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(east.KindTable, r.renderTable)
}

func (r *nodeRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		fmt.Fprintf(w, "<h%d", n.Level)
		if n.Attributes() != nil {
			html.RenderAttributes(w, n, html.HeadingAttributeFilter)
		}
		if class, ok := headingClasses[n.Level]; ok {
			fmt.Fprintf(w, ` class="%s"`, class)
		}
		_ = w.WriteByte('>')
	} else {
		fmt.Fprintf(w, "</h%d>\n", n.Level)
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderBlockquote(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<blockquote class=\"md-blockquote\">\n")
	} else {
		_, _ = w.WriteString("</blockquote>\n")
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderCallout(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Callout)
	if entering {
		fmt.Fprintf(w, "<div class=\"callout callout-%s\" role=\"note\">\n<p class=\"callout-title\">%s</p>\n", n.Variant, n.Title())
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderTable(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<div class=\"table-wrapper\">\n<table class=\"md-table\">\n")
	} else {
		_, _ = w.WriteString("</table>\n</div>\n")
	}
	return ast.WalkContinue, nil
}

func (r *nodeRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	lang := strings.ToLower(string(n.Language(source)))
	code := blockText(n, source)

	if lang == "mermaid" {
		_, _ = w.WriteString("<pre class=\"mermaid\">")
		_, _ = w.Write(util.EscapeHTML([]byte(code)))
		_, _ = w.WriteString("</pre>\n")
		return ast.WalkSkipChildren, nil
	}

	if lang == "" {
		lang = "text"
	}
	return ast.WalkSkipChildren, r.writeCode(w, lang, code)
}

func (r *nodeRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	return ast.WalkSkipChildren, r.writeCode(w, "text", blockText(node, source))
}

// writeCode renders a highlighted block with its language label and copy button
func (r *nodeRenderer) writeCode(w util.BufWriter, lang, code string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	var highlighted bytes.Buffer
	iterator, err := lexer.Tokenise(nil, code)
	if err == nil {
		err = r.formatter.Format(&highlighted, r.style, iterator)
	}
	if err != nil {
		highlighted.Reset()
		highlighted.WriteString("<pre class=\"chroma\"><code>")
		highlighted.Write(util.EscapeHTML([]byte(code)))
		highlighted.WriteString("</code></pre>")
	}

	label := util.EscapeHTML([]byte(lang))
	_, _ = w.WriteString("<div class=\"code-block\">\n<div class=\"code-header\"><span class=\"code-lang\">")
	_, _ = w.Write(label)
	_, _ = w.WriteString("</span><button type=\"button\" class=\"copy-button\" data-copy-code>Copy</button></div>\n")
	_, _ = w.Write(highlighted.Bytes())
	_, _ = w.WriteString("\n</div>\n")
	return nil
}

func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return b.String()
}

// WriteHighlightCSS writes the stylesheet for highlighted code blocks
func WriteHighlightCSS(w io.Writer) error {
	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, styles.Get(highlightStyle))
}
