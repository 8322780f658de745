package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, source string) string {
	t.Helper()
	out, err := New().Render(source)
	require.NoError(t, err)
	return string(out)
}

func TestCallouts(t *testing.T) {
	testCases := []struct {
		name    string
		source  string
		callout string
		title   string
	}{
		{"warning", "> [!WARNING]\n> Rotate your keys.", "callout-warning", "Warning"},
		{"note", "> [!NOTE]\n> Useful detail.", "callout-note", "Note"},
		{"tip", "> [!TIP] Use errgroup.", "callout-tip", "Tip"},
		{"important", "> [!IMPORTANT]\n> Read this.", "callout-important", "Important"},
		{"caution", "> [!CAUTION]\n> Careful.", "callout-caution", "Caution"},
		{"lower case marker", "> [!warning]\n> Still a warning.", "callout-warning", "Warning"},
		{"marker inside strong", "> **[!NOTE]** Heads up.", "callout-note", "Note"},
		{"marker inside emphasis", "> *[!TIP]*\n> Use errgroup.", "callout-tip", "Tip"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := render(t, tc.source)
			assert.Contains(t, out, tc.callout)
			assert.Contains(t, out, `<p class="callout-title">`+tc.title+`</p>`)
			assert.NotContains(t, out, "<blockquote")
			assert.NotContains(t, out, "[!")
		})
	}
}

func TestCalloutBodyIsKept(t *testing.T) {
	out := render(t, "> [!WARNING]\n> Rotate your **keys** often.")
	assert.Contains(t, out, "Rotate your <strong>keys</strong> often.")

	out = render(t, "> [!TIP] Use errgroup.")
	assert.Contains(t, out, "<p>Use errgroup.</p>")

	out = render(t, "> **[!NOTE]** Heads up.")
	assert.Contains(t, out, "<p>Heads up.</p>")
	assert.NotContains(t, out, "<strong>")
}

func TestNonCalloutBlockquotes(t *testing.T) {
	testCases := []struct {
		name   string
		source string
	}{
		{"unknown marker", "> [!WARNINGX]\n> Not a callout."},
		{"plain text", "> Just a quote."},
		{"marker not at start", "> Heads up [!NOTE] here."},
		{"first child is not a paragraph", "> # Title\n> [!NOTE] body"},
		{"marker after emphasis", "> *Note* [!NOTE]"},
		{"marker in code span", "> `[!NOTE]` literal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := render(t, tc.source)
			assert.Contains(t, out, `<blockquote class="md-blockquote">`)
			assert.NotContains(t, out, `class="callout`)
		})
	}
}

func TestHeadings(t *testing.T) {
	out := render(t, "# Title\n\n## Getting Started\n\n### Install Steps\n\n#### Small")
	assert.Contains(t, out, `<h1 id="title">Title</h1>`)
	assert.Contains(t, out, `<h2 id="getting-started" class="md-h2">Getting Started</h2>`)
	assert.Contains(t, out, `<h3 id="install-steps" class="md-h3">Install Steps</h3>`)
	assert.Contains(t, out, `<h4 id="small">Small</h4>`)
}

func TestTablesAreWrapped(t *testing.T) {
	out := render(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Contains(t, out, `<div class="table-wrapper">`)
	assert.Contains(t, out, `<table class="md-table">`)
	assert.Contains(t, out, "<td>1</td>")
	assert.True(t, strings.Index(out, "</table>") < strings.LastIndex(out, "</div>"))
}

func TestCodeBlocks(t *testing.T) {
	t.Run("fenced with language", func(t *testing.T) {
		out := render(t, "```go\nfunc main() {}\n```")
		assert.Contains(t, out, `<span class="code-lang">go</span>`)
		assert.Contains(t, out, "copy-button")
		assert.Contains(t, out, `class="chroma"`)
		assert.Contains(t, out, "main")
	})

	t.Run("fenced without language", func(t *testing.T) {
		out := render(t, "```\nplain <text>\n```")
		assert.Contains(t, out, `<span class="code-lang">text</span>`)
		assert.Contains(t, out, "&lt;text&gt;")
	})

	t.Run("indented code is text", func(t *testing.T) {
		out := render(t, "Intro\n\n    indented code\n")
		assert.Contains(t, out, `<span class="code-lang">text</span>`)
		assert.Contains(t, out, "indented code")
	})

	t.Run("mermaid", func(t *testing.T) {
		out := render(t, "```mermaid\ngraph TD\n  A --> B\n```")
		assert.Contains(t, out, `<pre class="mermaid">graph TD`)
		assert.Contains(t, out, "A --&gt; B")
		assert.NotContains(t, out, "copy-button")
	})

	t.Run("inline code stays plain", func(t *testing.T) {
		out := render(t, "Run `go test` now.")
		assert.Contains(t, out, "<code>go test</code>")
		assert.NotContains(t, out, "code-block")
	})
}

func TestRawHTMLIsOmitted(t *testing.T) {
	out := render(t, "<script>alert(1)</script>\n\nText")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<p>Text</p>")
}

func TestWriteHighlightCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHighlightCSS(&buf))
	assert.Contains(t, buf.String(), ".chroma")
}
