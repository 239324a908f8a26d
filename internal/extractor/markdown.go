package extractor

import (
	"bytes"
	"os"
	"strings"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor flattens a Markdown file into plain text using goldmark.
// Headings are emitted uppercased on their own line so the segmenter's header
// detection catches them regardless of their casing in the source.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(path string) ([]document.Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var out strings.Builder
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			if title != "" {
				out.WriteString(strings.ToUpper(title))
				out.WriteString("\n")
			}
		default:
			t := nodeText(n, src)
			if t != "" {
				out.WriteString(t)
				out.WriteString("\n")
			}
		}
	}

	return pagesFromText(out.String()), nil
}

// nodeText gets the text content of a goldmark AST node.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(nodeText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
