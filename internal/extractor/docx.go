package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	"github.com/fumiama/go-docx"
)

// DOCXExtractor handles .docx files. Paragraphs styled as headings are
// emitted uppercased on their own line.
type DOCXExtractor struct{}

func (e *DOCXExtractor) Extract(path string) ([]document.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: fmt.Errorf("stat: %w", err)}
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: fmt.Errorf("parse docx: %w", err)}
	}

	var out strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}

		text := paragraphText(para)
		if text == "" {
			continue
		}
		if isHeadingStyle(para) {
			out.WriteString(strings.ToUpper(text))
		} else {
			out.WriteString(text)
		}
		out.WriteString("\n")
	}

	return pagesFromText(out.String()), nil
}

func isHeadingStyle(para *docx.Paragraph) bool {
	if para.Properties == nil || para.Properties.Style == nil {
		return false
	}
	style := strings.ToLower(para.Properties.Style.Val)
	return strings.HasPrefix(strings.ReplaceAll(style, " ", ""), "heading")
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
