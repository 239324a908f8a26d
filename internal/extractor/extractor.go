// Package extractor wraps the external text-extraction engines behind a
// single interface: a document path in, ordered pages of plain text out.
// Heading-bearing formats emit each heading on its own line so the segmenter
// sees a uniform shape regardless of the source format.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

// Extractor converts one document file into its ordered pages.
type Extractor interface {
	Extract(path string) ([]document.Page, error)
}

// ExtractionError marks a document that could not be read (corrupt,
// unreadable or encrypted input). Callers skip the document and continue.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// SupportedExtensions lists file extensions this adapter can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the extractor for a filename based on its extension.
func ForFile(filename string, pdfFallbackPdftotext bool) (Extractor, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: pdfFallbackPdftotext}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// pagesFromText splits extracted text on form feeds into 1-based pages,
// skipping blank ones. Text without form feeds becomes a single page.
func pagesFromText(text string) []document.Page {
	var pages []document.Page
	for i, chunk := range strings.Split(text, "\f") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		pages = append(pages, document.Page{Number: i + 1, Text: chunk})
	}
	return pages
}
