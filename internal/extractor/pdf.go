package extractor

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor reads PDFs with the Go library first and falls back to
// pdftotext if available.
type PDFExtractor struct {
	FallbackPdftotext bool
}

func (e *PDFExtractor) Extract(path string) ([]document.Page, error) {
	pages, err := extractPDFPages(path)
	if err != nil && e.FallbackPdftotext {
		pages, err = extractPdftotextPages(path)
	}
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	return pages, nil
}

func extractPDFPages(path string) ([]document.Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []document.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, document.Page{Number: i, Text: text})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}
	return pages, nil
}

// extractPdftotextPages shells out to pdftotext, which separates pages with
// form feeds.
func extractPdftotextPages(path string) ([]document.Page, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	pages := pagesFromText(string(out))
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}
	return pages, nil
}
