package extractor

import (
	"os"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

// TextExtractor handles plain text files. Form feeds mark page boundaries;
// files without them are a single page.
type TextExtractor struct{}

func (e *TextExtractor) Extract(path string) ([]document.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	return pagesFromText(string(data)), nil
}
