// Package segmenter turns per-page plain text into titled sections. A page is
// scanned line by line through a small state machine; header-looking lines
// open new sections and everything else accumulates into the current body.
package segmenter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

// Config bounds header detection and title synthesis.
type Config struct {
	MaxHeaderLen    int // Lines longer than this are never treated as headers.
	SynthTitleWidth int // Max width of the title synthesized for headerless pages.
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxHeaderLen:    100,
		SynthTitleWidth: 60,
	}
}

var (
	outlineMarker = regexp.MustCompile(`^(\d+(\.\d+)+|\d+[.)]|[A-Z][.)])\s+\S`)
	titleCasePair = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)
	colonEnding   = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+:$`)
)

// segState is the scanner state: no section open yet, or accumulating a body.
type segState int

const (
	stateScanning segState = iota
	stateInBody
)

// Segment splits one page of text into sections. Every non-blank page yields
// at least one section; blank pages yield none.
func Segment(pageText string, pageNumber int, documentID string, cfg Config) []document.Section {
	if cfg.MaxHeaderLen <= 0 {
		cfg.MaxHeaderLen = 100
	}
	if cfg.SynthTitleWidth <= 0 {
		cfg.SynthTitleWidth = 60
	}

	var sections []document.Section
	var title string
	var body []string
	state := stateScanning

	flush := func() {
		// Sections with empty bodies after header detection are dropped.
		if state == stateInBody && len(body) > 0 {
			sections = append(sections, document.Section{
				DocumentID: documentID,
				Page:       pageNumber,
				Title:      title,
				Body:       strings.Join(body, "\n"),
			})
		}
		body = nil
	}

	for _, raw := range strings.Split(pageText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if isHeader(line, cfg.MaxHeaderLen) {
			flush()
			title = line
			state = stateInBody
			continue
		}

		if state == stateInBody {
			body = append(body, line)
		}
	}
	flush()

	// No header matched anywhere on the page: synthesize a single section
	// for the whole page so downstream stages always have an anchor.
	if len(sections) == 0 {
		trimmed := strings.TrimSpace(pageText)
		if trimmed == "" {
			return nil
		}
		sections = append(sections, document.Section{
			DocumentID: documentID,
			Page:       pageNumber,
			Title:      synthesizeTitle(trimmed, cfg.SynthTitleWidth),
			Body:       trimmed,
		})
	}

	return sections
}

// isHeader classifies a line as a section header. Matches any of: all-caps
// within a plausible title length, a leading outline marker ("1.", "1.1",
// "A)"), a title-case opening with no terminal sentence punctuation, or a
// colon-terminated label.
func isHeader(line string, maxLen int) bool {
	if len(line) >= maxLen {
		return false
	}

	if isAllCaps(line) {
		return true
	}
	if outlineMarker.MatchString(line) {
		return true
	}
	if colonEnding.MatchString(line) {
		return true
	}
	if titleCasePair.MatchString(line) && !strings.ContainsAny(lastRune(line), ".!?,;") {
		return true
	}
	return false
}

// isAllCaps reports whether the line consists of uppercase letters and spaces
// only, with at least one letter.
func isAllCaps(line string) bool {
	hasLetter := false
	for _, r := range line {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case r == ' ':
		default:
			return false
		}
	}
	return hasLetter
}

func lastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[len(runes)-1])
}

// synthesizeTitle derives a title for a headerless page from its first
// non-empty line, truncated to width.
func synthesizeTitle(pageText string, width int) string {
	for _, raw := range strings.Split(pageText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > width {
			return string(runes[:width])
		}
		return line
	}
	return "Main Content"
}
