package segmenter

import (
	"strings"
	"testing"
)

func TestSegment_AllCapsHeader(t *testing.T) {
	text := "BUDGET OVERVIEW\nThe budget increased this quarter.\nOverall cost fell."
	sections := Segment(text, 1, "report.pdf", DefaultConfig())

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "BUDGET OVERVIEW" {
		t.Errorf("expected title %q, got %q", "BUDGET OVERVIEW", sections[0].Title)
	}
	if !strings.Contains(sections[0].Body, "budget increased") {
		t.Errorf("body missing content: %q", sections[0].Body)
	}
	if sections[0].Page != 1 || sections[0].DocumentID != "report.pdf" {
		t.Errorf("wrong anchors: page=%d doc=%q", sections[0].Page, sections[0].DocumentID)
	}
}

func TestSegment_OutlineMarkerHeaders(t *testing.T) {
	text := strings.Join([]string{
		"1. Introduction",
		"this part introduces the topic.",
		"1.1 Background",
		"some background material here.",
		"A) Appendix",
		"appendix content follows.",
	}, "\n")

	sections := Segment(text, 3, "doc.pdf", DefaultConfig())
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	wantTitles := []string{"1. Introduction", "1.1 Background", "A) Appendix"}
	for i, want := range wantTitles {
		if sections[i].Title != want {
			t.Errorf("section %d: expected title %q, got %q", i, want, sections[i].Title)
		}
	}
}

func TestSegment_ColonAndTitleCaseHeaders(t *testing.T) {
	text := strings.Join([]string{
		"Nightlife Options:",
		"there are bars along the coast.",
		"Dining Out",
		"restaurants open late in summer.",
	}, "\n")

	sections := Segment(text, 2, "guide.pdf", DefaultConfig())
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Nightlife Options:" {
		t.Errorf("expected colon header, got %q", sections[0].Title)
	}
	if sections[1].Title != "Dining Out" {
		t.Errorf("expected title-case header, got %q", sections[1].Title)
	}
}

func TestSegment_HeaderlessPageSynthesizesOneSection(t *testing.T) {
	text := "just some plain prose without any heading.\nit continues on a second line."
	sections := Segment(text, 7, "notes.pdf", DefaultConfig())

	if len(sections) != 1 {
		t.Fatalf("expected exactly 1 synthesized section, got %d", len(sections))
	}
	if sections[0].Title != "just some plain prose without any heading." {
		t.Errorf("unexpected synthesized title %q", sections[0].Title)
	}
	if sections[0].Body == "" {
		t.Error("synthesized section must carry the whole page body")
	}
}

func TestSegment_SynthesizedTitleTruncated(t *testing.T) {
	long := strings.Repeat("verylongword ", 20)
	sections := Segment(long, 1, "doc.pdf", Config{MaxHeaderLen: 100, SynthTitleWidth: 30})

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if got := len([]rune(sections[0].Title)); got > 30 {
		t.Errorf("title not truncated: %d runes", got)
	}
}

func TestSegment_BlankPageYieldsNoSections(t *testing.T) {
	if sections := Segment("   \n\n  \n", 4, "doc.pdf", DefaultConfig()); len(sections) != 0 {
		t.Fatalf("expected 0 sections for blank page, got %d", len(sections))
	}
}

func TestSegment_EmptyBodySectionsDropped(t *testing.T) {
	// Two consecutive headers: the first has no body and is dropped.
	text := "FIRST HEADER\nSECOND HEADER\nactual body content here."
	sections := Segment(text, 1, "doc.pdf", DefaultConfig())

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "SECOND HEADER" {
		t.Errorf("expected %q, got %q", "SECOND HEADER", sections[0].Title)
	}
}

func TestSegment_LongLinesAreNotHeaders(t *testing.T) {
	longCaps := strings.Repeat("LOUD ", 25) // Well past the header length cap.
	text := longCaps + "\nbody follows here."
	sections := Segment(text, 1, "doc.pdf", DefaultConfig())

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	// The page is headerless, so the title is synthesized, not the caps line verbatim.
	if sections[0].Title == strings.TrimSpace(longCaps) {
		t.Errorf("over-long line should not be used as a detected header")
	}
}

func TestSegment_SentenceLinesAreNotHeaders(t *testing.T) {
	text := "INTRO\nThe Quick Brown fox jumped over the fence today.\nmore body text."
	sections := Segment(text, 1, "doc.pdf", DefaultConfig())

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d: %+v", len(sections), sections)
	}
	if !strings.Contains(sections[0].Body, "fox jumped") {
		t.Errorf("sentence ending in punctuation should stay in the body: %q", sections[0].Body)
	}
}
