package refiner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/config"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

func testRefiner() *Refiner {
	return &Refiner{
		Weights: config.Weights{Keyword: 0.40, Primary: 0.30, Secondary: 0.20, Quality: 0.10},
		Cfg:     config.Refine{MaxSentences: 5, MinChars: 100, LeadFallback: 3},
	}
}

func ranked(body string) document.RankedSection {
	return document.RankedSection{
		ScoredSection: document.ScoredSection{
			Section: document.Section{DocumentID: "doc.pdf", Page: 2, Title: "T", Body: body},
		},
		ImportanceRank: 1,
	}
}

func TestSplitSentences_TerminalPunctuationAndCapital(t *testing.T) {
	text := "First sentence here. Second one follows! Third asks? Fourth ends."
	got := SplitSentences(text)
	want := []string{
		"First sentence here.",
		"Second one follows!",
		"Third asks?",
		"Fourth ends.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences: got %v, want %v", got, want)
	}
}

func TestSplitSentences_NoBreakBeforeLowercase(t *testing.T) {
	// "approx. twenty" must not split: no capital after the period.
	text := "The trip costs approx. twenty euros per person."
	got := SplitSentences(text)
	if len(got) != 1 {
		t.Errorf("expected 1 sentence, got %d: %v", len(got), got)
	}
}

func TestSplitSentences_NewlineIsBoundary(t *testing.T) {
	got := SplitSentences("line one without punctuation\nline two")
	if len(got) != 2 {
		t.Errorf("expected 2 sentences, got %d: %v", len(got), got)
	}
}

func TestRefine_FewerSentencesThanBudgetKeepsAll(t *testing.T) {
	r := testRefiner()
	body := "The budget rose sharply this year. Overall cost fell afterwards."
	sa := r.Refine(ranked(body), document.PersonaProfile{Combined: []string{"budget", "cost"}})

	if !strings.Contains(sa.RefinedText, "budget rose") || !strings.Contains(sa.RefinedText, "cost fell") {
		t.Errorf("both sentences must survive: %q", sa.RefinedText)
	}
	if sa.DocumentID != "doc.pdf" || sa.Page != 2 {
		t.Errorf("analysis must carry the section anchors, got %s p%d", sa.DocumentID, sa.Page)
	}
}

func TestRefine_TopSentencesKeepOriginalOrder(t *testing.T) {
	r := testRefiner()
	r.Cfg.MaxSentences = 2
	r.Cfg.MinChars = 0

	body := strings.Join([]string{
		"The itinerary covers three cities in a week.",   // match (itinerary)
		"Weather has been mild lately around the coast.", // no match
		"Nothing notable happened on the second day.",    // no match
		"Hotel bookings must be made well in advance.",   // match (hotel)
	}, " ")

	prof := document.PersonaProfile{Combined: []string{"itinerary", "hotel"}}
	sa := r.Refine(ranked(body), prof)

	itin := strings.Index(sa.RefinedText, "itinerary")
	hotel := strings.Index(sa.RefinedText, "Hotel")
	if itin == -1 || hotel == -1 {
		t.Fatalf("expected both matching sentences, got %q", sa.RefinedText)
	}
	if itin > hotel {
		t.Error("selected sentences must be re-ordered into original document order")
	}
	if strings.Contains(sa.RefinedText, "Weather") {
		t.Errorf("low-scoring sentence must be dropped: %q", sa.RefinedText)
	}
}

func TestRefine_MinCharFloorFallsBackToLeadingSentences(t *testing.T) {
	r := testRefiner()
	r.Cfg.MaxSentences = 1
	r.Cfg.MinChars = 100
	r.Cfg.LeadFallback = 3

	// The only keyword match is a very short sentence, far below the floor.
	body := strings.Join([]string{
		"Opening line describes the region and its long history in detail.",
		"A second line adds further background about local customs there.",
		"Third line continues the running description of the area itself.",
		"Budget.",
	}, " ")

	prof := document.PersonaProfile{Combined: []string{"budget"}}
	sa := r.Refine(ranked(body), prof)

	if !strings.HasPrefix(sa.RefinedText, "Opening line") {
		t.Errorf("expected leading-sentence fallback, got %q", sa.RefinedText)
	}
	if len(sa.RefinedText) < 100 {
		t.Errorf("fallback should produce a non-trivial excerpt, got %d chars", len(sa.RefinedText))
	}
}

func TestRefine_TieBreakByOriginalOrder(t *testing.T) {
	r := testRefiner()
	r.Cfg.MaxSentences = 2
	r.Cfg.MinChars = 0

	// All sentences score zero: the first two must be kept.
	body := "Alpha sentence is first. Bravo sentence is second. Charlie sentence is third."
	sa := r.Refine(ranked(body), document.PersonaProfile{})

	if !strings.Contains(sa.RefinedText, "Alpha") || !strings.Contains(sa.RefinedText, "Bravo") {
		t.Errorf("ties must break toward earlier sentences: %q", sa.RefinedText)
	}
	if strings.Contains(sa.RefinedText, "Charlie") {
		t.Errorf("third sentence should be dropped: %q", sa.RefinedText)
	}
}
