package ranker

import (
	"fmt"
	"testing"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

func scoredSection(doc string, page int, score, keyword float64) document.ScoredSection {
	return document.ScoredSection{
		Section: document.Section{
			DocumentID: doc,
			Page:       page,
			Title:      fmt.Sprintf("%s p%d", doc, page),
			Body:       "body",
		},
		Score:        score,
		KeywordScore: keyword,
	}
}

func TestSelect_TopKDenseRanks(t *testing.T) {
	var scored []document.ScoredSection
	// Ten documents with ten distinct-scoring sections each.
	for d := 0; d < 10; d++ {
		for p := 0; p < 10; p++ {
			s := float64(d*10+p) / 100.0
			scored = append(scored, scoredSection(fmt.Sprintf("doc%d.pdf", d), p+1, s, s))
		}
	}

	ranked := Select(scored, 5)
	if len(ranked) != 5 {
		t.Fatalf("expected 5 ranked sections, got %d", len(ranked))
	}

	// Only the top 5 scores system-wide, descending, dense ranks 1..5.
	for i, rs := range ranked {
		if rs.ImportanceRank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, rs.ImportanceRank)
		}
		wantScore := float64(99-i) / 100.0
		if rs.Score != wantScore {
			t.Errorf("rank %d: expected score %v, got %v", rs.ImportanceRank, wantScore, rs.Score)
		}
	}
}

func TestSelect_FewerSectionsThanK(t *testing.T) {
	scored := []document.ScoredSection{
		scoredSection("a.pdf", 1, 0.9, 0.9),
		scoredSection("b.pdf", 1, 0.1, 0.1),
	}

	ranked := Select(scored, 5)
	if len(ranked) != 2 {
		t.Fatalf("expected all 2 sections, got %d", len(ranked))
	}
	if ranked[0].ImportanceRank != 1 || ranked[1].ImportanceRank != 2 {
		t.Errorf("ranks must stay dense: %d, %d", ranked[0].ImportanceRank, ranked[1].ImportanceRank)
	}
}

func TestSelect_EmptyInput(t *testing.T) {
	if ranked := Select(nil, 5); len(ranked) != 0 {
		t.Fatalf("expected empty result, got %d", len(ranked))
	}
}

func TestSelect_TieBreakOnKeywordSubScore(t *testing.T) {
	scored := []document.ScoredSection{
		scoredSection("a.pdf", 1, 0.5, 0.1),
		scoredSection("b.pdf", 1, 0.5, 0.4),
	}

	ranked := Select(scored, 2)
	if ranked[0].DocumentID != "b.pdf" {
		t.Errorf("higher keyword sub-score must win the tie, got %s first", ranked[0].DocumentID)
	}
}

func TestSelect_TieBreakFallsBackToInputOrder(t *testing.T) {
	// Equal scores and equal keyword sub-scores: earlier document+page order
	// wins. The input arrives in document order, so the sort must be stable.
	scored := []document.ScoredSection{
		scoredSection("a.pdf", 1, 0.5, 0.2),
		scoredSection("a.pdf", 2, 0.5, 0.2),
		scoredSection("b.pdf", 1, 0.5, 0.2),
	}

	ranked := Select(scored, 3)
	want := []struct {
		doc  string
		page int
	}{
		{"a.pdf", 1}, {"a.pdf", 2}, {"b.pdf", 1},
	}
	for i, w := range want {
		if ranked[i].DocumentID != w.doc || ranked[i].Page != w.page {
			t.Errorf("position %d: expected %s p%d, got %s p%d",
				i, w.doc, w.page, ranked[i].DocumentID, ranked[i].Page)
		}
	}
}

func TestSelect_ZeroScoreSectionsStillEligible(t *testing.T) {
	scored := []document.ScoredSection{
		scoredSection("a.pdf", 1, 0.0, 0.0),
		scoredSection("b.pdf", 1, 0.0, 0.0),
	}

	ranked := Select(scored, 5)
	if len(ranked) != 2 {
		t.Fatalf("zero-score sections must remain selectable, got %d", len(ranked))
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	scored := []document.ScoredSection{
		scoredSection("a.pdf", 1, 0.1, 0.1),
		scoredSection("b.pdf", 1, 0.9, 0.9),
	}

	Select(scored, 2)
	if scored[0].DocumentID != "a.pdf" {
		t.Error("Select must not reorder the caller's slice")
	}
}
