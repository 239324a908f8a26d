// Package ranker performs the global top-K selection over scored sections and
// assigns dense importance ranks.
package ranker

import (
	"sort"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
)

// Select sorts all scored sections descending by relevance and returns the
// top k with importance ranks 1..k assigned in order. Ties break on the
// keyword overlap sub-score, then on original document/page order (the input
// slice is expected in that order; the sort is stable). Fewer than k sections
// returns all of them; zero sections returns an empty slice.
func Select(scored []document.ScoredSection, k int) []document.RankedSection {
	if k <= 0 || len(scored) == 0 {
		return nil
	}

	ordered := make([]document.ScoredSection, len(scored))
	copy(ordered, scored)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Score != ordered[j].Score {
			return ordered[i].Score > ordered[j].Score
		}
		return ordered[i].KeywordScore > ordered[j].KeywordScore
	})

	if k > len(ordered) {
		k = len(ordered)
	}

	ranked := make([]document.RankedSection, 0, k)
	for i := 0; i < k; i++ {
		ranked = append(ranked, document.RankedSection{
			ScoredSection:  ordered[i],
			ImportanceRank: i + 1,
		})
	}
	return ranked
}
