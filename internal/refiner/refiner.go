// Package refiner distills each selected section into a short excerpt by
// scoring its sentences against the persona profile and keeping the best ones
// in their original order.
package refiner

import (
	"sort"
	"strings"
	"unicode"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/config"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/scorer"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/textproc"
)

// Refiner scores sentences with the keyword-overlap and primary-focus terms
// only; secondary and content-quality sub-scores do not apply at sentence
// granularity.
type Refiner struct {
	Weights config.Weights
	Cfg     config.Refine
}

func New(cfg config.Config) *Refiner {
	return &Refiner{Weights: cfg.Weights, Cfg: cfg.Refine}
}

// Refine produces the subsection analysis for one ranked section.
func (r *Refiner) Refine(rs document.RankedSection, prof document.PersonaProfile) document.SubsectionAnalysis {
	sentences := SplitSentences(rs.Body)

	keep := r.Cfg.MaxSentences
	if keep <= 0 {
		keep = 5
	}

	refined := r.selectSentences(sentences, prof, keep)

	// Too little survived scoring: fall back to the section's leading
	// sentences so the excerpt is never trivial.
	if len(refined) < r.Cfg.MinChars && len(sentences) > keep {
		lead := r.Cfg.LeadFallback
		if lead <= 0 {
			lead = 3
		}
		if lead > len(sentences) {
			lead = len(sentences)
		}
		refined = strings.Join(sentences[:lead], " ")
	}

	return document.SubsectionAnalysis{
		DocumentID:  rs.DocumentID,
		Page:        rs.Page,
		RefinedText: strings.TrimSpace(refined),
	}
}

// selectSentences picks the top-scoring sentences and re-emits them in their
// original order so the excerpt reads coherently.
func (r *Refiner) selectSentences(sentences []string, prof document.PersonaProfile, keep int) string {
	if len(sentences) <= keep {
		return strings.Join(sentences, " ")
	}

	indexes := make([]int, len(sentences))
	scores := make([]float64, len(sentences))
	for i, sent := range sentences {
		indexes[i] = i
		scores[i] = r.sentenceScore(sent, prof)
	}

	// Stable sort keeps original order among equal scores.
	sort.SliceStable(indexes, func(a, b int) bool {
		return scores[indexes[a]] > scores[indexes[b]]
	})

	top := indexes[:keep]
	sort.Ints(top)

	picked := make([]string, 0, keep)
	for _, idx := range top {
		picked = append(picked, sentences[idx])
	}
	return strings.Join(picked, " ")
}

func (r *Refiner) sentenceScore(sentence string, prof document.PersonaProfile) float64 {
	lowered := strings.ToLower(sentence)
	tokens := textproc.TokenSet(sentence)

	return r.Weights.Keyword*scorer.MatchFraction(prof.Combined, lowered, tokens) +
		r.Weights.Primary*scorer.MatchFraction(prof.Primary, lowered, tokens)
}

// SplitSentences breaks text at terminal punctuation followed by whitespace
// and a capital letter, and at newlines.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Boundary only when whitespace then a capital letter (or the end
		// of the text) follows.
		j := i + 1
		if j < len(runes) && !unicode.IsSpace(runes[j]) {
			continue
		}
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j >= len(runes) || unicode.IsUpper(runes[j]) {
			flush()
		}
	}
	flush()

	return sentences
}
