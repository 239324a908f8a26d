// Package scorer assigns relevance scores to sections against a persona
// profile using a fixed multi-factor formula. The Scorer interface leaves a
// slot for alternative implementations (e.g. vector similarity) behind the
// same contract.
package scorer

import (
	"strings"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/config"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/textproc"
)

// Scorer scores one section against a profile.
type Scorer interface {
	Score(sec document.Section, prof document.PersonaProfile) document.ScoredSection
}

// KeywordScorer is the default scorer: four sub-scores, each normalized to
// [0,1], combined as a weighted sum.
type KeywordScorer struct {
	Weights           config.Weights
	QualitySaturation int
	MinSectionWords   int
}

// New builds a KeywordScorer from configuration.
func New(cfg config.Config) *KeywordScorer {
	return &KeywordScorer{
		Weights:           cfg.Weights,
		QualitySaturation: cfg.QualitySaturation,
		MinSectionWords:   cfg.MinSectionWords,
	}
}

func (s *KeywordScorer) Score(sec document.Section, prof document.PersonaProfile) document.ScoredSection {
	text := sec.Title + "\n" + sec.Body
	lowered := strings.ToLower(text)
	tokens := textproc.TokenSet(text)

	keyword := MatchFraction(prof.Combined, lowered, tokens)
	primary := MatchFraction(prof.Primary, lowered, tokens)
	secondary := MatchFraction(prof.Secondary, lowered, tokens)
	quality := s.qualityScore(sec.Body)

	total := s.Weights.Keyword*keyword +
		s.Weights.Primary*primary +
		s.Weights.Secondary*secondary +
		s.Weights.Quality*quality

	return document.ScoredSection{
		Section:        sec,
		Score:          total,
		KeywordScore:   keyword,
		PrimaryScore:   primary,
		SecondaryScore: secondary,
		QualityScore:   quality,
	}
}

// MatchFraction returns the fraction of keywords present in the text, where
// presence is a normalized-token match or a case-insensitive substring match
// (the latter covers multi-word keywords).
func MatchFraction(keywords []string, loweredText string, tokens map[string]bool) float64 {
	if len(keywords) == 0 {
		return 0
	}
	hits := 0
	for _, kw := range keywords {
		if Matches(kw, loweredText, tokens) {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

// Matches reports whether one keyword is present in the text.
func Matches(keyword, loweredText string, tokens map[string]bool) bool {
	if tokens[textproc.Normalize(keyword)] {
		return true
	}
	return strings.Contains(loweredText, strings.ToLower(keyword))
}

// qualityScore grows with body length up to the saturation threshold and
// penalizes fragments below the minimum word count.
func (s *KeywordScorer) qualityScore(body string) float64 {
	saturation := s.QualitySaturation
	if saturation <= 0 {
		saturation = 50
	}

	words := len(strings.Fields(body))
	q := float64(words) / float64(saturation)
	if q > 1 {
		q = 1
	}
	if words < s.MinSectionWords {
		q *= 0.5
	}
	return q
}
