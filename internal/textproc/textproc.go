// Package textproc is the tokenizer/stopword/normalizer collaborator used by
// profiling, scoring and refinement. All linguistic resources are embedded in
// the binary; nothing here touches the network or the filesystem.
package textproc

import (
	"strings"
	"unicode"
)

// Tokenize lowercases the text, splits it on non-letter runs, and drops
// stopwords and tokens shorter than three characters.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Normalize reduces a token to a base form by stripping one common
// inflectional suffix: "hotels" becomes "hotel", "studied" becomes "study".
// It is a light stand-in for lemmatization, not a stemmer; suffix removal does
// not always reach the dictionary root ("planning" becomes "plann", which
// still only matches "plan" through substring matching in the scorer).
func Normalize(token string) string {
	t := strings.ToLower(token)
	for _, s := range []struct {
		suffix string
		min    int
	}{
		{"ingly", 7}, {"edly", 6},
		{"ing", 6}, {"ies", 5}, {"ied", 5},
		{"es", 5}, {"ed", 5},
		{"s", 4},
	} {
		if strings.HasSuffix(t, s.suffix) && len(t) >= s.min {
			base := t[:len(t)-len(s.suffix)]
			if s.suffix == "ies" || s.suffix == "ied" {
				base += "y"
			}
			return base
		}
	}
	return t
}

// Preprocess tokenizes and normalizes in one pass.
func Preprocess(text string) []string {
	tokens := Tokenize(text)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Normalize(tok))
	}
	return out
}

// TokenSet returns the preprocessed tokens of text as a set, for membership
// checks during scoring.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Preprocess(text) {
		set[tok] = true
	}
	return set
}
