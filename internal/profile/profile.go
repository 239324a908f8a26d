// Package profile turns a persona role and task description into a weighted
// keyword profile. Profiling is pure: identical inputs always yield an
// identical profile.
package profile

import (
	"sort"
	"strings"

	"github.com/akashsiripuram/document-intelligence-challenge/internal/document"
	"github.com/akashsiripuram/document-intelligence-challenge/internal/textproc"
)

// generalFocus is the primary focus assigned when no intent cluster matches
// the task.
const generalFocus = "general"

// intentClusters map task-intent focus areas to the marker terms that signal
// them. A matched cluster contributes its focus name and markers as
// primary-focus keywords.
var intentClusters = map[string][]string{
	"planning": {"plan", "organize", "schedule", "arrange"},
	"analysis": {"analyze", "evaluate", "assess", "compare"},
	"learning": {"learn", "study", "understand", "prepare"},
	"research": {"research", "investigate", "explore", "review"},
}

// situationClusters map secondary focus areas to situational cue terms found
// in the role or task (group size, budget, time pressure, experience).
var situationClusters = map[string][]string{
	"group":      {"group", "friends", "team", "colleagues"},
	"budget":     {"budget", "affordable", "cheap", "cost"},
	"time":       {"days", "quick", "short", "brief"},
	"experience": {"experience", "memorable", "special", "unique"},
}

// Build constructs the persona profile for a role and task against the given
// role table.
func Build(role, task string, table RoleTable) document.PersonaProfile {
	roleLower := strings.ToLower(strings.TrimSpace(role))
	taskLower := strings.ToLower(strings.TrimSpace(task))

	roleKeywords := roleTableKeywords(roleLower, table)
	if len(roleKeywords) == 0 {
		// Unknown role: fall back to the role string's own tokens.
		roleKeywords = textproc.Tokenize(roleLower)
	}

	// Task tokens always join the role keywords in the combined set.
	taskKeywords := textproc.Tokenize(taskLower)

	primary := matchClusters(taskLower, intentClusters)
	if len(primary) == 0 {
		// Tasks with no recognizable intent still get a primary focus.
		primary = []string{generalFocus}
	}
	secondary := matchClusters(roleLower+" "+taskLower, situationClusters)

	combined := dedupe(roleKeywords, taskKeywords, primary, secondary)

	return document.PersonaProfile{
		Role:         roleLower,
		Task:         taskLower,
		RoleKeywords: sorted(dedupe(roleKeywords)),
		Primary:      sorted(dedupe(primary)),
		Secondary:    sorted(dedupe(secondary)),
		Combined:     sorted(combined),
	}
}

// roleTableKeywords collects keyword sets for every role category mentioned
// in the role string.
func roleTableKeywords(roleLower string, table RoleTable) []string {
	var keywords []string
	for category, words := range table {
		if strings.Contains(roleLower, category) {
			keywords = append(keywords, words...)
		}
	}
	return keywords
}

// matchClusters returns the marker terms of every cluster whose markers
// appear in the text, prefixed by the cluster's focus name.
func matchClusters(text string, clusters map[string][]string) []string {
	var matched []string
	for focus, markers := range clusters {
		hit := false
		for _, m := range markers {
			if strings.Contains(text, m) {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, focus)
			matched = append(matched, markers...)
		}
	}
	return matched
}

// dedupe merges keyword slices into a case-normalized set with duplicates
// collapsed.
func dedupe(slices ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range slices {
		for _, kw := range s {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

// sorted keeps keyword ordering deterministic regardless of map iteration.
func sorted(s []string) []string {
	sort.Strings(s)
	return s
}
