package match

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"veridoc/internal/roster"
)

const (
	suggestionThreshold = 0.6
	maxSuggestions      = 3
)

// Result is the outcome of matching one extracted name against the roster.
type Result struct {
	Matched     *roster.Profile    `json:"matched_profile,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
	Scores      map[string]float64 `json:"similarity_scores,omitempty"`
}

// Found reports whether the candidate resolved to a roster identity.
func (r Result) Found() bool { return r.Matched != nil }

// newLevenshtein builds the unit-cost Levenshtein metric used everywhere in
// this package. strutil's default replace cost is 2; the classic distance
// uses 1.
func newLevenshtein() *metrics.Levenshtein {
	lev := metrics.NewLevenshtein()
	lev.ReplaceCost = 1
	return lev
}

// Similarity is the normalized Levenshtein similarity between two strings:
// (maxLen - distance) / maxLen. It is symmetric, ranges over [0, 1], and is
// 1 for identical strings (including two empty strings).
func Similarity(a, b string) float64 {
	return strutil.Similarity(strings.ToLower(a), strings.ToLower(b), newLevenshtein())
}

// Distance is the classic unit-cost Levenshtein edit distance.
func Distance(a, b string) int {
	return newLevenshtein().Distance(a, b)
}

// Match resolves a candidate name against the roster. Inactive profiles are
// ignored entirely. Resolution order:
//
//  1. case-insensitive exact match on the full name,
//  2. structured fuzzy match: when both names split into two or more words,
//     equal first and last words are accepted (middle names and OCR noise in
//     between don't matter); otherwise one name containing the other does,
//  3. no match: roster names scoring above 0.6 similarity are returned as
//     suggestions, best first, at most three.
func Match(candidate string, profiles []roster.Profile) Result {
	candidate = strings.TrimSpace(candidate)
	active := roster.Active(profiles)

	if candidate == "" {
		return Result{}
	}

	candLower := strings.ToLower(candidate)

	// Exact.
	for i := range active {
		if strings.ToLower(active[i].FullName) == candLower {
			p := active[i]
			return Result{Matched: &p}
		}
	}

	// Structured fuzzy.
	for i := range active {
		if structuredMatch(candLower, strings.ToLower(active[i].FullName)) {
			p := active[i]
			return Result{Matched: &p}
		}
	}

	// Suggestions by similarity.
	scores := make(map[string]float64, len(active))
	for i := range active {
		scores[active[i].FullName] = Similarity(candidate, active[i].FullName)
	}

	var names []string
	for name, score := range scores {
		if score > suggestionThreshold {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if scores[names[i]] != scores[names[j]] {
			return scores[names[i]] > scores[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}

	return Result{Suggestions: names, Scores: scores}
}

// structuredMatch compares two already-lowercased names. When both have at
// least two words, matching first and last words are enough; otherwise fall
// back to substring containment.
func structuredMatch(a, b string) bool {
	aw, bw := strings.Fields(a), strings.Fields(b)
	if len(aw) >= 2 && len(bw) >= 2 {
		return aw[0] == bw[0] && aw[len(aw)-1] == bw[len(bw)-1]
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
