package match

import (
	"strings"
	"unicode"
)

// DefaultMinScore is the similarity Closest requires by default.
const DefaultMinScore = 0.6

// Normalize folds case and drops separators (space, '_', '-', '.', '/').
func Normalize(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || strings.ContainsRune("_-./", r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Closest returns the candidate most similar to name with a similarity of
// at least minScore. Ties go to the earlier candidate. An exact normalized
// match is not a suggestion and reports false.
func Closest(name string, candidates []string, minScore float64) (string, bool) {
	best, bestScore := "", minScore

	for _, c := range candidates {
		score := Similarity(name, c)
		if score == 1.0 {
			return "", false
		}

		if score >= bestScore && (best == "" || score > bestScore) {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}

// Suggest formats a "did you mean" hint for name, or "" when no candidate
// is close enough.
func Suggest(name string, candidates []string) string {
	if c, ok := Closest(name, candidates, DefaultMinScore); ok {
		return ", did you mean \"" + c + "\"?"
	}

	return ""
}
