package match

import "strings"

// MinSimilarity is the lowest case-folded similarity at which Closest
// still offers a candidate.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name, ignoring case.
// Ties keep the earlier candidate. It reports false when no candidate
// reaches MinSimilarity or when name itself is a candidate.
func Closest(name string, candidates []string) (string, bool) {
	folded := strings.ToLower(name)

	var (
		best  string
		score float64
	)

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		if s := Similarity(folded, strings.ToLower(c)); s > score {
			best, score = c, s
		}
	}

	if score < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint returns "; did you mean X?" for the closest candidate, or "".
func Hint(name string, candidates []string) string {
	best, ok := Closest(name, candidates)
	if !ok {
		return ""
	}

	return "; did you mean \"" + best + "\"?"
}
