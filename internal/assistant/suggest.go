package assistant

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// similarity returns how similar two strings are in percent, based on their edit distance
// relative to their combined length. Equal strings are 100% similar.
func similarity(a string, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return int(math.Round(float64(total-distance) / float64(total) * 100))
}

// closestCommand returns the candidate most similar to name and its similarity. It returns an
// empty string if no candidate reaches the threshold. On a tie the earlier candidate wins.
func closestCommand(name string, candidates []string, threshold int) (string, int) {
	name = strings.ToLower(name)
	best, bestScore := "", 0
	for _, candidate := range candidates {
		if score := similarity(name, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < threshold {
		return "", 0
	}
	return best, bestScore
}
