package truth

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	upperRatioThreshold  = 0.15
	upperRatioPenalty    = 0.4
	exclamationThreshold = 3
	exclamationPenalty   = 0.3
)

// NoiseProbability estimates how manipulative or clickbait-like a text
// looks, in [0, 1]. Empty text is maximal noise: there is nothing to trust.
//
// Two surface signals contribute: an excessive uppercase ratio (+0.4 above
// 15%) and excessive exclamation marks (+0.3 above 3). The clamp to 1.0 is
// headroom for future signals; the current terms sum to at most 0.7.
func NoiseProbability(text string) float64 {
	if text == "" {
		return 1.0
	}

	var upperCount int
	for _, r := range text {
		if unicode.IsUpper(r) {
			upperCount++
		}
	}
	upperRatio := float64(upperCount) / float64(utf8.RuneCountInString(text))

	exclamationCount := strings.Count(text, "!")

	score := 0.0
	if upperRatio > upperRatioThreshold {
		score += upperRatioPenalty
	}
	if exclamationCount > exclamationThreshold {
		score += exclamationPenalty
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}
