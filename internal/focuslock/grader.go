package focuslock

import (
	"regexp"
	"strings"
)

// AcceptThreshold is the similarity score a submission must exceed
// (strictly) to count as correct.
const AcceptThreshold = 0.7

const strippedPunctuation = ".,/#!$%^&*;:{}=-_`~()"

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

func normalizeAnswer(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(strippedPunctuation, r) {
			continue
		}
		b.WriteRune(r)
	}
	return whitespaceRun.ReplaceAllString(b.String(), " ")
}

func wordSet(s string, minLen int) map[string]struct{} {
	words := map[string]struct{}{}
	for _, w := range strings.Split(s, " ") {
		if len([]rune(w)) < minLen {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// Similarity computes the recall-style coverage of the canonical answer's
// vocabulary by the submitted answer: matched ground-truth words divided by
// ground-truth vocabulary size. Words of length 1 or less are excluded from
// the ground truth; the submission is not length-filtered. Extra words in
// the submission never lower the score. A degenerate canonical answer with
// an empty vocabulary scores 1 on exact normalized equality and 0 otherwise.
func Similarity(submitted, canonical string) float64 {
	ua := normalizeAnswer(submitted)
	ca := normalizeAnswer(canonical)

	truth := wordSet(ca, 2)
	if len(truth) == 0 {
		if ua == ca {
			return 1
		}
		return 0
	}

	matched := 0
	for w := range wordSet(ua, 0) {
		if _, ok := truth[w]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(truth))
}

// CheckAnswer reports whether a free-text submission matches the canonical
// answer. The threshold is a strict inequality: a score of exactly 0.7 is a
// miss.
func CheckAnswer(submitted, canonical string) bool {
	if submitted == "" || canonical == "" {
		return false
	}
	return Similarity(submitted, canonical) > AcceptThreshold
}
