package recall

import (
	"math/rand"
	"regexp"
	"sort"
	"strings"

	util "github.com/ducnmm/studyvault/internal/utils"
)

const blankPlaceholder = "______"

type BlankQuestion struct {
	Question         string
	Answer           string
	OriginalSentence string
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// CreateFillInTheBlank turns a sentence of the given content into a
// fill-in-the-blank question by blanking out numBlanks keywords of at least
// minWordLen characters that are not stop words. Returns nil when the
// content has no suitable sentence.
func CreateFillInTheBlank(content string, numBlanks, minWordLen int, r *rand.Rand) *BlankQuestion {
	if content == "" {
		return nil
	}

	var candidates []string
	for _, s := range splitSentences(content) {
		s = strings.TrimSpace(s)
		if len(strings.Fields(s)) > 5 {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, sentence := range candidates {
		words := wordPattern.FindAllString(strings.ToLower(sentence), -1)

		var keywords []string
		seen := map[string]struct{}{}
		for _, word := range words {
			if len(word) < minWordLen || util.IsStopWord(word) {
				continue
			}
			if _, dup := seen[word]; dup {
				continue
			}
			seen[word] = struct{}{}
			keywords = append(keywords, word)
		}
		if len(keywords) < numBlanks {
			continue
		}

		r.Shuffle(len(keywords), func(i, j int) {
			keywords[i], keywords[j] = keywords[j], keywords[i]
		})
		toBlank := keywords[:numBlanks]
		// Longest first, so a short keyword never clobbers part of a longer one.
		sort.Slice(toBlank, func(i, j int) bool { return len(toBlank[i]) > len(toBlank[j]) })

		question := sentence
		var answers []string
		for _, keyword := range toBlank {
			pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
			loc := pattern.FindStringIndex(question)
			if loc == nil {
				continue
			}
			answers = append(answers, question[loc[0]:loc[1]])
			question = question[:loc[0]] + blankPlaceholder + question[loc[1]:]
		}
		if len(answers) != numBlanks {
			continue
		}

		return &BlankQuestion{
			Question:         question,
			Answer:           strings.Join(answers, " / "),
			OriginalSentence: sentence,
		}
	}
	return nil
}

// splitSentences breaks text after '.', '?' or '!' followed by whitespace.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		r := runes[i]
		if (r == '.' || r == '?' || r == '!') && isSpace(runes[i+1]) {
			sentences = append(sentences, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
