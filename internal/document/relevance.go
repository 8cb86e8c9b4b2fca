package document

import (
	"regexp"
	"strings"

	"github.com/ducnmm/studyvault/internal/user"
	util "github.com/ducnmm/studyvault/internal/utils"
)

// RelevanceMatcher matches documents against a user's stated goals. The goal
// text is folded, tokenized and compiled into a single whole-word alternation
// once, so a listing reuses one matcher across every row.
type RelevanceMatcher struct {
	pattern *regexp.Regexp
}

// NewRelevanceMatcher builds the matcher for a user. A nil user, empty goal
// text, or a goal made only of stop words yields a matcher that never
// matches.
func NewRelevanceMatcher(u *user.User) *RelevanceMatcher {
	if u == nil {
		return &RelevanceMatcher{}
	}

	goalText := strings.TrimSpace(u.UltimateGoal + " " + u.RoleModelCharacter + " " + u.SpecificStudyGoal)
	if goalText == "" {
		return &RelevanceMatcher{}
	}

	seen := map[string]struct{}{}
	var keywords []string
	for _, word := range strings.Fields(util.FoldDiacritics(goalText)) {
		if len([]rune(word)) < 2 || util.IsStopWord(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, regexp.QuoteMeta(word))
	}
	if len(keywords) == 0 {
		return &RelevanceMatcher{}
	}

	return &RelevanceMatcher{
		pattern: regexp.MustCompile(`\b(?:` + strings.Join(keywords, "|") + `)\b`),
	}
}

// Matches reports whether any goal keyword occurs as a whole word in the
// document's normalized filename, category or keyword list.
func (m *RelevanceMatcher) Matches(doc *Document) bool {
	if m.pattern == nil || doc == nil {
		return false
	}

	name := doc.FilenameNormalized
	if name == "" {
		name = util.FoldDiacritics(doc.Filename)
	}
	docText := strings.ToLower(name + " " + util.FoldDiacritics(doc.Category) + " " + util.FoldDiacritics(doc.Keywords))
	return m.pattern.MatchString(docText)
}

// IsRelevantToUser is the one-shot form for callers outside a listing loop.
func IsRelevantToUser(doc *Document, u *user.User) bool {
	return NewRelevanceMatcher(u).Matches(doc)
}
