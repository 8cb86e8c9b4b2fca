package studymode

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ducnmm/studyvault/internal/document"
	util "github.com/ducnmm/studyvault/internal/utils"
)

const maxTitleLen = 25

// RestDayMessage fills a timeline day when no material matches the focus.
const RestDayMessage = "No matching documents. Take a light review day or upload new material!"

var activityKinds = []string{"Read", "Summarize", "Review", "Quiz yourself on", "Rewrite notes for"}

var intensityMultipliers = map[string]int{
	"x1": 1,
	"x2": 2,
	"x3": 3,
}

// IntensityMultiplier maps an intensity tag to activities per day,
// defaulting to 1 for anything unrecognized.
func IntensityMultiplier(intensity string) int {
	if m, ok := intensityMultipliers[intensity]; ok {
		return m
	}
	return 1
}

// FilterByKeywords keeps documents whose filename, category or keyword list
// mentions at least one of the comma-separated focus keywords. An empty
// keyword string keeps everything.
func FilterByKeywords(docs []*document.Document, keywords string) []*document.Document {
	terms := splitKeywords(keywords)
	if len(terms) == 0 {
		return docs
	}

	var matched []*document.Document
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		haystack := util.FoldDiacritics(doc.Filename + " " + doc.Category + " " + doc.Keywords)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matched = append(matched, doc)
				break
			}
		}
	}
	return matched
}

func splitKeywords(keywords string) []string {
	var terms []string
	for _, raw := range strings.Split(keywords, ",") {
		term := util.FoldDiacritics(strings.TrimSpace(raw))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// GeneratePlan builds one timeline line per day. Each day gets as many
// activities as the intensity multiplier allows, cycling through the matched
// documents; days without material get the rest message.
func GeneratePlan(docs []*document.Document, keywords, intensity string, days int, start util.DateOnly, rnd *rand.Rand) []string {
	if days <= 0 {
		return nil
	}

	matched := FilterByKeywords(docs, keywords)
	perDay := IntensityMultiplier(intensity)

	plan := make([]string, 0, days)
	docIdx := 0
	for day := 0; day < days; day++ {
		date := start.AddDays(day).Format("2006-01-02")

		if len(matched) == 0 {
			plan = append(plan, fmt.Sprintf("Day %d (%s): %s", day+1, date, RestDayMessage))
			continue
		}

		activities := make([]string, 0, perDay)
		for i := 0; i < perDay; i++ {
			doc := matched[docIdx%len(matched)]
			docIdx++
			kind := activityKinds[rnd.Intn(len(activityKinds))]
			activities = append(activities, fmt.Sprintf("%s %q", kind, truncateTitle(doc.Filename)))
		}
		plan = append(plan, fmt.Sprintf("Day %d (%s): %s", day+1, date, strings.Join(activities, "; ")))
	}
	return plan
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}
	return string(runes[:maxTitleLen]) + "..."
}
