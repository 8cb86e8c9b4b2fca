package document

import (
	"regexp"
	"sort"
	"strings"

	util "github.com/ducnmm/studyvault/internal/utils"
)

const DefaultCategory = "Uncategorized"

// CategoryKeywords drives keyword-based auto-categorization. Keywords are
// matched against diacritics-folded lowercase text.
var CategoryKeywords = map[string][]string{
	"Programming":      {"python", "java", "code", "script", "lap trinh", "thuat toan", "algorithm", "function", "variable", "loop"},
	"Economics":        {"kinh te", "thi truong", "gdp", "lam phat", "cung", "cau", "economics", "market", "inflation"},
	"Mathematics":      {"toan", "cong thuc", "phuong trinh", "tich phan", "dao ham", "ma tran", "vector", "equation", "matrix"},
	"Foreign Language": {"english", "tieng anh", "tu vung", "grammar", "ielts", "toeic", "vocabulary"},
	"Soft Skills":      {"cv", "giao tiep", "thuyet trinh", "lanh dao", "presentation", "leadership"},
	"Physics":          {"dien truong", "dien dung", "electric field", "capacitance"},
	"Literature":       {"tac pham", "tho", "truyen", "poem", "novel"},
	"Chemistry":        {"nguyen to", "hoa chat", "phan tu khoi", "molecule", "element"},
	"Biology":          {"te bao", "sinh vat", "dong vat", "cell", "organism"},
	"Law":              {"luat", "hien phap", "dieu khoan", "nghi dinh", "thong tu", "law", "constitution"},
	"AI/ML":            {"machine learning", "ai", "neural network", "mang no-ron", "hoc may"},
	"Web Link":         {"http", "https"},
	"Image":            {"image", "picture"},
	"Video":            {"video", "media"},
	"Google Drive":     {"google drive", "gsheet"},
}

func ValidCategory(category string) bool {
	if category == DefaultCategory {
		return true
	}
	_, ok := CategoryKeywords[category]
	return ok
}

// Categorize returns the categories whose keywords appear in the given
// filename or content, refined by the user's stated goal and role model.
func Categorize(filenameOrContent, userUltimateGoal, userRoleModel string) []string {
	keywordString := util.FoldDiacritics(filenameOrContent)
	detected := map[string]struct{}{}

	for cat, keys := range CategoryKeywords {
		for _, k := range keys {
			if strings.Contains(keywordString, util.FoldDiacritics(k)) {
				detected[cat] = struct{}{}
				break
			}
		}
	}

	if userUltimateGoal != "" {
		goal := util.FoldDiacritics(userUltimateGoal)
		if strings.Contains(goal, "ai") || strings.Contains(goal, "hoc may") || strings.Contains(goal, "lap trinh") {
			if strings.Contains(keywordString, "neural network") || strings.Contains(keywordString, "machine learning") {
				detected["AI/ML"] = struct{}{}
			}
			if strings.Contains(keywordString, "python") || strings.Contains(keywordString, "code") {
				detected["Programming"] = struct{}{}
			}
		}
		if strings.Contains(goal, "kinh doanh") || strings.Contains(goal, "business") {
			if strings.Contains(keywordString, "thi truong") || strings.Contains(keywordString, "kinh te") {
				detected["Economics"] = struct{}{}
			}
		}
	}

	if userRoleModel != "" {
		role := util.FoldDiacritics(userRoleModel)
		if strings.Contains(role, "ai expert") || strings.Contains(role, "game developer") {
			if strings.Contains(keywordString, "thuat toan") || strings.Contains(keywordString, "code") {
				detected["Programming"] = struct{}{}
			}
		}
	}

	categories := make([]string, 0, len(detected))
	for cat := range detected {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories
}

// ExtractCategoryKeywords reports which of a category's keywords occur as
// whole words in the text.
func ExtractCategoryKeywords(text, category string) []string {
	normalized := util.FoldDiacritics(text)
	found := map[string]struct{}{}

	for _, keyword := range CategoryKeywords[category] {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(util.FoldDiacritics(keyword)) + `\b`)
		if pattern.MatchString(normalized) {
			found[capitalize(keyword)] = struct{}{}
		}
	}

	keywords := make([]string, 0, len(found))
	for k := range found {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
