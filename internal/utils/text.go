package util

import "strings"

// Vietnamese diacritics folded to their ASCII base letters, so keyword
// matching works on accented and unaccented input alike.
var diacriticReplacements = map[rune]rune{
	'á': 'a', 'à': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ằ': 'a', 'ắ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ầ': 'a', 'ấ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'đ': 'd',
	'é': 'e', 'è': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ề': 'e', 'ế': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'í': 'i', 'ì': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i',
	'ó': 'o', 'ò': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ồ': 'o', 'ố': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ờ': 'o', 'ớ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ú': 'u', 'ù': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ừ': 'u', 'ứ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ý': 'y', 'ỳ': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',
}

func FoldDiacritics(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	return strings.Map(func(r rune) rune {
		if folded, ok := diacriticReplacements[r]; ok {
			return folded
		}
		return r
	}, lowered)
}

var stopWords = map[string]struct{}{}

func init() {
	words := []string{
		// Vietnamese
		"là", "và", "của", "có", "trong", "để", "một", "không", "được", "cho", "với", "tại",
		"thì", "mà", "khi", "từ", "ra", "lên", "xuống", "vào", "qua", "đến", "đi", "lại",
		"như", "ở", "đã", "sẽ", "đang", "rằng", "hay", "hơn", "rất", "này", "đó", "kia", "ấy",
		"tôi", "bạn", "anh", "chị", "em", "ông", "bà", "nó", "chúng", "mình",
		// English
		"the", "a", "an", "is", "are", "was", "were", "of", "in", "on", "at", "to", "for",
		"with", "by", "from", "as", "and", "or", "but", "if", "then", "this", "that", "it",
		"its", "i", "you", "he", "she", "we", "they", "my", "your", "his", "her", "our", "their",
	}
	for _, w := range words {
		stopWords[w] = struct{}{}
	}
}

func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}
